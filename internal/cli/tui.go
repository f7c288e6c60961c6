package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/flierkit/pkg/flier"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LayoutModel - Interactive record browser
// =============================================================================

// LayoutModel is the bubbletea model for browsing the records of a layout.
type LayoutModel struct {
	Layout   *flier.Layout
	Cursor   int
	Selected *flier.Record
	Height   int
	Offset   int
}

// NewLayoutModel creates a new layout browser.
func NewLayoutModel(l *flier.Layout) LayoutModel {
	return LayoutModel{Layout: l, Height: 15}
}

func (m LayoutModel) Init() tea.Cmd {
	return nil
}

func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Layout.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Layout.Records) == 0 {
				return m, nil
			}
			rec := m.Layout.Records[m.Cursor]
			m.Selected = &rec
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, the legend and the detail pane.
		m.Height = msg.Height - 14
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LayoutModel) View() string {
	var b strings.Builder

	p := m.Layout.Profile
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Layout %s", displayID(m.Layout.RequestID))))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("%s tier", p.Tier)))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  score %d  width %gpx", p.Score, m.Layout.ContainerWidth)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Layout.Records) == 0 {
		b.WriteString(listDimStyle.Render("  no records"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Layout.Records))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Layout.Records[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, recordRow(cursor, r))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Element", "Role", "Zone", "Size", "Dir", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Layout.Records) {
				return lipgloss.NewStyle()
			}
			rec := m.Layout.Records[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 6 {
				base = base.Foreground(colorGray)
			}
			switch {
			case isCurrent && rec.Kind == flier.KindText:
				if col != 6 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			case isCurrent:
				return base.Foreground(colorDim).Bold(true)
			case rec.Kind == flier.KindText:
				return base
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Layout.Records))))
	b.WriteString("\n")
	b.WriteString(recordDetail(m.Layout.Records[m.Cursor]))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func recordRow(cursor string, r flier.Record) []string {
	if r.Kind != flier.KindText {
		size := "-"
		if g := r.Geometry; g != nil {
			size = fmt.Sprintf("%gx%g", g.Width, g.Height)
		}
		return []string{cursor, r.ElementID, string(r.Role), "-", size, "-", "(" + string(r.Kind) + ")"}
	}
	return []string{
		cursor,
		r.ElementID,
		string(r.Role),
		string(r.Zone),
		fmt.Sprintf("%dpx", r.FontSizePx),
		string(r.Direction),
		truncate(firstLine(r.Text), 32),
	}
}

// recordDetail renders the anchor and window style of a record.
func recordDetail(r flier.Record) string {
	var b strings.Builder
	line := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(colorGray).Width(12).Render(key))
		b.WriteString(" ")
		b.WriteString(listNormalStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(listSelectedStyle.Render("  " + r.ElementID))
	b.WriteString("\n")
	if a := r.Anchor; a != nil {
		line("anchor", a.String())
	}
	if s := r.Style; s != nil {
		line("window", fmt.Sprintf("%s %s, padding %s, radius %s", s.BoxStyle, s.Shape, s.Padding, s.BorderRadius))
		line("background", s.BackgroundColor)
		line("animation", string(s.Animation))
	}
	if r.WrapWidthPx > 0 {
		line("wrap", fmt.Sprintf("%dpx", r.WrapWidthPx))
	}
	if g := r.Geometry; g != nil {
		line("geometry", fmt.Sprintf("%gx%g @ (%g, %g)", g.Width, g.Height, g.X, g.Y))
	}
	return b.String()
}

func displayID(id string) string {
	if id == "" {
		return "(unnamed)"
	}
	return id
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
