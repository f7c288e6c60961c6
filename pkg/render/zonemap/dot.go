package zonemap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/flier"
)

// Options configures zone map rendering.
type Options struct {
	// Detailed adds font size, wrap width and direction to each record line.
	// When false, only element IDs are listed.
	Detailed bool
}

// rows places every zone on the flyer grid, top to bottom.
var rows = [][]zone.Zone{
	{zone.TopLeft, zone.TopRight},
	{zone.Center, zone.CenterRight},
	{zone.BottomCenter, zone.BottomRight},
}

// ToDOT converts l to Graphviz DOT source.
func ToDOT(l *flier.Layout, opts Options) string {
	safe := make(map[zone.Zone]bool)
	for _, z := range zone.SafeZones(l.Profile.Tier) {
		safe[z] = true
	}
	byZone := make(map[zone.Zone][]flier.Record)
	var media []flier.Record
	for _, r := range l.Records {
		if r.Kind == flier.KindText {
			byZone[r.Zone] = append(byZone[r.Zone], r)
		} else {
			media = append(media, r)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph flyer {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("tier: %s (score %d)", l.Profile.Tier.OrDefault(), l.Profile.Score))
	buf.WriteString("  labelloc=t;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.6;\n")
	buf.WriteString("\n")

	for _, row := range rows {
		names := make([]string, len(row))
		for i, z := range row {
			attrs := fmtZoneAttrs(z, byZone[z], safe[z], opts.Detailed)
			fmt.Fprintf(&buf, "  %q [%s];\n", string(z), strings.Join(attrs, ", "))
			names[i] = strconv.Quote(string(z))
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(names, "; "))
	}

	buf.WriteString("\n")
	for i := 0; i+1 < len(rows); i++ {
		for col := range rows[i] {
			fmt.Fprintf(&buf, "  %q -> %q [style=invis];\n", string(rows[i][col]), string(rows[i+1][col]))
		}
	}

	if len(media) > 0 {
		buf.WriteString("\n  subgraph cluster_media {\n")
		buf.WriteString("    label=\"media\";\n")
		buf.WriteString("    style=dashed;\n")
		for _, r := range media {
			fmt.Fprintf(&buf, "    %q [shape=note, style=filled, fillcolor=lightyellow, label=%q];\n",
				"media:"+r.ElementID, fmtMediaLabel(r))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtZoneAttrs(z zone.Zone, records []flier.Record, safe, detailed bool) []string {
	lines := []string{string(z)}
	for _, r := range records {
		lines = append(lines, fmtRecord(r, detailed))
	}
	attrs := []string{fmt.Sprintf("label=%q", strings.Join(lines, "\n"))}
	switch {
	case !safe:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=gray40")
	case len(records) > 0:
		attrs = append(attrs, "fillcolor=lightblue")
	}
	return attrs
}

func fmtRecord(r flier.Record, detailed bool) string {
	if !detailed {
		return r.ElementID
	}
	return fmt.Sprintf("%s %dpx w%d %s", r.ElementID, r.FontSizePx, r.WrapWidthPx, r.Direction)
}

func fmtMediaLabel(r flier.Record) string {
	if r.Geometry == nil {
		return r.ElementID
	}
	g := r.Geometry
	return fmt.Sprintf("%s\n%gx%g @ (%g, %g)", r.ElementID, g.Width, g.Height, g.X, g.Y)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the diagram scales to its
// container instead of using Graphviz's point-based size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
