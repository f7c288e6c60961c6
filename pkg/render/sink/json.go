package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/flierkit/pkg/core/rules"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/flier"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	decisions []rules.Decision
	indent    bool
}

// WithJSONDecisions attaches the rules engine decision log.
func WithJSONDecisions(d []rules.Decision) JSONOption {
	return func(r *jsonRenderer) { r.decisions = d }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	*flier.Layout
	ZoneCounts map[zone.Zone]int `json:"zone_counts,omitempty"`
	Decisions  []rules.Decision  `json:"decisions,omitempty"`
}

// RenderJSON serialises l. HTML escaping is off so CSS such as
// url(...) and '<' in SVG data URIs survive intact.
func RenderJSON(l *flier.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Layout:     l,
		ZoneCounts: l.Zones(),
		Decisions:  r.decisions,
	}
	if out.Records == nil {
		cp := *l
		cp.Records = []flier.Record{}
		out.Layout = &cp
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
