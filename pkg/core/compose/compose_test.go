package compose

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
	"github.com/matzehuels/flierkit/pkg/core/direction"
	"github.com/matzehuels/flierkit/pkg/core/styles"
	"github.com/matzehuels/flierkit/pkg/core/zone"
	"github.com/matzehuels/flierkit/pkg/errors"
	"github.com/matzehuels/flierkit/pkg/flier"
)

var opts = Options{ContainerWidth: 800}

func text(id string, role flier.Role, priority int, s string) flier.Element {
	return flier.Element{ID: id, Role: role, Priority: priority, Text: s}
}

func profile(tier complexity.Tier) complexity.Profile {
	return complexity.Profile{Tier: tier}
}

func TestComposeEmpty(t *testing.T) {
	records, err := Compose(profile(complexity.Low), nil, opts)
	if err != nil {
		t.Fatal(err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("records = %#v, want empty non-nil", records)
	}
}

func TestComposeRoundRobin(t *testing.T) {
	els := []flier.Element{
		text("a", flier.RoleTitle, 1, "One"),
		text("b", flier.RoleSubtitle, 2, "Two"),
		text("c", flier.RoleBody, 3, "Three"),
		text("d", flier.RoleCTA, 3, "Four"),
		text("e", flier.RoleDetails, 4, "Five"),
	}
	records, err := Compose(profile(complexity.Low), els, opts)
	if err != nil {
		t.Fatal(err)
	}
	wantZones := []zone.Zone{zone.Center, zone.CenterRight, zone.TopRight, zone.BottomCenter, zone.Center}
	wantAnims := []styles.Animation{styles.Slide, styles.FadeIn, styles.Pulse, styles.Floating, styles.Slide}
	for i, r := range records {
		if r.Zone != wantZones[i] {
			t.Errorf("record %d zone = %s, want %s", i, r.Zone, wantZones[i])
		}
		if r.Style.Animation != wantAnims[i] {
			t.Errorf("record %d animation = %s, want %s", i, r.Style.Animation, wantAnims[i])
		}
	}
	if records[4].Zone != records[0].Zone {
		t.Error("fifth element should share the first element's zone")
	}
}

func TestComposeZonesAreSafe(t *testing.T) {
	els := make([]flier.Element, 7)
	for i := range els {
		els[i] = text(string(rune('a'+i)), flier.RoleBody, 3, "text")
	}
	for _, tier := range []complexity.Tier{complexity.Low, complexity.Medium, complexity.High} {
		safe := map[zone.Zone]bool{}
		for _, z := range zone.SafeZones(tier) {
			safe[z] = true
		}
		records, err := Compose(profile(tier), els, opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range records {
			if !safe[r.Zone] {
				t.Errorf("%s: zone %s not in safe list", tier, r.Zone)
			}
		}
	}
}

func TestComposeHighTier(t *testing.T) {
	p := complexity.Analyze("url(bg.jpg), radial-gradient(circle, #ff0000, #0000ff)")
	if p.Tier != complexity.High {
		t.Fatalf("tier = %s, want high", p.Tier)
	}
	records, err := Compose(p, []flier.Element{
		text("t", flier.RoleTitle, 1, "Sale"),
		text("s", flier.RoleSubtitle, 2, "Everything must go"),
	}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Zone != zone.CenterRight || records[1].Zone != zone.TopRight {
		t.Errorf("zones = %s, %s", records[0].Zone, records[1].Zone)
	}
	if records[0].Style.BoxStyle != styles.Glass || records[0].Style.BackgroundOpacity != 0.98 {
		t.Errorf("style = %+v", records[0].Style)
	}
}

func TestComposeTextRecord(t *testing.T) {
	long := strings.Repeat("word ", 40)
	records, err := Compose(profile(complexity.Medium), []flier.Element{
		text("t", flier.RoleTitle, 1, "שלום עולם"),
		text("b", flier.RoleBody, 3, long),
	}, opts)
	if err != nil {
		t.Fatal(err)
	}

	title := records[0]
	if title.Kind != flier.KindText || title.Direction != direction.RTL {
		t.Errorf("title = %+v", title)
	}
	if title.FontSizePx != 36 {
		t.Errorf("title font size = %d, want 36", title.FontSizePx)
	}
	// Short text has an automatic width, so it wraps at the container width.
	if title.WrapWidthPx != 800 || title.Style.BorderRadius != "25px" {
		t.Errorf("title wrap width = %d radius = %s", title.WrapWidthPx, title.Style.BorderRadius)
	}
	if title.Anchor == nil || *title.Anchor != zone.AnchorFor(zone.CenterRight) {
		t.Errorf("title anchor = %+v", title.Anchor)
	}

	body := records[1]
	if body.Direction != direction.LTR || body.WrapWidthPx != 400 || body.Style.BorderRadius != "10px" {
		t.Errorf("body = %+v", body)
	}
	// 400 / (24 * 0.6) = 27 words per line.
	for _, line := range strings.Split(body.Text, "\n") {
		if n := len(strings.Fields(line)); n > 27 {
			t.Errorf("line has %d words, want <= 27", n)
		}
	}
}

func TestComposeWrapWidthCappedByContainer(t *testing.T) {
	records, err := Compose(profile(complexity.Low), []flier.Element{
		text("b", flier.RoleBody, 3, strings.Repeat("x", 150)),
	}, Options{ContainerWidth: 250})
	if err != nil {
		t.Fatal(err)
	}
	if records[0].WrapWidthPx != 250 {
		t.Errorf("wrap width = %d, want 250", records[0].WrapWidthPx)
	}
}

func TestComposeMedia(t *testing.T) {
	pos := &flier.Position{X: 10, Y: 20, Width: 300, Height: 200}
	records, err := Compose(profile(complexity.Low), []flier.Element{
		{ID: "img", Role: flier.RoleImage, Priority: 3, Position: pos},
		text("t", flier.RoleTitle, 1, "Hello"),
	}, opts)
	if err != nil {
		t.Fatal(err)
	}

	img := records[0]
	if img.Kind != flier.KindImage || img.Zone != "" || img.Style != nil || img.Direction != "" {
		t.Errorf("image record = %+v", img)
	}
	if *img.Geometry != *pos {
		t.Errorf("geometry = %+v, want %+v", img.Geometry, pos)
	}
	if img.Geometry == pos {
		t.Error("geometry should be copied")
	}
	// The image consumed slot 0, so the title takes slot 1.
	if records[1].Zone != zone.CenterRight {
		t.Errorf("title zone = %s, want center-right", records[1].Zone)
	}
}

func TestComposeInvalid(t *testing.T) {
	tests := []struct {
		name string
		els  []flier.Element
		opts Options
		code errors.Code
	}{
		{"zero priority", []flier.Element{text("a", flier.RoleTitle, 0, "x")}, opts, errors.ErrCodeInvalidElement},
		{"unknown role", []flier.Element{text("a", "banner", 1, "x")}, opts, errors.ErrCodeInvalidElement},
		{"image without size", []flier.Element{{ID: "i", Role: flier.RoleImage, Priority: 1, Position: &flier.Position{}}}, opts, errors.ErrCodeInvalidElement},
		{"zero width", []flier.Element{text("a", flier.RoleTitle, 1, "x")}, Options{}, errors.ErrCodeInvalidLayoutParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(profile(complexity.Low), tt.els, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestComposeIdempotent(t *testing.T) {
	els := []flier.Element{
		text("t", flier.RoleTitle, 1, "Grand opening"),
		text("b", flier.RoleBody, 3, "Free coffee for the first hundred guests this weekend only"),
		{ID: "logo", Role: flier.RoleLogo, Priority: 3, Position: &flier.Position{X: 20, Y: 20, Width: 100, Height: 60}},
	}
	p := complexity.Analyze("linear-gradient(135deg, #fff8f0 0%, #ffebe0 100%)")
	first, err := Compose(p, els, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compose(p, els, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Compose is not idempotent")
	}
}

func TestLayout(t *testing.T) {
	l, err := Layout("#ffffff", []flier.Element{text("t", flier.RoleTitle, 1, "Hi")}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if l.Version != flier.LayoutVersion || l.Profile.Tier != complexity.Low || len(l.Records) != 1 {
		t.Errorf("layout = %+v", l)
	}
}
