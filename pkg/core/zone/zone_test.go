package zone

import (
	"slices"
	"testing"

	"github.com/matzehuels/flierkit/pkg/core/complexity"
)

func TestSafeZones(t *testing.T) {
	tests := []struct {
		tier complexity.Tier
		want []Zone
	}{
		{complexity.Low, []Zone{Center, CenterRight, TopRight, BottomCenter}},
		{complexity.Medium, []Zone{CenterRight, TopRight, BottomCenter}},
		{complexity.High, []Zone{CenterRight, TopRight}},
		{complexity.Tier("unknown"), []Zone{CenterRight, TopRight, BottomCenter}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			if got := SafeZones(tt.tier); !slices.Equal(got, tt.want) {
				t.Errorf("SafeZones(%s) = %v, want %v", tt.tier, got, tt.want)
			}
		})
	}
}

func TestSafeZonesNested(t *testing.T) {
	low := SafeZones(complexity.Low)
	medium := SafeZones(complexity.Medium)
	high := SafeZones(complexity.High)

	for _, tier := range []complexity.Tier{complexity.Low, complexity.Medium, complexity.High} {
		if len(SafeZones(tier)) == 0 {
			t.Errorf("SafeZones(%s) is empty", tier)
		}
	}

	subset := func(a, b []Zone) bool {
		for _, z := range a {
			if !slices.Contains(b, z) {
				return false
			}
		}
		return true
	}

	if !subset(high, medium) || len(high) >= len(medium) {
		t.Errorf("high %v should be a strict subset of medium %v", high, medium)
	}
	if !subset(medium, low) {
		t.Errorf("medium %v should be a subset of low %v", medium, low)
	}
}

func TestSafeZonesReturnsCopy(t *testing.T) {
	z := SafeZones(complexity.High)
	z[0] = BottomRight
	if SafeZones(complexity.High)[0] != CenterRight {
		t.Error("mutating the result must not change the table")
	}
}

func TestAnchorFor(t *testing.T) {
	for _, z := range All {
		a := AnchorFor(z)
		if a.Top == "" && a.Bottom == "" {
			t.Errorf("zone %s has no vertical anchor", z)
		}
		if a.Left == "" && a.Right == "" {
			t.Errorf("zone %s has no horizontal anchor", z)
		}
	}

	if a := AnchorFor(CenterRight); a.Top != "50%" || a.Right != "5%" || a.Transform != "translateY(-50%)" {
		t.Errorf("center-right anchor = %+v", a)
	}
	if a := AnchorFor(Zone("nowhere")); a != (Anchor{}) {
		t.Errorf("unknown zone anchor = %+v, want empty", a)
	}
}

func TestAnchorString(t *testing.T) {
	tests := []struct {
		zone Zone
		want string
	}{
		{TopRight, "top: 10%; right: 5%"},
		{CenterRight, "top: 50%; right: 5%; transform: translateY(-50%)"},
		{Zone("nowhere"), ""},
	}
	for _, tt := range tests {
		if got := AnchorFor(tt.zone).String(); got != tt.want {
			t.Errorf("AnchorFor(%s).String() = %q, want %q", tt.zone, got, tt.want)
		}
	}
}

func TestAt(t *testing.T) {
	zones := SafeZones(complexity.Low)
	if At(zones, 4) != At(zones, 0) {
		t.Error("round-robin should wrap after the last zone")
	}
	if At(zones, 5) != CenterRight {
		t.Errorf("At(5) = %s, want center-right", At(zones, 5))
	}
}
