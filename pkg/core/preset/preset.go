// Package preset holds the per-flyer-type text hierarchy: which roles a
// flyer type expects, in what priority, and at what relative size and weight.
package preset

// Type is a flyer type.
type Type string

const (
	Promotional   Type = "promotional"
	Informational Type = "informational"
	Event         Type = "event"
)

// Size is a relative text size hint.
type Size string

const (
	Large  Size = "large"
	Medium Size = "medium"
	Small  Size = "small"
)

// Weight is a font weight hint.
type Weight string

const (
	Bold   Weight = "bold"
	Normal Weight = "normal"
)

// DefaultPriority is used for roles a preset does not list.
const DefaultPriority = 3

// Entry describes one text slot of a preset.
type Entry struct {
	Slot     string `json:"slot"`
	Role     string `json:"role"`
	Priority int    `json:"priority"`
	Size     Size   `json:"size"`
	Weight   Weight `json:"weight"`
}

// Preset is an ordered list of text slots for a flyer type.
type Preset struct {
	Type    Type
	Entries []Entry
}

// Slot names are the flyer type's own vocabulary; Role maps each to the
// element role it is laid out as.
var presets = map[Type][]Entry{
	Promotional: {
		{Slot: "title", Role: "title", Priority: 1, Size: Large, Weight: Bold},
		{Slot: "subtitle", Role: "subtitle", Priority: 2, Size: Medium, Weight: Normal},
		{Slot: "cta", Role: "cta", Priority: 3, Size: Medium, Weight: Bold},
		{Slot: "details", Role: "details", Priority: 4, Size: Small, Weight: Normal},
	},
	Informational: {
		{Slot: "title", Role: "title", Priority: 1, Size: Large, Weight: Bold},
		{Slot: "content", Role: "body", Priority: 2, Size: Medium, Weight: Normal},
		{Slot: "contact", Role: "details", Priority: 3, Size: Small, Weight: Normal},
	},
	Event: {
		{Slot: "title", Role: "title", Priority: 1, Size: Large, Weight: Bold},
		{Slot: "date", Role: "subtitle", Priority: 2, Size: Medium, Weight: Bold},
		{Slot: "location", Role: "body", Priority: 3, Size: Medium, Weight: Normal},
		{Slot: "details", Role: "details", Priority: 4, Size: Small, Weight: Normal},
	},
}

// Types lists the known flyer types.
func Types() []Type {
	return []Type{Promotional, Informational, Event}
}

// ForType returns the preset for t. Unknown types get the promotional preset.
func ForType(t Type) Preset {
	entries, ok := presets[t]
	if !ok {
		t = Promotional
		entries = presets[Promotional]
	}
	return Preset{Type: t, Entries: append([]Entry(nil), entries...)}
}

// Lookup returns the entry for role, matching either the slot name or the
// role it maps to.
func (p Preset) Lookup(role string) (Entry, bool) {
	for _, e := range p.Entries {
		if e.Slot == role || e.Role == role {
			return e, true
		}
	}
	return Entry{}, false
}

// PriorityFor returns the priority of role in the preset for t, or
// DefaultPriority when the preset does not list it.
func PriorityFor(t Type, role string) int {
	if e, ok := ForType(t).Lookup(role); ok {
		return e.Priority
	}
	return DefaultPriority
}
