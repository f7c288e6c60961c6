package flier

import (
	"fmt"
	"unicode/utf8"

	"github.com/matzehuels/flierkit/pkg/errors"
)

// Role is the semantic role of a content element.
type Role string

const (
	RoleTitle    Role = "title"
	RoleSubtitle Role = "subtitle"
	RoleBody     Role = "body"
	RoleCTA      Role = "cta"
	RoleDetails  Role = "details"
	RoleImage    Role = "image"
	RoleLogo     Role = "logo"
)

// Roles lists every known role.
var Roles = []Role{RoleTitle, RoleSubtitle, RoleBody, RoleCTA, RoleDetails, RoleImage, RoleLogo}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleTitle, RoleSubtitle, RoleBody, RoleCTA, RoleDetails, RoleImage, RoleLogo:
		return true
	}
	return false
}

// IsMedia reports whether r is laid out as an image rather than text.
func (r Role) IsMedia() bool {
	return r == RoleImage || r == RoleLogo
}

// Position is a pixel rectangle inside the flyer frame.
type Position struct {
	X      float64 `json:"x" toml:"x" bson:"x"`
	Y      float64 `json:"y" toml:"y" bson:"y"`
	Width  float64 `json:"width" toml:"width" bson:"width"`
	Height float64 `json:"height" toml:"height" bson:"height"`
}

// Element is one piece of flyer content.
type Element struct {
	ID       string    `json:"id" toml:"id" bson:"id"`
	Role     Role      `json:"role" toml:"role" bson:"role"`
	Text     string    `json:"text,omitempty" toml:"text" bson:"text,omitempty"`
	Priority int       `json:"priority" toml:"priority" bson:"priority"`
	Position *Position `json:"position,omitempty" toml:"position" bson:"position,omitempty"`
}

// Validate checks e for layout. Priorities below 1, unknown roles and media
// elements without a positive size are rejected with INVALID_ELEMENT.
func (e Element) Validate() error {
	if !e.Role.Valid() {
		return errors.New(errors.ErrCodeInvalidElement, "element %q: unknown role %q", e.ID, e.Role)
	}
	if e.Priority < 1 {
		return errors.New(errors.ErrCodeInvalidElement, "element %q: priority must be >= 1, got %d", e.ID, e.Priority)
	}
	if e.Role.IsMedia() {
		if e.Position == nil {
			return errors.New(errors.ErrCodeInvalidElement, "element %q: %s requires a position", e.ID, e.Role)
		}
		if e.Position.Width <= 0 || e.Position.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidElement,
				"element %q: %s size must be positive, got %gx%g", e.ID, e.Role, e.Position.Width, e.Position.Height)
		}
	}
	return nil
}

// TextLength returns the length of e's text in runes.
func (e Element) TextLength() int {
	return utf8.RuneCountInString(e.Text)
}

func (e Element) String() string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("%s(%d)", e.Role, e.Priority)
}
