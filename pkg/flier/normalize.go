package flier

import (
	"fmt"
	"strings"

	"github.com/matzehuels/flierkit/pkg/core/preset"
)

// Default frame and media sizes in pixels.
const (
	DefaultContainerWidth  = 800.0
	DefaultContainerHeight = 600.0

	DefaultLogoWidth  = 100.0
	DefaultLogoHeight = 60.0
	logoInset         = 20.0

	DefaultImageWidth  = 300.0
	DefaultImageHeight = 200.0
)

// Normalize fills request defaults in place: flyer type, container size,
// element IDs and zero priorities (from the flyer type's preset).
func Normalize(r *Request) {
	if _, ok := presetTypes[r.Type]; !ok {
		r.Type = preset.Promotional
	}
	if r.ContainerWidth <= 0 {
		r.ContainerWidth = DefaultContainerWidth
	}
	if r.ContainerHeight <= 0 {
		r.ContainerHeight = DefaultContainerHeight
	}
	r.Language = strings.TrimSpace(r.Language)
	for i := range r.Elements {
		e := &r.Elements[i]
		if e.ID == "" {
			e.ID = fmt.Sprintf("%s-%d", e.Role, i+1)
		}
		if e.Priority == 0 {
			e.Priority = preset.PriorityFor(r.Type, string(e.Role))
		}
	}
}

var presetTypes = func() map[preset.Type]bool {
	m := make(map[preset.Type]bool)
	for _, t := range preset.Types() {
		m[t] = true
	}
	return m
}()

// ContentElements returns r's elements. When r has none, they are derived
// from its text fields in preset order, followed by the uploaded image and
// the logo. imageCenter is the image's centre in percent of the frame.
//
// r should be normalized first.
func ContentElements(r *Request, imageCenterX, imageCenterY float64) []Element {
	if len(r.Elements) > 0 {
		return append([]Element(nil), r.Elements...)
	}

	fields := []struct {
		role Role
		text string
	}{
		{RoleTitle, r.Title},
		{RoleSubtitle, r.Subtitle},
		{RoleBody, r.PromotionalText},
		{RoleCTA, r.CTA},
		{RoleDetails, r.Details},
	}

	var out []Element
	for _, f := range fields {
		if strings.TrimSpace(f.text) == "" {
			continue
		}
		out = append(out, Element{
			ID:       string(f.role),
			Role:     f.role,
			Text:     f.text,
			Priority: preset.PriorityFor(r.Type, string(f.role)),
		})
	}

	if r.UploadedImage != "" {
		w := min(DefaultImageWidth, r.ContainerWidth)
		h := min(DefaultImageHeight, r.ContainerHeight)
		out = append(out, Element{
			ID:       string(RoleImage),
			Role:     RoleImage,
			Priority: preset.DefaultPriority,
			Position: &Position{
				X:      r.ContainerWidth*imageCenterX/100 - w/2,
				Y:      r.ContainerHeight*imageCenterY/100 - h/2,
				Width:  w,
				Height: h,
			},
		})
	}
	if r.Logo != "" {
		out = append(out, Element{
			ID:       string(RoleLogo),
			Role:     RoleLogo,
			Priority: preset.DefaultPriority,
			Position: &Position{X: logoInset, Y: logoInset, Width: DefaultLogoWidth, Height: DefaultLogoHeight},
		})
	}
	return out
}
