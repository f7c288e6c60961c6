// Package styles selects the visual treatment of a flyer text window.
//
// A [TextWindowStyle] is assembled from two independent halves:
//
//   - [Chrome] depends only on the background complexity tier: the box style
//     and how opaque the window's backdrop is. Busier backgrounds get more
//     opaque windows.
//   - [Geometry] depends only on the text length: border radius, padding and
//     width limits. Short text becomes a pill, long text a wide card with a
//     subtle curve.
//
// [Merge] combines the two. Each output field has exactly one source, so the
// merge can never silently overwrite a value.
//
//	s := styles.Style(complexity.High, utf8.RuneCountInString(text))
//	// s.BoxStyle == styles.Glass, s.BackgroundOpacity == 0.98
//
// Animation is not derived here; the layout composer assigns it by position.
package styles
