// Package render turns composed flyer layouts into output artifacts.
//
// # Formats
//
//   - json: the layout output contract, see [sink]
//   - dot: a Graphviz zone map showing which elements landed where
//   - svg: the zone map rendered in-process by Graphviz, see [zonemap]
//
// Use [Render] to produce one artifact by format name:
//
//	data, err := render.Render(layout, render.FormatSVG)
//
// [sink]: github.com/matzehuels/flierkit/pkg/render/sink
// [zonemap]: github.com/matzehuels/flierkit/pkg/render/zonemap
package render
