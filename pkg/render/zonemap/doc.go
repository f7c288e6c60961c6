// Package zonemap renders a composed layout as a Graphviz diagram of the
// flyer's zones.
//
// # Overview
//
// Each zone becomes a box laid out on a three-row grid that mirrors its
// position on the flyer. Text records are listed inside the zone they were
// assigned to. Zones that are safe for the layout's complexity tier are drawn
// solid, the others dashed and grey, so a reviewer can see at a glance why a
// block moved when the background got busier. Media elements are drawn as
// notes beside the grid with their geometry.
//
// # Usage
//
//	dot := zonemap.ToDOT(layout, zonemap.Options{Detailed: true})
//	svg, err := zonemap.RenderSVG(dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package zonemap
