// Package pkg provides the libraries behind flierkit, a flyer layout engine.
//
// # Overview
//
// Flierkit places flyer text where the background leaves room for it. A busy
// background (images, radial patterns, many colours) restricts text to edge
// zones and wraps it in opaque glass windows; a plain one allows the centre
// and lighter chrome. The pkg directory is organized into four areas:
//
//  1. [core] - Pure layout logic (complexity, zones, styles, sizing, composition, rules)
//  2. [flier] - Request and layout types with their JSON/TOML wire format
//  3. [integrations] - The generation service client
//  4. [pipeline] - Orchestration (compose → generate → render) with caching
//
// # Architecture
//
// The data flow for one flyer:
//
//	Request (JSON/TOML)
//	         ↓
//	    [flier] normalisation (IDs, preset priorities, content elements)
//	         ↓
//	    [core/complexity] score the background → tier
//	         ↓
//	    [core/zone] + [core/styles] safe zones and window chrome for the tier
//	         ↓
//	    [core/compose] one record per element (direction, size, wrap)
//	         ↓
//	    JSON layout / DOT or SVG zone map
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/flierkit/pkg/core/compose"
//	    "github.com/matzehuels/flierkit/pkg/flier"
//	)
//
//	elements := []flier.Element{
//	    {ID: "title", Role: flier.RoleTitle, Text: "Grand Opening", Priority: 1},
//	    {ID: "cta", Role: flier.RoleCTA, Text: "Visit us", Priority: 3},
//	}
//	l, err := compose.Layout("linear-gradient(#fff8f0, #ffebe0)", elements,
//	    compose.Options{ContainerWidth: 800})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/direction] - Left-to-right or right-to-left by Hebrew/Latin majority.
//
// [core/complexity] - Background scoring into low, medium and high tiers.
//
// [core/zone] - Safe zones per tier and their CSS anchors.
//
// [core/styles] - Text window chrome by tier merged with geometry by length.
//
// [core/sizing] - Font size by container width and priority; word wrapping.
//
// [core/compose] - Round-robin zone assignment and per-element records.
//
// [core/preset] - Default priorities per flyer type.
//
// [core/rules] - Deterministic styling rules with a decision log.
//
// ## Infrastructure
//
// [pipeline] - Compose, generate and render used by both the CLI and the API.
//
// [cache] - File, memory (LRU), Redis, MongoDB and null cache backends.
//
// [render] - JSON layouts and graphviz zone maps.
//
// [api] - The HTTP API.
//
// [i18n] - Hebrew to English business type and audience tables.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/...               # Pure layout logic
//	go test -run Example                 # Examples only
//	go test -tags integration ./pkg/...  # Include Redis/MongoDB tests
//
// [core]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core
// [core/direction]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/direction
// [core/complexity]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/complexity
// [core/zone]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/zone
// [core/styles]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/styles
// [core/sizing]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/sizing
// [core/compose]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/compose
// [core/preset]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/preset
// [core/rules]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/core/rules
// [flier]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/flier
// [integrations]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/integrations
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/render
// [api]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/api
// [i18n]: https://pkg.go.dev/github.com/matzehuels/flierkit/pkg/i18n
package pkg
