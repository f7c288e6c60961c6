// Package flier defines the flyer data model shared by the layout engine,
// the generation backend client, the HTTP API and the CLI.
//
// # Requests
//
// A [Request] is what a user describes: title and promotional text, audience,
// business type, style preferences and optionally an explicit background and
// element list. Requests are read from JSON or TOML with [ReadRequest] and
// [ImportRequest]:
//
//	req, err := flier.ImportRequest("cafe.toml")
//
// [Normalize] fills defaults: flyer type, container size, element IDs and
// preset priorities. [ContentElements] derives the element list from the
// request's text fields when the caller did not supply one.
//
// # Layouts
//
// A [Layout] is the output contract consumed by renderers: the complexity
// profile of the background and one [Record] per element.
package flier
