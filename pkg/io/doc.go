// Package io reads flyer requests and reads and writes layouts.
//
// # Request Files
//
// Requests may be written as JSON or TOML. The format is picked from the file
// extension (.json, .toml); [ReadRequest] takes it explicitly:
//
//	title = "Grand Opening"
//	promotionalText = "Free coffee all weekend"
//	businessType = "cafe"
//	colorScheme = "warm"
//	background = "linear-gradient(135deg, #fff8f0 0%, #ffebe0 100%)"
//
//	[[elements]]
//	role = "title"
//	text = "Grand Opening"
//
// A background may be a plain CSS string or a table with type, color,
// gradient, pattern and image keys.
//
// Every text field is checked with [errors.ValidateText] after decoding.
//
// # Layouts
//
// [WriteLayout] and [ExportLayout] write the layout output contract as
// indented JSON; [ReadLayout] decodes it back.
//
// [errors.ValidateText]: github.com/matzehuels/flierkit/pkg/errors.ValidateText
package io
