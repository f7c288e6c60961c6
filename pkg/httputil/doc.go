// Package httputil provides the JSON plumbing shared by HTTP handlers.
//
// # Responses
//
// [WriteJSON] encodes a value with a status code. [WriteError] turns an error
// into a JSON body of the form
//
//	{"code": "INVALID_ELEMENT", "message": "element \"t\": priority must be >= 1, got 0", "request_id": "..."}
//
// with the status picked by [StatusFor] from the error's code:
//
//   - INVALID_*: 400
//   - NOT_FOUND: 404
//   - UPSTREAM_GENERATION_FAILURE: 502, or 504 when the cause was a deadline
//   - TIMEOUT: 504
//   - anything else: 500
//
// # Requests
//
// [DecodeJSON] reads a size-limited JSON body and reports malformed input as
// INVALID_FORMAT.
package httputil
