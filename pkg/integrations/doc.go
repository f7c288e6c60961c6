// Package integrations provides HTTP clients for the external services
// flierkit talks to.
//
// # Overview
//
// Each service has its own subpackage:
//
//   - [backend]: the flyer generation service (AI background options)
//
// # Client Pattern
//
// Service clients wrap the shared [Client], which handles JSON encoding,
// default headers, request IDs and status checking:
//
//	c, err := backend.NewClient("http://localhost:8081", 30*time.Second, logger)
//	resp, err := c.Generate(ctx, req)
//
// Requests are made exactly once. There is no retry or backoff; callers
// bound the call through the context and the client timeout.
//
// # Errors
//
// Transport failures are reported as NETWORK_ERROR, deadline expiry as
// TIMEOUT and unexpected statuses through [StatusError]; all carry codes from
// [errors].
//
// [backend]: github.com/matzehuels/flierkit/pkg/integrations/backend
// [errors]: github.com/matzehuels/flierkit/pkg/errors
package integrations
