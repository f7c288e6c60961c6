// Package api serves the flyer pipeline over HTTP.
//
// # Routes
//
//	POST /api/layout                  compose one request
//	POST /api/layout/batch            compose up to pipeline.MaxBatchSize requests
//	POST /api/analyze                 classify a background
//	GET  /api/zones/{tier}            safe zones and anchors for a tier
//	POST /api/flier/generate          generate background options and compose each
//	GET  /api/translations/{category} list a localisation table
//	GET  /healthz                     liveness
//
// Bodies are JSON in and out. Errors are returned as
// {"code", "message", "request_id"} with a status derived from the error
// code (see [httputil.StatusFor]).
//
// Every response carries an X-Request-ID header. A caller-supplied ID is
// kept; otherwise a UUID is generated. The ID is forwarded to the generation
// service.
//
// /api/layout accepts format=json,svg,dot to inline rendered artifacts,
// width= to override the container width and refresh=1 to bypass the cache.
// /api/flier/generate accepts fallback=1 to compose fallback styles when the
// service fails.
package api
