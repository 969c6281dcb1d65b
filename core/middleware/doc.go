// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Implements API key validation to protect the scan endpoint.
//   - RayID: Assigns a Request ID (RayID) to every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Both are registered globally by the serve command; RayID first so that
// rejected requests are traced too.
package middleware
