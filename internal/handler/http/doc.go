// Package http implements the REST transport of the nutri-keeper server.
//
// It wires the chi router, request handlers, and the middleware chain used by
// the JSON API. Cross-cutting concerns such as request tracing, access
// logging, metrics, CORS, authentication, the admin gate and registration
// rate limiting are handled here before requests reach the service layer.
package http
