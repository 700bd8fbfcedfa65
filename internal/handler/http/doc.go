// Package http serves the OAuth redirect on the client's loopback listener.
//
// The only route is the configured callback path. Its query parameters are
// handed to the authorization flow and the browser gets a short result page.
// Request tracing and access logging wrap the route; the access log records
// the path only, never the query, since it carries the authorization code.
package http
