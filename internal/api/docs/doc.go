// Package docs builds the OpenAPI description of the HTTP API from the
// operations declared alongside each route, and serves it at /api-docs.
package docs
