// Package api handles incoming HTTP requests for the users and products
// collections: routing, request decoding and validation, and response
// formatting. Each handler translates one request into exactly one store
// operation.
package api
