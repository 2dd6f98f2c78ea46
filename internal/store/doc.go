// Package store defines the persistence interfaces for the catalog's
// collections. Each resource has its own store interface; a Backend groups
// them behind a single connection handle that is created once at startup and
// injected into the HTTP handlers.
//
// Implementations live under internal/platform (mongo, postgres, memory) and
// translate backend-specific failures into the sentinel errors declared here.
package store
