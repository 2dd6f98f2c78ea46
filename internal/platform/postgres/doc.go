// Package postgres implements store.Backend on PostgreSQL by treating each
// table as a document collection: a UUID primary key and a JSONB document.
// Partial updates are merged by the database with the jsonb || operator, and
// CHECK constraints play the role of a document schema validator.
//
// The schema is managed with goose; migrations are embedded in the binary
// and applied by Connect.
package postgres
