// Package mongodb implements store.Backend on MongoDB using the official
// driver. Users and products live in the "users" and "products" collections;
// each collection carries a $jsonSchema validator so the database itself
// rejects documents missing a required field.
package mongodb
