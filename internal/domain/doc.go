// Package domain contains the resource entities of the catalog: users and
// products. Each entity knows which of its fields are required and how a
// partial update (a patch) is applied to it, independent of any store or
// transport.
package domain
