// Package ciutil helps tests find the external services they need and
// decide whether a missing service is a skip (local runs) or a failure (CI).
package ciutil
