// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml. Short variable
// names such as PORT and MONGO_URI are accepted alongside the CATALOG_
// prefixed forms.
package config
