package ciutil

import (
	"log/slog"
	"testing"
)

// Environment variables naming the databases used by integration tests.
const (
	EnvTestMongoURI    = "CATALOG_TEST_MONGO_URI"
	EnvTestDatabaseURL = "CATALOG_TEST_DATABASE_URL"
)

// GetTestMongoURI returns the MongoDB URI for integration tests, or "".
// MONGO_URI is accepted as a fallback; each test uses its own database.
func GetTestMongoURI(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestMongoURI, "MONGO_URI"}, "", logger)
}

// GetTestDatabaseURL returns the PostgreSQL URL for integration tests, or "".
// There is no fallback: the tests truncate the tables they use.
func GetTestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDatabaseURL}, "", logger)
}

// RequireURL returns url if it is set. Otherwise the test is skipped, or
// failed when running in CI where the service is expected to exist.
func RequireURL(t testing.TB, url, envVar string) string {
	t.Helper()

	if url != "" {
		return url
	}
	if IsCI() {
		t.Fatalf("%s must be set in CI", envVar)
	}
	t.Skipf("%s not set", envVar)
	return ""
}
