package testutils

import (
	"testing"

	"github.com/dm-mensavi/task-management/internal/ciutil"
)

// IsIntegrationTestEnvironment returns true if the environment is configured
// for running integration tests with a database connection
// (TASKS_TEST_DB_URL or DATABASE_URL).
func IsIntegrationTestEnvironment() bool {
	return ciutil.TestDatabaseURL(nil) != ""
}

// SkipUnlessIntegration skips t when no test database is configured.
// In CI the skip is logged so a missing database is visible in the output.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if IsIntegrationTestEnvironment() {
		return
	}
	if ciutil.IsCI() {
		t.Logf("%s is not set in CI; skipping database integration test", ciutil.EnvTestDatabaseURL)
	}
	t.Skip("Skipping integration test - requires a test database")
}

// GetTestDatabaseURL returns the test database URL or fails the test.
func GetTestDatabaseURL(t *testing.T) string {
	t.Helper()

	dbURL := ciutil.TestDatabaseURL(nil)
	if dbURL == "" {
		t.Fatalf("%s or %s environment variable is required for this test",
			ciutil.EnvTestDatabaseURL, ciutil.EnvDatabaseURL)
	}
	return dbURL
}
