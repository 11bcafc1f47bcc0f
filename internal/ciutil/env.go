package ciutil

import (
	"log/slog"
	"os"
)

// Environment variable names used across the codebase.
const (
	// CI environment detection variables
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	// Database connection environment variables, preferred name first
	EnvTestDatabaseURL = "TASKS_TEST_DB_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// GetEnvWithFallbacks returns the value of the first non-empty environment
// variable in envVars, or defaultValue if none is set. Using any name but the
// first logs a warning naming the preferred one.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Warn("using fallback environment variable",
					"used_var", envVar,
					"preferred_var", envVars[0])
			}
			return val
		}
	}
	return defaultValue
}

// TestDatabaseURL returns the connection string for integration tests, or
// "" when none is configured.
func TestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDatabaseURL, EnvDatabaseURL}, "", logger)
}
