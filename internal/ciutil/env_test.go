package ciutil

import (
	"testing"

	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func clearCIEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		t.Setenv(v, "")
	}
}

func TestIsCI(t *testing.T) {
	clearCIEnv(t)
	assert.False(t, IsCI())

	t.Setenv(EnvGitHubActions, "true")
	assert.True(t, IsCI())
}

func TestGetEnvWithFallbacks(t *testing.T) {
	t.Setenv("CIUTIL_PRIMARY", "")
	t.Setenv("CIUTIL_SECONDARY", "")

	logs, log := logger.NewTestLogger(t)
	vars := []string{"CIUTIL_PRIMARY", "CIUTIL_SECONDARY"}

	assert.Equal(t, "default", GetEnvWithFallbacks(vars, "default", log))

	t.Setenv("CIUTIL_SECONDARY", "second")
	assert.Equal(t, "second", GetEnvWithFallbacks(vars, "default", log))
	logger.AssertLogContains(t, logs, "CIUTIL_PRIMARY")

	logs.Reset()
	t.Setenv("CIUTIL_PRIMARY", "first")
	assert.Equal(t, "first", GetEnvWithFallbacks(vars, "default", log))
	assert.Empty(t, logs.String())
}

func TestTestDatabaseURL(t *testing.T) {
	t.Setenv(EnvTestDatabaseURL, "")
	t.Setenv(EnvDatabaseURL, "")
	assert.Empty(t, TestDatabaseURL(nil))

	t.Setenv(EnvDatabaseURL, "postgres://localhost/tasks")
	assert.Equal(t, "postgres://localhost/tasks", TestDatabaseURL(nil))

	t.Setenv(EnvTestDatabaseURL, "postgres://localhost/tasks_test")
	assert.Equal(t, "postgres://localhost/tasks_test", TestDatabaseURL(nil))
}
