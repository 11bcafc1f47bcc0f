package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dm-mensavi/task-management/internal/config"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dbURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 5},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			URL:          dbURL,
			MaxOpenConns: 1,
		},
		Auth: config.AuthConfig{
			JWTSecret:            "e2e-secret-that-is-at-least-32-characters",
			TokenLifetimeMinutes: 60,
			BcryptCost:           4,
			Password: config.PasswordConfig{
				MinLength: 8, MinLowercase: 1, MinUppercase: 1, MinNumbers: 1, MinSymbols: 1,
			},
		},
	}
}

// newTestServer runs the full stack against a migrated in-memory SQLite database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	cfg := testConfig(":memory:")
	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.Database, log)
	require.NoError(t, err)
	require.NoError(t, runMigrations(ctx, db, cfg.Database.Driver, migrate.CommandUp, log))

	app, err := newApplication(cfg, log, db)
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(func() {
		srv.Close()
		app.cleanup()
	})
	return srv
}

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, path string, body interface{}) (int, []byte) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func signUpAndIn(t *testing.T, c *client, username, password string) {
	t.Helper()

	status, body := c.do(http.MethodPost, "/auth/signup", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = c.do(http.MethodPost, "/auth/signin", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	c.token = decode[map[string]string](t, body)["token"]
	require.NotEmpty(t, c.token)
}

func TestEndToEndTaskLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	alice := &client{t: t, base: srv.URL}

	status, body := alice.do(http.MethodPost, "/auth/signup", map[string]string{
		"username": "alice", "password": "Str0ng!Pass",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, "User alice added successfully!", decode[map[string]string](t, body)["message"])

	status, body = alice.do(http.MethodPost, "/auth/signin", map[string]string{
		"username": "alice", "password": "Str0ng!Pass",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	signIn := decode[map[string]string](t, body)
	assert.Equal(t, "Login Successful! Welcome back alice.", signIn["message"])
	assert.NotEmpty(t, signIn["expires_at"])
	alice.token = signIn["token"]

	status, body = alice.do(http.MethodPost, "/tasks", map[string]string{
		"title": "Clean my room", "description": "Lots of cleaning",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	created := decode[map[string]interface{}](t, body)
	assert.Equal(t, "OPEN", created["status"])
	assert.NotContains(t, created, "owner_id")
	taskID, _ := created["id"].(string)
	require.NotEmpty(t, taskID)

	status, body = alice.do(http.MethodGet, "/tasks?search=clean", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	list := decode[[]map[string]interface{}](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, taskID, list[0]["id"])

	status, body = alice.do(http.MethodPatch, "/tasks/"+taskID, map[string]string{"status": "DONE"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "DONE", decode[map[string]interface{}](t, body)["status"])

	status, body = alice.do(http.MethodDelete, "/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, map[string]string{"id": taskID, "message": "Task deleted successfully"},
		decode[map[string]string](t, body))

	status, body = alice.do(http.MethodGet, "/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	errBody := decode[map[string]string](t, body)
	assert.Equal(t, "Task with ID "+taskID+" not found", errBody["error"])
	assert.Len(t, errBody["trace_id"], 32)

	status, _ = alice.do(http.MethodDelete, "/tasks/"+taskID, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestEndToEndOwnershipAndErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	alice := &client{t: t, base: srv.URL}
	bob := &client{t: t, base: srv.URL}
	signUpAndIn(t, alice, "alice", "Str0ng!Pass")
	signUpAndIn(t, bob, "bobby", "An0ther!Pass")

	t.Run("duplicate signup", func(t *testing.T) {
		status, body := (&client{t: t, base: srv.URL}).do(http.MethodPost, "/auth/signup",
			map[string]string{"username": "alice", "password": "Str0ng!Pass2"})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "Username already exists", decode[map[string]string](t, body)["error"])
	})

	t.Run("signin failures", func(t *testing.T) {
		anon := &client{t: t, base: srv.URL}
		status, _ := anon.do(http.MethodPost, "/auth/signin",
			map[string]string{"username": "alice", "password": "Wr0ng!Pass"})
		assert.Equal(t, http.StatusUnauthorized, status)

		status, _ = anon.do(http.MethodPost, "/auth/signin",
			map[string]string{"username": "nobody", "password": "Str0ng!Pass"})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("tasks require a valid token", func(t *testing.T) {
		status, _ := (&client{t: t, base: srv.URL}).do(http.MethodGet, "/tasks", nil)
		assert.Equal(t, http.StatusUnauthorized, status)

		status, _ = (&client{t: t, base: srv.URL, token: "garbage"}).do(http.MethodGet, "/tasks", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	status, body := alice.do(http.MethodPost, "/tasks", map[string]string{
		"title": "Visit The Pool", "description": "Swim laps", "status": "IN_PROGRESS",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	poolID := decode[map[string]interface{}](t, body)["id"].(string)

	t.Run("per-owner duplicates", func(t *testing.T) {
		status, _ := alice.do(http.MethodPost, "/tasks", map[string]string{
			"title": "Visit The Pool", "description": "Swim laps",
		})
		assert.Equal(t, http.StatusConflict, status)

		status, _ = bob.do(http.MethodPost, "/tasks", map[string]string{
			"title": "Visit The Pool", "description": "Swim laps",
		})
		assert.Equal(t, http.StatusCreated, status)
	})

	t.Run("foreign task is not found", func(t *testing.T) {
		status, _ := bob.do(http.MethodGet, "/tasks/"+poolID, nil)
		assert.Equal(t, http.StatusNotFound, status)
		status, _ = bob.do(http.MethodDelete, "/tasks/"+poolID, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = alice.do(http.MethodGet, "/tasks/"+poolID, nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("filters", func(t *testing.T) {
		status, body := alice.do(http.MethodGet, "/tasks?search=pool", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, decode[[]map[string]interface{}](t, body), 1)

		status, _ = alice.do(http.MethodGet, "/tasks?status=DONE", nil)
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = alice.do(http.MethodGet, "/tasks?status=LATER", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("invalid status update leaves task unchanged", func(t *testing.T) {
		status, _ := alice.do(http.MethodPatch, "/tasks/"+poolID, map[string]string{"status": "LATER"})
		assert.Equal(t, http.StatusBadRequest, status)

		status, body := alice.do(http.MethodGet, "/tasks/"+poolID, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "IN_PROGRESS", decode[map[string]interface{}](t, body)["status"])
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	status, body := (&client{t: t, base: srv.URL}).do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	t.Setenv("TASKS_DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("TASKS_DATABASE_URL", dbPath)
	t.Setenv("TASKS_AUTH_JWT_SECRET", "e2e-secret-that-is-at-least-32-characters")
	t.Setenv("TASKS_SERVER_LOG_LEVEL", "error")

	for _, args := range [][]string{
		{"migrate", "up"},
		{"migrate", "version"},
		{"migrate", "status"},
		{"migrate", "down"},
	} {
		cmd := newRootCommand()
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute(), "%v", args)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"migrate", "sideways"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}

func TestNewApplicationRejectsBadConfig(t *testing.T) {
	t.Parallel()

	_, log := logger.NewTestLogger(t)
	db, err := openDatabase(context.Background(), testConfig(":memory:").Database, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
	}{
		{"short jwt secret", func(cfg *config.Config) { cfg.Auth.JWTSecret = "short" }},
		{"bcrypt cost out of range", func(cfg *config.Config) { cfg.Auth.BcryptCost = 99 }},
		{"unknown driver", func(cfg *config.Config) { cfg.Database.Driver = "mysql" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(":memory:")
			tt.mutate(cfg)
			_, err := newApplication(cfg, log, db)
			assert.Error(t, err)
		})
	}
}
