package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/dm-mensavi/task-management/internal/config"
	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/postgres"
	"github.com/dm-mensavi/task-management/internal/platform/sqlite"
	"github.com/dm-mensavi/task-management/internal/service/auth"
	"github.com/dm-mensavi/task-management/internal/service/tasks"
	"github.com/dm-mensavi/task-management/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService      auth.JWTService
	authService     auth.AuthService
	sessionVerifier auth.SessionVerifier
	taskService     tasks.TaskService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be open; the application takes
// ownership of it and closes it in cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		app.userStore = postgres.NewPostgresUserStore(db, logger)
		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	case config.DriverSQLite:
		app.userStore = sqlite.NewUserStore(db, logger)
		app.taskStore = sqlite.NewTaskStore(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	policy := domain.PasswordPolicy{
		MinLength:    cfg.Auth.Password.MinLength,
		MinLowercase: cfg.Auth.Password.MinLowercase,
		MinUppercase: cfg.Auth.Password.MinUppercase,
		MinNumbers:   cfg.Auth.Password.MinNumbers,
		MinSymbols:   cfg.Auth.Password.MinSymbols,
	}

	app.authService = auth.NewAuthService(
		app.userStore,
		hasher,
		auth.NewBcryptVerifier(),
		app.jwtService,
		policy,
		logger,
	)
	app.sessionVerifier = auth.NewSessionVerifier(app.jwtService, app.userStore, logger)
	app.taskService = tasks.NewTaskService(app.taskStore, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
