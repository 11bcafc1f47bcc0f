package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dm-mensavi/task-management/internal/config"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/platform/migrate"
	"github.com/spf13/cobra"
)

// newRootCommand builds the CLI. Running it without a subcommand serves HTTP.
func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "task-management",
		Short: "Task management API server",
		Long: `Serves the task management HTTP API: user signup and signin with
bearer tokens, and owner-scoped task CRUD with status and search filters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./config.yaml)")

	root.AddCommand(newServeCommand(&configFile), newMigrateCommand(&configFile))
	return root
}

func newServeCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configFile)
		},
	}
}

func newMigrateCommand(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status|version>",
		Short:     "Manage the database schema",
		Long:      `Applies, rolls back or reports the embedded schema migrations for the configured database driver.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{migrate.CommandUp, migrate.CommandDown, migrate.CommandStatus, migrate.CommandVersion},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), *configFile, args[0])
		},
	}
}

// loadRuntime loads configuration and installs the process logger.
func loadRuntime(configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)
	return cfg, log, nil
}

func runServe(ctx context.Context, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, err := loadRuntime(configFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, cfg.Database.Driver, migrate.CommandUp, log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

func runMigrate(ctx context.Context, configFile, command string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadRuntime(configFile)
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	return runMigrations(ctx, db, cfg.Database.Driver, command, log)
}
