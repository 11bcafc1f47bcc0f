package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/store"
)

// UserStore implements store.UserStore on SQLite.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a SQLite-backed UserStore.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, username, hashed_password, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
		user.ID.String(),
		user.Username,
		user.HashedPassword,
		formatTime(user.CreatedAt),
		formatTime(user.UpdatedAt),
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "failed to insert user", MapError(err))
	}

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, username, hashed_password, created_at, updated_at
FROM users
WHERE username = ?`, username)
	return s.scan(ctx, row)
}

func (s *UserStore) scan(ctx context.Context, row *sql.Row) (*domain.User, error) {
	var (
		user               domain.User
		createdAt, updated string
	)
	err := row.Scan(&user.ID, &user.Username, &user.HashedPassword, &createdAt, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", "failed to query user", err)
	}

	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, store.NewStoreError("user", "get", "corrupt created_at", err)
	}
	if user.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, store.NewStoreError("user", "get", "corrupt updated_at", err)
	}

	return &user, nil
}
