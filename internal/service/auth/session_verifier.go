package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/store"
)

// SessionVerifier resolves a session token to the user it was issued for.
type SessionVerifier interface {
	// Verify checks the token and loads its user. Every rejection wraps
	// ErrUnauthenticated.
	Verify(ctx context.Context, rawToken string) (*domain.User, error)
}

type sessionVerifier struct {
	tokens JWTService
	users  store.UserStore
	logger *slog.Logger
}

var _ SessionVerifier = (*sessionVerifier)(nil)

// NewSessionVerifier creates a SessionVerifier.
func NewSessionVerifier(tokens JWTService, users store.UserStore, logger *slog.Logger) SessionVerifier {
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if users == nil {
		panic("users cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &sessionVerifier{
		tokens: tokens,
		users:  users,
		logger: logger.With(slog.String("component", "session_verifier")),
	}
}

// Verify implements SessionVerifier.Verify.
func (v *sessionVerifier) Verify(ctx context.Context, rawToken string) (*domain.User, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, ErrMissingToken
	}

	claims, err := v.tokens.ValidateToken(ctx, rawToken)
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user, err := v.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContextOrDefault(ctx, v.logger).Debug("token names an unknown user",
				slog.String("token_id", claims.ID))
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to resolve session user: %w", err)
	}

	return user, nil
}
