package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dm-mensavi/task-management/internal/domain"
	"github.com/dm-mensavi/task-management/internal/platform/logger"
	"github.com/dm-mensavi/task-management/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Verify interface compliance at compile time
var _ AuthService = (*authServiceImpl)(nil)

type authServiceImpl struct {
	users    store.UserStore
	hasher   PasswordHasher
	verifier PasswordVerifier
	tokens   JWTService
	policy   domain.PasswordPolicy
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(
	users store.UserStore,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	tokens JWTService,
	policy domain.PasswordPolicy,
	logger *slog.Logger,
) AuthService {
	if users == nil {
		panic("users cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if tokens == nil {
		panic("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		tokens:   tokens,
		policy:   policy,
		logger:   logger.With(slog.String("component", "auth_service")),
	}
}

// Register implements AuthService.Register.
func (s *authServiceImpl) Register(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateUsername(username); err != nil {
		return "", err
	}
	if err := s.policy.Validate(password); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(username, hash)
	if err != nil {
		return "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("registration rejected: username taken")
			return "", ErrDuplicateUsername
		}
		log.Error("failed to store user", slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return fmt.Sprintf("User %s added successfully!", username), nil
}

// Authenticate implements AuthService.Authenticate.
func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*SignInResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("sign-in rejected: unknown username")
			return nil, ErrUserNotFound
		}
		log.Error("failed to look up user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn("password comparison failed",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
		}
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(ctx, user.Username)
	if err != nil {
		log.Error("failed to issue session token",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	log.Info("user signed in", slog.String("user_id", user.ID.String()))
	return &SignInResult{
		Message:   fmt.Sprintf("Login Successful! Welcome back %s.", user.Username),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
