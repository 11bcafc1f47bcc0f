package auth

import (
	"context"
	"time"
)

// SignInResult is returned by a successful Authenticate call.
type SignInResult struct {
	Message   string
	Token     string
	ExpiresAt time.Time
}

// AuthService registers users and exchanges credentials for session tokens.
type AuthService interface {
	// Register validates the username and password policy, hashes the password
	// and stores the new user. It returns a confirmation message; no session
	// is issued at registration.
	//
	// Returns:
	//   - (*domain.ValidationError): username or password rejected
	//   - (ErrDuplicateUsername): the username is taken
	Register(ctx context.Context, username, password string) (string, error)

	// Authenticate verifies the credentials and issues a signed session token.
	//
	// Returns:
	//   - (ErrUserNotFound): no user has this username
	//   - (ErrInvalidCredentials): the password does not match
	Authenticate(ctx context.Context, username, password string) (*SignInResult, error)
}
