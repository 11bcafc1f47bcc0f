package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed session token asserting username.
	// Returns the token string and its expiry time.
	GenerateToken(ctx context.Context, username string) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the claims.
	// Returns ErrInvalidToken, ErrExpiredToken or ErrTokenNotYetValid on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claims carried by a session token.
type Claims struct {
	// Username is the user the token was issued for.
	Username string `json:"username,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
