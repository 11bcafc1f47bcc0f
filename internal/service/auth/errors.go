package auth

import (
	"errors"
	"fmt"
)

// Common authentication service errors
var (
	// ErrUnauthenticated is the category for every rejected session token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = fmt.Errorf("%w: authentication token is missing", ErrUnauthenticated)

	// ErrInvalidToken indicates the token format is invalid, the signature doesn't
	// match, or the user it names no longer exists
	ErrInvalidToken = fmt.Errorf("%w: invalid authentication token", ErrUnauthenticated)

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = fmt.Errorf("%w: authentication token has expired", ErrUnauthenticated)

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = fmt.Errorf("%w: authentication token not yet valid", ErrUnauthenticated)

	// ErrDuplicateUsername is returned by Register when the username is taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUserNotFound is returned by Authenticate for an unknown username.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrInvalidCredentials is returned by Authenticate when the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
