package domain

import (
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Username length bounds, counted in characters.
const (
	MinUsernameLength = 4
	MaxUsernameLength = 20
)

// MaxPasswordBytes is the longest password bcrypt will accept.
const MaxPasswordBytes = 72

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the task service.
// The password hash never leaves the service boundary.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and password hash.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
//
// The caller is responsible for validating and hashing the plaintext password.
func NewUser(username, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// ValidateUsername checks that a username is between MinUsernameLength and
// MaxUsernameLength characters long.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLength || n > MaxUsernameLength {
		return NewValidationError("username", fmt.Sprintf(
			"must be between %d and %d characters", MinUsernameLength, MaxUsernameLength))
	}
	return nil
}

// PasswordPolicy describes the strength requirements for new passwords.
type PasswordPolicy struct {
	MinLength    int
	MinLowercase int
	MinUppercase int
	MinNumbers   int
	MinSymbols   int
}

// DefaultPasswordPolicy requires eight characters including at least one
// lowercase letter, one uppercase letter, one digit and one symbol.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:    8,
		MinLowercase: 1,
		MinUppercase: 1,
		MinNumbers:   1,
		MinSymbols:   1,
	}
}

// Validate checks password against the policy.
// Passwords longer than MaxPasswordBytes are always rejected.
func (p PasswordPolicy) Validate(password string) error {
	if password == "" {
		return NewValidationError("password", "cannot be empty")
	}
	if len(password) > MaxPasswordBytes {
		return NewValidationError("password", fmt.Sprintf("must be at most %d bytes long", MaxPasswordBytes))
	}
	if utf8.RuneCountInString(password) < p.MinLength {
		return NewValidationError("password", fmt.Sprintf("must be at least %d characters long", p.MinLength))
	}

	var lower, upper, numbers, symbols int
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			numbers++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbols++
		}
	}

	if lower < p.MinLowercase || upper < p.MinUppercase || numbers < p.MinNumbers || symbols < p.MinSymbols {
		return NewValidationError("password", "is not strong enough")
	}

	return nil
}
