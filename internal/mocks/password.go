package mocks

import (
	"errors"

	"github.com/dm-mensavi/task-management/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

// MockPasswordVerifier implements auth.PasswordVerifier for testing
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the password comparison should succeed
	ShouldSucceed bool

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
// By default it prefixes the password so tests can see what was hashed.
type MockPasswordHasher struct {
	HashFn func(password string) (string, error)
	Err    error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// ErrMockHash is a ready-made hashing failure.
var ErrMockHash = errors.New("mock hash failure")

// Hash implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}
