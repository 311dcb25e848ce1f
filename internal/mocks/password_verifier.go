package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordVerifier for testing.
type MockPasswordVerifier struct {
	// ShouldSucceed determines whether the comparison succeeds
	ShouldSucceed bool

	// CompareFn allows custom comparison logic
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Compare implements the auth.PasswordVerifier interface.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// HashFn allows custom hashing logic
	HashFn func(password string) (string, error)

	// Hashed is the value returned by the default implementation
	Hashed string
	Err    error
}

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Hashed != "" {
		return m.Hashed, m.Err
	}
	return "hashed:" + password, m.Err
}
