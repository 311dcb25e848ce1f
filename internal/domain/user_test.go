package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("user@example.com", "correct-horse-battery")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	})

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"empty email", "", "correct-horse-battery", ErrEmptyEmail},
		{"missing at sign", "userexample.com", "correct-horse-battery", ErrInvalidEmail},
		{"missing domain dot", "user@examplecom", "correct-horse-battery", ErrInvalidEmail},
		{"trailing at sign", "user@", "correct-horse-battery", ErrInvalidEmail},
		{"password too short", "user@example.com", "short", ErrPasswordTooShort},
		{"password too long", "user@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := NewUser(tt.email, tt.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from storage has no plaintext password, only a hash.
	user := &User{
		ID:             uuid.New(),
		Email:          "user@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}
