package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "maker_42",
			PlainPassword: "correcthorsebatterystaple",
		})
		assert.NoError(t, err)
		assert.Equal(t, "maker_42", user.Username)
		assert.NotEmpty(t, user.PasswordHash)

		assert.True(t, user.VerifyPassword("correcthorsebatterystaple"))
		assert.False(t, user.VerifyPassword("somethingelse"))
	})

	t.Run("username too short", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "ab", PlainPassword: "correcthorsebatterystaple"})
		assert.Error(t, err)
	})

	t.Run("username with invalid characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "bad name!", PlainPassword: "correcthorsebatterystaple"})
		assert.Error(t, err)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "maker_42", PlainPassword: "password123"})
		assert.Error(t, err)
	})
}
