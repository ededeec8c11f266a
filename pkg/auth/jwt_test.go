package auth_test

import (
	"testing"
	"time"

	"go-portfolio-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func TestSignAndVerify(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	token, expiresAt, err := m.Sign("64b0c8f2e13a4d5f6a7b8c9d")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := m.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "64b0c8f2e13a4d5f6a7b8c9d", subject)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	m := auth.NewManager("test-secret", time.Hour)

	t.Run("Garbage token", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Token signed with a different secret", func(t *testing.T) {
		other := auth.NewManager("other-secret", time.Hour)
		token, _, err := other.Sign("user")
		assert.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		short := auth.NewManager("test-secret", -time.Minute)
		token, _, err := short.Sign("user")
		assert.NoError(t, err)

		_, err = m.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestSignRequiresSecret(t *testing.T) {
	m := auth.NewManager("", time.Hour)
	_, _, err := m.Sign("user")
	assert.Error(t, err)
}
