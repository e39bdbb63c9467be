package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret-key", 24)

	token, err := svc.Generate(42, "usr_abc123", "maria@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "usr_abc123", claims.UserSID)
	assert.Equal(t, "maria@example.com", claims.Email)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	svc := NewJWTService("secret-a", 24)
	other := NewJWTService("secret-b", 24)

	token, err := svc.Generate(1, "usr_x", "a@b.com")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", 24)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ExpiresInSeconds(t *testing.T) {
	svc := NewJWTService("secret", 24)
	assert.Equal(t, int64(86400), svc.ExpiresInSeconds())
}
