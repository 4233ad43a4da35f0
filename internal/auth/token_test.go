package auth

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menu-eva/internal/config"
	"menu-eva/internal/model"
)

func newTestService() *Service {
	return NewService(config.AuthConfig{
		JWTSecret:     "test-secret",
		AdminUsername: "admin",
		AdminPassword: "admin123",
		TokenTTL:      time.Hour,
	}, zerolog.Nop())
}

func TestTokenManager_SignAndVerify(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Sign("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "menu-eva", claims.Issuer)
	assert.Equal(t, "admin", claims.Subject)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Sign("admin")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	assert.Equal(t, model.ErrInvalidToken, err)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Sign("admin")
	require.NoError(t, err)

	_, err = manager.Verify(token)
	assert.Equal(t, model.ErrInvalidToken, err)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := manager.Verify(token)
		assert.Equal(t, model.ErrInvalidToken, err)
	}
}

func TestService_Login(t *testing.T) {
	// see handler tests for the full login flow; this covers the
	// credential comparison only
	svc := newTestService()

	token, user, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "admin", user.Role)

	_, _, err = svc.Login("admin", "wrong")
	assert.Equal(t, model.ErrInvalidCredentials, err)

	_, _, err = svc.Login("intruder", "admin123")
	assert.Equal(t, model.ErrInvalidCredentials, err)
}

func TestService_Verify(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	user, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = svc.Verify("bogus")
	assert.Equal(t, model.ErrInvalidToken, err)
}
