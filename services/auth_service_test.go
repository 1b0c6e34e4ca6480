package services

import (
	"testing"
	"time"

	"portfolioapi/config"
	middleware "portfolioapi/middlewares"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService() AuthService {
	return NewAuthService(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	})
}

func TestLogin_Success(t *testing.T) {
	svc := testAuthService()

	result, err := svc.Login("admin", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, time.Minute)

	// The issued token carries the admin role claim and verifies against
	// the configured secret.
	token, err := jwt.ParseWithClaims(result.Token, &middleware.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*middleware.Claims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, middleware.RoleAdmin, claims.Role)
}

func TestLogin_Rejections(t *testing.T) {
	svc := testAuthService()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "root", "hunter2"},
		{"both wrong", "root", "wrong"},
		{"empty credentials", "", ""},
		{"swapped credentials", "hunter2", "admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Login(tc.username, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, result)
		})
	}
}
