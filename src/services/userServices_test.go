package services

import (
	"context"
	"testing"

	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/testutil"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateUser(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	ctx := context.Background()
	svc := NewUserService(testutil.NewDB(t))

	user, err := svc.CreateUser(ctx, "editor", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.Password)

	token, err := svc.AuthenticateUser(ctx, "editor", "s3cret")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, user.ID, claims["id"])

	_, err = svc.AuthenticateUser(ctx, "editor", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.AuthenticateUser(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureUserAndResetPassword(t *testing.T) {
	middleware.SetSecretKey("test-secret")
	ctx := context.Background()
	svc := NewUserService(testutil.NewDB(t))

	created, err := svc.EnsureUser(ctx, "admin", "first")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureUser(ctx, "admin", "second")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.AuthenticateUser(ctx, "admin", "first")
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, "admin", "second"))
	_, err = svc.AuthenticateUser(ctx, "admin", "second")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(ctx, "ghost", "x"), ErrNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, 999), ErrNotFound)
}
