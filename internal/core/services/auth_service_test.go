package services

import (
	"context"
	"testing"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/config"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenMins: 15,
		},
	}
}

func newSeededStore(t *testing.T) *repositories.Store {
	t.Helper()
	store, err := repositories.NewStore("")
	require.NoError(t, err)
	require.NoError(t, config.SeedDemoData(store))
	return store
}

func newAuthService(t *testing.T) (*AuthService, *repositories.Store) {
	t.Helper()
	store := newSeededStore(t)
	return NewAuthService(store.Users, store.Sessions, latency.Disabled(), testConfig()), store
}

func TestLoginSuccess(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, &LoginInput{Email: "admin@chapa.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, "2", result.User.ID)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)
	assert.NotEmpty(t, result.AccessToken)

	// The token carries a live session
	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "2", claims.UserID)
	assert.Equal(t, "admin@chapa.com", claims.Email)

	sess, err := store.Sessions.GetByID(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.True(t, sess.State.IsAuthenticated)
}

func TestLoginIsCaseInsensitiveOnEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), &LoginInput{Email: "User@Chapa.COM", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "1", result.User.ID)
}

func TestLoginRejectsWrongRole(t *testing.T) {
	svc, _ := newAuthService(t)

	// Known email, wrong role: credentials are the pair, not the email
	_, err := svc.Login(context.Background(), &LoginInput{Email: "admin@chapa.com", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), &LoginInput{Email: "ghost@chapa.com", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, &LoginInput{Email: "user@chapa.com", Role: domain.RoleUser})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))
	require.NoError(t, svc.Logout(ctx, claims.SessionID))

	_, err = svc.CurrentUser(ctx, claims.SessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestCurrentUserReflectsStoreChanges(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()

	result, err := svc.Login(ctx, &LoginInput{Email: "user@chapa.com", Role: domain.RoleUser})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)

	// Deactivate after login; /me must see the new state
	active := false
	_, err = store.Users.Update(ctx, "1", domain.UserPatch{IsActive: &active})
	require.NoError(t, err)

	user, err := svc.CurrentUser(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestValidateAccessTokenRejectsTampering(t *testing.T) {
	svc, _ := newAuthService(t)

	result, err := svc.Login(context.Background(), &LoginInput{Email: "user@chapa.com", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(result.AccessToken + "x")
	assert.Error(t, err)
}
