package services

import (
	"context"
	"testing"

	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	store := newSeededStore(t)
	return NewUserService(store.Users, latency.Disabled())
}

func TestListUsersUnfiltered(t *testing.T) {
	svc := newUserService(t)

	users, err := svc.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestListUsersFilters(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	// Search matches name or email, case-insensitively
	users, err := svc.ListUsers(ctx, &ListUsersInput{Search: "KEBEDE"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "4", users[0].ID)

	users, err = svc.ListUsers(ctx, &ListUsersInput{Search: "example.com"})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = svc.ListUsers(ctx, &ListUsersInput{Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "2", users[0].ID)

	inactive := false
	users, err = svc.ListUsers(ctx, &ListUsersInput{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "5", users[0].ID)
}

func TestToggleStatusIsItsOwnInverse(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	toggled, err := svc.ToggleStatus(ctx, domain.RoleSuperAdmin, "1")
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	restored, err := svc.ToggleStatus(ctx, domain.RoleSuperAdmin, "1")
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}

func TestToggleStatusUnknownID(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.ToggleStatus(context.Background(), domain.RoleSuperAdmin, "999")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleStatusAdminCannotManageAdmins(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	// Admins may only toggle regular users
	_, err := svc.ToggleStatus(ctx, domain.RoleAdmin, "3")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.ToggleStatus(ctx, domain.RoleAdmin, "2")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Regular users are fair game
	_, err = svc.ToggleStatus(ctx, domain.RoleAdmin, "1")
	assert.NoError(t, err)
}

func TestToggleStatusSuperAdminCanManageAnyone(t *testing.T) {
	svc := newUserService(t)

	toggled, err := svc.ToggleStatus(context.Background(), domain.RoleSuperAdmin, "2")
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)
}

func TestAddAdmin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	created, err := svc.AddAdmin(ctx, &AddAdminInput{
		Name:  "  New Admin  ",
		Email: "New.Admin@Chapa.com",
		Role:  domain.RoleAdmin,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Admin", created.Name)
	assert.Equal(t, "new.admin@chapa.com", created.Email)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.Balance)

	taken, err := svc.EmailTaken(ctx, "new.admin@chapa.com")
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestEmailTakenIsCaseInsensitive(t *testing.T) {
	svc := newUserService(t)

	taken, err := svc.EmailTaken(context.Background(), "ADMIN@CHAPA.COM")
	require.NoError(t, err)
	assert.True(t, taken)
}
