package repositories

import (
	"context"
	"testing"

	"chapa-dashboard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "User user", Email: "user@chapa.com", Role: domain.RoleUser, IsActive: true, Balance: 15000},
		{ID: "2", Name: "Admin User", Email: "admin@chapa.com", Role: domain.RoleAdmin, IsActive: true},
		{ID: "3", Name: "Super Admin", Email: "superadmin@chapa.com", Role: domain.RoleSuperAdmin, IsActive: true},
		{ID: "4", Name: "Kebede", Email: "jane@example.com", Role: domain.RoleUser, IsActive: true, Balance: 8500},
		{ID: "5", Name: "Chala", Email: "bob@example.com", Role: domain.RoleUser, IsActive: false},
	}
}

func newSeededUserRepo(t *testing.T) UserRepository {
	t.Helper()
	repo := NewUserRepository()
	require.NoError(t, repo.Reset(context.Background(), seedUsers()))
	return repo
}

func TestUserRepositoryGetByEmailIsCaseInsensitive(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	user, err := repo.GetByEmail(ctx, "Admin@Chapa.COM")
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)

	_, err = repo.GetByEmail(ctx, "nobody@chapa.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryGetByEmailAndRole(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	user, err := repo.GetByEmailAndRole(ctx, "admin@chapa.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)

	// Right email, wrong role
	_, err = repo.GetByEmailAndRole(ctx, "admin@chapa.com", domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryCreateAssignsUniqueIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, &domain.User{Name: "A", Email: "a@chapa.com", Role: domain.RoleAdmin})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &domain.User{Name: "B", Email: "b@chapa.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())

	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@chapa.com", stored.Email)
}

func TestUserRepositoryUpdateUnknownID(t *testing.T) {
	repo := newSeededUserRepo(t)

	active := false
	_, err := repo.Update(context.Background(), "999", domain.UserPatch{IsActive: &active})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepositoryUpdateMergesPatch(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	active := false
	updated, err := repo.Update(ctx, "1", domain.UserPatch{IsActive: &active})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// Untouched fields survive
	assert.Equal(t, "user@chapa.com", updated.Email)
	assert.Equal(t, float64(15000), updated.Balance)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	user, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store
	user.Balance = 0
	user.Name = "Hacked"

	again, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(15000), again.Balance)
	assert.Equal(t, "User user", again.Name)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0].Balance = -1

	again, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(15000), again.Balance)
}

func TestUserRepositoryCountActiveByRole(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	// Chala is an inactive regular user and must not count
	count, err := repo.CountActiveByRole(ctx, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountActiveByRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepositoryResetReplacesContent(t *testing.T) {
	repo := newSeededUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Name: "Extra", Email: "extra@chapa.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx, seedUsers()))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
