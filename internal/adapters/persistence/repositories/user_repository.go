package repositories

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"chapa-dashboard/internal/core/domain"
)

// userRepository implements UserRepository over a mutex-guarded slice
type userRepository struct {
	mu     sync.RWMutex
	users  []domain.User
	lastID int64
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() UserRepository {
	return &userRepository{}
}

// Create assigns a time-derived id and creation timestamp, appends the user
// and returns the stored record. Email uniqueness is NOT enforced here;
// that is a validation concern of the caller.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.ID = r.nextID()
	stored.CreatedAt = time.Now().UTC()
	r.users = append(r.users, stored)

	return stored.Clone(), nil
}

// GetByID gets a user by id
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			return r.users[i].Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail gets a user by email, compared case-insensitively
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			return r.users[i].Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmailAndRole gets the user matching both email and role
func (r *userRepository) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) && r.users[i].Role == role {
			return r.users[i].Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Update merges the patch onto the stored record. Unknown ids return
// ErrUserNotFound rather than silently succeeding.
func (r *userRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if patch.Name != nil {
			r.users[i].Name = *patch.Name
		}
		if patch.Email != nil {
			r.users[i].Email = *patch.Email
		}
		if patch.IsActive != nil {
			r.users[i].IsActive = *patch.IsActive
		}
		if patch.Balance != nil {
			r.users[i].Balance = *patch.Balance
		}
		return r.users[i].Clone(), nil
	}
	return nil, domain.ErrUserNotFound
}

// List returns deep copies of all users in store order
func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.users))
	for i := range r.users {
		users = append(users, r.users[i].Clone())
	}
	return users, nil
}

// Count returns the number of stored users
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

// CountActiveByRole counts active users holding the given role
func (r *userRepository) CountActiveByRole(ctx context.Context, role domain.Role) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for i := range r.users {
		if r.users[i].IsActive && r.users[i].Role == role {
			count++
		}
	}
	return count, nil
}

// Reset replaces the store content with the seed list
func (r *userRepository) Reset(ctx context.Context, seed []domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make([]domain.User, len(seed))
	copy(r.users, seed)
	return nil
}

// nextID derives an id from the current time, bumping on collision so two
// creations in the same millisecond stay unique
func (r *userRepository) nextID() string {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}
