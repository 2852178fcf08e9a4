package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"
)

// UserService handles user administration
type UserService struct {
	users repositories.UserRepository
	sim   *latency.Simulator
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository, sim *latency.Simulator) *UserService {
	return &UserService{users: users, sim: sim}
}

// ListUsersInput represents optional list filters
type ListUsersInput struct {
	Search string      // matches name or email, case-insensitive
	Role   domain.Role // empty means all roles
	Active *bool       // nil means both
}

// ListUsers returns deep copies of the stored users, optionally filtered
func (s *UserService) ListUsers(ctx context.Context, input *ListUsersInput) ([]*domain.User, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return users, nil
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))
	filtered := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Name), search) &&
			!strings.Contains(strings.ToLower(u.Email), search) {
			continue
		}
		if input.Role != "" && u.Role != input.Role {
			continue
		}
		if input.Active != nil && u.IsActive != *input.Active {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered, nil
}

// GetByID gets a user by id
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ToggleStatus flips a user's active flag. Toggling twice restores the
// original value. Admins may only manage regular users; super admins may
// manage anyone. Unknown ids are an explicit not-found, never a silent no-op.
func (s *UserService) ToggleStatus(ctx context.Context, actorRole domain.Role, id string) (*domain.User, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorRole == domain.RoleAdmin && user.Role != domain.RoleUser {
		return nil, domain.ErrForbidden
	}

	active := !user.IsActive
	updated, err := s.users.Update(ctx, id, domain.UserPatch{IsActive: &active})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User %s is now active=%t", updated.ID, updated.IsActive)
	return updated, nil
}

// AddAdminInput represents the new administrator draft
type AddAdminInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// AddAdmin appends a new administrator account. Email uniqueness is a
// validation concern of the transport layer; the store accepts any draft.
func (s *UserService) AddAdmin(ctx context.Context, input *AddAdminInput) (*domain.User, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	admin := &domain.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(input.Email),
		Role:     input.Role,
		IsActive: true,
		Balance:  0,
	}

	created, err := s.users.Create(ctx, admin)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Admin created: %s (%s)", created.Email, created.Role)
	return created, nil
}

// EmailTaken reports whether an email is already registered,
// case-insensitively
func (s *UserService) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
