package services

import (
	"context"
	"log"
	"time"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/config"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/core/session"
	"chapa-dashboard/internal/pkg/jwt"
	"chapa-dashboard/internal/pkg/latency"

	"github.com/google/uuid"
)

// AuthService handles the demo login flow. This is a role-selection demo:
// a user is matched by email and role, and no password exists anywhere.
type AuthService struct {
	users    repositories.UserRepository
	sessions repositories.SessionRepository
	sim      *latency.Simulator
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repositories.UserRepository,
	sessions repositories.SessionRepository,
	sim *latency.Simulator,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		sim:      sim,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email string
	Role  domain.Role
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// Login authenticates a user by email and role, driving the auth state
// machine through its full cycle and persisting the resulting session
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	// 1. Enter the authenticating state
	state := session.Reduce(session.NewState(), session.Event{Type: session.EventRequestLogin})

	// 2. Simulated network latency
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	// 3. Find the user matching both email and role. A miss drops the
	// machine back to anonymous and nothing is persisted.
	user, err := s.users.GetByEmailAndRole(ctx, input.Email, input.Role)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Install the user into the machine
	state = session.Reduce(state, session.Event{Type: session.EventLoginSucceeded, User: user})

	// 5. Persist the session under a fresh opaque id
	sess := &session.Session{
		ID:        uuid.New().String(),
		State:     state,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	// 6. Issue the access token carrying the session id
	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		string(user.Role),
		sess.ID,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s (%s)", user.Email, user.Role)

	return &AuthResponse{
		User:        user,
		AccessToken: token,
	}, nil
}

// Logout drives the session to anonymous and removes it. Logging out an
// unknown session succeeds: LOGOUT is valid from any state.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}

	log.Printf("✅ User logged out")
	return nil
}

// CurrentUser returns the authenticated user for a session id, re-reading
// the store so status changes made after login are visible
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State.Status() != session.StatusAuthenticated || sess.State.User == nil {
		return nil, domain.ErrUnauthorized
	}

	return s.users.GetByID(ctx, sess.State.User.ID)
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}
