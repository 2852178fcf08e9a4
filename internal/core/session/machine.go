package session

import (
	"time"

	"chapa-dashboard/internal/core/domain"
)

// Status names the state the auth machine is in. It is derived from the
// AuthState flags rather than stored, so the two can never disagree.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
)

// EventType identifies an auth state transition event
type EventType string

const (
	EventRequestLogin   EventType = "LOGIN_START"
	EventLoginSucceeded EventType = "LOGIN_SUCCESS"
	EventLoginFailed    EventType = "LOGIN_FAILURE"
	EventLogout         EventType = "LOGOUT"
)

// Event carries a transition event and, for LOGIN_SUCCESS, its payload
type Event struct {
	Type EventType
	User *domain.User
}

// AuthState is the authentication state of one logical client
type AuthState struct {
	User            *domain.User `json:"user"`
	IsLoading       bool         `json:"isLoading"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// NewState returns the anonymous initial state
func NewState() AuthState {
	return AuthState{}
}

// Status derives the machine state from the flags
func (s AuthState) Status() Status {
	switch {
	case s.IsLoading:
		return StatusAuthenticating
	case s.IsAuthenticated:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// Reduce applies an event to a state and returns the next state. A login
// request only raises the loading flag; success installs the user, failure
// and logout both fall back to anonymous. Unknown events are no-ops.
func Reduce(state AuthState, event Event) AuthState {
	switch event.Type {
	case EventRequestLogin:
		state.IsLoading = true
		return state
	case EventLoginSucceeded:
		return AuthState{
			User:            event.User.Clone(),
			IsLoading:       false,
			IsAuthenticated: true,
		}
	case EventLoginFailed, EventLogout:
		return AuthState{}
	default:
		return state
	}
}

// Session is a persisted auth state keyed by an opaque id. A session
// restored from a snapshot is treated as already authenticated.
type Session struct {
	ID        string    `json:"id"`
	State     AuthState `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.State.User = s.State.User.Clone()
	return &clone
}
