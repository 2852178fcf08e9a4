package repositories

import (
	"context"

	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/core/session"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountActiveByRole(ctx context.Context, role domain.Role) (int64, error)
	Reset(ctx context.Context, seed []domain.User) error
}

// TransactionRepository defines transaction repository interface
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Transaction, error)
	List(ctx context.Context) ([]*domain.Transaction, error)
	Count(ctx context.Context) (int64, error)
	Reset(ctx context.Context, seed []domain.Transaction) error
}

// SessionRepository defines session repository interface
type SessionRepository interface {
	Save(ctx context.Context, sess *session.Session) error
	GetByID(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// Store bundles the in-memory repositories. It is the process-lifetime
// "database": restarting the process resets everything to the seed data.
type Store struct {
	Users        UserRepository
	Transactions TransactionRepository
	Sessions     SessionRepository
}

// NewStore creates the in-memory store. sessionFile may be empty to keep
// sessions in memory only.
func NewStore(sessionFile string) (*Store, error) {
	sessions, err := NewSessionRepository(sessionFile)
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:        NewUserRepository(),
		Transactions: NewTransactionRepository(),
		Sessions:     sessions,
	}, nil
}
