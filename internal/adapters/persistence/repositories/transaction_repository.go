package repositories

import (
	"context"
	"strconv"
	"sync"
	"time"

	"chapa-dashboard/internal/core/domain"
)

// transactionRepository implements TransactionRepository over a
// mutex-guarded append-only slice
type transactionRepository struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	lastID       int64
}

// NewTransactionRepository creates a new in-memory transaction repository
func NewTransactionRepository() TransactionRepository {
	return &transactionRepository{}
}

// Create assigns a time-derived id and creation timestamp and appends the
// transaction. The caller-supplied status is trusted verbatim; nothing in
// the system advances it afterwards.
func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *tx
	stored.ID = r.nextID()
	stored.CreatedAt = time.Now().UTC()
	r.transactions = append(r.transactions, stored)

	return stored.Clone(), nil
}

// ListByUserID returns the user's transactions in append order
func (r *transactionRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Transaction
	for i := range r.transactions {
		if r.transactions[i].UserID == userID {
			result = append(result, r.transactions[i].Clone())
		}
	}
	return result, nil
}

// List returns all transactions in append order
func (r *transactionRepository) List(ctx context.Context) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Transaction, 0, len(r.transactions))
	for i := range r.transactions {
		result = append(result, r.transactions[i].Clone())
	}
	return result, nil
}

// Count returns the number of stored transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.transactions)), nil
}

// Reset replaces the store content with the seed list
func (r *transactionRepository) Reset(ctx context.Context, seed []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = make([]domain.Transaction, len(seed))
	copy(r.transactions, seed)
	return nil
}

func (r *transactionRepository) nextID() string {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}
