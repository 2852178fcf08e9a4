package domain

import "time"

// Role represents user role in the system
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents a wallet account holder
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"isActive"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers never share memory with the store
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// Valid reports whether the transaction type is known
func (t TransactionType) Valid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

// TransactionStatus represents the settlement state of a transaction.
// There is no automatic transition logic; a transaction keeps whatever
// status it was created with.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction represents a single wallet movement
type Transaction struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	Amount      float64           `json:"amount"`
	Type        TransactionType   `json:"type"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Clone returns a deep copy of the transaction
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	clone := *t
	return &clone
}

// SystemStats is a derived snapshot recomputed on every call, never stored
type SystemStats struct {
	TotalPayments     float64 `json:"totalPayments"`
	ActiveUsers       int64   `json:"activeUsers"`
	TotalTransactions int64   `json:"totalTransactions"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}

// MoneyRequest is the receipt returned for a payment-request link.
// Requests are fire-and-forget: nothing is persisted beyond the receipt.
type MoneyRequest struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// UserPatch carries the fields of a partial user update. Nil fields are
// left untouched by the store.
type UserPatch struct {
	Name     *string
	Email    *string
	IsActive *bool
	Balance  *float64
}
