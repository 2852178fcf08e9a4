package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"
)

// Transfer limits and fee schedule
const (
	MaxTransferAmount = 50000 // ETB, per transfer

	instantFeeRate  = 0.015
	instantFeeMin   = 5
	standardFeeRate = 0.01
	standardFeeMin  = 2
)

// SendMethod selects the fee schedule for a transfer
type SendMethod string

const (
	SendMethodInstant  SendMethod = "instant"
	SendMethodStandard SendMethod = "standard"
)

// TransactionService handles wallet transaction operations
type TransactionService struct {
	transactions repositories.TransactionRepository
	users        repositories.UserRepository
	sim          *latency.Simulator
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactions repositories.TransactionRepository,
	users repositories.UserRepository,
	sim *latency.Simulator,
) *TransactionService {
	return &TransactionService{transactions: transactions, users: users, sim: sim}
}

// List returns a user's transactions in store (append) order
func (s *TransactionService) List(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}
	return s.transactions.ListByUserID(ctx, userID)
}

// CreateTransactionInput represents a transaction draft. The status is
// trusted verbatim; nothing advances it afterwards.
type CreateTransactionInput struct {
	UserID      string
	Amount      float64
	Type        domain.TransactionType
	Description string
	Status      domain.TransactionStatus
}

// Create appends a transaction. Bound checking is deliberately absent here:
// amount limits are enforced at the transport boundary.
func (s *TransactionService) Create(ctx context.Context, input *CreateTransactionInput) (*domain.Transaction, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.StatusPending
	}

	return s.transactions.Create(ctx, &domain.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Type:        input.Type,
		Description: input.Description,
		Status:      status,
	})
}

// SendMoneyInput represents a validated transfer request
type SendMoneyInput struct {
	UserID    string
	Recipient string
	Amount    float64
	Method    SendMethod
	Note      string
}

// SendMoneyResult is the transfer receipt
type SendMoneyResult struct {
	Transaction *domain.Transaction `json:"transaction"`
	Fee         float64             `json:"fee"`
	Total       float64             `json:"total"`
	NewBalance  float64             `json:"newBalance"`
}

// SendMoney records a pending debit and deducts amount plus fee from the
// sender's wallet. The recipient side never moves; only the sender's demo
// balance changes.
func (s *TransactionService) SendMoney(ctx context.Context, input *SendMoneyInput) (*SendMoneyResult, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	sender, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Transfer to %s", input.Recipient)
	if input.Note != "" {
		description = fmt.Sprintf("%s - %s", description, input.Note)
	}

	tx, err := s.transactions.Create(ctx, &domain.Transaction{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Type:        domain.TransactionDebit,
		Description: description,
		Status:      domain.StatusPending,
	})
	if err != nil {
		return nil, err
	}

	fee := CalculateFee(input.Amount, input.Method)
	balance := sender.Balance - (input.Amount + fee)
	if _, err := s.users.Update(ctx, input.UserID, domain.UserPatch{Balance: &balance}); err != nil {
		return nil, err
	}

	log.Printf("✅ Transfer recorded: %s -> %s (%.2f ETB, fee %.2f)", input.UserID, input.Recipient, input.Amount, fee)

	return &SendMoneyResult{
		Transaction: tx,
		Fee:         fee,
		Total:       input.Amount + fee,
		NewBalance:  balance,
	}, nil
}

// CalculateFee returns the transfer fee: instant transfers cost 1.5% with
// a 5 ETB minimum, standard transfers 1% with a 2 ETB minimum
func CalculateFee(amount float64, method SendMethod) float64 {
	if method == SendMethodInstant {
		return math.Max(amount*instantFeeRate, instantFeeMin)
	}
	return math.Max(amount*standardFeeRate, standardFeeMin)
}
