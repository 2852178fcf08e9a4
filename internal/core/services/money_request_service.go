package services

import (
	"context"
	"log"
	"strings"
	"time"

	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"

	"github.com/google/uuid"
)

// moneyRequestBaseURL is the public link prefix for payment requests
const moneyRequestBaseURL = "https://chapa.app/request/"

// MoneyRequestService builds shareable payment-request links. Requests are
// fire-and-forget for the demo: only the receipt leaves this service.
type MoneyRequestService struct {
	sim *latency.Simulator
}

// NewMoneyRequestService creates a new money request service
func NewMoneyRequestService(sim *latency.Simulator) *MoneyRequestService {
	return &MoneyRequestService{sim: sim}
}

// MoneyRequestInput represents a payment request draft
type MoneyRequestInput struct {
	RequesterID    string
	RequesterEmail string
	Amount         float64
	Description    string
	DueDate        *time.Time
	IsUrgent       bool
}

// Create mints a random opaque request id and the shareable URL
func (s *MoneyRequestService) Create(ctx context.Context, input *MoneyRequestInput) (*domain.MoneyRequest, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	id := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]

	log.Printf("Creating money request: %s for %.2f ETB (urgent=%t)", input.RequesterEmail, input.Amount, input.IsUrgent)

	return &domain.MoneyRequest{
		ID:  id,
		URL: moneyRequestBaseURL + id,
	}, nil
}
