package config

import (
	"context"
	"log"
	"time"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/core/domain"
)

// SeedUsers returns the fixed demo account list the store starts from
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:        "1",
			Name:      "User user",
			Email:     "user@chapa.com",
			Role:      domain.RoleUser,
			IsActive:  true,
			Balance:   15000,
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Admin User",
			Email:     "admin@chapa.com",
			Role:      domain.RoleAdmin,
			IsActive:  true,
			Balance:   0,
			CreatedAt: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Super Admin",
			Email:     "superadmin@chapa.com",
			Role:      domain.RoleSuperAdmin,
			IsActive:  true,
			Balance:   0,
			CreatedAt: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "4",
			Name:      "Kebede",
			Email:     "jane@example.com",
			Role:      domain.RoleUser,
			IsActive:  true,
			Balance:   8500,
			CreatedAt: time.Date(2024, 1, 12, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:        "5",
			Name:      "Chala",
			Email:     "bob@example.com",
			Role:      domain.RoleUser,
			IsActive:  false,
			Balance:   0,
			CreatedAt: time.Date(2024, 1, 8, 11, 30, 0, 0, time.UTC),
		},
	}
}

// SeedTransactions returns the demo transaction history for the seed wallet
func SeedTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			ID:          "1",
			UserID:      "1",
			Amount:      2500,
			Type:        domain.TransactionCredit,
			Description: "Payment received from client",
			Status:      domain.StatusCompleted,
			CreatedAt:   time.Date(2024, 1, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			UserID:      "1",
			Amount:      1200,
			Type:        domain.TransactionDebit,
			Description: "Transfer to bank account",
			Status:      domain.StatusCompleted,
			CreatedAt:   time.Date(2024, 1, 19, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			UserID:      "1",
			Amount:      800,
			Type:        domain.TransactionCredit,
			Description: "Refund processed",
			Status:      domain.StatusPending,
			CreatedAt:   time.Date(2024, 1, 18, 16, 45, 0, 0, time.UTC),
		},
	}
}

// SeedDemoData loads the seed users and transactions into the store. It is
// called at startup and by the scheduled demo reset.
func SeedDemoData(store *repositories.Store) error {
	ctx := context.Background()

	if err := store.Users.Reset(ctx, SeedUsers()); err != nil {
		return err
	}
	if err := store.Transactions.Reset(ctx, SeedTransactions()); err != nil {
		return err
	}

	log.Println("✅ Demo data seeded")
	return nil
}
