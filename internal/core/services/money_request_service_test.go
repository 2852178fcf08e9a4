package services

import (
	"context"
	"strings"
	"testing"

	"chapa-dashboard/internal/pkg/latency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMoneyRequest(t *testing.T) {
	svc := NewMoneyRequestService(latency.Disabled())

	request, err := svc.Create(context.Background(), &MoneyRequestInput{
		RequesterID:    "1",
		RequesterEmail: "jane@example.com",
		Amount:         500,
		Description:    "Dinner split",
	})
	require.NoError(t, err)

	assert.Len(t, request.ID, 9)
	assert.True(t, strings.HasPrefix(request.URL, "https://chapa.app/request/"))
	assert.Equal(t, "https://chapa.app/request/"+request.ID, request.URL)
}

func TestCreateMoneyRequestIDsAreUnique(t *testing.T) {
	svc := NewMoneyRequestService(latency.Disabled())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		request, err := svc.Create(ctx, &MoneyRequestInput{
			RequesterID:    "1",
			RequesterEmail: "jane@example.com",
			Amount:         1,
			Description:    "x",
		})
		require.NoError(t, err)
		assert.False(t, seen[request.ID])
		seen[request.ID] = true
	}
}
