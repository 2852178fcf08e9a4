package services

import (
	"context"
	"testing"

	"chapa-dashboard/internal/pkg/latency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsStartFromDefaults(t *testing.T) {
	svc := NewSettingsService(latency.Disabled())

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Chapa Dashboard", settings.General.SiteName)
	assert.Equal(t, "ETB", settings.General.DefaultCurrency)
	assert.Equal(t, 8, settings.Security.PasswordMinLength)
	assert.Equal(t, 5, settings.Security.MaxLoginAttempts)
	assert.True(t, settings.Notifications.EmailNotifications)
	assert.False(t, settings.General.MaintenanceMode)
}

func TestSettingsUpdateReplacesDocument(t *testing.T) {
	svc := NewSettingsService(latency.Disabled())
	ctx := context.Background()

	next := DefaultSystemSettings()
	next.General.MaintenanceMode = true
	next.Security.SessionTimeout = 60

	updated, err := svc.Update(ctx, &next)
	require.NoError(t, err)
	assert.True(t, updated.General.MaintenanceMode)

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.General.MaintenanceMode)
	assert.Equal(t, 60, settings.Security.SessionTimeout)
}

func TestSettingsGetReturnsCopy(t *testing.T) {
	svc := NewSettingsService(latency.Disabled())
	ctx := context.Background()

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	settings.General.SiteName = "Mutated"

	again, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chapa Dashboard", again.General.SiteName)
}
