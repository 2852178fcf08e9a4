package services

import (
	"context"
	"log"
	"sync"

	"chapa-dashboard/internal/pkg/latency"
)

// GeneralSettings holds the site-wide options
type GeneralSettings struct {
	SiteName          string `json:"siteName"`
	SiteDescription   string `json:"siteDescription"`
	DefaultCurrency   string `json:"defaultCurrency"`
	Timezone          string `json:"timezone"`
	MaintenanceMode   bool   `json:"maintenanceMode"`
	AllowRegistration bool   `json:"allowRegistration"`
}

// SecuritySettings holds the security policy knobs
type SecuritySettings struct {
	PasswordMinLength      int  `json:"passwordMinLength" validate:"omitempty,min=6,max=128"`
	SessionTimeout         int  `json:"sessionTimeout" validate:"omitempty,min=1"`
	MaxLoginAttempts       int  `json:"maxLoginAttempts" validate:"omitempty,min=1"`
	RequireTwoFactor       bool `json:"requireTwoFactor"`
	RequireStrongPasswords bool `json:"requireStrongPasswords"`
	AllowPasswordReset     bool `json:"allowPasswordReset"`
}

// NotificationSettings holds the notification toggles
type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	TransactionAlerts  bool `json:"transactionAlerts"`
	SecurityAlerts     bool `json:"securityAlerts"`
	SystemUpdates      bool `json:"systemUpdates"`
}

// SystemSettings is the full settings document the system page edits
type SystemSettings struct {
	General       GeneralSettings      `json:"general"`
	Security      SecuritySettings     `json:"security"`
	Notifications NotificationSettings `json:"notifications"`
}

// DefaultSystemSettings returns the settings the process starts with
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		General: GeneralSettings{
			SiteName:          "Chapa Dashboard",
			SiteDescription:   "Role-based payments dashboard demo",
			DefaultCurrency:   "ETB",
			Timezone:          "Africa/Addis_Ababa",
			MaintenanceMode:   false,
			AllowRegistration: true,
		},
		Security: SecuritySettings{
			PasswordMinLength:      8,
			SessionTimeout:         30,
			MaxLoginAttempts:       5,
			RequireTwoFactor:       false,
			RequireStrongPasswords: true,
			AllowPasswordReset:     true,
		},
		Notifications: NotificationSettings{
			EmailNotifications: true,
			SMSNotifications:   false,
			PushNotifications:  true,
			TransactionAlerts:  true,
			SecurityAlerts:     true,
			SystemUpdates:      false,
		},
	}
}

// SettingsService owns the in-memory system settings. Like everything else
// in the demo they reset on restart.
type SettingsService struct {
	mu       sync.RWMutex
	settings SystemSettings
	sim      *latency.Simulator
}

// NewSettingsService creates a settings service with the defaults loaded
func NewSettingsService(sim *latency.Simulator) *SettingsService {
	return &SettingsService{
		settings: DefaultSystemSettings(),
		sim:      sim,
	}
}

// Get returns a copy of the current settings
func (s *SettingsService) Get(ctx context.Context) (*SystemSettings, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := s.settings
	return &settings, nil
}

// Update replaces the settings document and returns the stored copy
func (s *SettingsService) Update(ctx context.Context, settings *SystemSettings) (*SystemSettings, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.settings = *settings
	stored := s.settings
	s.mu.Unlock()

	log.Printf("✅ System settings updated (maintenance=%t)", stored.General.MaintenanceMode)
	return &stored, nil
}
