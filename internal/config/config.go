package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string
	Port    string
	JWT     JWTConfig
	Cookie  CookieConfig
	Demo    DemoConfig
}

// JWTConfig holds access token configuration
type JWTConfig struct {
	Secret          string
	AccessTokenMins int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// DemoConfig holds the demo-backend knobs: simulated service latency,
// scheduled data reset and the session snapshot file
type DemoConfig struct {
	LatencyEnabled bool
	LatencyMinMs   int
	LatencyMaxMs   int
	ResetEnabled   bool
	ResetSchedule  string
	SessionFile    string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "3000"),
		JWT:     loadJWTConfig(appMode),
		Cookie:  loadCookieConfig(appMode),
		Demo:    loadDemoConfig(),
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))

	return JWTConfig{
		Secret:          getEnv(prefix+"JWT_SECRET", "default_secret"),
		AccessTokenMins: accessMins,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadDemoConfig loads the demo-backend configuration
func loadDemoConfig() DemoConfig {
	latencyEnabled, _ := strconv.ParseBool(getEnv("DEMO_LATENCY_ENABLED", "true"))
	latencyMin, _ := strconv.Atoi(getEnv("DEMO_LATENCY_MIN_MS", "500"))
	latencyMax, _ := strconv.Atoi(getEnv("DEMO_LATENCY_MAX_MS", "1200"))
	resetEnabled, _ := strconv.ParseBool(getEnv("DEMO_RESET_ENABLED", "false"))

	return DemoConfig{
		LatencyEnabled: latencyEnabled,
		LatencyMinMs:   latencyMin,
		LatencyMaxMs:   latencyMax,
		ResetEnabled:   resetEnabled,
		ResetSchedule:  getEnv("DEMO_RESET_SCHEDULE", "0 0 * * *"),
		SessionFile:    getEnv("SESSION_FILE", ""),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://dashboard.chapa.app"
	}
	return origins
}
