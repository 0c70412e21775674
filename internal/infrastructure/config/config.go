package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/PurpleArcher2/discounts-app/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	SeedAdminEmail     string
	SeedAdminPassword  string
	SeedAdminName      string
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AccessTokenExpiry:  time.Minute * time.Duration(getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)),
		RefreshTokenExpiry: time.Hour * time.Duration(getEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)), // 7 days
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", "admin@campus.com"),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		SeedAdminName:      getEnv("SEED_ADMIN_NAME", "System Administrator"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAccessTokenExpiry returns the expiry duration for access tokens.
func (c *Config) GetAccessTokenExpiry() time.Duration {
	return c.AccessTokenExpiry
}

// GetRefreshTokenExpiry returns the expiry duration for refresh tokens.
func (c *Config) GetRefreshTokenExpiry() time.Duration {
	return c.RefreshTokenExpiry
}

// GetSeedAdminEmail returns the email of the seeded admin account.
func (c *Config) GetSeedAdminEmail() string {
	return c.SeedAdminEmail
}

// GetSeedAdminPassword returns the initial password of the seeded admin
// account. Change it after the first deployment.
func (c *Config) GetSeedAdminPassword() string {
	return c.SeedAdminPassword
}

// GetSeedAdminName returns the display name of the seeded admin account.
func (c *Config) GetSeedAdminName() string {
	return c.SeedAdminName
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
