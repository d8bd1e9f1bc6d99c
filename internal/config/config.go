package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Checkout batch policies. Best-effort leaves orders created before the
// failing line in place; all-or-nothing issues compensating deletes for them.
const (
	CheckoutPolicyBestEffort   = "best-effort"
	CheckoutPolicyAllOrNothing = "all-or-nothing"
)

// Auth providers. "local" signs and verifies its own JWTs; "firebase"
// verifies ID tokens issued by Firebase Authentication.
const (
	AuthProviderLocal    = "local"
	AuthProviderFirebase = "firebase"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	JWT       JWTConfig       `yaml:"jwt"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Storage   StorageConfig   `yaml:"storage"`
	Checkout  CheckoutConfig  `yaml:"checkout"`
	Profile   ProfileConfig   `yaml:"profile"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig selects the session provider
type AuthConfig struct {
	Provider        string `yaml:"provider"`         // "local" or "firebase"
	CredentialsFile string `yaml:"credentials_file"` // Firebase service account JSON
}

// JWTConfig contains JWT token settings for the local provider
type JWTConfig struct {
	Secret             string `yaml:"secret"`
	AccessTokenExpiry  int    `yaml:"access_token_expiry_minutes"`
	RefreshTokenExpiry int    `yaml:"refresh_token_expiry_minutes"`
}

// SendGridConfig contains outbound email settings
type SendGridConfig struct {
	APIKey   string `yaml:"api_key"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
}

// StorageConfig contains equipment image storage settings
type StorageConfig struct {
	UploadDir   string `yaml:"upload_dir"`
	BaseURL     string `yaml:"base_url"`
	MaxFileSize int64  `yaml:"max_file_size_mb"`
}

// CheckoutConfig contains checkout batch settings
type CheckoutConfig struct {
	Policy string `yaml:"policy"` // "best-effort" or "all-or-nothing"
}

// ProfileConfig bounds the retry loop used when a verified session has no
// profile row yet (eventually-consistent signup)
type ProfileConfig struct {
	MaxAttempts  int `yaml:"max_attempts"`
	RetryDelayMs int `yaml:"retry_delay_ms"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	FlagOverdueOrders  string `yaml:"flag_overdue_orders"`
	CancelStaleOrders  string `yaml:"cancel_stale_orders"`
	PurgeCartSnapshots string `yaml:"purge_cart_snapshots"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	if val := os.Getenv("AUTH_PROVIDER"); val != "" {
		c.Auth.Provider = val
	}
	if val := os.Getenv("FIREBASE_CREDENTIALS_FILE"); val != "" {
		c.Auth.CredentialsFile = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM"); val != "" {
		c.SendGrid.From = val
	}

	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("UPLOAD_DIR"); val != "" {
		c.Storage.UploadDir = val
	}

	if val := os.Getenv("CHECKOUT_POLICY"); val != "" {
		c.Checkout.Policy = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Auth.Provider == "" {
		c.Auth.Provider = AuthProviderLocal
	}
	if c.Auth.Provider != AuthProviderLocal && c.Auth.Provider != AuthProviderFirebase {
		return fmt.Errorf("unknown auth provider: %s", c.Auth.Provider)
	}
	if c.Auth.Provider == AuthProviderFirebase && c.Auth.CredentialsFile == "" {
		return fmt.Errorf("firebase credentials file is required for the firebase auth provider")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}
	if c.JWT.RefreshTokenExpiry == 0 {
		c.JWT.RefreshTokenExpiry = 60 * 24 * 7
	}

	if c.Storage.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}

	if c.Checkout.Policy == "" {
		c.Checkout.Policy = CheckoutPolicyAllOrNothing
	}
	if c.Checkout.Policy != CheckoutPolicyBestEffort && c.Checkout.Policy != CheckoutPolicyAllOrNothing {
		return fmt.Errorf("unknown checkout policy: %s", c.Checkout.Policy)
	}

	if c.Profile.MaxAttempts == 0 {
		c.Profile.MaxAttempts = 3
	}
	if c.Profile.RetryDelayMs == 0 {
		c.Profile.RetryDelayMs = 500
	}

	// Scheduler defaults
	if c.Scheduler.FlagOverdueOrders == "" {
		c.Scheduler.FlagOverdueOrders = "0 0 2 * * *" // 2 AM UTC
	}
	if c.Scheduler.CancelStaleOrders == "" {
		c.Scheduler.CancelStaleOrders = "0 30 2 * * *" // 2:30 AM UTC
	}
	if c.Scheduler.PurgeCartSnapshots == "" {
		c.Scheduler.PurgeCartSnapshots = "0 0 4 * * 0" // Sunday 4 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
