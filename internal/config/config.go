package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	SessionSecret string `env:"PORTFOLIO_SESSION_SECRET,required"`
	ServerHost    string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel      string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`

	// SetupKey seeds site_config.setup_key on first run. If empty a random
	// key is generated and logged once at startup.
	SetupKey string `env:"PORTFOLIO_SETUP_KEY"`

	// Cache configuration
	RedisURL    string `env:"PORTFOLIO_REDIS_URL"`                       // Optional Redis URL for the content cache
	CachePrefix string `env:"PORTFOLIO_CACHE_PREFIX" envDefault:"pf:"`   // Redis key prefix
	CacheTTL    int    `env:"PORTFOLIO_CACHE_TTL" envDefault:"300"`      // Content cache TTL in seconds

	// SMTP configuration for contact-form notifications. Notifications are
	// disabled when SMTPHost is empty.
	SMTPHost     string `env:"PORTFOLIO_SMTP_HOST"`
	SMTPPort     int    `env:"PORTFOLIO_SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"PORTFOLIO_SMTP_USERNAME"`
	SMTPPassword string `env:"PORTFOLIO_SMTP_PASSWORD"`
	SMTPFrom     string `env:"PORTFOLIO_SMTP_FROM"`

	// OwnerEmail receives contact-form notifications. Defaults to SMTPFrom
	// when unset.
	OwnerEmail string `env:"PORTFOLIO_OWNER_EMAIL"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MailEnabled returns true if contact-form email notifications are configured.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("PORTFOLIO_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if cfg.OwnerEmail == "" {
		cfg.OwnerEmail = cfg.SMTPFrom
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("PORTFOLIO_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
