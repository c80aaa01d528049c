package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	dotenv "github.com/osa911/astrobooking/internal/config/env"
	"github.com/osa911/astrobooking/internal/logging"
)

const (
	TransportSMTP = "smtp"
	TransportSES  = "ses"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment     string        `env:"ENV" envDefault:"development"`
	Port            string        `env:"PORT" envDefault:"5000"`
	FrontendURL     string        `env:"FRONTEND_URL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES" envDefault:"5242880"`

	// Logging Configuration
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile           string `env:"LOG_FILE" envDefault:"./logs/api.log"`
	LogRequests       bool   `env:"LOG_REQUESTS" envDefault:"true"`
	ValidationLogFile string `env:"VALIDATION_LOG_FILE" envDefault:"validation_error.log"`

	// Mail Configuration
	MailTransport string        `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	SMTPHost      string        `env:"SMTP_HOST"`
	SMTPPort      int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure    bool          `env:"SMTP_SECURE" envDefault:"false"`
	SMTPUser      string        `env:"SMTP_USER"`
	SMTPPass      string        `env:"SMTP_PASS"`
	SMTPFromEmail string        `env:"SMTP_FROM_EMAIL"`
	SMTPTimeout   time.Duration `env:"SMTP_TIMEOUT" envDefault:"20s"`
	AdminEmail    string        `env:"ADMIN_EMAIL"`
	LogoPath      string        `env:"LOGO_PATH" envDefault:"logo_icon.jpg"`

	// AWS SES Configuration
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`

	// Payment Configuration
	PaymentUPIID        string `env:"PAYMENT_UPI_ID" envDefault:"astrosharma74@ptyes"`
	PaymentMerchantName string `env:"PAYMENT_MERCHANT_NAME" envDefault:"AstroSharma"`

	// Rate limit store; in-process when empty
	RedisURL string `env:"REDIS_URL"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from .env files and environment variables
func Load() (*Config, error) {
	if _, err := dotenv.LoadEnv(); err != nil {
		return nil, err
	}
	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that have no safe default
func (c *Config) Validate() error {
	c.MailTransport = strings.ToLower(strings.TrimSpace(c.MailTransport))
	switch c.MailTransport {
	case TransportSMTP, TransportSES:
	default:
		return fmt.Errorf("unsupported MAIL_TRANSPORT %q", c.MailTransport)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	return nil
}

// FromAddress is the envelope sender, falling back to the SMTP user
func (c *Config) FromAddress() string {
	if c.SMTPFromEmail != "" {
		return c.SMTPFromEmail
	}
	return c.SMTPUser
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ListenAddr returns the address the HTTP server binds to
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// Logging builds the logger configuration
func (c *Config) Logging() *logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel
	cfg.File = c.LogFile
	cfg.LogRequests = c.LogRequests
	return cfg
}
