package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EmailProviderSMTP = "smtp"
	EmailProviderNoOp = "noop"
)

// ErrMissingCredential marks a required transport credential that was not
// supplied. Validate raises it before any data is read.
var ErrMissingCredential = errors.New("missing_credential")

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	LogLevel    string

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSLMode         string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxLifetime int

	Email  EmailConfig
	Report ReportConfig
}

// EmailConfig configures the outbound notification transport.
type EmailConfig struct {
	Provider     string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	Recipient    string
}

// ReportConfig configures the report output.
type ReportConfig struct {
	OutputPath string
	Subject    string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "restaurant-analytics"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBType:            getenv("DATABASE_TYPE", "mysql"),
		DBHost:            getenv("DATABASE_HOST", "localhost"),
		DBPort:            getenv("DATABASE_PORT", "3306"),
		DBName:            getenv("DATABASE_NAME", "restaurant_db"),
		DBUser:            getenv("DATABASE_USER", "analytics_user"),
		DBPassword:        getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:         getenv("DATABASE_SSLMODE", "disable"),
		DBMaxIdleConn:     getenvInt("DATABASE_MAX_IDLE_CONN", 2),
		DBMaxOpenConn:     getenvInt("DATABASE_MAX_OPEN_CONN", 4),
		DBConnMaxLifetime: getenvInt("DATABASE_CONN_MAX_LIFETIME", 300),

		Email: EmailConfig{
			Provider:     strings.ToLower(getenv("EMAIL_PROVIDER", EmailProviderSMTP)),
			SMTPHost:     getenv("SMTP_HOST", ""),
			SMTPPort:     getenvInt("SMTP_PORT", 587),
			SMTPUsername: getenv("SMTP_USERNAME", ""),
			SMTPPassword: strings.TrimSpace(getenv("SMTP_PASSWORD", "")),
			SMTPFrom:     getenv("SMTP_FROM", ""),
			Recipient:    getenv("REPORT_RECIPIENT", ""),
		},
		Report: ReportConfig{
			OutputPath: getenv("REPORT_OUTPUT_PATH", "restaurant_orders_report.csv"),
			Subject:    getenv("REPORT_SUBJECT", "Restaurant orders report"),
		},
	}
}

// Validate checks that the selected notification transport is fully
// configured, so a missing credential never wastes a database read.
func (c Config) Validate() error {
	if c.Email.Provider == EmailProviderNoOp {
		return nil
	}
	required := []struct {
		key   string
		value string
	}{
		{"SMTP_HOST", c.Email.SMTPHost},
		{"SMTP_USERNAME", c.Email.SMTPUsername},
		{"SMTP_PASSWORD", c.Email.SMTPPassword},
		{"SMTP_FROM", c.Email.SMTPFrom},
		{"REPORT_RECIPIENT", c.Email.Recipient},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredential, r.key)
		}
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
