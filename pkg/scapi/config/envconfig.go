package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/quatton/scitech/pkg/db"
	"github.com/quatton/scitech/pkg/sclog"
)

type EnvConfig struct {
	Port           string `envconfig:"PORT" default:"3002"`
	BaseURL        string `envconfig:"BASE_URL" default:"http://localhost:3002"`
	Environment    string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	AuthSecret     string `envconfig:"AUTH_SECRET" required:"true"`
	AccessTokenTTL int    `envconfig:"ACCESS_TOKEN_TTL" default:"3600"`
	AdminEmail     string `envconfig:"ADMIN_EMAIL" default:"admin@example.com"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD" default:"password123"`

	DBDriver    string `envconfig:"DB_DRIVER" default:"postgres"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      int    `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"scitech"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"password"`
	DBName      string `envconfig:"DB_NAME" default:"scitech"`
	DBSSLMode   string `envconfig:"DB_SSLMODE" default:"disable"`
	DBPath      string `envconfig:"DB_PATH" default:"scitech.db"`
	AutoMigrate bool   `envconfig:"AUTO_MIGRATE" default:"true"`

	ValkeyAddr     string `envconfig:"VALKEY_ADDR"`
	ValkeyPassword string `envconfig:"VALKEY_PASSWORD"`
	ValkeyDB       int    `envconfig:"VALKEY_DB" default:"0"`

	NATSURL     string `envconfig:"NATS_URL"`
	NATSSubject string `envconfig:"NATS_SUBJECT" default:"machines.updates"`

	SimulatorEnabled  bool          `envconfig:"SIMULATOR_ENABLED" default:"true"`
	SimulatorInterval time.Duration `envconfig:"SIMULATOR_INTERVAL" default:"5s"`
}

// IsDev reports whether ENVIRONMENT names a development setup (or is unset).
func IsDev() bool {
	env := strings.ToLower(os.Getenv("ENVIRONMENT"))
	return env == "development" || env == "dev" || env == ""
}

func ValidateEnv() (*EnvConfig, error) {
	if IsDev() {
		if err := godotenv.Load(); err != nil {
			log.Println("ℹ No .env file found")
		} else {
			log.Println("✓ Loaded .env file")
		}
	}

	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem at once rather than stopping at the first.
func (c *EnvConfig) Validate() error {
	var errors []string

	if len(c.AuthSecret) < 32 {
		errors = append(errors, "  ❌ AUTH_SECRET must be at least 32 characters")
	}

	if c.AccessTokenTTL <= 0 {
		errors = append(errors, "  ❌ ACCESS_TOKEN_TTL must be positive")
	}

	if c.AdminEmail == "" || c.AdminPassword == "" {
		errors = append(errors, "  ❌ ADMIN_EMAIL and ADMIN_PASSWORD must both be set")
	}

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		errors = append(errors, "  ❌ BASE_URL must be a valid URL")
	}

	if _, err := sclog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, "  ❌ LOG_LEVEL must be one of debug, info, warn, error")
	}

	switch c.DBDriver {
	case "postgres":
	case "sqlite":
		if c.DBPath == "" {
			errors = append(errors, "  ❌ DB_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		errors = append(errors, "  ❌ DB_DRIVER must be postgres or sqlite")
	}

	if c.SimulatorEnabled && c.SimulatorInterval <= 0 {
		errors = append(errors, "  ❌ SIMULATOR_INTERVAL must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("environment validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return nil
}

// TokenTTL returns ACCESS_TOKEN_TTL as a duration.
func (c *EnvConfig) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTL) * time.Second
}

func MaskSecret(secret string) string {
	if secret == "" {
		return "<not set>"
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

func (c *EnvConfig) Print(fmtr func(string, ...interface{})) {
	fmtr("📋 Configuration:\n")
	fmtr("  Environment: %s\n", c.Environment)
	fmtr("  Port: %s\n", c.Port)
	fmtr("  Base URL: %s\n", c.BaseURL)
	fmtr("  Auth Secret: %s\n", MaskSecret(c.AuthSecret))
	fmtr("  Token TTL: %ds\n", c.AccessTokenTTL)
	fmtr("  Operator: %s\n", c.AdminEmail)

	if c.DBDriver == "sqlite" {
		fmtr("  Database: sqlite %s\n", c.DBPath)
	} else {
		fmtr("  Database: %s@%s:%d/%s (sslmode=%s)\n", c.DBUser, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
	}

	if c.ValkeyAddr != "" {
		fmtr("  Valkey: ✓ %s (db %d)\n", c.ValkeyAddr, c.ValkeyDB)
	} else {
		fmtr("  Valkey: ✗ Disabled (in-memory revocation list)\n")
	}

	if c.NATSURL != "" {
		fmtr("  NATS: ✓ %s -> %s\n", c.NATSURL, c.NATSSubject)
	} else {
		fmtr("  NATS: ✗ Disabled\n")
	}

	if c.SimulatorEnabled {
		fmtr("  Simulator: ✓ every %s\n", c.SimulatorInterval)
	} else {
		fmtr("  Simulator: ✗ Disabled\n")
	}
}

// Database maps the DB_* variables onto a db.Config.
func (c *EnvConfig) Database() db.Config {
	return db.Config{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Database: c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}
