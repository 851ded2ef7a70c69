package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DriverSQLite   DatabaseDriver = "sqlite"   // Single file database (default)
	DriverPostgres DatabaseDriver = "postgres" // PostgreSQL server
)

var (
	ErrJWTKeyRequired = errors.New("JWT_KEY must be set")
	ErrUnknownDriver  = errors.New("unknown database driver")
)

type (
	Config struct {
		HTTP
		Global
		Database
		JWT
		Auth
		Seed
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string
	}
	Global struct {
		Environment              string
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   DatabaseDriver
		Path     string // sqlite only
		Host     string
		Port     int
		Name     string
		User     string
		Password string
		SSLMode  string
		LogLevel string // silent, error, warn, info
	}
	JWT struct {
		Key      string
		Issuer   string
		Audience string
		Expiry   time.Duration
	}
	Auth struct {
		BcryptCost        int
		MinPasswordLength int // Deliberately low by default, see AUTH_MIN_PASSWORD_LENGTH

		// Rate limiting configuration for the login endpoint
		MaxLoginAttempts int           // Max failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}
	Seed struct {
		OnStartup bool // Insert sample books and quotations into empty tables
		FailFast  bool // Abort startup when seeding fails instead of logging and continuing
	}
)

// DSN returns the postgres connection string built from the individual DB_* settings.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode)
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.JWT.Key == "" {
		return ErrJWTKeyRequired
	}
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Database.Driver)
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("app_env", "Production")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Database defaults
	v.SetDefault("db_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_name", "shelf")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("db_log_level", "warn")

	// Token defaults
	v.SetDefault("jwt_key", "")
	v.SetDefault("jwt_issuer", DefaultJWTIssuer)
	v.SetDefault("jwt_audience", DefaultJWTAudience)
	v.SetDefault("jwt_expiry", DefaultTokenLifetime.String())

	// Auth defaults
	v.SetDefault("auth_bcrypt_cost", 12)
	v.SetDefault("auth_min_password_length", DefaultMinPasswordLength)
	v.SetDefault("auth_max_login_attempts", 5)
	v.SetDefault("auth_rate_limit_window", "15m")
	v.SetDefault("auth_lockout_duration", "30m")

	// Seeding defaults
	v.SetDefault("seed_on_startup", true)
	v.SetDefault("seed_fail_fast", true)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			Environment:              v.GetString("APP_ENV"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   DatabaseDriver(strings.ToLower(v.GetString("DB_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			LogLevel: v.GetString("DB_LOG_LEVEL"),
		},
		JWT: JWT{
			Key:      v.GetString("JWT_KEY"),
			Issuer:   v.GetString("JWT_ISSUER"),
			Audience: v.GetString("JWT_AUDIENCE"),
			Expiry:   v.GetDuration("JWT_EXPIRY"),
		},
		Auth: Auth{
			BcryptCost:        v.GetInt("AUTH_BCRYPT_COST"),
			MinPasswordLength: v.GetInt("AUTH_MIN_PASSWORD_LENGTH"),
			MaxLoginAttempts:  v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:   v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:   v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
		Seed: Seed{
			OnStartup: v.GetBool("SEED_ON_STARTUP"),
			FailFast:  v.GetBool("SEED_FAIL_FAST"),
		},
	}
}
