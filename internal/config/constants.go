package config

import "time"

const (
	// DefaultDatabasePath is the default path for the sqlite database file
	DefaultDatabasePath = "./shelf.db"

	// DefaultEnvironment is the APP_ENV value that triggers loading of .env.development
	DefaultEnvironment = "Development"

	DefaultJWTIssuer   = "shelf"
	DefaultJWTAudience = "shelf-clients"

	// DefaultTokenLifetime is how long an issued bearer token stays valid
	DefaultTokenLifetime = 3 * time.Hour

	// DefaultMinPasswordLength is kept at 3 on purpose to make registration easy.
	DefaultMinPasswordLength = 3
)
