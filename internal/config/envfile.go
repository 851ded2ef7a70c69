package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads .env.development from dir into the process environment when
// APP_ENV is "Development" (case-insensitive). Values from the file override
// variables that are already set. A missing file is not an error.
//
// It must run before NewConfig so that viper sees the loaded values.
func LoadEnvFile(dir string) (string, error) {
	if !strings.EqualFold(os.Getenv("APP_ENV"), DefaultEnvironment) {
		return "", nil
	}

	path := filepath.Join(dir, ".env."+strings.ToLower(DefaultEnvironment))
	if err := godotenv.Overload(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
