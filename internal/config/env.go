package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// bootstrap is read before the .env file is loaded, so it is kept out of
// AppConfig, which may be populated from that file.
type bootstrap struct {
	EnvFile string `env:"SUBCMD_ENV_FILE" envDefault:".env"`
}

// EnvFilePath returns the .env file to load, SUBCMD_ENV_FILE or ".env".
func EnvFilePath() (string, error) {
	b, err := env.ParseAs[bootstrap]()
	if err != nil {
		return "", fmt.Errorf("failed to parse SUBCMD_ENV_FILE: %w", err)
	}
	return b.EnvFile, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	if err := godotenv.Load(path); err != nil {
		return false, err
	}
	return true, nil
}
