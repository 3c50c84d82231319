package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvPathVar     = "EXPRLEX_ENV_PATH"
	DefaultEnvPath = ".env"
)

// LoadDotEnv loads variables from a .env file into the process environment.
// The path comes from EXPRLEX_ENV_PATH, falling back to defaultPath. Variables
// already set are left untouched. A missing file is not an error.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv(EnvPathVar)
	if envPath == "" {
		slog.Debug("EXPRLEX_ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Skipping .env, file not found", "path", envPath)
			return nil
		}
		return fmt.Errorf("loading %s: %w", envPath, err)
	}

	slog.Debug("Loaded environment file", "path", envPath)
	return nil
}
