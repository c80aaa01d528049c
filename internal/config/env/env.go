package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Files returns the .env candidates for the given environment, most specific first
func Files(environment string) []string {
	if environment == "" {
		environment = "development"
	}
	return []string{
		filepath.Join("internal", "config", "env", fmt.Sprintf(".env.%s", environment)),
		fmt.Sprintf(".env.%s", environment),
		".env",
	}
}

// LoadEnv loads the first .env file that exists for the current ENV.
// godotenv never overrides variables already present in the process
// environment. Returns the loaded path, or "" when no file was found.
func LoadEnv() (string, error) {
	for _, path := range Files(os.Getenv("ENV")) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("error loading env file %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}
