package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads KEY=VALUE pairs from the file named by DOTENV (or
// [DefaultDotEnvPath]) into the process environment. Variables that are
// already set are left untouched. A missing file is not an error; the
// returned path is empty in that case.
func loadDotEnv() (string, error) {
	path := os.Getenv("DOTENV")
	if path == "" {
		path = DefaultDotEnvPath
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("error loading dotenv file %s: %w", path, err)
	}

	return path, nil
}
