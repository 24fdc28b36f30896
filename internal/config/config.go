// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultAPITimeout = 30 * time.Second
	DefaultDataDir    = ".data"
)

// Config holds the settings the application needs at startup.
type Config struct {
	// APIBaseURL is the claims API root. Required.
	APIBaseURL string

	// APITimeout bounds each API request.
	APITimeout time.Duration

	// DataDir is where local state such as the draft database lives.
	DataDir string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: os.Getenv("CLAIMS_API_BASE_URL"),
		APITimeout: DefaultAPITimeout,
		DataDir:    DefaultDataDir,
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("config: CLAIMS_API_BASE_URL is required")
	}

	if raw := os.Getenv("CLAIMS_API_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("config: invalid CLAIMS_API_TIMEOUT_MS %q", raw)
		}
		cfg.APITimeout = time.Duration(ms) * time.Millisecond
	}

	if dir := os.Getenv("CLAIMS_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}
