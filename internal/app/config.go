package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"studentdir/internal/credential"
)

// Environment variables read by LoadConfig.
const (
	EnvHome       = "STUDENTDIR_HOME"
	EnvLogLevel   = "STUDENTDIR_LOG_LEVEL"
	EnvBcryptCost = "STUDENTDIR_BCRYPT_COST"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string // data directory, e.g. $HOME/.studentdir
	LogLevel   string // debug, info, warn or error
	BcryptCost int    // work factor for new credentials
	Quarantine bool   // move a corrupt store aside instead of failing
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() (Config, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Home:       filepath.Join(dir, ".studentdir"),
		LogLevel:   "warn",
		BcryptCost: credential.DefaultCost,
	}, nil
}

// LoadConfig starts from DefaultConfig, loads envFile (if it exists) into the
// process environment without overriding variables already set, then applies
// the STUDENTDIR_* variables.
func LoadConfig(envFile string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvBcryptCost); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBcryptCost, err)
		}
		cfg.BcryptCost = n
	}
	return cfg, cfg.Validate()
}

// Validate reports settings that cannot be wired.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory not set")
	}
	if c.BcryptCost < credential.MinCost || c.BcryptCost > credential.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]",
			c.BcryptCost, credential.MinCost, credential.MaxCost)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
