package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"studynotes/internal/notes"
	"studynotes/internal/remote"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath    string
	APIPort   string
	LogLevel  slog.Level
	LogFormat string

	RemoteAPIURL      string
	RemoteOwner       string
	RemoteRepo        string
	RemoteBranch      string
	RemotePath        string
	RemoteToken       string
	RemoteTimeout     time.Duration
	RemotePullOnStart bool
}

// DefaultRemote returns the remote address seeded into a collection that has none.
func (c *Config) DefaultRemote() notes.RemoteConfig {
	return notes.RemoteConfig{
		Owner:  c.RemoteOwner,
		Repo:   c.RemoteRepo,
		Branch: c.RemoteBranch,
		Path:   c.RemotePath,
		Token:  c.RemoteToken,
	}
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		DBPath:       getEnv("DB_PATH", "./data/studynotes.db"),
		APIPort:      getEnv("API_PORT", "9000"),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		RemoteAPIURL: getEnv("REMOTE_API_URL", remote.DefaultBaseURL),
		RemoteOwner:  getEnv("REMOTE_OWNER", ""),
		RemoteRepo:   getEnv("REMOTE_REPO", ""),
		RemoteBranch: getEnv("REMOTE_BRANCH", notes.DefaultBranch),
		RemotePath:   getEnv("REMOTE_PATH", notes.DefaultPath),
		RemoteToken:  getEnv("REMOTE_TOKEN", ""),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	timeout, err := time.ParseDuration(getEnv("REMOTE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("REMOTE_TIMEOUT must be a duration: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("REMOTE_TIMEOUT must be greater than 0")
	}
	cfg.RemoteTimeout = timeout

	pullOnStart, err := strconv.ParseBool(getEnv("REMOTE_PULL_ON_START", "false"))
	if err != nil {
		return nil, fmt.Errorf("REMOTE_PULL_ON_START must be true or false: %w", err)
	}
	cfg.RemotePullOnStart = pullOnStart

	// Owner and repo only make sense together
	if (cfg.RemoteOwner == "") != (cfg.RemoteRepo == "") {
		return nil, fmt.Errorf("REMOTE_OWNER and REMOTE_REPO must be set together")
	}

	// Create the data directory for the database file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the first .env file found in the working directory or one
// of its parents. Missing files are ignored.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
