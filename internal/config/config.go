// ABOUTME: VelaMind configuration with backend selection and insight settings.
// ABOUTME: Layers the JSON config file, a .env file and environment variables.

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/kv"
	"github.com/harperreed/velamind/internal/storage"
)

// DefaultListenAddr is the HTTP API address used by serve.
const DefaultListenAddr = "127.0.0.1:8765"

// Config stores velamind configuration.
type Config struct {
	// Backend selects the key-value medium: "badger" (default), "sqlite",
	// "charm" or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage. Supports ~ expansion.
	// Defaults to $XDG_DATA_HOME/velamind.
	DataDir string `json:"data_dir,omitempty"`

	GeminiModel      string `json:"gemini_model,omitempty"`
	GeminiBaseURL    string `json:"gemini_base_url,omitempty"`
	InsightTransport string `json:"insight_transport,omitempty"`
	ListenAddr       string `json:"listen_addr,omitempty"`
	CharmHost        string `json:"charm_host,omitempty"`

	// GeminiAPIKey only ever comes from the environment.
	GeminiAPIKey string `json:"-"`
}

// envOverrides lists the environment variables that override the file.
type envOverrides struct {
	GeminiAPIKey     string `env:"GEMINI_API_KEY"`
	Backend          string `env:"VELAMIND_BACKEND"`
	DataDir          string `env:"VELAMIND_DATA_DIR"`
	GeminiModel      string `env:"VELAMIND_GEMINI_MODEL"`
	GeminiBaseURL    string `env:"VELAMIND_GEMINI_BASE_URL"`
	InsightTransport string `env:"VELAMIND_INSIGHT_TRANSPORT"`
	ListenAddr       string `env:"VELAMIND_LISTEN_ADDR"`
	CharmHost        string `env:"VELAMIND_CHARM_HOST"`
}

// GetBackend returns the configured backend, defaulting to badger.
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return kv.BackendBadger
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the HTTP API address.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}

// DataDir returns the default data directory under XDG_DATA_HOME.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "velamind")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore opens the configured backend and wraps it in a record store.
func (c *Config) OpenStore(logger *zap.Logger) (*storage.Store, error) {
	return c.OpenStoreFor(c.GetBackend(), logger)
}

// OpenStoreFor opens a specific backend in the configured data directory.
func (c *Config) OpenStoreFor(backend string, logger *zap.Logger) (*storage.Store, error) {
	medium, err := kv.Open(backend, kv.Options{
		Dir:       c.GetDataDir(),
		CharmHost: c.CharmHost,
		CharmName: kv.DefaultCharmName,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", backend, err)
	}
	return storage.New(medium, storage.WithLogger(logger)), nil
}

// InsightConfig returns the insight client settings.
func (c *Config) InsightConfig() insight.Config {
	return insight.Config{
		APIKey:    c.GeminiAPIKey,
		Model:     c.GeminiModel,
		BaseURL:   c.GeminiBaseURL,
		Transport: c.InsightTransport,
	}
}

// NewInsightClient builds the insight client for this configuration.
func (c *Config) NewInsightClient(ctx context.Context, logger *zap.Logger) (*insight.Client, error) {
	return insight.New(ctx, c.InsightConfig(), logger)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "velamind", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the config file, then a .env file from the working
// directory, then applies environment overrides.
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields with any non-empty environment variables.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	override(&c.GeminiAPIKey, o.GeminiAPIKey)
	override(&c.Backend, o.Backend)
	override(&c.DataDir, o.DataDir)
	override(&c.GeminiModel, o.GeminiModel)
	override(&c.GeminiBaseURL, o.GeminiBaseURL)
	override(&c.InsightTransport, o.InsightTransport)
	override(&c.ListenAddr, o.ListenAddr)
	override(&c.CharmHost, o.CharmHost)
	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
