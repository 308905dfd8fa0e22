// ABOUTME: Tests for velamind configuration management.
// ABOUTME: Covers load, save, defaults, env layering, and the store factory.
package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/models"
)

// clearEnv unsets every override for the duration of the test. Unset rather
// than empty, since godotenv never replaces a variable that already exists.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"GEMINI_API_KEY", "VELAMIND_BACKEND", "VELAMIND_DATA_DIR", "VELAMIND_GEMINI_MODEL",
		"VELAMIND_GEMINI_BASE_URL", "VELAMIND_INSIGHT_TRANSPORT", "VELAMIND_LISTEN_ADDR",
		"VELAMIND_CHARM_HOST",
	} {
		prev, had := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "sqlite"}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg-data/velamind" {
		t.Errorf("GetDataDir() = %q", got)
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/velamind-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "velamind-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/velamind", filepath.Join(home, "data/velamind")},
		{"data/velamind", "data/velamind"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetListenAddr(t *testing.T) {
	assert.Equal(t, DefaultListenAddr, (&Config{}).GetListenAddr())
	assert.Equal(t, ":9000", (&Config{ListenAddr: ":9000"}).GetListenAddr())
}

func TestLoadNonExistentConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "nonexistent"))

	cfg := &Config{
		Backend:      "sqlite",
		DataDir:      "/tmp/velamind-data",
		GeminiModel:  "gemini-2.5-flash",
		GeminiAPIKey: "never-written",
	}
	require.NoError(t, cfg.Save())

	raw, err := os.ReadFile(GetConfigPath())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "never-written", "API key must not be persisted")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", loaded.Backend)
	assert.Equal(t, "/tmp/velamind-data", loaded.DataDir)
	assert.Equal(t, "gemini-2.5-flash", loaded.GeminiModel)
	assert.Empty(t, loaded.GeminiAPIKey)
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configDir := filepath.Join(tmpDir, "velamind")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/velamind/config.json", GetConfigPath())
}

func TestApplyEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "abc")
	t.Setenv("VELAMIND_BACKEND", "memory")
	t.Setenv("VELAMIND_INSIGHT_TRANSPORT", "genai")

	cfg := &Config{Backend: "sqlite", GeminiModel: "from-file"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "abc", cfg.GeminiAPIKey)
	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, "genai", cfg.InsightTransport)
	assert.Equal(t, "from-file", cfg.GeminiModel, "unset variables keep file values")
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("VELAMIND_GEMINI_MODEL=dotenv-model\n"), 0600))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { _ = os.Unsetenv("VELAMIND_GEMINI_MODEL") })

	cfg := &Config{}
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "dotenv-model", cfg.GeminiModel)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("VELAMIND_LISTEN_ADDR", ":1111")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("VELAMIND_LISTEN_ADDR=:2222\n"), 0600))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, ":1111", os.Getenv("VELAMIND_LISTEN_ADDR"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestResolve(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("VELAMIND_DATA_DIR", "/tmp/resolved")

	cfg, err := Resolve()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/resolved", cfg.GetDataDir())
	assert.Equal(t, "badger", cfg.GetBackend())
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}
	store, err := cfg.OpenStore(nil)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.SaveProfile(ctx, models.NewUserProfile("Ada", 30, models.Goals[0], time.Now())))
	_, ok := store.GetProfile(ctx)
	assert.True(t, ok)
	assert.FileExists(t, filepath.Join(cfg.DataDir, "velamind.db"))
}

func TestOpenStoreBadger(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	store, err := cfg.OpenStore(nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	assert.DirExists(t, filepath.Join(cfg.DataDir, "kv"))
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "floppy", DataDir: t.TempDir()}
	_, err := cfg.OpenStore(nil)
	assert.Error(t, err)
}

func TestNewInsightClientWithoutKey(t *testing.T) {
	cfg := &Config{}
	c, err := cfg.NewInsightClient(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, c.HasKey())

	resp := c.GenerateWellnessInsight(context.Background(), 5, "", "", nil)
	assert.Equal(t, insight.MsgMissingKey, resp.Text)
}
