// ABOUTME: Root Cobra command for the velamind CLI.
// ABOUTME: Resolves config and opens the record store via PersistentPre/PostRunE.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/config"
	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/storage"
)

// skipStoreAnnotation marks commands that manage their own storage or need none.
const skipStoreAnnotation = "velamind/skip-store"

var (
	flagBackend string
	flagDataDir string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
	repo   storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "velamind",
	Short: "Daily mood and wellness journal",
	Long: `VelaMind is a daily wellness journal for the terminal.

Log one check-in a day with your mood (1-8), energy (1-5), sleep quality
(0-5), symptoms, activities and a short journal entry. VelaMind tracks your
streak and average mood, and can ask Gemini for a short supportive insight.

QUICK START:

  $ velamind onboard --name Ada --age 34 --goal "Grow self-awareness"
  $ velamind checkin --mood 6 --energy 4 --sleep 3 --journal "Long walk"
  $ velamind today                       # Today's entry
  $ velamind history -n 14               # Mood chart and entries
  $ velamind stats                       # Streak and averages
  $ velamind insights                    # Mood pattern analysis

INSIGHTS:

  Set GEMINI_API_KEY (in the environment or a .env file) to enable
  AI-generated insights. Without it, everything else still works.

STORAGE:

  --backend badger   Embedded Badger store (default)
  --backend sqlite   Single SQLite file
  --backend charm    Charm KV database
  --backend memory   Nothing persisted

  Data lives under ~/.local/share/velamind unless --data-dir is set.

MCP INTEGRATION:

  Run 'velamind mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "velamind": { "command": "velamind", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closeRepo()

		var err error
		cfg, err = config.Resolve()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}

		logger, err = newLogger(flagVerbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		if cmd.Name() == "help" || cmd.Annotations[skipStoreAnnotation] != "" {
			return nil
		}
		store, err := cfg.OpenStore(logger)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		repo = store
		logger.Debug("storage opened",
			zap.String("backend", cfg.GetBackend()),
			zap.String("data_dir", cfg.GetDataDir()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		err := closeRepo()
		if logger != nil {
			_ = logger.Sync()
		}
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.DisableStacktrace = true
	return zc.Build()
}

func closeRepo() error {
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}

func newInsightClient(ctx context.Context) (*insight.Client, error) {
	client, err := cfg.NewInsightClient(ctx, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to configure insights: %w", err)
	}
	return client, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: badger, sqlite, charm or memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/velamind)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
}
