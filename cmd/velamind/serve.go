// ABOUTME: CLI command for serving the JSON HTTP API.
// ABOUTME: Shuts the fiber app down gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/api"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Serve the VelaMind JSON API for a local web or mobile front end.

ROUTES:

  GET    /healthz
  GET    /api/profile             PUT /api/profile
  GET    /api/onboarding          POST /api/onboarding
  GET    /api/checkins?limit=N    POST /api/checkins
  GET    /api/checkins/today      DELETE /api/checkins/:id
  GET    /api/stats               DELETE /api/data
  POST   /api/insights/wellness   POST /api/insights/patterns

The address defaults to 127.0.0.1:8765 or VELAMIND_LISTEN_ADDR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr := serveAddr
		if addr == "" {
			addr = cfg.GetListenAddr()
		}

		insights, err := newInsightClient(ctx)
		if err != nil {
			return err
		}
		app := api.NewApp(api.NewHandler(repo, insights, logger))

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Listen(addr)
		}()
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Listening on http://%s\n", addr)
		logger.Info("api listening", zap.String("addr", addr))

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default 127.0.0.1:8765)")
	rootCmd.AddCommand(serveCmd)
}
