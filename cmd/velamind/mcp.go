// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "velamind": {
        "command": "velamind",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  save_checkin       Record a check-in (optionally with an AI insight)
  list_checkins      List recent check-ins
  get_today          Get today's check-in
  delete_checkin     Delete a check-in by ID or prefix
  get_stats          Streak, count, average mood and trend
  get_profile        Get the user profile
  save_profile       Create or replace the user profile
  generate_insight   Insight for a draft check-in
  analyze_patterns   Mood pattern analysis
  clear_all_data     Delete everything (requires confirm)

AVAILABLE RESOURCES:

  velamind://checkins/recent   Ten newest check-ins
  velamind://today             Today's check-in
  velamind://summary           Stats, trend and profile`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		insights, err := newInsightClient(ctx)
		if err != nil {
			return err
		}
		server, err := mcp.NewServer(repo, insights, logger)
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	},
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "velamind %s\n", mcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
