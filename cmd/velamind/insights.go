// ABOUTME: CLI command for AI mood pattern analysis.
// ABOUTME: Sends the most recent check-ins to the insight client.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Analyze your mood patterns",
	Long: `Ask Gemini for a short analysis of your last 10 check-ins.

Needs at least two check-ins and GEMINI_API_KEY set in the environment or a
.env file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		client, err := newInsightClient(ctx)
		if err != nil {
			return err
		}
		name := ""
		if p, ok := repo.GetProfile(ctx); ok {
			name = p.Name
		}

		resp := client.AnalyzeMoodPatterns(ctx, repo.GetCheckIns(ctx), name)
		if !resp.Success {
			color.New(color.FgYellow).Fprintf(out, "⚠ %s\n", resp.Text)
			if resp.Error != "" {
				fmt.Fprintln(out, faint.Sprint("  "+resp.Error))
			}
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", color.CyanString("✦"), resp.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
