// ABOUTME: CLI commands for deleting check-ins and clearing all data.
// ABOUTME: Delete accepts a full ID or a unique ID prefix.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/storage"
)

var clearSkipConfirm bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a check-in",
	Long: `Delete a check-in by its ID or ID prefix.

The ID prefix is shown in the first column of 'velamind history' output.

EXAMPLES:

  velamind delete abc12345      # Delete by 8-char prefix
  velamind rm abc1              # Short prefix (if unique)

CAUTION:

  This permanently deletes the check-in. There is no undo.
  If the prefix matches multiple check-ins, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		entry, err := repo.FindCheckIn(ctx, args[0])
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("check-in not found: %s", args[0])
		case errors.Is(err, storage.ErrAmbiguousID):
			return fmt.Errorf("prefix %q matches more than one check-in; use more characters", args[0])
		case err != nil:
			return err
		}

		if err := repo.DeleteCheckIn(ctx, entry.ID); err != nil {
			return fmt.Errorf("failed to delete check-in: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgYellow).Fprintf(out, "✗ Deleted check-in from %s\n", entry.Date)
		fmt.Fprintf(out, "  %s %s\n", faint.Sprint(models.ShortID(entry.ID)), moodText(entry.Mood))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all VelaMind data",
	Long: `Delete your profile, onboarding status and every check-in.

Consider 'velamind export json -o backup.json' first. There is no undo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !clearSkipConfirm {
			ok, err := confirm(cmd.InOrStdin(), out, "Delete ALL VelaMind data?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		if err := repo.ClearAll(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}
		color.New(color.FgYellow).Fprintln(out, "✗ All data cleared")
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearSkipConfirm, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
}
