// ABOUTME: CLI command for copying data between storage backends.
// ABOUTME: Merges into the destination; existing check-ins are skipped.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/storage"
)

var (
	migrateFrom   string
	migrateTo     string
	migrateDryRun bool
	migrateForce  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy your profile and check-ins from one backend to another.

Both backends use the configured data directory. Check-ins already present
in the destination (same ID) are skipped. The source is left untouched.

USAGE:

  velamind migrate --from charm --to badger --dry-run   # Preview
  velamind migrate --from charm --to badger             # Copy

If the destination already holds data, pass --force to merge into it.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if migrateTo == "" {
			return errors.New("--to is required")
		}
		from := migrateFrom
		if from == "" {
			from = cfg.GetBackend()
		}
		if from == migrateTo {
			return fmt.Errorf("source and destination are both %q", from)
		}

		src, err := cfg.OpenStoreFor(from, logger)
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}
		defer src.Close()

		snapshot := src.Export(ctx)
		if migrateDryRun {
			color.New(color.FgYellow).Fprintln(out, "Dry run mode - no changes will be made")
			fmt.Fprintf(out, "  From:      %s\n", from)
			fmt.Fprintf(out, "  To:        %s\n", migrateTo)
			fmt.Fprintf(out, "  Profile:   %t\n", snapshot.Profile != nil)
			fmt.Fprintf(out, "  Check-ins: %d\n", len(snapshot.CheckIns))
			return nil
		}

		dst, err := cfg.OpenStoreFor(migrateTo, logger)
		if err != nil {
			return fmt.Errorf("failed to open destination: %w", err)
		}
		defer dst.Close()

		if !migrateForce && !storage.IsEmpty(ctx, dst) {
			return fmt.Errorf("destination %q already has data; pass --force to merge", migrateTo)
		}

		summary, err := storage.MigrateData(ctx, src, dst)
		if err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Migrated %s → %s\n", from, migrateTo)
		fmt.Fprintf(out, "  Profile:   %t\n", summary.Profile)
		fmt.Fprintf(out, "  Check-ins: %d copied, %d skipped\n", summary.CheckIns, summary.Skipped)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "source backend (default: configured backend)")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "merge into a destination that already has data")
	rootCmd.AddCommand(migrateCmd)
}
