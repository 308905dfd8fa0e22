// ABOUTME: CLI commands for exporting and importing VelaMind data.
// ABOUTME: Supports JSON, YAML and Markdown export; imports JSON or YAML.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/storage"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export your journal",
	Long: `Export your profile and check-ins.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, also importable)
  markdown   Readable journal, one section per day

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include check-ins on or after this date (YYYY-MM-DD)

EXAMPLES:

  velamind export json -o backup.json
  velamind export yaml
  velamind export markdown --since 2025-01-01 -o journal.md`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := repo.Export(cmd.Context())
		if exportSince != "" {
			if _, err := models.ParseDate(exportSince); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			kept := snapshot.CheckIns[:0]
			for _, c := range snapshot.CheckIns {
				if c.Date >= exportSince {
					kept = append(kept, c)
				}
			}
			snapshot.CheckIns = kept
		}

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = storage.ExportJSON(snapshot)
		case "yaml":
			data, err = storage.ExportYAML(snapshot)
		case "markdown", "md":
			data = []byte(storage.ExportMarkdown(snapshot))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(out, "✓ Exported %d check-ins to %s\n", len(snapshot.CheckIns), exportOutput)
			return nil
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML backup",
	Long: `Import a backup created with 'velamind export json' or 'export yaml'.

Check-ins are merged by ID: entries already present are skipped, as are
invalid ones. A profile in the backup replaces the current profile.

EXAMPLES:

  velamind import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		snapshot, err := storage.ParseExport(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		summary, err := repo.Import(cmd.Context(), snapshot)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Imported from %s\n", args[0])
		if summary.Profile {
			fmt.Fprintln(out, "  Profile:   restored")
		}
		fmt.Fprintf(out, "  Check-ins: %d added, %d skipped\n", summary.CheckIns, summary.Skipped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include check-ins since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
