// ABOUTME: Installs the VelaMind skill definition for Claude Code.
// ABOUTME: Embeds SKILL.md and writes it to ~/.claude/skills/velamind/.
package main

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the VelaMind skill for Claude Code.

This copies the skill definition to ~/.claude/skills/velamind/
so Claude Code can use velamind commands contextually.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(cmd.InOrStdin(), cmd.OutOrStdout(), home, skillSkipConfirm)
	},
}

func skillPathFor(home string) string {
	return filepath.Join(home, ".claude", "skills", "velamind", "SKILL.md")
}

func installSkill(in io.Reader, out io.Writer, home string, skipConfirm bool) error {
	skillPath := skillPathFor(home)

	fmt.Fprintln(out, "┌─────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(out, "│             VelaMind Skill for Claude Code                  │")
	fmt.Fprintln(out, "└─────────────────────────────────────────────────────────────┘")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "This will install the velamind skill, enabling Claude Code to:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  • Record your daily mood check-in")
	fmt.Fprintln(out, "  • Review your streak and mood history")
	fmt.Fprintln(out, "  • Ask for insights on your mood patterns")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Destination:")
	fmt.Fprintf(out, "  %s\n", skillPath)
	fmt.Fprintln(out)

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Fprintln(out, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(out)
	}

	if !skipConfirm {
		ok, err := confirm(in, out, "Install the velamind skill?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
		fmt.Fprintln(out)
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(skillPath), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	color.New(color.FgGreen).Fprintln(out, "✓ Installed velamind skill successfully!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Try asking Claude: \"Log my mood as great today\" or \"How has my week been?\"")
	return nil
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}
