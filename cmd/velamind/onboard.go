// ABOUTME: CLI commands for onboarding and viewing the user profile.
// ABOUTME: Prompts for any answer not given as a flag.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/models"
)

var (
	onboardName string
	onboardAge  int
	onboardGoal string
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile",
	Long: `Set up your VelaMind profile with your name, age and wellness goal.

Any value not passed as a flag is asked for interactively. Running onboard
again replaces the existing profile; your check-ins are kept.

GOALS:

  1. Ease tension + anxiety
  2. Strengthen emotional balance
  3. Build sustainable rituals
  4. Sleep deeper at night
  5. Grow self-awareness

EXAMPLES:

  velamind onboard
  velamind onboard --name Ada --age 34 --goal 5
  velamind onboard --name Ada --age 34 --goal "Sleep deeper at night"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		name := strings.TrimSpace(onboardName)
		if name == "" {
			answer, err := ask(in, out, "What should we call you?")
			if err != nil {
				return err
			}
			name = answer
		}
		if name == "" {
			return errors.New("name is required")
		}

		age := onboardAge
		if !cmd.Flags().Changed("age") {
			answer, err := ask(in, out, "How old are you?")
			if err != nil {
				return err
			}
			if age, err = strconv.Atoi(answer); err != nil {
				return fmt.Errorf("invalid age: %s", answer)
			}
		}
		if age <= 0 {
			return fmt.Errorf("age must be a positive number, got %d", age)
		}

		goalInput := onboardGoal
		if goalInput == "" {
			for i, g := range models.Goals {
				fmt.Fprintf(out, "  %d. %s\n", i+1, g)
			}
			answer, err := ask(in, out, "Pick a wellness goal:")
			if err != nil {
				return err
			}
			goalInput = answer
		}
		goal, err := parseGoal(goalInput)
		if err != nil {
			return err
		}

		profile := models.NewUserProfile(name, age, goal, time.Now())
		if err := repo.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		if err := repo.MarkOnboardingComplete(ctx); err != nil {
			return fmt.Errorf("failed to complete onboarding: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Welcome, %s!\n", profile.Name)
		fmt.Fprintf(out, "  Goal: %s\n", profile.Goal)
		fmt.Fprintln(out, faint.Sprint("  Log your first check-in with: velamind checkin --mood 6"))
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		p, ok := repo.GetProfile(cmd.Context())
		if !ok {
			fmt.Fprintln(out, "No profile yet. Run 'velamind onboard' to create one.")
			return nil
		}
		fmt.Fprintf(out, "%s\n", bold.Sprint(p.Name))
		fmt.Fprintf(out, "  Age:     %d\n", p.Age)
		fmt.Fprintf(out, "  Goal:    %s\n", p.Goal)
		if created, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			fmt.Fprintf(out, "  Since:   %s\n", created.Local().Format("January 2, 2006"))
		}
		if !repo.IsOnboardingComplete(cmd.Context()) {
			fmt.Fprintln(out, faint.Sprint("  Onboarding not completed."))
		}
		return nil
	},
}

// parseGoal accepts a goal's 1-based number or its exact text.
func parseGoal(s string) (string, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(models.Goals) {
			return "", fmt.Errorf("goal number must be 1-%d", len(models.Goals))
		}
		return models.Goals[n-1], nil
	}
	for _, g := range models.Goals {
		if strings.EqualFold(g, s) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown goal: %q", s)
}

func ask(in *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprintf(out, "%s ", question)
	answer, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "your age")
	onboardCmd.Flags().StringVar(&onboardGoal, "goal", "", "wellness goal (number or text)")
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(profileCmd)
}
