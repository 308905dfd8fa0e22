// ABOUTME: CLI command for recording the daily check-in.
// ABOUTME: Optionally asks for an AI insight before the entry is saved.
package main

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/models"
)

var (
	checkinMood       int
	checkinEnergy     int
	checkinSleep      int
	checkinSymptoms   []string
	checkinActivities []string
	checkinJournal    string
	checkinGratitude  string
	checkinInsight    bool
)

var checkinCmd = &cobra.Command{
	Use:     "checkin",
	Aliases: []string{"ci", "add"},
	Short:   "Record today's check-in",
	Long: `Record a wellness check-in for today.

RATINGS:

  --mood     1 Awful, 2 Bad, 3 Poor, 4 Meh, 5 Okay, 6 Good, 7 Great, 8 Amazing
  --energy   1 Drained, 2 Low, 3 Moderate, 4 High, 5 Supercharged   (optional)
  --sleep    0 Terrible (<4h) ... 5 Perfect (8h+)                   (optional)

TAGS (repeat the flag or separate with commas):

  --symptom   headache, fatigue, anxiety, stress, nausea, pain, insomnia, focus
  --activity  exercise, meditation, socializing, nature, reading, music,
              cooking, creative

NOTES:

  --journal    up to 500 characters
  --gratitude  up to 200 characters

With --insight, VelaMind asks Gemini for a short supportive reflection and
stores it with the entry. If the request fails the entry is still saved.

EXAMPLES:

  velamind checkin --mood 6
  velamind checkin --mood 3 --sleep 1 --symptom fatigue,stress --journal "Rough night"
  velamind checkin --mood 7 --activity exercise --activity nature --insight`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if utf8.RuneCountInString(checkinJournal) > models.JournalMaxLen {
			return fmt.Errorf("journal is limited to %d characters", models.JournalMaxLen)
		}
		if utf8.RuneCountInString(checkinGratitude) > models.GratitudeMaxLen {
			return fmt.Errorf("gratitude is limited to %d characters", models.GratitudeMaxLen)
		}

		entry := models.NewCheckIn(checkinMood, time.Now()).
			WithDate(repo.Today()).
			WithJournal(checkinJournal).
			WithGratitude(checkinGratitude)
		if cmd.Flags().Changed("energy") {
			entry.WithEnergy(checkinEnergy)
		}
		if cmd.Flags().Changed("sleep") {
			entry.WithSleep(checkinSleep)
		}
		if len(checkinSymptoms) > 0 {
			entry.WithSymptoms(checkinSymptoms...)
		}
		if len(checkinActivities) > 0 {
			entry.WithActivities(checkinActivities...)
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid check-in: %w", err)
		}
		if err := entry.ValidateTags(); err != nil {
			return fmt.Errorf("invalid check-in: %w", err)
		}

		if _, exists := repo.GetTodayCheckIn(ctx); exists {
			fmt.Fprintln(out, faint.Sprint("Note: you already checked in today; adding another entry."))
		}

		if checkinInsight {
			client, err := newInsightClient(ctx)
			if err != nil {
				return err
			}
			goal := ""
			if p, ok := repo.GetProfile(ctx); ok {
				goal = p.Goal
			}
			resp := client.InsightForCheckIn(ctx, entry, goal, repo.GetCheckIns(ctx))
			if resp.Success {
				entry.WithInsight(resp.Text)
			} else {
				color.New(color.FgYellow).Fprintf(out, "⚠ %s\n", resp.Text)
			}
		}

		if err := repo.SaveCheckIn(ctx, entry); err != nil {
			return fmt.Errorf("failed to save check-in: %w", err)
		}

		color.New(color.FgGreen).Fprintln(out, "✓ Check-in saved")
		printCheckIn(out, entry)
		return nil
	},
}

func init() {
	checkinCmd.Flags().IntVarP(&checkinMood, "mood", "m", 0, "mood 1-8 (required)")
	checkinCmd.Flags().IntVarP(&checkinEnergy, "energy", "e", 0, "energy 1-5")
	checkinCmd.Flags().IntVarP(&checkinSleep, "sleep", "s", 0, "sleep quality 0-5")
	checkinCmd.Flags().StringSliceVar(&checkinSymptoms, "symptom", nil, "symptom tags")
	checkinCmd.Flags().StringSliceVar(&checkinActivities, "activity", nil, "activity tags")
	checkinCmd.Flags().StringVarP(&checkinJournal, "journal", "j", "", "journal entry")
	checkinCmd.Flags().StringVarP(&checkinGratitude, "gratitude", "g", "", "something you are grateful for")
	checkinCmd.Flags().BoolVar(&checkinInsight, "insight", false, "generate an AI insight before saving")
	_ = checkinCmd.MarkFlagRequired("mood")
	rootCmd.AddCommand(checkinCmd)
}
