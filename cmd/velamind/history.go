// ABOUTME: CLI commands for viewing today's entry, history and stats.
// ABOUTME: History draws a mood chart colored by mood band.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/stats"
)

var historyLimit int

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's check-in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		entry, ok := repo.GetTodayCheckIn(cmd.Context())
		if !ok {
			fmt.Fprintln(out, "No check-in yet today. Run 'velamind checkin --mood N'.")
			return nil
		}
		printCheckIn(out, entry)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls"},
	Short:   "Show recent check-ins",
	Long: `Show a mood chart and list of recent check-ins, newest first.

OUTPUT FORMAT:

  Each line shows: ID  DAY  MOOD  JOURNAL

  The ID is an 8-character prefix you can use with 'velamind delete'.

EXAMPLES:

  velamind history          # Last 7 check-ins
  velamind history -n 30    # Last 30 check-ins`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		all := repo.GetCheckIns(cmd.Context())
		if len(all) == 0 {
			fmt.Fprintln(out, "No check-ins yet.")
			return nil
		}

		n := historyLimit
		if n <= 0 {
			n = stats.DefaultTrendWindow
		}
		today := todayDate()

		printMoodChart(out, stats.MoodTrend(all, n))
		fmt.Fprintln(out)
		for _, c := range all[:min(n, len(all))] {
			fmt.Fprintf(out, "%s %s %s %s\n",
				faint.Sprint(models.ShortID(c.ID)),
				padRight(stats.RelativeDay(c.Date, today), 12),
				moodColor(c.Mood).Sprint(padRight(models.MoodEmoji(c.Mood)+" "+models.MoodLabel(c.Mood), 10)),
				faint.Sprint(truncate(c.Journal, 40)))
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak and mood averages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		summary := stats.Summarize(repo.GetCheckIns(cmd.Context()), todayDate())

		fmt.Fprintf(out, "%s\n", bold.Sprint("VelaMind stats"))
		fmt.Fprintf(out, "  Streak:        %d day%s\n", summary.Streak, plural(summary.Streak))
		fmt.Fprintf(out, "  Check-ins:     %d\n", summary.TotalCount)
		fmt.Fprintf(out, "  Average mood:  %s / 8\n", summary.AverageMood)
		if summary.Today != nil {
			fmt.Fprintf(out, "  Today:         %s\n", moodText(summary.Today.Mood))
		} else {
			fmt.Fprintf(out, "  Today:         %s\n", faint.Sprint("not checked in"))
		}
		return nil
	},
}

// printMoodChart draws one vertical bar per check-in, oldest on the left.
func printMoodChart(w io.Writer, trend []*models.CheckIn) {
	for level := models.MoodMax; level >= models.MoodMin; level-- {
		var row strings.Builder
		for _, c := range trend {
			if c.Mood >= level {
				row.WriteString(moodColor(c.Mood).Sprint(" ██ "))
			} else {
				row.WriteString("    ")
			}
		}
		fmt.Fprintf(w, "%s │%s\n", faint.Sprintf("%d", level), row.String())
	}
	var axis strings.Builder
	for _, c := range trend {
		axis.WriteString(" " + c.Date[len(c.Date)-2:] + " ")
	}
	fmt.Fprintf(w, "  └%s\n", faint.Sprint(axis.String()))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// todayDate resolves the store's calendar date to a local midnight.
func todayDate() time.Time {
	t, err := models.ParseDate(repo.Today())
	if err != nil {
		return time.Now()
	}
	return t
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", stats.DefaultTrendWindow, "number of check-ins to show")
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
}
