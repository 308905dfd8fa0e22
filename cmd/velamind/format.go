// ABOUTME: Shared terminal formatting for check-ins and prompts.
// ABOUTME: Colors moods by band and truncates long text for list output.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/stats"
)

var (
	faint = color.New(color.Faint)
	bold  = color.New(color.Bold)
)

var bandColors = map[stats.Band]*color.Color{
	stats.BandLow:  color.New(color.FgMagenta),
	stats.BandMid:  color.New(color.FgYellow),
	stats.BandGood: color.New(color.FgGreen),
	stats.BandHigh: color.New(color.FgCyan),
}

func moodColor(mood int) *color.Color {
	return bandColors[stats.MoodBand(mood)]
}

func moodText(mood int) string {
	return moodColor(mood).Sprintf("%s %s (%d/8)", models.MoodEmoji(mood), models.MoodLabel(mood), mood)
}

func tagLabels(ids []string, catalog []models.Tag) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		label := id
		for _, t := range catalog {
			if t.ID == id {
				label = t.Emoji + " " + t.Label
				break
			}
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}

// printCheckIn writes the full detail view of one check-in.
func printCheckIn(w io.Writer, c *models.CheckIn) {
	fmt.Fprintf(w, "%s  %s\n", bold.Sprint(stats.FullDate(c.Date)), faint.Sprint(models.ShortID(c.ID)))
	fmt.Fprintf(w, "  Mood:       %s\n", moodText(c.Mood))
	if c.Energy != nil {
		fmt.Fprintf(w, "  Energy:     %s (%d/5)\n", models.EnergyLabel(*c.Energy), *c.Energy)
	}
	if c.Sleep != nil {
		fmt.Fprintf(w, "  Sleep:      %s (%d/5)\n", models.SleepLabel(*c.Sleep), *c.Sleep)
	}
	if len(c.Symptoms) > 0 {
		fmt.Fprintf(w, "  Symptoms:   %s\n", tagLabels(c.Symptoms, models.SymptomTags))
	}
	if len(c.Activities) > 0 {
		fmt.Fprintf(w, "  Activities: %s\n", tagLabels(c.Activities, models.ActivityTags))
	}
	if c.Journal != "" {
		fmt.Fprintf(w, "  Journal:    %s\n", c.Journal)
	}
	if c.Gratitude != "" {
		fmt.Fprintf(w, "  Grateful:   %s\n", c.Gratitude)
	}
	if c.AIInsight != "" {
		fmt.Fprintf(w, "\n  %s %s\n", color.CyanString("✦"), c.AIInsight)
	}
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func padRight(s string, length int) string {
	n := utf8.RuneCountInString(s)
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

// confirm asks a yes/no question on r and reports whether the answer was yes.
func confirm(r io.Reader, w io.Writer, question string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N] ", question)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes", nil
}
