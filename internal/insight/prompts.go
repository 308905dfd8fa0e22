// ABOUTME: Prompt construction for wellness insights and mood pattern analysis.
// ABOUTME: Moods are converted to the 1-10 scale the prompts speak in.
package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harperreed/velamind/internal/models"
)

const (
	// RecentMoodWindow is how many previous check-ins feed the average.
	RecentMoodWindow = 7
	// PatternWindow is how many check-ins the pattern prompt includes.
	PatternWindow = 10
)

// FormatScore renders a 1-10 score with one decimal, dropping a trailing ".0".
func FormatScore(v float64) string {
	s := strconv.FormatFloat(math.Round(v*10)/10, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// BuildJournalContext summarizes a check-in as
// "Mood: <label>, Energy: <label>, Sleep: <label>. <journal>".
func BuildJournalContext(c *models.CheckIn) string {
	energy, sleep := "-", "-"
	if c.Energy != nil {
		energy = models.EnergyLabel(*c.Energy)
	}
	if c.Sleep != nil {
		sleep = models.SleepLabel(*c.Sleep)
	}
	return fmt.Sprintf("Mood: %s, Energy: %s, Sleep: %s. %s",
		models.MoodLabel(c.Mood), energy, sleep, c.Journal)
}

// RecentMoods returns the newest n moods on the 1-10 scale.
func RecentMoods(checkIns []*models.CheckIn, n int) []float64 {
	n = min(n, len(checkIns))
	out := make([]float64, 0, n)
	for _, c := range checkIns[:n] {
		out = append(out, models.MoodOnTenScale(c.Mood))
	}
	return out
}

func wellnessPrompt(mood10 float64, journalContext, goal string, recentMoods []float64) string {
	if goal == "" {
		goal = models.DefaultGoal
	}
	trend := "No previous data"
	if len(recentMoods) > 0 {
		sum := 0.0
		for _, m := range recentMoods {
			sum += m
		}
		trend = fmt.Sprintf("Average mood: %.1f/10", sum/float64(len(recentMoods)))
	}

	return fmt.Sprintf(`You are a compassionate mental wellness advisor. Based on the following user check-in, provide a brief, empathetic wellness insight (2-3 sentences max):

Current Mood: %s/10
Journal Entry: "%s"
User's Wellness Goal: %s
%s

Provide a supportive insight or recommendation without medical diagnosis. Keep it concise and actionable.`,
		FormatScore(mood10), journalContext, goal, trend)
}

func patternPrompt(checkIns []*models.CheckIn, userName string) string {
	if userName == "" {
		userName = DefaultUserName
	}
	n := min(PatternWindow, len(checkIns))
	lines := make([]string, 0, n)
	for _, c := range checkIns[:n] {
		lines = append(lines, fmt.Sprintf("%s: %s/10", c.Date, FormatScore(models.MoodOnTenScale(c.Mood))))
	}

	return fmt.Sprintf(`Analyze the following mood tracking data for %s and provide 2-3 sentence insights about mood patterns and trends:

%s

Be encouraging and offer one small actionable suggestion to improve wellbeing.`,
		userName, strings.Join(lines, "\n"))
}
