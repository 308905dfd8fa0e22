// ABOUTME: Derived statistics over the check-in collection.
// ABOUTME: Pure functions; callers pass today's date so results are reproducible.
package stats

import (
	"math"
	"strconv"
	"time"

	"github.com/harperreed/velamind/internal/models"
)

const (
	// StreakLookback bounds how many days Streak walks back.
	StreakLookback = 365
	// DefaultTrendWindow is the number of entries in the history chart.
	DefaultTrendWindow = 7
	// RecentCount is the number of entries shown on the summary.
	RecentCount = 3
)

// AverageMood returns the mean mood rounded to one decimal, or 0 when empty.
func AverageMood(checkIns []*models.CheckIn) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	sum := 0
	for _, c := range checkIns {
		sum += c.Mood
	}
	return math.Round(float64(sum)/float64(len(checkIns))*10) / 10
}

// FormatAverageMood renders AverageMood with one decimal, or "0" when empty.
func FormatAverageMood(checkIns []*models.CheckIn) string {
	if len(checkIns) == 0 {
		return "0"
	}
	return strconv.FormatFloat(AverageMood(checkIns), 'f', 1, 64)
}

// Streak counts consecutive days with a check-in, ending today. It is 0
// when today has no entry, regardless of earlier runs.
func Streak(checkIns []*models.CheckIn, today time.Time) int {
	dates := make(map[string]bool, len(checkIns))
	for _, c := range checkIns {
		dates[c.Date] = true
	}

	streak := 0
	day := startOfDay(today)
	for i := 0; i < StreakLookback; i++ {
		if !dates[models.FormatDate(day)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// MoodTrend returns the newest n check-ins in chronological order.
func MoodTrend(checkIns []*models.CheckIn, n int) []*models.CheckIn {
	if n <= 0 {
		n = DefaultTrendWindow
	}
	if n > len(checkIns) {
		n = len(checkIns)
	}
	out := make([]*models.CheckIn, n)
	for i := 0; i < n; i++ {
		out[i] = checkIns[n-1-i]
	}
	return out
}

// Band is a coarse mood bucket used for colouring.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandGood Band = "good"
	BandHigh Band = "high"
)

// MoodBand buckets a 1-8 mood.
func MoodBand(mood int) Band {
	switch {
	case mood <= 3:
		return BandLow
	case mood <= 5:
		return BandMid
	case mood <= 7:
		return BandGood
	default:
		return BandHigh
	}
}

var bandColors = map[Band]string{
	BandLow:  "#ff7ab3",
	BandMid:  "#ffc46b",
	BandGood: "#7de2a7",
	BandHigh: "#7ef0ff",
}

// MoodColor returns the hex color for a mood's band.
func MoodColor(mood int) string {
	return bandColors[MoodBand(mood)]
}

// RelativeDay labels date as "Today", "Yesterday" or a short "Jan 2" form.
// Unparsable dates are returned unchanged.
func RelativeDay(date string, today time.Time) string {
	d, err := models.ParseDate(date)
	if err != nil {
		return date
	}
	t := startOfDay(today)
	switch {
	case models.FormatDate(d) == models.FormatDate(t):
		return "Today"
	case models.FormatDate(d) == models.FormatDate(t.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return d.Format("Jan 2")
	}
}

// FullDate renders date as "Mon, Jan 2, 2006".
func FullDate(date string) string {
	d, err := models.ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format("Mon, Jan 2, 2006")
}

// Summary is the home-screen overview.
type Summary struct {
	Streak      int               `json:"streak"`
	TotalCount  int               `json:"totalCheckIns"`
	AverageMood string            `json:"averageMood"`
	Today       *models.CheckIn   `json:"today,omitempty"`
	Recent      []*models.CheckIn `json:"recent"`
}

// Summarize builds the overview from a newest-first collection.
func Summarize(checkIns []*models.CheckIn, today time.Time) Summary {
	s := Summary{
		Streak:      Streak(checkIns, today),
		TotalCount:  len(checkIns),
		AverageMood: FormatAverageMood(checkIns),
		Recent:      append([]*models.CheckIn{}, checkIns[:min(RecentCount, len(checkIns))]...),
	}
	todayDate := models.FormatDate(today)
	for _, c := range checkIns {
		if c.Date == todayDate {
			s.Today = c
			break
		}
	}
	return s
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
