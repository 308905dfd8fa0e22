// ABOUTME: Tests for derived statistics.
// ABOUTME: Table-driven over average, streak, trend, banding and date labels.
package stats

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/harperreed/velamind/internal/models"
)

var today = time.Date(2025, 3, 14, 18, 0, 0, 0, time.Local)

func entry(id string, mood int, daysAgo int) *models.CheckIn {
	c := models.NewCheckIn(mood, today.AddDate(0, 0, -daysAgo))
	c.ID = id
	return c
}

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  float64
		str   string
	}{
		{"empty", nil, 0, "0"},
		{"eight six four", []int{8, 6, 4}, 6.0, "6.0"},
		{"rounds to one decimal", []int{1, 2, 2}, 1.7, "1.7"},
		{"single", []int{5}, 5, "5.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cs []*models.CheckIn
			for i, m := range tt.moods {
				cs = append(cs, entry("x", m, i))
			}
			if got := AverageMood(cs); got != tt.want {
				t.Errorf("AverageMood = %v, want %v", got, tt.want)
			}
			if got := FormatAverageMood(cs); got != tt.str {
				t.Errorf("FormatAverageMood = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name    string
		daysAgo []int
		want    int
	}{
		{"empty", nil, 0},
		{"today and yesterday", []int{0, 1}, 2},
		{"gap stops streak", []int{0, 1, 3, 4}, 2},
		{"no entry today", []int{1, 2, 3}, 0},
		{"duplicate dates count once", []int{0, 0, 1}, 2},
		{"only today", []int{0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cs []*models.CheckIn
			for _, d := range tt.daysAgo {
				cs = append(cs, entry("x", 5, d))
			}
			if got := Streak(cs, today); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakBoundedByLookback(t *testing.T) {
	var cs []*models.CheckIn
	for d := 0; d < StreakLookback+10; d++ {
		cs = append(cs, entry("x", 5, d))
	}
	if got := Streak(cs, today); got != StreakLookback {
		t.Errorf("Streak = %d, want %d", got, StreakLookback)
	}
}

func TestMoodTrend(t *testing.T) {
	var cs []*models.CheckIn
	for i, id := range []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7", "n8"} {
		cs = append(cs, entry(id, 5, i))
	}

	got := MoodTrend(cs, 0)
	var gotIDs []string
	for _, c := range got {
		gotIDs = append(gotIDs, c.ID)
	}
	want := []string{"n6", "n5", "n4", "n3", "n2", "n1", "n0"}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Errorf("MoodTrend mismatch (-want +got):\n%s", diff)
	}

	if got := MoodTrend(cs[:2], 7); len(got) != 2 || got[0].ID != "n1" {
		t.Errorf("short trend = %v", got)
	}
}

func TestMoodColor(t *testing.T) {
	tests := []struct {
		mood  int
		band  Band
		color string
	}{
		{1, BandLow, "#ff7ab3"},
		{3, BandLow, "#ff7ab3"},
		{4, BandMid, "#ffc46b"},
		{5, BandMid, "#ffc46b"},
		{6, BandGood, "#7de2a7"},
		{7, BandGood, "#7de2a7"},
		{8, BandHigh, "#7ef0ff"},
	}
	for _, tt := range tests {
		if got := MoodBand(tt.mood); got != tt.band {
			t.Errorf("MoodBand(%d) = %s, want %s", tt.mood, got, tt.band)
		}
		if got := MoodColor(tt.mood); got != tt.color {
			t.Errorf("MoodColor(%d) = %s, want %s", tt.mood, got, tt.color)
		}
	}
}

func TestRelativeDay(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-14", "Today"},
		{"2025-03-13", "Yesterday"},
		{"2025-03-01", "Mar 1"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := RelativeDay(tt.date, today); got != tt.want {
			t.Errorf("RelativeDay(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestFullDate(t *testing.T) {
	if got := FullDate("2025-03-14"); got != "Fri, Mar 14, 2025" {
		t.Errorf("FullDate = %s", got)
	}
}

func TestSummarize(t *testing.T) {
	cs := []*models.CheckIn{
		entry("a", 8, 0),
		entry("b", 6, 1),
		entry("c", 4, 2),
		entry("d", 2, 5),
	}
	s := Summarize(cs, today)

	if s.Streak != 3 {
		t.Errorf("Streak = %d, want 3", s.Streak)
	}
	if s.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", s.TotalCount)
	}
	if s.AverageMood != "5.0" {
		t.Errorf("AverageMood = %s, want 5.0", s.AverageMood)
	}
	if s.Today == nil || s.Today.ID != "a" {
		t.Errorf("Today = %v, want a", s.Today)
	}
	if len(s.Recent) != 3 || s.Recent[2].ID != "c" {
		t.Errorf("Recent = %v", s.Recent)
	}

	empty := Summarize(nil, today)
	if empty.AverageMood != "0" || empty.Today != nil || len(empty.Recent) != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
