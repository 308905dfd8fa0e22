// ABOUTME: Tests for CheckIn and UserProfile models.
// ABOUTME: Validates constructors, builders, validation, and scale conversion.
package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 14, 21, 30, 0, 0, time.Local)
	c := NewCheckIn(6, now)

	if c.ID == "" {
		t.Error("expected ID to be set")
	}
	if c.Date != "2026-03-14" {
		t.Errorf("Date = %s, want 2026-03-14", c.Date)
	}
	if c.Mood != 6 {
		t.Errorf("Mood = %d, want 6", c.Mood)
	}
	if c.Timestamp != now.UnixMilli() {
		t.Errorf("Timestamp = %d, want %d", c.Timestamp, now.UnixMilli())
	}
	if c.Energy != nil || c.Sleep != nil {
		t.Error("expected optional ratings to be unset")
	}
}

func TestNewCheckInUniqueIDs(t *testing.T) {
	now := time.Now()
	a := NewCheckIn(4, now)
	b := NewCheckIn(4, now)
	if a.ID == b.ID {
		t.Errorf("expected unique IDs, both were %s", a.ID)
	}
}

func TestCheckInBuilders(t *testing.T) {
	c := NewCheckIn(5, time.Now()).
		WithEnergy(3).
		WithSleep(0).
		WithSymptoms("headache", "stress").
		WithActivities("reading").
		WithJournal("long day").
		WithGratitude("tea").
		WithInsight("rest early")

	if c.Energy == nil || *c.Energy != 3 {
		t.Errorf("Energy = %v, want 3", c.Energy)
	}
	if c.Sleep == nil || *c.Sleep != 0 {
		t.Errorf("Sleep = %v, want 0", c.Sleep)
	}
	if len(c.Symptoms) != 2 || len(c.Activities) != 1 {
		t.Errorf("unexpected tags: %v %v", c.Symptoms, c.Activities)
	}
	if c.Journal != "long day" || c.Gratitude != "tea" || c.AIInsight != "rest early" {
		t.Errorf("unexpected text fields: %+v", c)
	}
}

func TestCheckInValidate(t *testing.T) {
	energy := func(v int) *int { return &v }

	tests := []struct {
		name    string
		modify  func(c *CheckIn)
		wantErr string
	}{
		{"valid", func(c *CheckIn) {}, ""},
		{"missing id", func(c *CheckIn) { c.ID = "" }, "missing id"},
		{"bad date", func(c *CheckIn) { c.Date = "14/03/2026" }, "invalid date"},
		{"mood too low", func(c *CheckIn) { c.Mood = 0 }, "mood"},
		{"mood too high", func(c *CheckIn) { c.Mood = 9 }, "mood"},
		{"energy out of range", func(c *CheckIn) { c.Energy = energy(6) }, "energy"},
		{"sleep zero is valid", func(c *CheckIn) { c.Sleep = energy(0) }, ""},
		{"sleep out of range", func(c *CheckIn) { c.Sleep = energy(-1) }, "sleep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCheckIn(4, time.Now())
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckInJSONKeys(t *testing.T) {
	c := NewCheckIn(7, time.Now()).WithInsight("ok")
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"id"`, `"date"`, `"mood"`, `"journal"`, `"aiInsight"`, `"timestamp"`} {
		if !strings.Contains(s, key) {
			t.Errorf("expected key %s in %s", key, s)
		}
	}
	if strings.Contains(s, `"energy"`) {
		t.Errorf("expected unset energy to be omitted: %s", s)
	}
}

func TestMoodOnTenScale(t *testing.T) {
	tests := []struct {
		mood int
		want float64
	}{
		{1, 1},
		{8, 10},
	}
	for _, tt := range tests {
		if got := MoodOnTenScale(tt.mood); got != tt.want {
			t.Errorf("MoodOnTenScale(%d) = %v, want %v", tt.mood, got, tt.want)
		}
	}
	if got := MoodOnTenScale(4); got < 4.85 || got > 4.86 {
		t.Errorf("MoodOnTenScale(4) = %v, want ~4.857", got)
	}
}

func TestNewUserProfile(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewUserProfile("Ada", 34, Goals[0], now)

	if p.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("CreatedAt = %s", p.CreatedAt)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	p.Name = ""
	if err := p.Validate(); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestCatalogLabels(t *testing.T) {
	if MoodLabel(1) != "Awful" || MoodLabel(8) != "Amazing" {
		t.Errorf("unexpected mood labels: %s %s", MoodLabel(1), MoodLabel(8))
	}
	if EnergyLabel(5) != "Supercharged" {
		t.Errorf("EnergyLabel(5) = %s", EnergyLabel(5))
	}
	if SleepLabel(0) != "Terrible" {
		t.Errorf("SleepLabel(0) = %s", SleepLabel(0))
	}
	if MoodLabel(42) != "42" {
		t.Errorf("MoodLabel(42) = %s, want fallback", MoodLabel(42))
	}
	if !IsValidGoal("Grow self-awareness") || IsValidGoal("fly") {
		t.Error("IsValidGoal mismatch")
	}
	if !IsValidSymptom("headache") || IsValidActivity("headache") {
		t.Error("tag validation mismatch")
	}
}
