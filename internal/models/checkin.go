// ABOUTME: CheckIn model for daily wellness entries.
// ABOUTME: Mood is stored on the 1-8 scale, energy 1-5 and sleep 0-5 are optional.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for CheckIn.Date.
const DateLayout = "2006-01-02"

// Scale bounds for check-in ratings.
const (
	MoodMin   = 1
	MoodMax   = 8
	EnergyMin = 1
	EnergyMax = 5
	SleepMin  = 0
	SleepMax  = 5

	// Soft length limits enforced by the entry forms, not by storage.
	JournalMaxLen   = 500
	GratitudeMaxLen = 200
)

// CheckIn represents a single day's wellness entry.
type CheckIn struct {
	ID         string   `json:"id" yaml:"id"`
	Date       string   `json:"date" yaml:"date"`
	Mood       int      `json:"mood" yaml:"mood"`
	Energy     *int     `json:"energy,omitempty" yaml:"energy,omitempty"`
	Sleep      *int     `json:"sleep,omitempty" yaml:"sleep,omitempty"`
	Symptoms   []string `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
	Activities []string `json:"activities,omitempty" yaml:"activities,omitempty"`
	Journal    string   `json:"journal" yaml:"journal"`
	Gratitude  string   `json:"gratitude,omitempty" yaml:"gratitude,omitempty"`
	AIInsight  string   `json:"aiInsight,omitempty" yaml:"ai_insight,omitempty"`
	Timestamp  int64    `json:"timestamp" yaml:"timestamp"`
}

// NewCheckIn creates a CheckIn with a generated ID, dated at now's local calendar day.
func NewCheckIn(mood int, now time.Time) *CheckIn {
	return &CheckIn{
		ID:        uuid.New().String(),
		Date:      FormatDate(now),
		Mood:      mood,
		Timestamp: now.UnixMilli(),
	}
}

// WithEnergy sets the energy rating.
func (c *CheckIn) WithEnergy(energy int) *CheckIn {
	c.Energy = &energy
	return c
}

// WithSleep sets the sleep quality rating.
func (c *CheckIn) WithSleep(sleep int) *CheckIn {
	c.Sleep = &sleep
	return c
}

// WithSymptoms sets the symptom tags.
func (c *CheckIn) WithSymptoms(tags ...string) *CheckIn {
	c.Symptoms = append([]string(nil), tags...)
	return c
}

// WithActivities sets the activity tags.
func (c *CheckIn) WithActivities(tags ...string) *CheckIn {
	c.Activities = append([]string(nil), tags...)
	return c
}

// WithJournal sets the journal text.
func (c *CheckIn) WithJournal(text string) *CheckIn {
	c.Journal = text
	return c
}

// WithGratitude sets the gratitude note.
func (c *CheckIn) WithGratitude(text string) *CheckIn {
	c.Gratitude = text
	return c
}

// WithInsight attaches a generated insight. There is no update after save,
// so this must happen before the entry is persisted.
func (c *CheckIn) WithInsight(text string) *CheckIn {
	c.AIInsight = text
	return c
}

// WithDate overrides the calendar date.
func (c *CheckIn) WithDate(date string) *CheckIn {
	c.Date = date
	return c
}

// Validate checks the fields a stored record must carry to be usable.
func (c *CheckIn) Validate() error {
	if c.ID == "" {
		return errors.New("missing id")
	}
	if _, err := ParseDate(c.Date); err != nil {
		return fmt.Errorf("invalid date %q", c.Date)
	}
	if c.Mood < MoodMin || c.Mood > MoodMax {
		return fmt.Errorf("mood %d out of range %d-%d", c.Mood, MoodMin, MoodMax)
	}
	if c.Energy != nil && (*c.Energy < EnergyMin || *c.Energy > EnergyMax) {
		return fmt.Errorf("energy %d out of range %d-%d", *c.Energy, EnergyMin, EnergyMax)
	}
	if c.Sleep != nil && (*c.Sleep < SleepMin || *c.Sleep > SleepMax) {
		return fmt.Errorf("sleep %d out of range %d-%d", *c.Sleep, SleepMin, SleepMax)
	}
	return nil
}

// FormatDate returns t's local calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// MoodOnTenScale converts a 1-8 mood to the 1-10 scale used in prompts.
func MoodOnTenScale(mood int) float64 {
	return 1 + float64(mood-MoodMin)*9/float64(MoodMax-MoodMin)
}

// ValidateTags checks that every symptom and activity is a built-in tag.
func (c *CheckIn) ValidateTags() error {
	for _, tag := range c.Symptoms {
		if !IsValidSymptom(tag) {
			return fmt.Errorf("unknown symptom %q", tag)
		}
	}
	for _, tag := range c.Activities {
		if !IsValidActivity(tag) {
			return fmt.Errorf("unknown activity %q", tag)
		}
	}
	return nil
}

// ShortID returns the 8-character id prefix shown to users.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
