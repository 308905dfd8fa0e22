// ABOUTME: Label catalogs for mood, energy, sleep, tags, and wellness goals.
// ABOUTME: Used to render prompts and validate user input.
package models

import "fmt"

// Option is a selectable rating with its display label.
type Option struct {
	Value int    `json:"value"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Hint  string `json:"hint,omitempty"`
}

// Tag is a selectable symptom or activity.
type Tag struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// MoodOptions lists moods 1-8.
var MoodOptions = []Option{
	{Value: 1, Emoji: "😞", Label: "Awful"},
	{Value: 2, Emoji: "😔", Label: "Bad"},
	{Value: 3, Emoji: "😕", Label: "Poor"},
	{Value: 4, Emoji: "😐", Label: "Meh"},
	{Value: 5, Emoji: "🙂", Label: "Okay"},
	{Value: 6, Emoji: "😊", Label: "Good"},
	{Value: 7, Emoji: "😄", Label: "Great"},
	{Value: 8, Emoji: "🤩", Label: "Amazing"},
}

// EnergyOptions lists energy levels 1-5.
var EnergyOptions = []Option{
	{Value: 1, Emoji: "🔋", Label: "Drained"},
	{Value: 2, Emoji: "🪫", Label: "Low"},
	{Value: 3, Emoji: "⚡", Label: "Moderate"},
	{Value: 4, Emoji: "🚀", Label: "High"},
	{Value: 5, Emoji: "💥", Label: "Supercharged"},
}

// SleepOptions lists sleep quality 0-5.
var SleepOptions = []Option{
	{Value: 0, Emoji: "😴", Label: "Terrible", Hint: "< 4h"},
	{Value: 1, Emoji: "🥱", Label: "Poor", Hint: "4-5h"},
	{Value: 2, Emoji: "😑", Label: "Fair", Hint: "5-6h"},
	{Value: 3, Emoji: "😌", Label: "Good", Hint: "6-7h"},
	{Value: 4, Emoji: "💤", Label: "Great", Hint: "7-8h"},
	{Value: 5, Emoji: "🌙", Label: "Perfect", Hint: "8h+"},
}

// SymptomTags lists the built-in symptom tags.
var SymptomTags = []Tag{
	{ID: "headache", Emoji: "🤕", Label: "Headache"},
	{ID: "fatigue", Emoji: "😩", Label: "Fatigue"},
	{ID: "anxiety", Emoji: "😰", Label: "Anxiety"},
	{ID: "stress", Emoji: "😤", Label: "Stress"},
	{ID: "nausea", Emoji: "🤢", Label: "Nausea"},
	{ID: "pain", Emoji: "💢", Label: "Body Pain"},
	{ID: "insomnia", Emoji: "🌃", Label: "Insomnia"},
	{ID: "focus", Emoji: "🧠", Label: "Brain Fog"},
}

// ActivityTags lists the built-in activity tags.
var ActivityTags = []Tag{
	{ID: "exercise", Emoji: "🏃", Label: "Exercise"},
	{ID: "meditation", Emoji: "🧘", Label: "Meditation"},
	{ID: "socializing", Emoji: "👥", Label: "Socializing"},
	{ID: "nature", Emoji: "🌿", Label: "Nature"},
	{ID: "reading", Emoji: "📚", Label: "Reading"},
	{ID: "music", Emoji: "🎵", Label: "Music"},
	{ID: "cooking", Emoji: "🍳", Label: "Cooking"},
	{ID: "creative", Emoji: "🎨", Label: "Creative"},
}

// Goals lists the wellness goals offered at onboarding.
var Goals = []string{
	"Ease tension + anxiety",
	"Strengthen emotional balance",
	"Build sustainable rituals",
	"Sleep deeper at night",
	"Grow self-awareness",
}

// DefaultGoal is used in prompts when no profile exists.
const DefaultGoal = "Better wellbeing"

func optionLabel(opts []Option, v int) string {
	for _, o := range opts {
		if o.Value == v {
			return o.Label
		}
	}
	return fmt.Sprintf("%d", v)
}

// MoodLabel returns the label for a 1-8 mood.
func MoodLabel(mood int) string { return optionLabel(MoodOptions, mood) }

// EnergyLabel returns the label for a 1-5 energy level.
func EnergyLabel(energy int) string { return optionLabel(EnergyOptions, energy) }

// SleepLabel returns the label for a 0-5 sleep rating.
func SleepLabel(sleep int) string { return optionLabel(SleepOptions, sleep) }

// MoodEmoji returns the emoji for a 1-8 mood, or an empty string.
func MoodEmoji(mood int) string {
	for _, o := range MoodOptions {
		if o.Value == mood {
			return o.Emoji
		}
	}
	return ""
}

// IsValidGoal reports whether s is one of the onboarding goals.
func IsValidGoal(s string) bool {
	for _, g := range Goals {
		if g == s {
			return true
		}
	}
	return false
}

func hasTag(tags []Tag, id string) bool {
	for _, t := range tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

// IsValidSymptom reports whether id is a built-in symptom tag.
func IsValidSymptom(id string) bool { return hasTag(SymptomTags, id) }

// IsValidActivity reports whether id is a built-in activity tag.
func IsValidActivity(id string) bool { return hasTag(ActivityTags, id) }
