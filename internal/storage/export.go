// ABOUTME: Export and import of the full journal for backup and migration.
// ABOUTME: Supports JSON, YAML and Markdown output; import accepts JSON or YAML.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/velamind/internal/models"
)

// ExportVersion is the snapshot format version.
const ExportVersion = "1.0"

// ExportData is a full snapshot of the record store.
type ExportData struct {
	Version             string              `json:"version" yaml:"version"`
	ExportedAt          time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool                string              `json:"tool" yaml:"tool"`
	Profile             *models.UserProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	OnboardingCompleted bool                `json:"onboarding_completed" yaml:"onboarding_completed"`
	CheckIns            []*models.CheckIn   `json:"check_ins" yaml:"check_ins"`
}

// ImportSummary counts what an import changed.
type ImportSummary struct {
	Profile  bool
	CheckIns int
	Skipped  int
}

// Export snapshots the current profile, flag and check-ins.
func (s *Store) Export(ctx context.Context) *ExportData {
	data := &ExportData{
		Version:             ExportVersion,
		ExportedAt:          s.now(),
		Tool:                "velamind",
		OnboardingCompleted: s.IsOnboardingComplete(ctx),
		CheckIns:            s.GetCheckIns(ctx),
	}
	if p, ok := s.GetProfile(ctx); ok {
		data.Profile = p
	}
	return data
}

// Import merges a snapshot into the store. The snapshot's profile replaces
// the current one and invalid or duplicate check-ins are skipped. Check-ins
// with unseen ids are inserted at the head in snapshot order, ahead of the
// existing entries, whose order is left alone.
func (s *Store) Import(ctx context.Context, data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}
	if data == nil {
		return summary, nil
	}

	if data.Profile != nil {
		if err := s.SaveProfile(ctx, data.Profile); err != nil {
			return nil, fmt.Errorf("import profile: %w", err)
		}
		summary.Profile = true
	}
	if data.OnboardingCompleted {
		if err := s.MarkOnboardingComplete(ctx); err != nil {
			return nil, fmt.Errorf("import onboarding flag: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.readEntries(ctx)
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		if e.checkIn != nil {
			seen[e.checkIn.ID] = true
		}
	}
	var added []storedCheckIn
	for _, c := range data.CheckIns {
		if c == nil || c.Validate() != nil || seen[c.ID] {
			summary.Skipped++
			continue
		}
		entry, err := newStoredCheckIn(c)
		if err != nil {
			return nil, fmt.Errorf("import check-ins: %w", err)
		}
		seen[c.ID] = true
		added = append(added, entry)
		summary.CheckIns++
	}
	if summary.CheckIns == 0 {
		return summary, nil
	}
	if err := s.writeEntries(ctx, append(added, existing...)); err != nil {
		return nil, fmt.Errorf("import check-ins: %w", err)
	}
	return summary, nil
}

// ExportJSON renders a snapshot as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders a snapshot as YAML.
func ExportYAML(data *ExportData) ([]byte, error) {
	return yaml.Marshal(data)
}

// ParseExport decodes a JSON or YAML snapshot. YAML is a superset of JSON,
// so anything that is not valid JSON is retried as YAML.
func ParseExport(raw []byte) (*ExportData, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err == nil {
		return &data, nil
	}
	var fromYAML ExportData
	if err := yaml.Unmarshal(raw, &fromYAML); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return &fromYAML, nil
}

// ExportMarkdown renders a snapshot as a readable journal.
func ExportMarkdown(data *ExportData) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# VelaMind Journal - %s\n\n", data.ExportedAt.Format(models.DateLayout))
	fmt.Fprintf(&sb, "Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339))

	if data.Profile != nil {
		fmt.Fprintf(&sb, "**%s**, %d. Goal: %s\n\n", data.Profile.Name, data.Profile.Age, data.Profile.Goal)
	}

	if len(data.CheckIns) == 0 {
		sb.WriteString("No check-ins yet.\n")
		return sb.String()
	}

	for _, c := range data.CheckIns {
		fmt.Fprintf(&sb, "## %s\n\n", c.Date)
		fmt.Fprintf(&sb, "- Mood: %s %s (%d/8)\n", models.MoodEmoji(c.Mood), models.MoodLabel(c.Mood), c.Mood)
		if c.Energy != nil {
			fmt.Fprintf(&sb, "- Energy: %s\n", models.EnergyLabel(*c.Energy))
		}
		if c.Sleep != nil {
			fmt.Fprintf(&sb, "- Sleep: %s\n", models.SleepLabel(*c.Sleep))
		}
		if len(c.Symptoms) > 0 {
			fmt.Fprintf(&sb, "- Symptoms: %s\n", strings.Join(c.Symptoms, ", "))
		}
		if len(c.Activities) > 0 {
			fmt.Fprintf(&sb, "- Activities: %s\n", strings.Join(c.Activities, ", "))
		}
		sb.WriteString("\n")
		if c.Journal != "" {
			fmt.Fprintf(&sb, "%s\n\n", c.Journal)
		}
		if c.Gratitude != "" {
			fmt.Fprintf(&sb, "> Grateful for: %s\n\n", c.Gratitude)
		}
		if c.AIInsight != "" {
			fmt.Fprintf(&sb, "*Insight:* %s\n\n", c.AIInsight)
		}
	}
	return sb.String()
}
