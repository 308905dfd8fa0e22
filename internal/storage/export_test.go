// ABOUTME: Tests for snapshot export, import and backend migration.
// ABOUTME: Uses in-memory media on both sides.
package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/harperreed/velamind/internal/kv"
	"github.com/harperreed/velamind/internal/models"
)

func seed(t *testing.T, s *Store) []*models.CheckIn {
	t.Helper()
	ctx := context.Background()
	if err := s.SaveProfile(ctx, models.NewUserProfile("Ada", 36, models.Goals[0], fixedNow)); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := s.MarkOnboardingComplete(ctx); err != nil {
		t.Fatalf("MarkOnboardingComplete failed: %v", err)
	}
	var out []*models.CheckIn
	for i := 0; i < 3; i++ {
		c := models.NewCheckIn(i+4, fixedNow.AddDate(0, 0, i-2)).
			WithEnergy(3).
			WithJournal("entry").
			WithActivities("reading")
		if err := s.SaveCheckIn(ctx, c); err != nil {
			t.Fatalf("SaveCheckIn failed: %v", err)
		}
		out = append([]*models.CheckIn{c}, out...)
	}
	return out
}

func TestExportImportJSON(t *testing.T) {
	ctx := context.Background()
	src, _ := setupTestStore(t)
	want := seed(t, src)

	raw, err := ExportJSON(src.Export(ctx))
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	parsed, err := ParseExport(raw)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}

	dst, _ := setupTestStore(t)
	summary, err := dst.Import(ctx, parsed)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if !summary.Profile || summary.CheckIns != 3 || summary.Skipped != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if diff := cmp.Diff(want, dst.GetCheckIns(ctx)); diff != "" {
		t.Errorf("check-ins mismatch (-want +got):\n%s", diff)
	}
	if !dst.IsOnboardingComplete(ctx) {
		t.Error("onboarding flag should be imported")
	}
}

func TestExportImportYAML(t *testing.T) {
	ctx := context.Background()
	src, _ := setupTestStore(t)
	want := seed(t, src)

	raw, err := ExportYAML(src.Export(ctx))
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(string(raw), "check_ins:") {
		t.Errorf("YAML missing check_ins key:\n%s", raw)
	}
	parsed, err := ParseExport(raw)
	if err != nil {
		t.Fatalf("ParseExport failed: %v", err)
	}
	if diff := cmp.Diff(ids(want), ids(parsed.CheckIns)); diff != "" {
		t.Errorf("parsed ids mismatch (-want +got):\n%s", diff)
	}
	if parsed.Profile == nil || parsed.Profile.Name != "Ada" {
		t.Errorf("profile not parsed: %+v", parsed.Profile)
	}
}

func TestImportSkipsDuplicatesAndInvalid(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)
	existing := seed(t, s)

	bad := models.NewCheckIn(99, fixedNow)
	data := &ExportData{CheckIns: []*models.CheckIn{existing[0], bad, nil}}

	summary, err := s.Import(ctx, data)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if summary.CheckIns != 0 || summary.Skipped != 3 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if got := len(s.GetCheckIns(ctx)); got != 3 {
		t.Errorf("expected 3 check-ins, got %d", got)
	}
}

func TestImportPrependsWithoutReordering(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)

	// Stored order deliberately disagrees with timestamps.
	late := models.NewCheckIn(5, fixedNow)
	early := models.NewCheckIn(4, fixedNow.AddDate(0, 0, -3))
	for _, c := range []*models.CheckIn{late, early} {
		if err := s.SaveCheckIn(ctx, c); err != nil {
			t.Fatalf("SaveCheckIn failed: %v", err)
		}
	}

	a := models.NewCheckIn(6, fixedNow.AddDate(0, 0, -1))
	b := models.NewCheckIn(7, fixedNow.AddDate(0, 0, -2))
	summary, err := s.Import(ctx, &ExportData{CheckIns: []*models.CheckIn{a, b}})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if summary.CheckIns != 2 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	want := []string{a.ID, b.ID, early.ID, late.ID}
	if diff := cmp.Diff(want, ids(s.GetCheckIns(ctx))); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestExportMarkdown(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)
	seed(t, s)

	md := ExportMarkdown(s.Export(ctx))
	for _, want := range []string{"# VelaMind Journal - 2025-03-14", "**Ada**, 36", "## 2025-03-14", "Energy: Moderate", "Activities: reading"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestExportMarkdownEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := setupTestStore(t)
	if md := ExportMarkdown(s.Export(ctx)); !strings.Contains(md, "No check-ins yet.") {
		t.Errorf("expected empty notice, got:\n%s", md)
	}
}

func TestMigrateData(t *testing.T) {
	ctx := context.Background()
	src, _ := setupTestStore(t)
	want := seed(t, src)
	dst := New(kv.NewMemory())

	if !IsEmpty(ctx, dst) {
		t.Fatal("fresh destination should be empty")
	}
	summary, err := MigrateData(ctx, src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if !summary.Profile || summary.CheckIns != 3 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if diff := cmp.Diff(ids(want), ids(dst.GetCheckIns(ctx))); diff != "" {
		t.Errorf("migrated ids mismatch (-want +got):\n%s", diff)
	}
	if IsEmpty(ctx, dst) {
		t.Error("destination should not be empty after migrate")
	}
}
