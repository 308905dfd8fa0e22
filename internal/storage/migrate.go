// ABOUTME: Data migration between key-value backends.
// ABOUTME: Copies the profile, onboarding flag and check-ins from source to destination.
package storage

import (
	"context"
	"fmt"
)

// MigrateSummary holds counts of migrated records.
type MigrateSummary struct {
	Profile  bool
	CheckIns int
	Skipped  int
}

// IsEmpty reports whether repo holds no profile, flag or check-ins.
func IsEmpty(ctx context.Context, repo Repository) bool {
	_, hasProfile := repo.GetProfile(ctx)
	return !hasProfile && !repo.IsOnboardingComplete(ctx) && len(repo.GetCheckIns(ctx)) == 0
}

// MigrateData copies everything from src into dst. Check-ins already present
// in dst by id are skipped.
func MigrateData(ctx context.Context, src, dst Repository) (*MigrateSummary, error) {
	snapshot := src.Export(ctx)
	res, err := dst.Import(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &MigrateSummary{
		Profile:  res.Profile,
		CheckIns: res.CheckIns,
		Skipped:  res.Skipped,
	}, nil
}
