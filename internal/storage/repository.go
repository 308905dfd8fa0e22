// ABOUTME: Repository interface for the wellness record store.
// ABOUTME: Surfaces depend on this contract so tests can swap implementations.
package storage

import (
	"context"

	"github.com/harperreed/velamind/internal/models"
)

// Fixed keys in the key-value medium.
const (
	KeyProfile    = "user_profile"
	KeyCheckIns   = "check_ins"
	KeyOnboarding = "onboarding_completed"
)

// Repository defines the storage interface for profile and check-in data.
type Repository interface {
	// Profile operations
	SaveProfile(ctx context.Context, p *models.UserProfile) error
	GetProfile(ctx context.Context) (*models.UserProfile, bool)

	// Check-in operations
	SaveCheckIn(ctx context.Context, c *models.CheckIn) error
	GetCheckIns(ctx context.Context) []*models.CheckIn
	GetTodayCheckIn(ctx context.Context) (*models.CheckIn, bool)
	FindCheckIn(ctx context.Context, idOrPrefix string) (*models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, id string) error

	// Onboarding flag
	MarkOnboardingComplete(ctx context.Context) error
	IsOnboardingComplete(ctx context.Context) bool

	ClearAll(ctx context.Context) error

	// Today is the local calendar date used for today's check-in.
	Today() string

	// Export/Import
	Export(ctx context.Context) *ExportData
	Import(ctx context.Context, data *ExportData) (*ImportSummary, error)

	// Lifecycle
	Close() error
}
