// ABOUTME: Record store persisting the profile and check-in collection as JSON blobs.
// ABOUTME: Reads degrade to empty or absent; writes return a *StorageError.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/kv"
	"github.com/harperreed/velamind/internal/models"
)

// Store implements Repository over a key-value medium.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
	now    func() time.Time

	// mu serializes read-modify-write sequences within this process.
	// Two processes sharing one medium can still interleave.
	mu sync.Mutex
}

var _ Repository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for degraded reads and failed writes.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used to resolve today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store over the given medium.
func New(medium kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:     medium,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying medium.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Today returns the store's current local calendar date.
func (s *Store) Today() string {
	return models.FormatDate(s.now())
}

// SaveProfile overwrites the stored profile. Field shapes are not validated.
func (s *Store) SaveProfile(ctx context.Context, p *models.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &StorageError{Op: "encode", Key: KeyProfile, Err: err}
	}
	return s.write(ctx, KeyProfile, data)
}

// GetProfile returns the stored profile. A missing, unreadable or invalid
// record is reported as absent.
func (s *Store) GetProfile(ctx context.Context) (*models.UserProfile, bool) {
	data, ok := s.read(ctx, KeyProfile)
	if !ok {
		return nil, false
	}
	var p models.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("discarding corrupt profile", zap.String("key", KeyProfile), zap.Error(err))
		return nil, false
	}
	if err := p.Validate(); err != nil {
		s.logger.Warn("discarding invalid profile", zap.String("key", KeyProfile), zap.Error(err))
		return nil, false
	}
	return &p, true
}

// SaveCheckIn prepends c to the collection. Entries that would not read back
// are rejected with an error wrapping ErrInvalidCheckIn.
func (s *Store) SaveCheckIn(ctx context.Context, c *models.CheckIn) error {
	if c == nil {
		return fmt.Errorf("%w: nil check-in", ErrInvalidCheckIn)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCheckIn, err)
	}
	entry, err := newStoredCheckIn(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all := append([]storedCheckIn{entry}, s.readEntries(ctx)...)
	return s.writeEntries(ctx, all)
}

// GetCheckIns returns every check-in, newest first.
func (s *Store) GetCheckIns(ctx context.Context) []*models.CheckIn {
	return s.readCheckIns(ctx)
}

// GetTodayCheckIn returns the first check-in dated today.
func (s *Store) GetTodayCheckIn(ctx context.Context) (*models.CheckIn, bool) {
	today := s.Today()
	for _, c := range s.readCheckIns(ctx) {
		if c.Date == today {
			return c, true
		}
	}
	return nil, false
}

// FindCheckIn resolves a full id or a unique id prefix.
func (s *Store) FindCheckIn(ctx context.Context, idOrPrefix string) (*models.CheckIn, error) {
	if idOrPrefix == "" {
		return nil, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	var match *models.CheckIn
	for _, c := range s.readCheckIns(ctx) {
		if c.ID == idOrPrefix {
			return c, nil
		}
		if strings.HasPrefix(c.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
			}
			match = c
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, idOrPrefix)
	}
	return match, nil
}

// DeleteCheckIn removes the check-in with the given id, keeping the order of
// the rest. Deleting an unknown id rewrites the collection unchanged.
func (s *Store) DeleteCheckIn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.readEntries(ctx)
	kept := make([]storedCheckIn, 0, len(all))
	for _, e := range all {
		if e.checkIn == nil || e.checkIn.ID != id {
			kept = append(kept, e)
		}
	}
	return s.writeEntries(ctx, kept)
}

// MarkOnboardingComplete sets the onboarding flag.
func (s *Store) MarkOnboardingComplete(ctx context.Context) error {
	return s.write(ctx, KeyOnboarding, []byte("true"))
}

// IsOnboardingComplete reports whether onboarding finished.
func (s *Store) IsOnboardingComplete(ctx context.Context) bool {
	data, ok := s.read(ctx, KeyOnboarding)
	return ok && string(data) == "true"
}

// ClearAll removes the profile, check-ins and onboarding flag in one batch.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, KeyProfile, KeyCheckIns, KeyOnboarding); err != nil {
		s.logger.Error("clear all failed", zap.Error(err))
		return &StorageError{Op: "clear", Key: "all", Err: err}
	}
	return nil
}

func (s *Store) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		s.logger.Warn("read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return data, true
}

func (s *Store) write(ctx context.Context, key string, data []byte) error {
	if err := s.kv.Set(ctx, key, data); err != nil {
		s.logger.Error("write failed", zap.String("key", key), zap.Error(err))
		return &StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// storedCheckIn is one element of the persisted collection. checkIn is nil
// when raw does not decode to a valid entry; raw is written back untouched.
type storedCheckIn struct {
	raw     json.RawMessage
	checkIn *models.CheckIn
}

func newStoredCheckIn(c *models.CheckIn) (storedCheckIn, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return storedCheckIn{}, &StorageError{Op: "encode", Key: KeyCheckIns, Err: err}
	}
	return storedCheckIn{raw: raw, checkIn: c}, nil
}

// readEntries decodes the collection entry by entry so one bad record does
// not hide the rest. Unreadable entries are kept with a nil checkIn.
func (s *Store) readEntries(ctx context.Context) []storedCheckIn {
	data, ok := s.read(ctx, KeyCheckIns)
	if !ok {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("discarding corrupt check-in collection", zap.String("key", KeyCheckIns), zap.Error(err))
		return nil
	}
	out := make([]storedCheckIn, 0, len(raw))
	for i, r := range raw {
		entry := storedCheckIn{raw: r}
		var c models.CheckIn
		if err := json.Unmarshal(r, &c); err != nil {
			s.logger.Warn("skipping corrupt check-in", zap.Int("index", i), zap.Error(err))
		} else if err := c.Validate(); err != nil {
			s.logger.Warn("skipping invalid check-in", zap.Int("index", i), zap.String("id", c.ID), zap.Error(err))
		} else {
			entry.checkIn = &c
		}
		out = append(out, entry)
	}
	return out
}

// readCheckIns returns the readable entries of the collection in stored order.
func (s *Store) readCheckIns(ctx context.Context) []*models.CheckIn {
	entries := s.readEntries(ctx)
	out := make([]*models.CheckIn, 0, len(entries))
	for _, e := range entries {
		if e.checkIn != nil {
			out = append(out, e.checkIn)
		}
	}
	return out
}

func (s *Store) writeEntries(ctx context.Context, all []storedCheckIn) error {
	raw := make([]json.RawMessage, 0, len(all))
	for _, e := range all {
		raw = append(raw, e.raw)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return &StorageError{Op: "encode", Key: KeyCheckIns, Err: err}
	}
	return s.write(ctx, KeyCheckIns, data)
}
