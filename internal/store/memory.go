package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"PROFILE_EXPLORER_BACK-END/internal/models"
)

// MemoryStore keeps profiles in insertion order in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles []models.Profile
	latency  Latency
	ids      IDScheme
	observer Observer
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithLatency replaces the default simulated latency.
func WithLatency(l Latency) Option {
	return func(s *MemoryStore) { s.latency = l }
}

// WithIDScheme replaces the default identifier scheme.
func WithIDScheme(ids IDScheme) Option {
	return func(s *MemoryStore) { s.ids = ids }
}

// WithObserver registers an observer for completed operations.
func WithObserver(o Observer) Option {
	return func(s *MemoryStore) { s.observer = o }
}

// NewMemoryStore creates a store holding a copy of seed.
func NewMemoryStore(seed []models.Profile, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		profiles: cloneAll(seed),
		latency:  DefaultLatency(),
		ids:      MaxPlusOne{},
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a snapshot of the whole collection.
func (s *MemoryStore) List(ctx context.Context) ([]models.Profile, error) {
	defer s.observe(OpList, time.Now(), nil)
	s.latency.Wait(OpList)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.profiles), nil
}

// GetByID returns the profile with the given id.
func (s *MemoryStore) GetByID(ctx context.Context, id int) (p models.Profile, err error) {
	defer func(start time.Time) { s.observe(OpGet, start, err) }(time.Now())
	s.latency.Wait(OpGet)

	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Profile{}, fmt.Errorf("get profile %d: %w", id, ErrNotFound)
	}
	return s.profiles[i].Clone(), nil
}

// Create appends p with a freshly assigned id. Any id already on p is ignored.
func (s *MemoryStore) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	defer s.observe(OpCreate, time.Now(), nil)
	s.latency.Wait(OpCreate)

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := p.Clone()
	stored.ID = s.ids.Next(s.profiles)
	s.profiles = append(s.profiles, stored)
	return stored.Clone(), nil
}

// Update merges patch over the existing record.
func (s *MemoryStore) Update(ctx context.Context, id int, patch models.ProfilePatch) (p models.Profile, err error) {
	defer func(start time.Time) { s.observe(OpUpdate, start, err) }(time.Now())
	s.latency.Wait(OpUpdate)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Profile{}, fmt.Errorf("update profile %d: %w", id, ErrNotFound)
	}
	s.profiles[i] = patch.Apply(s.profiles[i])
	return s.profiles[i].Clone(), nil
}

// Delete removes the record with the given id.
func (s *MemoryStore) Delete(ctx context.Context, id int) (res DeleteResult, err error) {
	defer func(start time.Time) { s.observe(OpDelete, start, err) }(time.Now())
	s.latency.Wait(OpDelete)

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return DeleteResult{}, fmt.Errorf("delete profile %d: %w", id, ErrNotFound)
	}
	s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
	return DeleteResult{Success: true}, nil
}

// Len reports the current collection size without any latency.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Ready reports whether the store can serve requests. The collection lives
// in process memory, so only an expired ctx makes it unready.
func (s *MemoryStore) Ready(ctx context.Context) error {
	return ctx.Err()
}

// indexOf returns the first position holding id. Callers hold the lock.
func (s *MemoryStore) indexOf(id int) int {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) observe(op Op, start time.Time, err error) {
	s.observer.ObserveOp(op, time.Since(start), err)
}

func cloneAll(in []models.Profile) []models.Profile {
	out := make([]models.Profile, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
