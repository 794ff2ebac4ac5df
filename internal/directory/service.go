// Package directory mediates between screens and the profile store. It keeps
// the list the screens render together with a loading flag and the last
// user-facing error.
package directory

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"PROFILE_EXPLORER_BACK-END/internal/async"
	"PROFILE_EXPLORER_BACK-END/internal/models"
	"PROFILE_EXPLORER_BACK-END/internal/store"
)

// State is an immutable snapshot of what the directory exposes.
type State struct {
	Profiles []models.Profile `json:"profiles"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

// InFlightTracker is told when a store call starts and ends.
type InFlightTracker interface {
	InFlightInc()
	InFlightDec()
}

type nopTracker struct{}

func (nopTracker) InFlightInc() {}
func (nopTracker) InFlightDec() {}

// Service is the single access point screens use for profile data.
type Service struct {
	store   store.Store
	logger  zerolog.Logger
	tracker InFlightTracker

	mu       sync.RWMutex
	profiles []models.Profile
	pending  int
	errMsg   string
}

// Option configures a Service.
type Option func(*Service)

// WithInFlightTracker reports in-flight store calls, e.g. to metrics.
func WithInFlightTracker(t InFlightTracker) Option {
	return func(s *Service) { s.tracker = t }
}

// NewService creates a service whose initial list is initial.
func NewService(st store.Store, initial []models.Profile, logger zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    st,
		logger:   logger.With().Str("component", "directory").Logger(),
		tracker:  nopTracker{},
		profiles: cloneAll(initial),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Profiles: cloneAll(s.profiles),
		Loading:  s.pending > 0,
		Error:    s.errMsg,
	}
}

// Refresh replaces the list with the store's collection. Failures are not
// returned: the list becomes empty and the error message is set.
func (s *Service) Refresh(ctx context.Context) []models.Profile {
	s.begin()
	task := async.Go(func() ([]models.Profile, error) {
		defer s.end()
		list, err := s.store.List(context.WithoutCancel(ctx))
		if err != nil {
			s.fail("Failed to fetch profiles", err, func() { s.profiles = nil })
			return nil, err
		}
		s.succeed(func() { s.profiles = cloneAll(list) })
		return list, nil
	})

	list, err := task.Await(ctx)
	if err != nil {
		return []models.Profile{}
	}
	return list
}

// Create stores a new profile. The exposed list is left as is; callers
// refresh when they want to see the new record.
func (s *Service) Create(ctx context.Context, p models.Profile) (models.Profile, error) {
	s.begin()
	task := async.Go(func() (models.Profile, error) {
		defer s.end()
		created, err := s.store.Create(context.WithoutCancel(ctx), p)
		if err != nil {
			s.fail("Failed to add profile", err, nil)
			return models.Profile{}, err
		}
		s.succeed(nil)
		s.logger.Info().Int("profile_id", created.ID).Msg("profile created")
		return created, nil
	})
	return task.Await(ctx)
}

// Update merges patch into the stored profile and replaces the matching
// entry of the exposed list.
func (s *Service) Update(ctx context.Context, id int, patch models.ProfilePatch) (models.Profile, error) {
	s.begin()
	task := async.Go(func() (models.Profile, error) {
		defer s.end()
		updated, err := s.store.Update(context.WithoutCancel(ctx), id, patch)
		if err != nil {
			s.fail("Failed to update profile", err, nil)
			return models.Profile{}, err
		}
		s.succeed(func() {
			for i := range s.profiles {
				if s.profiles[i].ID == id {
					s.profiles[i] = updated.Clone()
				}
			}
		})
		s.logger.Info().Int("profile_id", id).Msg("profile updated")
		return updated, nil
	})
	return task.Await(ctx)
}

// Remove deletes the profile and drops it from the exposed list.
func (s *Service) Remove(ctx context.Context, id int) error {
	s.begin()
	task := async.Go(func() (store.DeleteResult, error) {
		defer s.end()
		res, err := s.store.Delete(context.WithoutCancel(ctx), id)
		if err != nil {
			s.fail("Failed to delete profile", err, nil)
			return res, err
		}
		s.succeed(func() {
			kept := s.profiles[:0:0]
			for _, p := range s.profiles {
				if p.ID != id {
					kept = append(kept, p)
				}
			}
			s.profiles = kept
		})
		s.logger.Info().Int("profile_id", id).Msg("profile deleted")
		return res, nil
	})
	_, err := task.Await(ctx)
	return err
}

func (s *Service) begin() {
	s.tracker.InFlightInc()
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
}

func (s *Service) end() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
	s.tracker.InFlightDec()
}

func (s *Service) succeed(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
	if apply != nil {
		apply()
	}
}

func (s *Service) fail(prefix string, err error, apply func()) {
	msg := fmt.Sprintf("%s: %v", prefix, err)
	s.logger.Warn().Err(err).Msg(prefix)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = msg
	if apply != nil {
		apply()
	}
}

func cloneAll(in []models.Profile) []models.Profile {
	out := make([]models.Profile, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
