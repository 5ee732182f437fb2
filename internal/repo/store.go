package repo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/tbourn/holistiq/internal/domain"
)

var (
	// ErrStoreUnavailable is returned by reads when no backend is configured.
	ErrStoreUnavailable = errors.New("database not available")
	// ErrNotFound is returned when a lookup by id matches nothing.
	ErrNotFound = errors.New("record not found")
)

// DefaultWriteTimeout bounds each background write when none is configured.
const DefaultWriteTimeout = 5 * time.Second

var storeWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "holistiq",
		Name:      "store_writes_total",
		Help:      "Background record writes by collection and outcome.",
	},
	[]string{"collection", "outcome"},
)

func init() {
	prometheus.MustRegister(storeWrites)
}

// Backend is a concrete record database.
type Backend interface {
	Name() string
	NewID() domain.ID
	Insert(ctx context.Context, rec domain.Record) error
	// FindRecent decodes up to limit records (all when limit <= 0), newest
	// first, into out, which must point to a slice.
	FindRecent(ctx context.Context, collection string, limit int, out any) error
	FindByID(ctx context.Context, collection string, id domain.ID, out any) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Store is the adapter handlers and services talk to.
//
// Writes never fail from the caller's point of view: Insert assigns the id
// synchronously and persists in the background, logging failures. Reads go
// straight to the backend.
type Store struct {
	backend      Backend
	writeTimeout time.Duration
	pending      sync.WaitGroup
}

// NewStore wraps b. A nil b yields a Store in degraded mode.
func NewStore(b Backend, writeTimeout time.Duration) *Store {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Store{backend: b, writeTimeout: writeTimeout}
}

// Available reports whether a backend is attached.
func (s *Store) Available() bool { return s != nil && s.backend != nil }

// BackendName returns the backend name, or "none".
func (s *Store) BackendName() string {
	if !s.Available() {
		return "none"
	}
	return s.backend.Name()
}

// Insert assigns rec an id and schedules the write. The write is detached
// from ctx cancellation (but keeps its values) and bounded by the store's
// write timeout. Without a backend the record is dropped.
func (s *Store) Insert(ctx context.Context, rec domain.Record) domain.ID {
	if !s.Available() {
		id := domain.ID(uuid.NewString())
		rec.SetID(id)
		return id
	}
	id := s.backend.NewID()
	rec.SetID(id)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)
		defer cancel()

		coll := rec.Collection()
		if err := s.backend.Insert(wctx, rec); err != nil {
			storeWrites.WithLabelValues(coll, "error").Inc()
			log.Error().Err(err).
				Str("collection", coll).
				Str("id", id.String()).
				Str("backend", s.backend.Name()).
				Msg("record write failed")
			return
		}
		storeWrites.WithLabelValues(coll, "ok").Inc()
	}()
	return id
}

// Wait blocks until all scheduled writes have finished.
func (s *Store) Wait() {
	if s != nil {
		s.pending.Wait()
	}
}

// Ping checks the backend.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrStoreUnavailable
	}
	return s.backend.Ping(ctx)
}

// Close drains pending writes and closes the backend.
func (s *Store) Close(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		log.Warn().Msg("closing store with writes still pending")
	}
	return s.backend.Close(ctx)
}

// FindRecent returns up to limit records of collection, newest first.
// limit <= 0 means no limit. The result is never nil on success.
func FindRecent[T any](ctx context.Context, s *Store, collection string, limit int) ([]T, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	out := make([]T, 0)
	if err := s.backend.FindRecent(ctx, collection, limit, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

// FindByID loads a single record.
func FindByID[T any](ctx context.Context, s *Store, collection string, id domain.ID) (*T, error) {
	if !s.Available() {
		return nil, ErrStoreUnavailable
	}
	var out T
	if err := s.backend.FindByID(ctx, collection, id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecentBMI returns the latest BMI readings.
func (s *Store) RecentBMI(ctx context.Context, limit int) ([]domain.BMIReading, error) {
	return FindRecent[domain.BMIReading](ctx, s, domain.CollectionBMI, limit)
}

// RecentWorkouts returns the latest workouts.
func (s *Store) RecentWorkouts(ctx context.Context, limit int) ([]domain.WorkoutEntry, error) {
	return FindRecent[domain.WorkoutEntry](ctx, s, domain.CollectionWorkouts, limit)
}

// RecentMeditations returns the latest meditation sessions.
func (s *Store) RecentMeditations(ctx context.Context, limit int) ([]domain.MeditationEntry, error) {
	return FindRecent[domain.MeditationEntry](ctx, s, domain.CollectionMeditations, limit)
}
