// Package session owns the record store and job catalog for one run of the
// program. It loads a snapshot from a Backend, applies one core operation at a
// time and persists the result after each of them.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/yevmiyelerim/yev/internal/ledger"
	"github.com/yevmiyelerim/yev/internal/logging"
	"github.com/yevmiyelerim/yev/internal/model"
	"github.com/yevmiyelerim/yev/internal/summary"
)

// Backend loads and persists whole snapshots. A nil Jobs slice from Load
// means no catalog has ever been stored.
type Backend interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}

// Session serialises mutations and keeps the in-memory snapshot in step with
// the backend: a change becomes visible only after it has been saved.
type Session struct {
	backend Backend
	seed    []model.Job
	log     *slog.Logger

	mu   sync.Mutex
	snap model.Snapshot
}

// New returns a session with an empty store. Call Load before use.
// seed fills the job catalog when the backend has none.
func New(backend Backend, seed []model.Job, logger *slog.Logger) *Session {
	return &Session{
		backend: backend,
		seed:    seed,
		log:     logging.For(logger, logging.ComponentSession),
		snap:    model.Snapshot{Store: model.NewStore(), Jobs: []model.Job{}},
	}
}

// Load replaces the in-memory snapshot with the backend's.
func (s *Session) Load(ctx context.Context) error {
	snap, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if snap.Store.Work == nil || snap.Store.Payments == nil {
		fresh := model.NewStore()
		if snap.Store.Work != nil {
			fresh.Work = snap.Store.Work
		}
		if snap.Store.Payments != nil {
			fresh.Payments = snap.Store.Payments
		}
		snap.Store = fresh
	}
	if snap.Jobs == nil {
		snap.Jobs = seedCatalog(s.seed, time.Now())
		s.log.Debug("seeded job catalog", "jobs", len(snap.Jobs))
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return nil
}

// seedCatalog copies seed, giving every job without an ID a fresh one.
func seedCatalog(seed []model.Job, now time.Time) []model.Job {
	jobs := make([]model.Job, 0, len(seed))
	for _, j := range seed {
		if j.ID == 0 {
			j.ID = ledger.NewJobID(jobs, now)
		}
		jobs = append(jobs, j)
	}
	return jobs
}

// Save persists the current snapshot.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Save(ctx, s.snap)
}

// Snapshot returns the current data. Core operations never modify a
// snapshot in place, so the result stays valid after later mutations.
func (s *Session) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Store returns the current record store.
func (s *Session) Store() model.Store { return s.Snapshot().Store }

// Jobs returns the current job catalog in insertion order.
func (s *Session) Jobs() []model.Job { return s.Snapshot().Jobs }

// Month aggregates the given 0-based month.
func (s *Session) Month(year, month int) summary.Totals {
	return summary.Month(s.Store(), year, month)
}

// Calendar lays out the given 0-based month.
func (s *Session) Calendar(year, month int) summary.Calendar {
	return summary.MonthCalendar(s.Store(), year, month)
}

// mutate applies fn to the current snapshot, persists the result and only
// then makes it current. On a save error the previous snapshot is kept.
func (s *Session) mutate(ctx context.Context, op string, fn func(model.Snapshot) model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.snap)
	if err := s.backend.Save(ctx, next); err != nil {
		s.log.Error("save failed", logging.FieldOperation, op, logging.FieldError, err)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.snap = next
	s.log.Debug("saved", logging.FieldOperation, op)
	return nil
}

// SaveWork records a work day and returns the stored entry with its
// computed earnings.
func (s *Session) SaveWork(ctx context.Context, key string, e model.WorkEntry) (model.WorkEntry, error) {
	var saved model.WorkEntry
	err := s.mutate(ctx, "save work", func(snap model.Snapshot) model.Snapshot {
		snap.Store = ledger.SaveWork(snap.Store, key, e)
		saved = snap.Store.Work[key]
		return snap
	})
	return saved, err
}

// SavePayment records a payment for key.
func (s *Session) SavePayment(ctx context.Context, key string, p model.PaymentEntry) error {
	return s.mutate(ctx, "save payment", func(snap model.Snapshot) model.Snapshot {
		snap.Store = ledger.SavePayment(snap.Store, key, p)
		return snap
	})
}

// DeleteWork removes the work day at key, if any.
func (s *Session) DeleteWork(ctx context.Context, key string) error {
	return s.mutate(ctx, "delete work", func(snap model.Snapshot) model.Snapshot {
		snap.Store = ledger.DeleteWork(snap.Store, key)
		return snap
	})
}

// DeletePayment removes the payment at key, if any.
func (s *Session) DeletePayment(ctx context.Context, key string) error {
	return s.mutate(ctx, "delete payment", func(snap model.Snapshot) model.Snapshot {
		snap.Store = ledger.DeletePayment(snap.Store, key)
		return snap
	})
}

// Reset clears all work and payments. The job catalog is kept.
func (s *Session) Reset(ctx context.Context) error {
	return s.mutate(ctx, "reset", func(snap model.Snapshot) model.Snapshot {
		snap.Store = ledger.Reset()
		return snap
	})
}

// SaveJob adds or updates a job and returns it as stored.
func (s *Session) SaveJob(ctx context.Context, job model.Job) (model.Job, error) {
	var saved model.Job
	err := s.mutate(ctx, "save job", func(snap model.Snapshot) model.Snapshot {
		i := -1
		if job.ID != 0 {
			i = ledger.IndexOfJob(snap.Jobs, job.ID)
		}
		snap.Jobs = ledger.SaveJob(snap.Jobs, job)
		if i < 0 {
			i = len(snap.Jobs) - 1
		}
		saved = snap.Jobs[i]
		return snap
	})
	return saved, err
}

// DeleteJob removes a job from the catalog, if present. Work entries that
// name it are left as they are.
func (s *Session) DeleteJob(ctx context.Context, id int64) error {
	return s.mutate(ctx, "delete job", func(snap model.Snapshot) model.Snapshot {
		snap.Jobs = ledger.DeleteJob(snap.Jobs, id)
		return snap
	})
}
