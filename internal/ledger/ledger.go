// Package ledger implements the date-keyed record store and the job catalog.
//
// Every operation returns a new value and leaves its input untouched: maps
// and slices are copied before they are changed, so a reader holding an
// earlier snapshot never observes a partial update.
package ledger

import (
	"time"

	"github.com/yevmiyelerim/yev/internal/earnings"
	"github.com/yevmiyelerim/yev/internal/model"
)

// SaveWork stores e under key, replacing any previous entry for that day.
// TotalEarnings is always recomputed from the entry's inputs.
func SaveWork(s model.Store, key string, e model.WorkEntry) model.Store {
	work := copyWork(s.Work, 1)
	work[key] = earnings.Apply(e)
	return model.Store{Work: work, Payments: s.Payments}
}

// SavePayment stores p under key, replacing any previous payment for that day.
// The payment's own DateKey is set to key.
func SavePayment(s model.Store, key string, p model.PaymentEntry) model.Store {
	payments := copyPayments(s.Payments, 1)
	p.DateKey = key
	payments[key] = p
	return model.Store{Work: s.Work, Payments: payments}
}

// DeleteWork removes the work entry for key. Deleting a missing key is a no-op.
func DeleteWork(s model.Store, key string) model.Store {
	if _, ok := s.Work[key]; !ok {
		return s
	}
	work := copyWork(s.Work, 0)
	delete(work, key)
	return model.Store{Work: work, Payments: s.Payments}
}

// DeletePayment removes the payment for key. Deleting a missing key is a no-op.
func DeletePayment(s model.Store, key string) model.Store {
	if _, ok := s.Payments[key]; !ok {
		return s
	}
	payments := copyPayments(s.Payments, 0)
	delete(payments, key)
	return model.Store{Work: s.Work, Payments: payments}
}

// Reset returns an empty store. The job catalog lives elsewhere and is not
// affected.
func Reset() model.Store {
	return model.NewStore()
}

// SaveJob updates the job with the same ID in place, keeping its position.
// A job whose ID is unknown (or zero) is appended with a fresh ID.
func SaveJob(jobs []model.Job, job model.Job) []model.Job {
	if job.ID != 0 {
		if i := IndexOfJob(jobs, job.ID); i >= 0 {
			out := append([]model.Job(nil), jobs...)
			out[i] = job
			return out
		}
	}
	job.ID = NewJobID(jobs, time.Now())
	out := make([]model.Job, 0, len(jobs)+1)
	out = append(out, jobs...)
	return append(out, job)
}

// DeleteJob removes the job with the given ID. Unknown IDs are a no-op.
func DeleteJob(jobs []model.Job, id int64) []model.Job {
	i := IndexOfJob(jobs, id)
	if i < 0 {
		return jobs
	}
	out := make([]model.Job, 0, len(jobs)-1)
	out = append(out, jobs[:i]...)
	return append(out, jobs[i+1:]...)
}

// IndexOfJob returns the position of the job with the given ID, or -1.
func IndexOfJob(jobs []model.Job, id int64) int {
	for i, j := range jobs {
		if j.ID == id {
			return i
		}
	}
	return -1
}

// FindJobByName returns the first job with the given name.
func FindJobByName(jobs []model.Job, name string) (model.Job, bool) {
	for _, j := range jobs {
		if j.Name == name {
			return j, true
		}
	}
	return model.Job{}, false
}

// NewJobID derives an ID from now in milliseconds. If that would not be
// larger than every existing ID it takes max+1 instead, so IDs only grow and
// a deleted job's ID is not handed out again while a later job exists.
func NewJobID(jobs []model.Job, now time.Time) int64 {
	id := now.UnixMilli()
	for _, j := range jobs {
		if j.ID >= id {
			id = j.ID + 1
		}
	}
	return id
}

func copyWork(m map[string]model.WorkEntry, extra int) map[string]model.WorkEntry {
	out := make(map[string]model.WorkEntry, len(m)+extra)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPayments(m map[string]model.PaymentEntry, extra int) map[string]model.PaymentEntry {
	out := make(map[string]model.PaymentEntry, len(m)+extra)
	for k, v := range m {
		out[k] = v
	}
	return out
}
