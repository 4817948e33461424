// Package job contains the shared lifecycle machinery for status-tracked
// long-running jobs: the in-memory progress tracker and the sub-task
// pipeline driving evaluations and document generations.
package job

import (
	"sync"

	"github.com/gencertify/gencertify/internal/domain/model"
)

// Entry is the tracked in-memory state of one active job. It mirrors the
// persisted status/progress fields so status polls can be answered without a
// store round trip.
type Entry struct {
	OrganizationID string
	Status         model.JobStatus
	Progress       float64
}

// Tracker is a mutex-guarded map of job id to Entry. The runner is the single
// writer for any given id; readers receive snapshot copies. Entries are
// process-local and lost on restart.
type Tracker struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]Entry)}
}

// Begin registers a job as active, replacing any previous entry.
func (t *Tracker) Begin(jobID string, entry Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[jobID] = entry
}

// SetProgress updates the progress of a tracked job. Unknown ids are ignored.
func (t *Tracker) SetProgress(jobID string, progress float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[jobID]; ok {
		e.Progress = progress
		t.entries[jobID] = e
	}
}

// SetStatus updates the status of a tracked job. Unknown ids are ignored.
func (t *Tracker) SetStatus(jobID string, status model.JobStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[jobID]; ok {
		e.Status = status
		t.entries[jobID] = e
	}
}

// Lookup returns the entry for jobID when it exists and is owned by
// organizationID. An ownership mismatch is indistinguishable from absence.
func (t *Tracker) Lookup(jobID, organizationID string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[jobID]
	if !ok || e.OrganizationID != organizationID {
		return Entry{}, false
	}
	return e, true
}

// Progress returns the last known progress for jobID, or 0 when the job is
// not tracked. Used to hold progress at its last value on the failure path.
func (t *Tracker) Progress(jobID string) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.entries[jobID].Progress
}
