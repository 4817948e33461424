// Package model defines the core data types for the gencertify
// certification-readiness backend.
package model

// JobStatus is the lifecycle state of a long-running job (an evaluation run
// or a document-generation run). Transitions are forward-only:
// pending → in_progress → completed | failed.
type JobStatus string

const (
	// JobStatusPending indicates a job is created but not yet running.
	JobStatusPending JobStatus = "pending"
	// JobStatusInProgress indicates a job is being processed.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates a job finished. A job completes even when
	// individual sub-tasks failed; only setup errors fail the whole job.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates a job failed before its sub-task loop ran.
	JobStatusFailed JobStatus = "failed"
)

// Valid returns true if the JobStatus is a known state.
func (s JobStatus) Valid() bool {
	return s == JobStatusPending || s == JobStatusInProgress ||
		s == JobStatusCompleted || s == JobStatusFailed
}

// Terminal returns true if no further status transition is allowed.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// CanTransitionTo reports whether moving from s to next preserves the
// forward-only lifecycle.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case JobStatusPending:
		return next == JobStatusInProgress || next == JobStatusFailed
	case JobStatusInProgress:
		return next == JobStatusCompleted || next == JobStatusFailed
	default:
		return false
	}
}

// JobStatusEnvelope is the polling response for both evaluations and document
// generations. Results are only returned once Status is completed; until then
// callers get this envelope.
type JobStatusEnvelope struct {
	Status   JobStatus `json:"status"`
	Progress float64   `json:"progress"`
	Message  string    `json:"message,omitempty"`
}
