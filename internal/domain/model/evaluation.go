package model

import (
	"errors"
	"time"
)

// Evaluation is the persisted record of one certification-readiness
// evaluation run. CertificationTypes fixes the sub-task list at creation;
// CertificationEvaluations grows by one entry per successful sub-task and
// never exceeds it.
type Evaluation struct {
	ID                       string                    `json:"id"                        db:"id"`
	OrganizationID           string                    `json:"organization_id"           db:"organization_id"`
	Status                   JobStatus                 `json:"status"                    db:"status"`
	Progress                 float64                   `json:"progress"                  db:"progress"`
	CertificationTypes       []CertificationType       `json:"certification_types"       db:"certification_types"`
	CertificationEvaluations []CertificationEvaluation `json:"certification_evaluations" db:"certification_evaluations"`
	CreatedAt                time.Time                 `json:"created_at"                db:"created_at"`
	UpdatedAt                time.Time                 `json:"updated_at"                db:"updated_at"`
	CompletedAt              *time.Time                `json:"completed_at,omitempty"    db:"completed_at"`
}

// StartEvaluationRequest is the request body for starting an evaluation.
type StartEvaluationRequest struct {
	OrganizationID     string              `json:"organization_id"`
	CertificationTypes []CertificationType `json:"certification_types"`
}

// Validate validates the StartEvaluationRequest fields.
func (r *StartEvaluationRequest) Validate() error {
	if r.OrganizationID == "" {
		return errors.New("organization id is required")
	}
	if len(r.CertificationTypes) == 0 {
		return errors.New("at least one certification type is required")
	}
	for _, ct := range r.CertificationTypes {
		if !ct.Valid() {
			return errors.New("invalid certification type: " + string(ct))
		}
	}
	return nil
}

// EvaluationStatusResponse is the status-poll response for an evaluation.
type EvaluationStatusResponse struct {
	OrganizationID string    `json:"organization_id"`
	EvaluationID   string    `json:"evaluation_id"`
	Status         JobStatus `json:"status"`
	Progress       float64   `json:"progress"`
}
