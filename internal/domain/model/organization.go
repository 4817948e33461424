package model

import (
	"errors"
	"time"
)

// Organization is the tenant that owns evaluations, document generations, and
// chat sessions.
type Organization struct {
	ID           string    `json:"id"            db:"id"`
	Name         string    `json:"name"          db:"name"`
	Industry     string    `json:"industry"      db:"industry"`
	Size         string    `json:"size"          db:"size"`
	Description  string    `json:"description"   db:"description"`
	ContactEmail string    `json:"contact_email" db:"contact_email"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// SubmitOrganizationRequest is the request body for submitting organization
// profile data. ID is optional; the store assigns one when blank.
type SubmitOrganizationRequest struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Industry     string `json:"industry,omitempty"`
	Size         string `json:"size,omitempty"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// Validate validates the SubmitOrganizationRequest fields.
func (r *SubmitOrganizationRequest) Validate() error {
	if r.Name == "" {
		return errors.New("organization name is required")
	}
	return nil
}
