package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DocumentType identifies a compliance document the backend can draft.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type DocumentType string

const (
	// DocumentInfoSecPolicy is an information security policy.
	DocumentInfoSecPolicy DocumentType = "information_security_policy"
	// DocumentSystemDescription is a system description document.
	DocumentSystemDescription DocumentType = "system_description"
	// DocumentIncidentResponse is an incident response procedure.
	DocumentIncidentResponse DocumentType = "incident_response_procedure"
	// DocumentRiskAssessment is a risk assessment document.
	DocumentRiskAssessment DocumentType = "risk_assessment"
	// DocumentDataProtectionPolicy is a data protection policy.
	DocumentDataProtectionPolicy DocumentType = "data_protection_policy"
	// DocumentBusinessContinuity is a business continuity plan.
	DocumentBusinessContinuity DocumentType = "business_continuity_plan"
	// DocumentAcceptableUsePolicy is an acceptable use policy.
	DocumentAcceptableUsePolicy DocumentType = "acceptable_use_policy"
	// DocumentVendorManagement is a vendor management policy.
	DocumentVendorManagement DocumentType = "vendor_management_policy"
)

// DocumentTypes returns all supported document types.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentInfoSecPolicy,
		DocumentSystemDescription,
		DocumentIncidentResponse,
		DocumentRiskAssessment,
		DocumentDataProtectionPolicy,
		DocumentBusinessContinuity,
		DocumentAcceptableUsePolicy,
		DocumentVendorManagement,
	}
}

// Valid returns true if the DocumentType is supported.
func (t DocumentType) Valid() bool {
	for _, dt := range DocumentTypes() {
		if t == dt {
			return true
		}
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DocumentType) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	dt := DocumentType(v)
	if !dt.Valid() {
		return fmt.Errorf("invalid DocumentType: %q", v)
	}
	*t = dt
	return nil
}

// FileName returns the blob file name for a generated document of this type.
func (t DocumentType) FileName() string {
	return strings.ReplaceAll(string(t), "_", "-") + ".txt"
}

// DocumentFormat is the output format of a generated document.
type DocumentFormat string

const (
	// DocumentFormatTXT is plain text.
	DocumentFormatTXT DocumentFormat = "txt"
	// DocumentFormatPDF is PDF.
	DocumentFormatPDF DocumentFormat = "pdf"
	// DocumentFormatDOCX is Word.
	DocumentFormatDOCX DocumentFormat = "docx"
)

// GeneratedDocument records one successfully drafted and uploaded document.
type GeneratedDocument struct {
	DocumentType DocumentType   `json:"document_type"`
	Format       DocumentFormat `json:"format"`
	FileURL      string         `json:"file_url"`
	FileName     string         `json:"file_name"`
	SizeBytes    int            `json:"size_bytes"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// DocumentGeneration is the persisted record of one document-generation run.
// It requires a completed evaluation as input; a missing evaluation fails the
// run before any document is drafted.
type DocumentGeneration struct {
	ID                 string              `json:"id"                     db:"id"`
	OrganizationID     string              `json:"organization_id"        db:"organization_id"`
	EvaluationID       string              `json:"evaluation_id"          db:"evaluation_id"`
	Status             JobStatus           `json:"status"                 db:"status"`
	Progress           float64             `json:"progress"               db:"progress"`
	DocumentTypes      []DocumentType      `json:"document_types"         db:"document_types"`
	GeneratedDocuments []GeneratedDocument `json:"generated_documents"    db:"generated_documents"`
	CreatedAt          time.Time           `json:"created_at"             db:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"             db:"updated_at"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty" db:"completed_at"`
}

// GenerateDocumentsRequest is the request body for starting a
// document-generation run.
type GenerateDocumentsRequest struct {
	OrganizationID string         `json:"organization_id"`
	EvaluationID   string         `json:"evaluation_id"`
	DocumentTypes  []DocumentType `json:"document_types"`
}

// Validate validates the GenerateDocumentsRequest fields.
func (r *GenerateDocumentsRequest) Validate() error {
	if r.OrganizationID == "" {
		return errors.New("organization id is required")
	}
	if r.EvaluationID == "" {
		return errors.New("evaluation id is required")
	}
	if len(r.DocumentTypes) == 0 {
		return errors.New("at least one document type is required")
	}
	for _, dt := range r.DocumentTypes {
		if !dt.Valid() {
			return errors.New("invalid document type: " + string(dt))
		}
	}
	return nil
}

// DocumentStatusResponse is the status-poll response for a document
// generation.
type DocumentStatusResponse struct {
	OrganizationID string    `json:"organization_id"`
	DocumentID     string    `json:"document_id"`
	Status         JobStatus `json:"status"`
	Progress       float64   `json:"progress"`
}
