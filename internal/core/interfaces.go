// Package core defines the ports between the service layer and its external
// collaborators: the job store, the blob store, the chat session store, and
// the model provider. Services depend on these interfaces, never on concrete
// implementations.
package core

import (
	"context"

	"github.com/gencertify/gencertify/internal/domain/model"
)

// EvaluationRepository persists evaluation records. Get scopes by
// organization at the store boundary: an ownership mismatch is reported as
// not found, never as forbidden, so unauthorized existence is not revealed.
type EvaluationRepository interface {
	// Create inserts a new record, assigning an id when blank, and returns
	// the id. The store assigns created_at/updated_at.
	Create(ctx context.Context, eval *model.Evaluation) (string, error)
	// Save overwrites every mutable field of an existing record. There is no
	// partial patch; callers resupply the full record each time.
	Save(ctx context.Context, eval *model.Evaluation) error
	// Get returns the record owned by organizationID, or a NotFound error.
	Get(ctx context.Context, organizationID, id string) (*model.Evaluation, error)
}

// DocumentRepository persists document-generation records with the same
// contract as EvaluationRepository.
type DocumentRepository interface {
	Create(ctx context.Context, gen *model.DocumentGeneration) (string, error)
	Save(ctx context.Context, gen *model.DocumentGeneration) error
	Get(ctx context.Context, organizationID, id string) (*model.DocumentGeneration, error)
	// ListByOrganization returns all generation records for one organization,
	// newest first.
	ListByOrganization(ctx context.Context, organizationID string) ([]*model.DocumentGeneration, error)
}

// OrganizationRepository persists organization profile data.
type OrganizationRepository interface {
	// Upsert inserts or fully replaces an organization profile and returns
	// its id (assigned when blank).
	Upsert(ctx context.Context, org *model.Organization) (string, error)
	GetByID(ctx context.Context, id string) (*model.Organization, error)
}

// ChatSessionStore keeps chat session history with a TTL.
type ChatSessionStore interface {
	Save(ctx context.Context, session *model.ChatSession) error
	// Get returns the session when it exists and belongs to organizationID;
	// a mismatch behaves as absence.
	Get(ctx context.Context, organizationID, sessionID string) (*model.ChatSession, error)
}

// UploadParams groups parameters for BlobStore.Upload to keep param count ≤3.
type UploadParams struct {
	OrganizationID string
	FileName       string
	ContentType    string
	Content        []byte
}

// BlobStore stores generated document files keyed by organization.
type BlobStore interface {
	// Upload stores the content and returns its file URL.
	Upload(ctx context.Context, params UploadParams) (string, error)
	// DownloadURL resolves the URL for a previously uploaded file, or a
	// NotFound error.
	DownloadURL(ctx context.Context, organizationID, fileName string) (string, error)
}

// TaskQueue accepts background work. The worker pool implements it; job
// services enqueue their pipeline runs through it so HTTP create calls can
// return immediately.
type TaskQueue interface {
	Enqueue(ctx context.Context, task func(ctx context.Context)) error
}

// EvaluateCertificationParams groups inputs for one certification sub-task.
type EvaluateCertificationParams struct {
	OrganizationID    string
	CertificationType model.CertificationType
}

// GenerateDocumentParams groups inputs for one document sub-task. Evaluation
// is the prerequisite record fetched before the run.
type GenerateDocumentParams struct {
	OrganizationID string
	EvaluationID   string
	DocumentType   model.DocumentType
	Evaluation     *model.Evaluation
}

// ChatParams groups inputs for one chat turn. History is the prior session
// messages, oldest first.
type ChatParams struct {
	OrganizationID string
	SessionID      string
	Message        string
	History        []model.ChatMessage
}

// ModelProvider is the external AI generation service. Implementations are
// selected by configuration and must signal failure via an error, never a
// sentinel result.
type ModelProvider interface {
	EvaluateCertification(ctx context.Context, params EvaluateCertificationParams) (*model.CertificationEvaluation, error)
	GenerateDocument(ctx context.Context, params GenerateDocumentParams) (string, error)
	GenerateChatResponse(ctx context.Context, params ChatParams) (string, error)
}
