package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/data"
	"github.com/gencertify/gencertify/internal/domain/job"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

// DocumentServiceOptions groups dependencies for DocumentService.
type DocumentServiceOptions struct {
	Repo        core.DocumentRepository
	Evaluations core.EvaluationRepository
	Orgs        core.OrganizationRepository
	Provider    core.ModelProvider
	Blobs       core.BlobStore
	Queue       core.TaskQueue
	Tracker     *job.Tracker
	Time        data.TimeProvider
	Logger      *slog.Logger
}

// DocumentService manages compliance-document generation runs. A run drafts
// one document per requested type from a completed evaluation, uploads each
// to the blob store, and records the file metadata.
type DocumentService struct {
	repo        core.DocumentRepository
	evaluations core.EvaluationRepository
	orgs        core.OrganizationRepository
	provider    core.ModelProvider
	blobs       core.BlobStore
	queue       core.TaskQueue
	tracker     *job.Tracker
	pipeline    *job.Pipeline
	time        data.TimeProvider
	logger      *slog.Logger
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(opts DocumentServiceOptions) (*DocumentService, error) {
	if opts.Repo == nil {
		return nil, errors.New("document repository is required")
	}
	if opts.Evaluations == nil {
		return nil, errors.New("evaluation repository is required")
	}
	if opts.Orgs == nil {
		return nil, errors.New("organization repository is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("model provider is required")
	}
	if opts.Blobs == nil {
		return nil, errors.New("blob store is required")
	}
	if opts.Queue == nil {
		return nil, errors.New("task queue is required")
	}
	if opts.Tracker == nil {
		return nil, errors.New("job tracker is required")
	}

	timeProvider := opts.Time
	if timeProvider == nil {
		timeProvider = &data.RealTimeProvider{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "document_service")

	return &DocumentService{
		repo:        opts.Repo,
		evaluations: opts.Evaluations,
		orgs:        opts.Orgs,
		provider:    opts.Provider,
		blobs:       opts.Blobs,
		queue:       opts.Queue,
		tracker:     opts.Tracker,
		pipeline:    job.NewPipeline(logger),
		time:        timeProvider,
		logger:      logger,
	}, nil
}

// MustNewDocumentService constructs a DocumentService or panics.
func MustNewDocumentService(opts DocumentServiceOptions) *DocumentService {
	svc, err := NewDocumentService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Start validates the request, persists a pending generation record, and
// enqueues the background run. The referenced evaluation is checked here so
// a bad request fails fast with 404 instead of a failed job.
func (s *DocumentService) Start(ctx context.Context, req model.GenerateDocumentsRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}

	if _, err := s.orgs.GetByID(ctx, req.OrganizationID); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFoundf("organization %s not found", req.OrganizationID)
		}
		return "", fmt.Errorf("fetch organization: %w", err)
	}
	if _, err := s.evaluations.Get(ctx, req.OrganizationID, req.EvaluationID); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFoundf("evaluation %s not found", req.EvaluationID)
		}
		return "", fmt.Errorf("fetch evaluation: %w", err)
	}

	gen := &model.DocumentGeneration{
		OrganizationID: req.OrganizationID,
		EvaluationID:   req.EvaluationID,
		Status:         model.JobStatusPending,
		Progress:       0,
		DocumentTypes:  req.DocumentTypes,
	}
	id, err := s.repo.Create(ctx, gen)
	if err != nil {
		return "", fmt.Errorf("create document generation: %w", err)
	}
	gen.ID = id

	s.tracker.Begin(id, job.Entry{
		OrganizationID: req.OrganizationID,
		Status:         model.JobStatusPending,
		Progress:       0,
	})

	if err := s.queue.Enqueue(ctx, func(runCtx context.Context) {
		s.Run(runCtx, gen)
	}); err != nil {
		s.failJob(ctx, gen, fmt.Errorf("enqueue document run: %w", err))
		return "", fmt.Errorf("enqueue document run: %w", err)
	}

	s.logger.InfoContext(ctx, "document generation started",
		"document_id", id,
		"organization_id", req.OrganizationID,
		"evaluation_id", req.EvaluationID,
		"document_types", len(req.DocumentTypes))

	return id, nil
}

// Run executes the generation pipeline. The evaluation is the prerequisite:
// when it is absent or not completed the job fails before any document is
// drafted, with progress held at its last known value.
func (s *DocumentService) Run(ctx context.Context, gen *model.DocumentGeneration) {
	eval, err := s.evaluations.Get(ctx, gen.OrganizationID, gen.EvaluationID)
	if err != nil {
		s.failJob(ctx, gen, fmt.Errorf("fetch evaluation %s: %w", gen.EvaluationID, err))
		return
	}
	if eval.Status != model.JobStatusCompleted {
		s.failJob(ctx, gen, fmt.Errorf("evaluation %s is not completed", gen.EvaluationID))
		return
	}

	gen.Status = model.JobStatusInProgress
	gen.Progress = 0
	if err := s.repo.Save(ctx, gen); err != nil {
		s.failJob(ctx, gen, fmt.Errorf("persist in_progress: %w", err))
		return
	}
	s.tracker.SetStatus(gen.ID, model.JobStatusInProgress)

	s.pipeline.Run(ctx, job.RunParams{
		JobID: gen.ID,
		Total: len(gen.DocumentTypes),
		Execute: func(execCtx context.Context, index int) error {
			return s.generateOne(execCtx, gen, eval, gen.DocumentTypes[index])
		},
		Advance: func(advCtx context.Context, progress float64) error {
			gen.Progress = progress
			if err := s.repo.Save(advCtx, gen); err != nil {
				return err
			}
			s.tracker.SetProgress(gen.ID, progress)
			return nil
		},
	})

	gen.Status = model.JobStatusCompleted
	gen.Progress = job.ProgressComplete
	if err := s.repo.Save(ctx, gen); err != nil {
		s.failJob(ctx, gen, fmt.Errorf("persist completion: %w", err))
		return
	}
	s.tracker.SetStatus(gen.ID, model.JobStatusCompleted)
	s.tracker.SetProgress(gen.ID, job.ProgressComplete)

	s.logger.InfoContext(ctx, "document generation completed",
		"document_id", gen.ID,
		"organization_id", gen.OrganizationID,
		"documents", len(gen.GeneratedDocuments))
}

// generateOne drafts a single document, uploads it, and appends its metadata
// to the record.
func (s *DocumentService) generateOne(
	ctx context.Context,
	gen *model.DocumentGeneration,
	eval *model.Evaluation,
	docType model.DocumentType,
) error {
	content, err := s.provider.GenerateDocument(ctx, core.GenerateDocumentParams{
		OrganizationID: gen.OrganizationID,
		EvaluationID:   gen.EvaluationID,
		DocumentType:   docType,
		Evaluation:     eval,
	})
	if err != nil {
		return fmt.Errorf("generate %s: %w", docType, err)
	}

	fileName := docType.FileName()
	fileURL, err := s.blobs.Upload(ctx, core.UploadParams{
		OrganizationID: gen.OrganizationID,
		FileName:       fileName,
		ContentType:    "text/plain; charset=utf-8",
		Content:        []byte(content),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", fileName, err)
	}

	gen.GeneratedDocuments = append(gen.GeneratedDocuments, model.GeneratedDocument{
		DocumentType: docType,
		Format:       model.DocumentFormatTXT,
		FileURL:      fileURL,
		FileName:     fileName,
		SizeBytes:    len(content),
		GeneratedAt:  s.time.Now().UTC(),
	})
	return nil
}

func (s *DocumentService) failJob(ctx context.Context, gen *model.DocumentGeneration, cause error) {
	s.logger.ErrorContext(ctx, "document generation failed",
		"document_id", gen.ID,
		"organization_id", gen.OrganizationID,
		"error", cause)

	gen.Status = model.JobStatusFailed
	gen.Progress = s.tracker.Progress(gen.ID)
	if err := s.repo.Save(ctx, gen); err != nil {
		s.logger.ErrorContext(ctx, "persist failed state",
			"document_id", gen.ID,
			"error", err)
	}
	s.tracker.SetStatus(gen.ID, model.JobStatusFailed)
}

// GetStatus answers a status poll, serving active jobs from the tracker.
func (s *DocumentService) GetStatus(
	ctx context.Context,
	organizationID, documentID string,
) (*model.DocumentStatusResponse, error) {
	if entry, ok := s.tracker.Lookup(documentID, organizationID); ok {
		return &model.DocumentStatusResponse{
			OrganizationID: organizationID,
			DocumentID:     documentID,
			Status:         entry.Status,
			Progress:       entry.Progress,
		}, nil
	}

	gen, err := s.repo.Get(ctx, organizationID, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document generation: %w", err)
	}

	return &model.DocumentStatusResponse{
		OrganizationID: gen.OrganizationID,
		DocumentID:     gen.ID,
		Status:         gen.Status,
		Progress:       gen.Progress,
	}, nil
}

// GetResults returns the full generation record once completed; before that
// callers receive a status envelope.
func (s *DocumentService) GetResults(
	ctx context.Context,
	organizationID, documentID string,
) (*model.DocumentGeneration, *model.JobStatusEnvelope, error) {
	gen, err := s.repo.Get(ctx, organizationID, documentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get document generation: %w", err)
	}

	if gen.Status != model.JobStatusCompleted {
		return nil, &model.JobStatusEnvelope{
			Status:   gen.Status,
			Progress: gen.Progress,
			Message:  "document generation is not completed",
		}, nil
	}

	return gen, nil, nil
}

// List returns all generation records for one organization, newest first.
func (s *DocumentService) List(ctx context.Context, organizationID string) ([]*model.DocumentGeneration, error) {
	if organizationID == "" {
		return nil, apperrors.Validation("organization id is required")
	}
	gens, err := s.repo.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list document generations: %w", err)
	}
	return gens, nil
}

// DownloadURL resolves the stored file URL for a generated document.
func (s *DocumentService) DownloadURL(ctx context.Context, organizationID, fileName string) (string, error) {
	url, err := s.blobs.DownloadURL(ctx, organizationID, fileName)
	if err != nil {
		return "", fmt.Errorf("resolve download url: %w", err)
	}
	return url, nil
}
