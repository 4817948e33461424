// Package service implements the business logic of the gencertify backend:
// the evaluation and document-generation job services, the chat assistant,
// and organization profiles. Services depend on the ports in internal/core
// and never on concrete adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/job"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

// EvaluationServiceOptions groups dependencies for EvaluationService.
type EvaluationServiceOptions struct {
	Repo     core.EvaluationRepository
	Orgs     core.OrganizationRepository
	Provider core.ModelProvider
	Queue    core.TaskQueue
	Tracker  *job.Tracker
	Logger   *slog.Logger
}

// EvaluationService manages certification-readiness evaluation runs: it
// creates the record, enqueues the background run, and answers status and
// result polls.
type EvaluationService struct {
	repo     core.EvaluationRepository
	orgs     core.OrganizationRepository
	provider core.ModelProvider
	queue    core.TaskQueue
	tracker  *job.Tracker
	pipeline *job.Pipeline
	logger   *slog.Logger
}

// NewEvaluationService constructs an EvaluationService.
func NewEvaluationService(opts EvaluationServiceOptions) (*EvaluationService, error) {
	if opts.Repo == nil {
		return nil, errors.New("evaluation repository is required")
	}
	if opts.Orgs == nil {
		return nil, errors.New("organization repository is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("model provider is required")
	}
	if opts.Queue == nil {
		return nil, errors.New("task queue is required")
	}
	if opts.Tracker == nil {
		return nil, errors.New("job tracker is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "evaluation_service")

	return &EvaluationService{
		repo:     opts.Repo,
		orgs:     opts.Orgs,
		provider: opts.Provider,
		queue:    opts.Queue,
		tracker:  opts.Tracker,
		pipeline: job.NewPipeline(logger),
		logger:   logger,
	}, nil
}

// MustNewEvaluationService constructs an EvaluationService or panics.
func MustNewEvaluationService(opts EvaluationServiceOptions) *EvaluationService {
	svc, err := NewEvaluationService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Start validates the request, persists a pending evaluation record, and
// enqueues the background run. It returns the evaluation id immediately;
// callers poll GetStatus for progress.
func (s *EvaluationService) Start(ctx context.Context, req model.StartEvaluationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", apperrors.Validation(err.Error())
	}

	if _, err := s.orgs.GetByID(ctx, req.OrganizationID); err != nil {
		if apperrors.IsNotFound(err) {
			return "", apperrors.NotFoundf("organization %s not found", req.OrganizationID)
		}
		return "", fmt.Errorf("fetch organization: %w", err)
	}

	eval := &model.Evaluation{
		OrganizationID:     req.OrganizationID,
		Status:             model.JobStatusPending,
		Progress:           0,
		CertificationTypes: req.CertificationTypes,
	}
	id, err := s.repo.Create(ctx, eval)
	if err != nil {
		return "", fmt.Errorf("create evaluation: %w", err)
	}
	eval.ID = id

	s.tracker.Begin(id, job.Entry{
		OrganizationID: req.OrganizationID,
		Status:         model.JobStatusPending,
		Progress:       0,
	})

	if err := s.queue.Enqueue(ctx, func(runCtx context.Context) {
		s.Run(runCtx, eval)
	}); err != nil {
		s.failJob(ctx, eval, fmt.Errorf("enqueue evaluation run: %w", err))
		return "", fmt.Errorf("enqueue evaluation run: %w", err)
	}

	s.logger.InfoContext(ctx, "evaluation started",
		"evaluation_id", id,
		"organization_id", req.OrganizationID,
		"certification_types", len(req.CertificationTypes))

	return id, nil
}

// Run executes the evaluation pipeline: one model call per requested
// certification type, persisting the full record after every successful
// sub-task. A failing sub-task is skipped; the job still completes.
func (s *EvaluationService) Run(ctx context.Context, eval *model.Evaluation) {
	eval.Status = model.JobStatusInProgress
	eval.Progress = 0
	if err := s.repo.Save(ctx, eval); err != nil {
		s.failJob(ctx, eval, fmt.Errorf("persist in_progress: %w", err))
		return
	}
	s.tracker.SetStatus(eval.ID, model.JobStatusInProgress)

	s.pipeline.Run(ctx, job.RunParams{
		JobID: eval.ID,
		Total: len(eval.CertificationTypes),
		Execute: func(execCtx context.Context, index int) error {
			certType := eval.CertificationTypes[index]
			result, err := s.provider.EvaluateCertification(execCtx, core.EvaluateCertificationParams{
				OrganizationID:    eval.OrganizationID,
				CertificationType: certType,
			})
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", certType, err)
			}
			eval.CertificationEvaluations = append(eval.CertificationEvaluations, *result)
			return nil
		},
		Advance: func(advCtx context.Context, progress float64) error {
			eval.Progress = progress
			if err := s.repo.Save(advCtx, eval); err != nil {
				return err
			}
			s.tracker.SetProgress(eval.ID, progress)
			return nil
		},
	})

	eval.Status = model.JobStatusCompleted
	eval.Progress = job.ProgressComplete
	if err := s.repo.Save(ctx, eval); err != nil {
		s.failJob(ctx, eval, fmt.Errorf("persist completion: %w", err))
		return
	}
	s.tracker.SetStatus(eval.ID, model.JobStatusCompleted)
	s.tracker.SetProgress(eval.ID, job.ProgressComplete)

	s.logger.InfoContext(ctx, "evaluation completed",
		"evaluation_id", eval.ID,
		"organization_id", eval.OrganizationID,
		"results", len(eval.CertificationEvaluations))
}

// failJob marks the evaluation failed, holding progress at the tracker's
// last known value. Persistence here is best-effort.
func (s *EvaluationService) failJob(ctx context.Context, eval *model.Evaluation, cause error) {
	s.logger.ErrorContext(ctx, "evaluation failed",
		"evaluation_id", eval.ID,
		"organization_id", eval.OrganizationID,
		"error", cause)

	eval.Status = model.JobStatusFailed
	eval.Progress = s.tracker.Progress(eval.ID)
	if err := s.repo.Save(ctx, eval); err != nil {
		s.logger.ErrorContext(ctx, "persist failed state",
			"evaluation_id", eval.ID,
			"error", err)
	}
	s.tracker.SetStatus(eval.ID, model.JobStatusFailed)
}

// GetStatus answers a status poll. Active jobs are served from the tracker
// without touching the store; otherwise the record is fetched, scoped to the
// organization.
func (s *EvaluationService) GetStatus(
	ctx context.Context,
	organizationID, evaluationID string,
) (*model.EvaluationStatusResponse, error) {
	if entry, ok := s.tracker.Lookup(evaluationID, organizationID); ok {
		return &model.EvaluationStatusResponse{
			OrganizationID: organizationID,
			EvaluationID:   evaluationID,
			Status:         entry.Status,
			Progress:       entry.Progress,
		}, nil
	}

	eval, err := s.repo.Get(ctx, organizationID, evaluationID)
	if err != nil {
		return nil, fmt.Errorf("get evaluation: %w", err)
	}

	return &model.EvaluationStatusResponse{
		OrganizationID: eval.OrganizationID,
		EvaluationID:   eval.ID,
		Status:         eval.Status,
		Progress:       eval.Progress,
	}, nil
}

// GetResults returns the full evaluation record once it has completed. Until
// then callers receive a status envelope instead of results.
func (s *EvaluationService) GetResults(
	ctx context.Context,
	organizationID, evaluationID string,
) (*model.Evaluation, *model.JobStatusEnvelope, error) {
	eval, err := s.repo.Get(ctx, organizationID, evaluationID)
	if err != nil {
		return nil, nil, fmt.Errorf("get evaluation: %w", err)
	}

	if eval.Status != model.JobStatusCompleted {
		return nil, &model.JobStatusEnvelope{
			Status:   eval.Status,
			Progress: eval.Progress,
			Message:  "evaluation is not completed",
		}, nil
	}

	return eval, nil, nil
}
