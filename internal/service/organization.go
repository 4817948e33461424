package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gencertify/gencertify/internal/core"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

// OrganizationServiceOptions groups dependencies for OrganizationService.
type OrganizationServiceOptions struct {
	Repo   core.OrganizationRepository
	Logger *slog.Logger
}

// OrganizationService manages organization profile submissions and the
// certification catalog.
type OrganizationService struct {
	repo   core.OrganizationRepository
	logger *slog.Logger
}

// NewOrganizationService constructs an OrganizationService.
func NewOrganizationService(opts OrganizationServiceOptions) (*OrganizationService, error) {
	if opts.Repo == nil {
		return nil, errors.New("organization repository is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OrganizationService{
		repo:   opts.Repo,
		logger: logger.With("component", "organization_service"),
	}, nil
}

// MustNewOrganizationService constructs an OrganizationService or panics.
func MustNewOrganizationService(opts OrganizationServiceOptions) *OrganizationService {
	svc, err := NewOrganizationService(opts)
	if err != nil {
		panic(err)
	}
	return svc
}

// Submit inserts or fully replaces an organization profile and returns it.
func (s *OrganizationService) Submit(
	ctx context.Context,
	req model.SubmitOrganizationRequest,
) (*model.Organization, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	org := &model.Organization{
		ID:           req.ID,
		Name:         req.Name,
		Industry:     req.Industry,
		Size:         req.Size,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
	}
	id, err := s.repo.Upsert(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("upsert organization: %w", err)
	}

	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch organization: %w", err)
	}

	s.logger.InfoContext(ctx, "organization profile submitted", "organization_id", id)
	return stored, nil
}

// Get returns an organization profile by id.
func (s *OrganizationService) Get(ctx context.Context, id string) (*model.Organization, error) {
	if id == "" {
		return nil, apperrors.Validation("organization id is required")
	}
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return org, nil
}

// CertificationCatalog lists the supported certification and document types.
type CertificationCatalog struct {
	CertificationTypes []model.CertificationType `json:"certification_types"`
	DocumentTypes      []model.DocumentType      `json:"document_types"`
}

// Catalog returns the supported certification and document types.
func (s *OrganizationService) Catalog() CertificationCatalog {
	return CertificationCatalog{
		CertificationTypes: model.CertificationTypes(),
		DocumentTypes:      model.DocumentTypes(),
	}
}
