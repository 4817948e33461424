package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gencertify/gencertify/internal/data/pgxutil"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

const documentGenerationColumns = `
  id,
  organization_id,
  evaluation_id,
  status,
  progress,
  document_types,
  generated_documents,
  created_at,
  updated_at,
  completed_at
`

// DocumentRepo provides database operations for document-generation records.
type DocumentRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewDocumentRepo creates a DocumentRepo with the real clock.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewDocumentRepoWithTimeProvider creates a DocumentRepo with a custom clock.
func NewDocumentRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *DocumentRepo {
	return &DocumentRepo{DB: db, timeProvider: tp}
}

// Create inserts a new document-generation record, assigning an id when
// blank, and returns the id.
func (r *DocumentRepo) Create(ctx context.Context, gen *model.DocumentGeneration) (string, error) {
	if gen == nil {
		return "", errors.New("document generation is required")
	}
	if gen.OrganizationID == "" {
		return "", apperrors.Validation("organization id is required")
	}
	if gen.ID == "" {
		gen.ID = uuid.NewString()
	}
	if gen.Status == "" {
		gen.Status = model.JobStatusPending
	}

	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO document_generations (
				id, organization_id, evaluation_id, status, progress,
				document_types, generated_documents,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		`,
			gen.ID,
			gen.OrganizationID,
			gen.EvaluationID,
			gen.Status,
			gen.Progress,
			jsonOrEmptyList(gen.DocumentTypes),
			jsonOrEmptyList(gen.GeneratedDocuments),
			now,
		)
		return execErr
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return gen.ID, nil
}

// Save overwrites every mutable field of an existing document-generation
// record. The store assigns updated_at, and completed_at the first time a
// terminal status is written.
func (r *DocumentRepo) Save(ctx context.Context, gen *model.DocumentGeneration) error {
	if gen == nil || gen.ID == "" {
		return errors.New("document generation with id is required")
	}

	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, execErr := conn.Exec(ctx, `
			UPDATE document_generations SET
				status = $2,
				progress = $3,
				document_types = $4,
				generated_documents = $5,
				updated_at = $6,
				completed_at = CASE
					WHEN $2 IN ('completed', 'failed') AND completed_at IS NULL THEN $6
					ELSE completed_at
				END
			WHERE id = $1
		`,
			gen.ID,
			gen.Status,
			gen.Progress,
			jsonOrEmptyList(gen.DocumentTypes),
			jsonOrEmptyList(gen.GeneratedDocuments),
			now,
		)
		if execErr != nil {
			return execErr
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return apperrors.MapDBError(err)
}

// Get retrieves the document generation owned by organizationID. An
// ownership mismatch is indistinguishable from absence.
func (r *DocumentRepo) Get(ctx context.Context, organizationID, id string) (*model.DocumentGeneration, error) {
	if organizationID == "" || id == "" {
		return nil, apperrors.NotFound("document generation not found")
	}

	var out model.DocumentGeneration
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT `+documentGenerationColumns+`
			FROM document_generations
			WHERE id = $1 AND organization_id = $2
		`, id, organizationID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DocumentGeneration])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByOrganization returns all document-generation records for one
// organization, newest first.
func (r *DocumentRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*model.DocumentGeneration, error) {
	if organizationID == "" {
		return nil, apperrors.Validation("organization id is required")
	}

	var rowsOut []model.DocumentGeneration
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT `+documentGenerationColumns+`
			FROM document_generations
			WHERE organization_id = $1
			ORDER BY created_at DESC
		`, organizationID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		rowsOut, collectErr = pgx.CollectRows(rows, pgx.RowToStructByName[model.DocumentGeneration])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	out := make([]*model.DocumentGeneration, len(rowsOut))
	for i := range rowsOut {
		out[i] = &rowsOut[i]
	}
	return out, nil
}
