// Package data provides the PostgreSQL-backed job store repositories.
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

const evaluationColumns = `
  id,
  organization_id,
  status,
  progress,
  certification_types,
  certification_evaluations,
  created_at,
  updated_at,
  completed_at
`

// EvaluationRepo provides database operations for evaluation records.
type EvaluationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewEvaluationRepo creates an EvaluationRepo with the real clock.
func NewEvaluationRepo(db *sql.DB) *EvaluationRepo {
	return &EvaluationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewEvaluationRepoWithTimeProvider creates an EvaluationRepo with a custom
// clock (useful for tests).
func NewEvaluationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *EvaluationRepo {
	return &EvaluationRepo{DB: db, timeProvider: tp}
}

// Create inserts a new evaluation record, assigning an id when blank, and
// returns the id.
func (r *EvaluationRepo) Create(ctx context.Context, eval *model.Evaluation) (string, error) {
	if eval == nil {
		return "", errors.New("evaluation is required")
	}
	if eval.OrganizationID == "" {
		return "", apperrors.Validation("organization id is required")
	}
	if eval.ID == "" {
		eval.ID = uuid.NewString()
	}
	if eval.Status == "" {
		eval.Status = model.JobStatusPending
	}

	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO evaluations (
				id, organization_id, status, progress,
				certification_types, certification_evaluations,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		`,
			eval.ID,
			eval.OrganizationID,
			eval.Status,
			eval.Progress,
			jsonOrEmptyList(eval.CertificationTypes),
			jsonOrEmptyList(eval.CertificationEvaluations),
			now,
		)
		return execErr
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return eval.ID, nil
}

// Save overwrites every mutable field of an existing evaluation record. The
// store assigns updated_at, and completed_at the first time a terminal status
// is written.
func (r *EvaluationRepo) Save(ctx context.Context, eval *model.Evaluation) error {
	if eval == nil || eval.ID == "" {
		return errors.New("evaluation with id is required")
	}

	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, execErr := conn.Exec(ctx, `
			UPDATE evaluations SET
				status = $2,
				progress = $3,
				certification_types = $4,
				certification_evaluations = $5,
				updated_at = $6,
				completed_at = CASE
					WHEN $2 IN ('completed', 'failed') AND completed_at IS NULL THEN $6
					ELSE completed_at
				END
			WHERE id = $1
		`,
			eval.ID,
			eval.Status,
			eval.Progress,
			jsonOrEmptyList(eval.CertificationTypes),
			jsonOrEmptyList(eval.CertificationEvaluations),
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

// Get retrieves the evaluation owned by organizationID. An ownership mismatch
// is indistinguishable from absence.
func (r *EvaluationRepo) Get(ctx context.Context, organizationID, id string) (*model.Evaluation, error) {
	if organizationID == "" || id == "" {
		return nil, apperrors.NotFound("evaluation not found")
	}

	var out model.Evaluation
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT `+evaluationColumns+`
			FROM evaluations
			WHERE id = $1 AND organization_id = $2
		`, id, organizationID)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Evaluation])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
