package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gencertify/gencertify/internal/data/pgxutil"
	"github.com/gencertify/gencertify/internal/domain/model"
	apperrors "github.com/gencertify/gencertify/internal/errors"
)

const organizationColumns = `
  id,
  name,
  industry,
  size,
  description,
  contact_email,
  created_at,
  updated_at
`

// OrganizationRepo provides database operations for organization profiles.
type OrganizationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOrganizationRepo creates an OrganizationRepo with the real clock.
func NewOrganizationRepo(db *sql.DB) *OrganizationRepo {
	return &OrganizationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOrganizationRepoWithTimeProvider creates an OrganizationRepo with a
// custom clock.
func NewOrganizationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OrganizationRepo {
	return &OrganizationRepo{DB: db, timeProvider: tp}
}

// Upsert inserts or fully replaces an organization profile and returns its
// id, assigned when blank.
func (r *OrganizationRepo) Upsert(ctx context.Context, org *model.Organization) (string, error) {
	if org == nil {
		return "", errors.New("organization is required")
	}
	if strings.TrimSpace(org.Name) == "" {
		return "", apperrors.ValidationField("name", "organization name is required")
	}
	if org.ID == "" {
		org.ID = uuid.NewString()
	}

	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, execErr := conn.Exec(ctx, `
			INSERT INTO organizations (
				id, name, industry, size, description, contact_email,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				industry = EXCLUDED.industry,
				size = EXCLUDED.size,
				description = EXCLUDED.description,
				contact_email = EXCLUDED.contact_email,
				updated_at = EXCLUDED.updated_at
		`,
			org.ID,
			strings.TrimSpace(org.Name),
			org.Industry,
			org.Size,
			org.Description,
			org.ContactEmail,
			now,
		)
		return execErr
	})
	if err != nil {
		return "", apperrors.MapDBError(err)
	}
	return org.ID, nil
}

// GetByID retrieves an organization profile by id.
func (r *OrganizationRepo) GetByID(ctx context.Context, id string) (*model.Organization, error) {
	if id == "" {
		return nil, apperrors.NotFound("organization not found")
	}

	var out model.Organization
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, queryErr := conn.Query(ctx, `
			SELECT `+organizationColumns+`
			FROM organizations
			WHERE id = $1
		`, id)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()
		var collectErr error
		out, collectErr = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Organization])
		return collectErr
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
