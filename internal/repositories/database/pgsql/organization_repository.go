package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
	"github.com/moneykeeper/ledger_backend/internal/models"
)

const insertOrganizationSQL = `
	INSERT INTO organizations (name, shortcut)
	VALUES ($1, $2)
	RETURNING id;
`

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func toDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{ID: m.ID, Name: m.Name, Shortcut: m.Shortcut}
}

// FindOrganizationByID retrieves an organization by its ID.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, id int64) (*domain.Organization, error) {
	query := `SELECT id, name, shortcut FROM organizations WHERE id = $1;`

	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Shortcut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by ID %d: %w", id, err)
	}

	org := toDomainOrganization(m)
	return &org, nil
}

// FindOrganizationByName retrieves an organization by exact,
// case-insensitive name match.
func (r *PgxOrganizationRepository) FindOrganizationByName(ctx context.Context, name string) (*domain.Organization, error) {
	query := `SELECT id, name, shortcut FROM organizations WHERE lower(name) = lower($1);`

	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name, &m.Shortcut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by name %q: %w", name, err)
	}

	org := toDomainOrganization(m)
	return &org, nil
}

// ListOrganizations retrieves all organizations ordered by name.
func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT id, name, shortcut FROM organizations ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	orgs := []domain.Organization{}
	for rows.Next() {
		var m models.Organization
		if err := rows.Scan(&m.ID, &m.Name, &m.Shortcut); err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, toDomainOrganization(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}

	return orgs, nil
}

// getOrCreateOrganizationTx resolves an organization reference inside
// the caller's transaction: by id when one is supplied, falling back to
// a case-insensitive name lookup, creating the row when neither finds
// it. Returns the durable organization id.
func getOrCreateOrganizationTx(ctx context.Context, tx pgx.Tx, org domain.Organization) (int64, error) {
	var id int64

	if org.ID != 0 {
		err := tx.QueryRow(ctx, `SELECT id FROM organizations WHERE id = $1;`, org.ID).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to resolve organization %d: %w", org.ID, err)
		}
	}

	err := tx.QueryRow(ctx, `SELECT id FROM organizations WHERE lower(name) = lower($1);`, org.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("failed to resolve organization %q: %w", org.Name, err)
	}

	if err := tx.QueryRow(ctx, insertOrganizationSQL, org.Name, org.Shortcut).Scan(&id); err != nil {
		return 0, decodeCommitError("create organization", err, insertOrganizationSQL)
	}
	return id, nil
}
