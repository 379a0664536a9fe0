package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
	}
}

// NewAccountRepository exposes the account repository for direct wiring.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return newPgxAccountRepository(pool)
}

// NewOrganizationRepository exposes the organization repository for direct wiring.
func NewOrganizationRepository(pool *pgxpool.Pool) portsrepo.OrganizationRepository {
	return newPgxOrganizationRepository(pool)
}
