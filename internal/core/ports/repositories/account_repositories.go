package repositories

import (
	"context"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

// AccountRepository is the persistence boundary for accounts and their
// owned transaction histories.
type AccountRepository interface {
	// CreateAccount persists a new account with its initial transaction
	// list, resolving (or creating) any referenced organization inside
	// the same commit. Fails with ConflictError on name/code collision.
	CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	FindAccountByID(ctx context.Context, id int64, includeTransactions bool) (*domain.Account, error)

	// FindAccountByName matches the name case-insensitively and exactly.
	FindAccountByName(ctx context.Context, name string, includeTransactions bool) (*domain.Account, error)

	// ListAccounts returns all accounts ordered by name, without their
	// transaction histories.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// AppendTransactions appends the account's in-memory transactions to
	// its durable history, skipping any whose uuid is already stored.
	// The commit is scoped to this one account; calling it twice with
	// the same set stores each uuid exactly once.
	AppendTransactions(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account and cascades deletion of its
	// owned transactions. It is a silent no-op when the account does not
	// exist. The twin legs held by other accounts are untouched.
	DeleteAccount(ctx context.Context, account domain.Account) error
	DeleteAccountByID(ctx context.Context, id int64) error
}
