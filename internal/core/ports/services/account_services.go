package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	"github.com/moneykeeper/ledger_backend/internal/dto"
)

// AccountService exposes account lifecycle and ledger operations to
// collaborators.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, id int64, includeTransactions bool) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
	AppendTransactions(ctx context.Context, accountID int64, req dto.AppendTransactionsRequest) ([]domain.Transaction, error)
	BalanceAt(ctx context.Context, id int64, at time.Time) (decimal.Decimal, error)
}
