package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/moneykeeper/ledger_backend/internal/core/ports/services"
	"github.com/moneykeeper/ledger_backend/internal/dto"
	"github.com/moneykeeper/ledger_backend/internal/validation"
)

// AccountService implements account lifecycle operations over the
// repository port. Validation is resolved here, at the boundary closest
// to input; nothing invalid reaches persistence.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

var _ portssvc.AccountService = (*AccountService)(nil)

// CreateAccount validates the request, builds the domain account with
// defaults applied and persists it together with its initial
// transactions.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account, err := buildAccount(req)
	if err != nil {
		return nil, err
	}
	return s.accountRepo.CreateAccount(ctx, *account)
}

func buildAccount(req dto.CreateAccountRequest) (*domain.Account, error) {
	kind := req.Kind
	if kind == "" {
		kind = domain.KindBase
	}

	schema := validation.AccountSchema
	switch kind {
	case domain.KindBank:
		schema = validation.BankAccountSchema
	case domain.KindStock:
		schema = validation.StockAccountSchema
	}
	if verr := validation.ValidateAll(schema, map[string]any{
		"name":          req.Name,
		"code":          req.Code,
		"start_balance": req.StartBalance,
	}); verr != nil {
		return nil, verr
	}

	account := domain.NewAccount(req.Name, req.Code)
	account.Kind = kind
	account.StartBalance = req.StartBalance
	if req.StartDate != nil {
		account.StartDate = *req.StartDate
	}

	switch kind {
	case domain.KindBank:
		if req.Bank == nil {
			return nil, apperrors.NewValidationError("bank", "value is required")
		}
		period, err := parsePeriod(req.InterestPeriod)
		if err != nil {
			return nil, err
		}
		account.Bank = &domain.BankDetails{
			Bank:           req.Bank.ToDomain(),
			AnnualInterest: req.AnnualInterest,
			InterestPeriod: period,
		}
	case domain.KindStock:
		if req.Broker == nil {
			return nil, apperrors.NewValidationError("broker", "value is required")
		}
		account.Stock = &domain.StockDetails{
			Broker:     req.Broker.ToDomain(),
			IsIIA:      req.IsIIA,
			StockValue: req.StockValue,
		}
	}

	transactions, err := toDomainTransactions(req.Transactions)
	if err != nil {
		return nil, err
	}
	account.Transactions = transactions

	return &account, nil
}

func parsePeriod(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	period, err := time.ParseDuration(s)
	if err != nil {
		return 0, apperrors.NewValidationError("interest_period", "value is not a valid duration")
	}
	return period, nil
}

func toDomainTransactions(payloads []dto.TransactionPayload) ([]domain.Transaction, error) {
	if len(payloads) == 0 {
		return nil, nil
	}
	transactions := make([]domain.Transaction, 0, len(payloads))
	for _, p := range payloads {
		if verr := validation.ValidateAll(validation.TransactionSchema, map[string]any{
			"value":    p.Value,
			"reason":   p.Reason,
			"category": p.Category,
		}); verr != nil {
			return nil, verr
		}
		txn, err := p.ToDomain()
		if err != nil {
			return nil, apperrors.NewValidationError("uuid", "value is not a valid uuid")
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// GetAccountByID retrieves an account, optionally with its transaction
// history.
func (s *AccountService) GetAccountByID(ctx context.Context, id int64, includeTransactions bool) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, id, includeTransactions)
}

// ListAccounts retrieves all accounts ordered by name.
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// DeleteAccount removes an account and its owned transactions. Absent
// accounts are ignored.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.accountRepo.DeleteAccountByID(ctx, id)
}

// AppendTransactions appends the given transactions to the account's
// durable history. Already-stored legs are skipped, so re-submitting
// the same set never duplicates rows.
func (s *AccountService) AppendTransactions(ctx context.Context, accountID int64, req dto.AppendTransactionsRequest) ([]domain.Transaction, error) {
	transactions, err := toDomainTransactions(req.Transactions)
	if err != nil {
		return nil, err
	}
	account := domain.Account{ID: accountID, Transactions: transactions}
	if err := s.accountRepo.AppendTransactions(ctx, account); err != nil {
		return nil, err
	}
	return transactions, nil
}

// BalanceAt computes the account's balance as of at from its stored
// history.
func (s *AccountService) BalanceAt(ctx context.Context, id int64, at time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id, true)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to load account %d for balance: %w", id, err)
	}
	return account.BalanceAt(at), nil
}
