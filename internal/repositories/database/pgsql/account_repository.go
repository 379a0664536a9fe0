package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	portsrepo "github.com/moneykeeper/ledger_backend/internal/core/ports/repositories"
	"github.com/moneykeeper/ledger_backend/internal/models"
)

const insertAccountSQL = `
	INSERT INTO accounts (name, code, start_date, start_balance, kind)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;
`

const insertBankAccountSQL = `
	INSERT INTO bank_accounts (id, annual_interest, interest_period, bank_id)
	VALUES ($1, $2, $3, $4);
`

const insertStockAccountSQL = `
	INSERT INTO stock_accounts (id, is_iia, stock_value, broker_id)
	VALUES ($1, $2, $3, $4);
`

const insertTransactionSQL = `
	INSERT INTO transactions (uuid, value, currency, timing, reason, category, account_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

const selectAccountSQL = `
	SELECT a.id, a.name, a.code, a.start_date, a.start_balance, a.kind,
	       b.annual_interest, b.interest_period, ob.id, ob.name, ob.shortcut,
	       s.is_iia, s.stock_value, os.id, os.name, os.shortcut
	FROM accounts a
	LEFT JOIN bank_accounts b ON b.id = a.id
	LEFT JOIN organizations ob ON ob.id = b.bank_id
	LEFT JOIN stock_accounts s ON s.id = a.id
	LEFT JOIN organizations os ON os.id = s.broker_id
`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage.
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		StartDate:    d.StartDate,
		StartBalance: d.StartBalance,
		Kind:         string(d.Kind),
	}
}

func toModelBankAccount(accountID, bankID int64, d domain.BankDetails) models.BankAccount {
	return models.BankAccount{
		ID:             accountID,
		AnnualInterest: d.AnnualInterest,
		InterestPeriod: d.InterestPeriod.Nanoseconds(),
		BankID:         bankID,
	}
}

func toModelStockAccount(accountID, brokerID int64, d domain.StockDetails) models.StockAccount {
	return models.StockAccount{
		ID:         accountID,
		IsIIA:      d.IsIIA,
		StockValue: d.StockValue,
		BrokerID:   brokerID,
	}
}

func toModelTransaction(accountID int64, t domain.Transaction) models.Transaction {
	return models.Transaction{
		UUID:      t.UUID,
		Value:     t.Value,
		Currency:  t.Currency,
		Timing:    t.Timing,
		Reason:    t.Reason,
		Category:  t.Category,
		AccountID: accountID,
	}
}

func toDomainBankDetails(m models.BankAccount, org models.Organization) *domain.BankDetails {
	return &domain.BankDetails{
		Bank:           domain.Organization{ID: org.ID, Name: org.Name, Shortcut: org.Shortcut},
		AnnualInterest: m.AnnualInterest,
		InterestPeriod: time.Duration(m.InterestPeriod),
	}
}

func toDomainStockDetails(m models.StockAccount, org models.Organization) *domain.StockDetails {
	return &domain.StockDetails{
		Broker:     domain.Organization{ID: org.ID, Name: org.Name, Shortcut: org.Shortcut},
		IsIIA:      m.IsIIA,
		StockValue: m.StockValue,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		UUID:     m.UUID,
		Value:    m.Value,
		Currency: m.Currency,
		Timing:   m.Timing,
		Reason:   m.Reason,
		Category: m.Category,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// CreateAccount inserts a new account with its variant extension row
// and initial transactions under a single commit. Referenced
// organizations are resolved or created inside the same transaction.
func (r *PgxAccountRepository) CreateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	saved := account
	if account.Bank != nil {
		b := *account.Bank
		saved.Bank = &b
	}
	if account.Stock != nil {
		s := *account.Stock
		saved.Stock = &s
	}

	modelAcc := toModelAccount(saved)
	err = tx.QueryRow(ctx, insertAccountSQL,
		modelAcc.Name,
		modelAcc.Code,
		modelAcc.StartDate,
		modelAcc.StartBalance,
		modelAcc.Kind,
	).Scan(&saved.ID)
	if err != nil {
		return nil, decodeCommitError("create account", err, insertAccountSQL)
	}

	switch {
	case saved.Bank != nil:
		bankID, err := getOrCreateOrganizationTx(ctx, tx, saved.Bank.Bank)
		if err != nil {
			return nil, err
		}
		saved.Bank.Bank.ID = bankID

		mb := toModelBankAccount(saved.ID, bankID, *saved.Bank)
		_, err = tx.Exec(ctx, insertBankAccountSQL,
			mb.ID,
			mb.AnnualInterest,
			mb.InterestPeriod,
			mb.BankID,
		)
		if err != nil {
			return nil, decodeCommitError("create bank account", err, insertBankAccountSQL)
		}
	case saved.Stock != nil:
		brokerID, err := getOrCreateOrganizationTx(ctx, tx, saved.Stock.Broker)
		if err != nil {
			return nil, err
		}
		saved.Stock.Broker.ID = brokerID

		ms := toModelStockAccount(saved.ID, brokerID, *saved.Stock)
		_, err = tx.Exec(ctx, insertStockAccountSQL,
			ms.ID,
			ms.IsIIA,
			ms.StockValue,
			ms.BrokerID,
		)
		if err != nil {
			return nil, decodeCommitError("create stock account", err, insertStockAccountSQL)
		}
	}

	if err := insertTransactionsTx(ctx, tx, saved.ID, saved.Transactions, nil); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, decodeCommitError("create account", err, insertAccountSQL)
	}
	return &saved, nil
}

// AppendTransactions appends the account's in-memory transactions to
// its stored history under one commit scoped to this account. Any
// transaction whose uuid is already stored for the account is skipped,
// so replaying the same set is safe. The commit is independent of the
// twin legs held by other accounts.
func (r *PgxAccountRepository) AppendTransactions(ctx context.Context, account domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	accountID, err := resolveAccountIDTx(ctx, tx, account)
	if err != nil {
		return err
	}

	stored, err := storedUUIDsTx(ctx, tx, accountID)
	if err != nil {
		return err
	}

	if err := insertTransactionsTx(ctx, tx, accountID, account.Transactions, stored); err != nil {
		return err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decodeCommitError("append transactions", err, insertTransactionSQL)
	}
	return nil
}

// resolveAccountIDTx finds the durable account row by id when known,
// else by case-insensitive exact name match.
func resolveAccountIDTx(ctx context.Context, tx pgx.Tx, account domain.Account) (int64, error) {
	var id int64
	var err error
	if account.ID != 0 {
		err = tx.QueryRow(ctx, `SELECT id FROM accounts WHERE id = $1;`, account.ID).Scan(&id)
	} else {
		err = tx.QueryRow(ctx, `SELECT id FROM accounts WHERE lower(name) = lower($1);`, account.Name).Scan(&id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve account: %w", err)
	}
	return id, nil
}

// storedUUIDsTx loads the set of transaction uuids already persisted
// for the account.
func storedUUIDsTx(ctx context.Context, tx pgx.Tx, accountID int64) (map[uuid.UUID]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT uuid FROM transactions WHERE account_id = $1;`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stored transaction uuids: %w", err)
	}
	defer rows.Close()

	stored := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transaction uuid: %w", err)
		}
		stored[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction uuids: %w", err)
	}
	return stored, nil
}

// pendingTransactions filters out every transaction whose uuid is in
// stored and maps the remainder onto insertable rows. A nil stored set
// keeps everything. Replaying an already-persisted set yields an empty
// remainder, which is what makes append idempotent.
func pendingTransactions(accountID int64, transactions []domain.Transaction, stored map[uuid.UUID]struct{}) []models.Transaction {
	pending := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if _, ok := stored[txn.UUID]; ok {
			continue // idempotent skip, not an error
		}
		pending = append(pending, toModelTransaction(accountID, txn))
	}
	return pending
}

// insertTransactionsTx inserts every transaction whose uuid is not in
// stored. A nil stored set inserts everything.
func insertTransactionsTx(ctx context.Context, tx pgx.Tx, accountID int64, transactions []domain.Transaction, stored map[uuid.UUID]struct{}) error {
	batch := &pgx.Batch{}
	for _, m := range pendingTransactions(accountID, transactions, stored) {
		batch.Queue(insertTransactionSQL,
			m.UUID,
			m.Value,
			m.Currency,
			m.Timing,
			nullString(m.Reason),
			nullString(m.Category),
			m.AccountID,
		)
	}
	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return decodeCommitError("insert transactions", err, insertTransactionSQL)
	}
	return nil
}

// FindAccountByID retrieves an account with its variant details, and
// optionally its transaction history.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, id int64, includeTransactions bool) (*domain.Account, error) {
	row := r.Pool.QueryRow(ctx, selectAccountSQL+` WHERE a.id = $1;`, id)
	return r.hydrateAccount(ctx, row, includeTransactions)
}

// FindAccountByName retrieves an account by exact, case-insensitive
// name match.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string, includeTransactions bool) (*domain.Account, error) {
	row := r.Pool.QueryRow(ctx, selectAccountSQL+` WHERE lower(a.name) = lower($1);`, name)
	return r.hydrateAccount(ctx, row, includeTransactions)
}

func (r *PgxAccountRepository) hydrateAccount(ctx context.Context, row pgx.Row, includeTransactions bool) (*domain.Account, error) {
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan account row: %w", err)
	}

	if includeTransactions {
		transactions, err := r.loadTransactions(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		account.Transactions = transactions
	}
	return account, nil
}

// scanAccount reconstructs the account variant from the joined row:
// the populated extension columns decide the kind.
func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		m              models.Account
		annualInterest decimal.NullDecimal
		interestPeriod sql.NullInt64
		bankID         sql.NullInt64
		bankName       sql.NullString
		bankShortcut   sql.NullString
		isIIA          sql.NullBool
		stockValue     decimal.NullDecimal
		brokerID       sql.NullInt64
		brokerName     sql.NullString
		brokerShortcut sql.NullString
	)

	err := row.Scan(
		&m.ID, &m.Name, &m.Code, &m.StartDate, &m.StartBalance, &m.Kind,
		&annualInterest, &interestPeriod, &bankID, &bankName, &bankShortcut,
		&isIIA, &stockValue, &brokerID, &brokerName, &brokerShortcut,
	)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           m.ID,
		Name:         m.Name,
		Code:         m.Code,
		StartDate:    m.StartDate,
		StartBalance: m.StartBalance,
		Kind:         domain.AccountKind(m.Kind),
	}

	switch {
	case bankID.Valid:
		account.Bank = toDomainBankDetails(
			models.BankAccount{
				ID:             m.ID,
				AnnualInterest: annualInterest.Decimal,
				InterestPeriod: interestPeriod.Int64,
				BankID:         bankID.Int64,
			},
			models.Organization{ID: bankID.Int64, Name: bankName.String, Shortcut: bankShortcut.String},
		)
	case brokerID.Valid:
		account.Stock = toDomainStockDetails(
			models.StockAccount{
				ID:         m.ID,
				IsIIA:      isIIA.Bool,
				StockValue: stockValue.Decimal,
				BrokerID:   brokerID.Int64,
			},
			models.Organization{ID: brokerID.Int64, Name: brokerName.String, Shortcut: brokerShortcut.String},
		)
	}
	return account, nil
}

func (r *PgxAccountRepository) loadTransactions(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `
		SELECT uuid, value, currency, timing, reason, category
		FROM transactions
		WHERE account_id = $1
		ORDER BY timing;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %d: %w", accountID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var (
			m        models.Transaction
			reason   sql.NullString
			category sql.NullString
		)
		err := rows.Scan(&m.UUID, &m.Value, &m.Currency, &m.Timing, &reason, &category)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.AccountID = accountID
		m.Reason = reason.String
		m.Category = category.String
		transactions = append(transactions, toDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return transactions, nil
}

// ListAccounts retrieves all accounts ordered by name, without their
// transaction histories.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, selectAccountSQL+` ORDER BY a.name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// DeleteAccountByID removes an account; owned transactions and variant
// rows go with it via cascade. Deleting an absent account is a no-op.
// Twin legs stored on other accounts are not touched: the twin relation
// is a domain convention, not a storage-level foreign key.
func (r *PgxAccountRepository) DeleteAccountByID(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1;`, id)
	if err != nil {
		return &apperrors.PersistenceError{Op: "delete account", Err: err}
	}
	return nil
}

// DeleteAccount removes the account by id when known, else by
// case-insensitive name match.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, account domain.Account) error {
	if account.ID != 0 {
		return r.DeleteAccountByID(ctx, account.ID)
	}
	_, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE lower(name) = lower($1);`, account.Name)
	if err != nil {
		return &apperrors.PersistenceError{Op: "delete account", Err: err}
	}
	return nil
}
