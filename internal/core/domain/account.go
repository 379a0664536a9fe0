package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind discriminates the closed set of account variants.
type AccountKind string

const (
	KindBase  AccountKind = "account"
	KindBank  AccountKind = "bank_account"
	KindStock AccountKind = "stock_account"
)

// BankDetails is the bank-account extension of Account.
type BankDetails struct {
	Bank           Organization    `json:"bank"` // shared reference, never owned
	AnnualInterest decimal.Decimal `json:"annualInterest"`
	InterestPeriod time.Duration   `json:"interestPeriod"`
}

// StockDetails is the stock-account extension of Account.
type StockDetails struct {
	Broker     Organization    `json:"broker"` // shared reference, never owned
	IsIIA      bool            `json:"isIIA"`
	StockValue decimal.Decimal `json:"stockValue"`
}

// Account is a ledger account with its owned transaction history.
// Exactly one of Bank or Stock is set for the matching Kind; both are
// nil for a base account.
type Account struct {
	ID   int64  `json:"id,omitempty"` // 0 until assigned by storage
	Name string `json:"name"`         // unique, max 50 chars
	Code string `json:"code"`         // unique, max 20 chars, numeric

	StartDate    time.Time       `json:"startDate"`
	StartBalance decimal.Decimal `json:"startBalance"`

	Kind  AccountKind   `json:"kind"`
	Bank  *BankDetails  `json:"bankDetails,omitempty"`
	Stock *StockDetails `json:"stockDetails,omitempty"`

	// Transactions is owned exclusively by this account. Insertion
	// order carries no meaning for balance computation.
	Transactions []Transaction `json:"transactions,omitempty"`
}

// NewAccount creates a base account with StartDate defaulted to now and
// a zero starting balance.
func NewAccount(name, code string) Account {
	return Account{
		Name:      name,
		Code:      code,
		StartDate: time.Now(),
		Kind:      KindBase,
	}
}

// MatchCode reports whether code identifies this account,
// case-insensitively.
func (a *Account) MatchCode(code string) bool {
	return strings.EqualFold(a.Code, code)
}

// MatchString reports whether s names this account by name or code,
// case-insensitively and ignoring surrounding whitespace.
func (a *Account) MatchString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ToLower(a.Name) == s || strings.ToLower(a.Code) == s
}

// Equal reports whether two accounts are the same, compared by code.
func (a *Account) Equal(other *Account) bool {
	return strings.EqualFold(a.Code, other.Code)
}

// Balance computes the account balance as of now.
func (a *Account) Balance() decimal.Decimal {
	return a.BalanceAt(time.Now())
}

// BalanceAt computes the point-in-time balance as of at. Transactions
// between StartDate and at are added; for historical queries before
// StartDate the rule runs symmetrically and transactions between at and
// StartDate are subtracted instead. Both interval boundaries are
// inclusive, so BalanceAt(StartDate) always equals StartBalance and the
// history never needs to be pre-sorted.
func (a *Account) BalanceAt(at time.Time) decimal.Decimal {
	balance := a.StartBalance

	for _, t := range a.Transactions {
		if !t.Timing.Before(at) && !a.StartDate.Before(t.Timing) {
			balance = balance.Sub(t.Value)
		}
		if !t.Timing.After(at) && !a.StartDate.After(t.Timing) {
			balance = balance.Add(t.Value)
		}
	}
	return balance
}

// TransferOptions carries the optional attributes of a transfer.
// Zero values fall back to DefaultCurrency and the current time.
type TransferOptions struct {
	Currency string
	Timing   time.Time
	Reason   string
	Category string
}

// Transfer records one transfer of value from source to target as a
// twin pair of transactions: the debiting leg (negated value) is
// appended to source, the crediting leg (original value) to target.
// Both legs share a freshly generated UUID. The append is in-memory
// only; persisting each leg is a separate step.
//
// Transferring between an account and itself is a precondition the
// caller must enforce before invoking this.
func Transfer(source, target *Account, value decimal.Decimal, opts TransferOptions) (Transaction, Transaction) {
	txn := NewTransaction(value)
	if opts.Currency != "" {
		txn.Currency = opts.Currency
	}
	if !opts.Timing.IsZero() {
		txn.Timing = opts.Timing
	}
	txn.Reason = opts.Reason
	txn.Category = opts.Category

	debit := txn
	debit.Value = debit.Value.Neg()
	credit := debit.Twin()

	source.Transactions = append(source.Transactions, debit)
	target.Transactions = append(target.Transactions, credit)

	return debit, credit
}
