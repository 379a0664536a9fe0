package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table. Variant-specific columns live in
// their own extension tables keyed by the shared account id.
type Account struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"` // unique
	Code         string          `db:"code"` // unique
	StartDate    time.Time       `db:"start_date"`
	StartBalance decimal.Decimal `db:"start_balance"`
	Kind         string          `db:"kind"` // type discriminator
}

// BankAccount mirrors the bank_accounts extension table.
type BankAccount struct {
	ID             int64           `db:"id"` // FK -> accounts.id
	AnnualInterest decimal.Decimal `db:"annual_interest"`
	InterestPeriod int64           `db:"interest_period"` // nanoseconds
	BankID         int64           `db:"bank_id"`         // FK -> organizations.id
}

// StockAccount mirrors the stock_accounts extension table.
type StockAccount struct {
	ID         int64           `db:"id"` // FK -> accounts.id
	IsIIA      bool            `db:"is_iia"`
	StockValue decimal.Decimal `db:"stock_value"`
	BrokerID   int64           `db:"broker_id"` // FK -> organizations.id
}
