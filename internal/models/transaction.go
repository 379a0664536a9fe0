package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. The uuid column is the
// identity of a transfer pair: both legs of one transfer share it,
// attached to two different accounts. (account_id, uuid) is unique so
// re-inserting the same leg is rejected by the engine as well.
type Transaction struct {
	ID        int64           `db:"id"`
	UUID      uuid.UUID       `db:"uuid"`
	Value     decimal.Decimal `db:"value"`
	Currency  string          `db:"currency"`
	Timing    time.Time       `db:"timing"`
	Reason    string          `db:"reason"`   // nullable
	Category  string          `db:"category"` // nullable
	AccountID int64           `db:"account_id"`
}
