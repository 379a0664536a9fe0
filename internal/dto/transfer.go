package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest moves value from the source account to the
// target account as a twin transaction pair. Source and target must
// differ.
type CreateTransferRequest struct {
	SourceID int64           `json:"sourceID" binding:"required"`
	TargetID int64           `json:"targetID" binding:"required"`
	Value    decimal.Decimal `json:"value" binding:"required"`
	Currency string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Timing   *time.Time      `json:"timing"` // defaults to now
	Reason   string          `json:"reason" binding:"omitempty,max=20"`
	Category string          `json:"category" binding:"omitempty,max=10"`
}

// TransferResponse returns both persisted legs of the transfer. Debit
// is the source leg (negated value), Credit the target leg.
type TransferResponse struct {
	Debit  TransactionResponse `json:"debit"`
	Credit TransactionResponse `json:"credit"`
}
