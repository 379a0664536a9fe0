package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

// TransactionPayload carries one transaction leg over the wire. The
// uuid is accepted both dashed and in the compact 32-hex interchange
// form.
type TransactionPayload struct {
	UUID     string          `json:"uuid" binding:"required"`
	Value    decimal.Decimal `json:"value" binding:"required"`
	Currency string          `json:"currency" binding:"omitempty,len=3,alpha"`
	Timing   time.Time       `json:"timing" binding:"required"`
	Reason   string          `json:"reason" binding:"omitempty,max=20"`
	Category string          `json:"category" binding:"omitempty,max=10"`
}

// ToDomain converts the payload, defaulting the currency.
func (p TransactionPayload) ToDomain() (domain.Transaction, error) {
	id, err := uuid.Parse(p.UUID)
	if err != nil {
		return domain.Transaction{}, err
	}
	currency := p.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return domain.Transaction{
		UUID:     id,
		Value:    p.Value,
		Currency: currency,
		Timing:   p.Timing,
		Reason:   p.Reason,
		Category: p.Category,
	}, nil
}

// TransactionResponse mirrors domain.Transaction, plus the canonical
// text rendering for export/interchange.
type TransactionResponse struct {
	UUID     string          `json:"uuid"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Timing   time.Time       `json:"timing"`
	Reason   string          `json:"reason,omitempty"`
	Category string          `json:"category,omitempty"`
	Text     string          `json:"text"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		UUID:     t.UUID.String(),
		Value:    t.Value,
		Currency: t.Currency,
		Timing:   t.Timing,
		Reason:   t.Reason,
		Category: t.Category,
		Text:     t.String(),
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		res[i] = ToTransactionResponse(t)
	}
	return res
}

// AppendTransactionsRequest is the body of the idempotent append
// endpoint. Legs already stored for the account are skipped, not
// rejected.
type AppendTransactionsRequest struct {
	Transactions []TransactionPayload `json:"transactions" binding:"required,min=1,dive"`
}
