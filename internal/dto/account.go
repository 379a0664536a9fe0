package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// Kind selects the variant; the matching organization reference is
// required for bank and stock accounts.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required,max=50"`
	Code         string             `json:"code" binding:"required,max=20"`
	Kind         domain.AccountKind `json:"kind" binding:"omitempty,oneof=account bank_account stock_account"`
	StartDate    *time.Time         `json:"startDate"` // defaults to now
	StartBalance decimal.Decimal    `json:"startBalance"`

	// bank_account variant
	Bank           *OrganizationPayload `json:"bank"`
	AnnualInterest decimal.Decimal      `json:"annualInterest"`
	InterestPeriod string               `json:"interestPeriod" binding:"omitempty"` // Go duration, e.g. "8760h"

	// stock_account variant
	Broker     *OrganizationPayload `json:"broker"`
	IsIIA      bool                 `json:"isIIA"`
	StockValue decimal.Decimal      `json:"stockValue"`

	Transactions []TransactionPayload `json:"transactions" binding:"omitempty,dive"`
}

// BankDetailsResponse mirrors domain.BankDetails.
type BankDetailsResponse struct {
	Bank           OrganizationResponse `json:"bank"`
	AnnualInterest decimal.Decimal      `json:"annualInterest"`
	InterestPeriod string               `json:"interestPeriod"`
}

// StockDetailsResponse mirrors domain.StockDetails.
type StockDetailsResponse struct {
	Broker     OrganizationResponse `json:"broker"`
	IsIIA      bool                 `json:"isIIA"`
	StockValue decimal.Decimal      `json:"stockValue"`
}

// AccountResponse defines the data returned for an account. The
// transaction history is present only when explicitly requested.
type AccountResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Code         string                `json:"code"`
	Kind         domain.AccountKind    `json:"kind"`
	StartDate    time.Time             `json:"startDate"`
	StartBalance decimal.Decimal       `json:"startBalance"`
	Bank         *BankDetailsResponse  `json:"bankDetails,omitempty"`
	Stock        *StockDetailsResponse `json:"stockDetails,omitempty"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	res := AccountResponse{
		ID:           acc.ID,
		Name:         acc.Name,
		Code:         acc.Code,
		Kind:         acc.Kind,
		StartDate:    acc.StartDate,
		StartBalance: acc.StartBalance,
	}
	if acc.Bank != nil {
		res.Bank = &BankDetailsResponse{
			Bank:           ToOrganizationResponse(acc.Bank.Bank),
			AnnualInterest: acc.Bank.AnnualInterest,
			InterestPeriod: acc.Bank.InterestPeriod.String(),
		}
	}
	if acc.Stock != nil {
		res.Stock = &StockDetailsResponse{
			Broker:     ToOrganizationResponse(acc.Stock.Broker),
			IsIIA:      acc.Stock.IsIIA,
			StockValue: acc.Stock.StockValue,
		}
	}
	if len(acc.Transactions) > 0 {
		res.Transactions = ToTransactionResponses(acc.Transactions)
	}
	return res
}

// ToListAccountResponse converts a slice of domain.Account.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// AccountBalanceResponse is the result of a point-in-time balance query.
type AccountBalanceResponse struct {
	AccountID int64           `json:"accountID"`
	At        time.Time       `json:"at"`
	Balance   decimal.Decimal `json:"balance"`
}
