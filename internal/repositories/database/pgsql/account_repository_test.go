package pgsql

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
	"github.com/moneykeeper/ledger_backend/internal/models"
)

func TestPendingTransactionsSkipsStoredUUIDs(t *testing.T) {
	t1 := domain.NewTransaction(decimal.RequireFromString("-20.00"))
	t2 := domain.NewTransaction(decimal.RequireFromString("35.50"))
	legs := []domain.Transaction{t1, t2}

	// First append: nothing stored yet, both legs go through.
	first := pendingTransactions(5, legs, nil)
	require.Len(t, first, 2)
	assert.Equal(t, t1.UUID, first[0].UUID)
	assert.Equal(t, t2.UUID, first[1].UUID)

	// Replaying the same set against the now-stored uuids inserts nothing.
	stored := map[uuid.UUID]struct{}{
		t1.UUID: {},
		t2.UUID: {},
	}
	assert.Empty(t, pendingTransactions(5, legs, stored))
}

func TestPendingTransactionsPartialReplay(t *testing.T) {
	committed := domain.NewTransaction(decimal.RequireFromString("-10.00"))
	fresh := domain.NewTransaction(decimal.RequireFromString("-15.00"))

	stored := map[uuid.UUID]struct{}{committed.UUID: {}}

	pending := pendingTransactions(3, []domain.Transaction{committed, fresh}, stored)
	require.Len(t, pending, 1)
	assert.Equal(t, fresh.UUID, pending[0].UUID)
	assert.Equal(t, int64(3), pending[0].AccountID)
}

func TestTransactionModelMapping(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	leg := domain.Transaction{
		UUID:     uuid.New(),
		Value:    decimal.RequireFromString("-40.00"),
		Currency: "RUB",
		Timing:   when,
		Reason:   "groceries",
		Category: "food",
	}

	m := toModelTransaction(7, leg)
	assert.Equal(t, int64(7), m.AccountID)
	assert.Equal(t, leg.UUID, m.UUID)
	assert.Equal(t, "groceries", m.Reason)

	back := toDomainTransaction(m)
	assert.True(t, back.Equal(leg))
	assert.Equal(t, leg.Category, back.Category)
	assert.True(t, back.Timing.Equal(when))
}

func TestBankAccountModelMapping(t *testing.T) {
	details := domain.BankDetails{
		Bank:           domain.Organization{Name: "First National", Shortcut: "FN"},
		AnnualInterest: decimal.RequireFromString("4.50"),
		InterestPeriod: 720 * time.Hour,
	}

	m := toModelBankAccount(11, 3, details)
	assert.Equal(t, int64(11), m.ID)
	assert.Equal(t, int64(3), m.BankID)
	assert.Equal(t, (720 * time.Hour).Nanoseconds(), m.InterestPeriod)

	back := toDomainBankDetails(m, models.Organization{ID: 3, Name: "First National", Shortcut: "FN"})
	assert.Equal(t, 720*time.Hour, back.InterestPeriod)
	assert.Equal(t, int64(3), back.Bank.ID)
	assert.True(t, back.AnnualInterest.Equal(details.AnnualInterest))
}

func TestStockAccountModelMapping(t *testing.T) {
	details := domain.StockDetails{
		Broker:     domain.Organization{Name: "Broker One", Shortcut: "B1"},
		IsIIA:      true,
		StockValue: decimal.RequireFromString("1200.00"),
	}

	m := toModelStockAccount(12, 4, details)
	assert.Equal(t, int64(12), m.ID)
	assert.Equal(t, int64(4), m.BrokerID)
	assert.True(t, m.IsIIA)

	back := toDomainStockDetails(m, models.Organization{ID: 4, Name: "Broker One", Shortcut: "B1"})
	assert.Equal(t, int64(4), back.Broker.ID)
	assert.True(t, back.IsIIA)
	assert.True(t, back.StockValue.Equal(details.StockValue))
}
