package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewTransactionDefaults(t *testing.T) {
	txn := domain.NewTransaction(mustDecimal(t, "100.00"))

	assert.NotEqual(t, uuid.UUID{}, txn.UUID)
	assert.Equal(t, "RUB", txn.Currency)
	assert.WithinDuration(t, time.Now(), txn.Timing, time.Second)
}

func TestTwin(t *testing.T) {
	txn := domain.NewTransaction(mustDecimal(t, "-100.00"))
	txn.Reason = "rent"
	txn.Category = "home"

	twin := txn.Twin()

	assert.Equal(t, txn.UUID, twin.UUID)
	assert.True(t, twin.Value.Equal(mustDecimal(t, "100.00")))
	assert.Equal(t, txn.Currency, twin.Currency)
	assert.Equal(t, txn.Timing, twin.Timing)
	assert.Equal(t, txn.Reason, twin.Reason)
	assert.Equal(t, txn.Category, twin.Category)

	assert.True(t, txn.IsTwin(twin))
	assert.True(t, twin.IsTwin(txn))
	assert.False(t, txn.Equal(twin), "twins must not compare equal")
}

func TestEqual(t *testing.T) {
	txn := domain.NewTransaction(mustDecimal(t, "42.50"))

	same := txn
	assert.True(t, txn.Equal(same))

	differentValue := txn
	differentValue.Value = mustDecimal(t, "42.51")
	assert.False(t, txn.Equal(differentValue))

	differentUUID := txn
	differentUUID.UUID = uuid.New()
	assert.False(t, txn.Equal(differentUUID))
}

func TestStringFormat(t *testing.T) {
	timing := time.Date(2023, 5, 12, 14, 30, 0, 0, time.FixedZone("MSK", 3*60*60))
	id := uuid.MustParse("0d9cf24c-3ce5-44a8-8a13-6a9b1a62f0d6")

	txn := domain.Transaction{
		UUID:     id,
		Value:    mustDecimal(t, "-100.00"),
		Currency: "RUB",
		Timing:   timing,
		Reason:   "taxi ride",
		Category: "transport",
	}

	assert.Equal(t,
		"2023-05-12T14:30:00+03:00 # 0d9cf24c3ce544a88a136a9b1a62f0d6 - -100.00 RUB - taxi ride - transport",
		txn.String())

	txn.Value = mustDecimal(t, "100")
	txn.Reason = ""
	txn.Category = ""
	assert.Equal(t,
		"2023-05-12T14:30:00+03:00 # 0d9cf24c3ce544a88a136a9b1a62f0d6 - +100.00 RUB -  - ",
		txn.String())
}

func TestRoundTrip(t *testing.T) {
	timing := time.Date(2023, 5, 12, 14, 30, 0, 0, time.FixedZone("MSK", 3*60*60))

	tests := []struct {
		name string
		txn  domain.Transaction
	}{
		{
			name: "with optional fields",
			txn: domain.Transaction{
				UUID:     uuid.New(),
				Value:    mustDecimal(t, "-250.75"),
				Currency: "RUB",
				Timing:   timing,
				Reason:   "groceries",
				Category: "food",
			},
		},
		{
			name: "without optional fields",
			txn: domain.Transaction{
				UUID:     uuid.New(),
				Value:    mustDecimal(t, "99.00"),
				Currency: "USD",
				Timing:   timing,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := domain.ParseTransaction(tt.txn.String())
			require.NoError(t, err)

			assert.Equal(t, tt.txn.UUID, parsed.UUID)
			assert.True(t, tt.txn.Value.Equal(parsed.Value))
			assert.Equal(t, tt.txn.Currency, parsed.Currency)
			assert.True(t, tt.txn.Timing.Equal(parsed.Timing))
			assert.Equal(t, tt.txn.Reason, parsed.Reason)
			assert.Equal(t, tt.txn.Category, parsed.Category)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"",
		"not a transaction",
		"2023-05-12T14:30:00+03:00 # short - +1.00 RUB -  - ",
		"2023-05-12 # 0d9cf24c3ce544a88a136a9b1a62f0d6 - +1.00 RUB -  - ",
		"2023-05-12T14:30:00+03:00 # 0d9cf24c3ce544a88a136a9b1a62f0d6 - 1.00 RUB -  - ",
	}

	for _, s := range tests {
		_, err := domain.ParseTransaction(s)
		assert.ErrorIs(t, err, domain.ErrMalformedTransaction, "input: %q", s)
	}
}
