package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneykeeper/ledger_backend/internal/core/domain"
)

func testAccount() domain.Account {
	return domain.NewAccount("Some account", "100")
}

func TestAccountMatchString(t *testing.T) {
	account := testAccount()

	matching := []string{
		"Some account",
		"SOME account",
		"some account ",
		"    some account ",
		"100",
		" 100 ",
	}
	for _, s := range matching {
		assert.True(t, account.MatchString(s), "expected match for %q", s)
	}

	nonMatching := []string{
		"Some arcount",
		"arcount some",
		"Ark",
		"",
		"101",
	}
	for _, s := range nonMatching {
		assert.False(t, account.MatchString(s), "expected no match for %q", s)
	}
}

func TestAccountMatchCode(t *testing.T) {
	account := testAccount()

	assert.True(t, account.MatchCode("100"))
	assert.False(t, account.MatchCode("400"))
}

func TestAccountEqual(t *testing.T) {
	account := testAccount()

	equal := []domain.Account{
		domain.NewAccount("Lol account", "100"),
		domain.NewAccount("Some account", "100"),
		domain.NewAccount("SOME ACCOUNT", "100"),
	}
	for _, other := range equal {
		assert.True(t, account.Equal(&other))
	}

	unequal := []domain.Account{
		domain.NewAccount("Lol account", "102"),
		domain.NewAccount("Some account", "101"),
	}
	for _, other := range unequal {
		assert.False(t, account.Equal(&other))
	}
}

func TestTransferTwinPair(t *testing.T) {
	source := testAccount()
	target := domain.NewAccount("Other account", "105")

	debit, credit := domain.Transfer(&source, &target, mustDecimal(t, "100.00"), domain.TransferOptions{})

	assert.Equal(t, debit.UUID, credit.UUID)
	assert.True(t, debit.Value.Equal(credit.Value.Neg()))
	assert.True(t, debit.Value.Equal(mustDecimal(t, "-100.00")))
	assert.True(t, credit.Value.Equal(mustDecimal(t, "100.00")))

	require.Len(t, source.Transactions, 1)
	require.Len(t, target.Transactions, 1)
	assert.True(t, source.Transactions[0].Equal(debit))
	assert.True(t, target.Transactions[0].Equal(credit))
	assert.True(t, debit.IsTwin(credit))
}

func TestTransferOptions(t *testing.T) {
	source := testAccount()
	target := domain.NewAccount("Other account", "105")
	timing := time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

	debit, credit := domain.Transfer(&source, &target, mustDecimal(t, "10.00"), domain.TransferOptions{
		Currency: "EUR",
		Timing:   timing,
		Reason:   "gift",
		Category: "family",
	})

	for _, leg := range []domain.Transaction{debit, credit} {
		assert.Equal(t, "EUR", leg.Currency)
		assert.True(t, timing.Equal(leg.Timing))
		assert.Equal(t, "gift", leg.Reason)
		assert.Equal(t, "family", leg.Category)
	}
}

func TestBalanceAfterTransfer(t *testing.T) {
	source := testAccount()
	target := domain.NewAccount("Other account", "105")

	domain.Transfer(&source, &target, mustDecimal(t, "100.00"), domain.TransferOptions{})

	later := time.Now().Add(time.Minute)
	assert.True(t, source.BalanceAt(later).Equal(mustDecimal(t, "-100.00")))
	assert.True(t, target.BalanceAt(later).Equal(mustDecimal(t, "100.00")))
}

func TestBalanceAtStartDate(t *testing.T) {
	account := testAccount()
	account.StartBalance = mustDecimal(t, "50.00")

	// History on both sides of the opening date must not affect the
	// balance at the opening date itself.
	before := domain.NewTransaction(mustDecimal(t, "10.00"))
	before.Timing = account.StartDate.Add(-time.Hour)
	after := domain.NewTransaction(mustDecimal(t, "20.00"))
	after.Timing = account.StartDate.Add(time.Hour)
	account.Transactions = []domain.Transaction{before, after}

	assert.True(t, account.BalanceAt(account.StartDate).Equal(mustDecimal(t, "50.00")))
}

func TestBalanceHistoricalQuery(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	account := testAccount()
	account.StartDate = start
	account.StartBalance = decimal.Zero

	// A deposit that happened before the account's opening date.
	earlier := domain.NewTransaction(mustDecimal(t, "30.00"))
	earlier.Timing = start.Add(-2 * time.Hour)
	account.Transactions = []domain.Transaction{earlier}

	// Querying between the transaction and the opening date: the
	// deposit had already happened, so it does not separate that point
	// from the opening balance.
	at := start.Add(-time.Hour)
	assert.True(t, account.BalanceAt(at).Equal(decimal.Zero))

	// Querying before the transaction undoes it: the balance back then
	// was lower by the amount that flowed in afterwards.
	at = start.Add(-3 * time.Hour)
	assert.True(t, account.BalanceAt(at).Equal(mustDecimal(t, "-30.00")))
}

func TestBalanceUnsortedHistory(t *testing.T) {
	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	account := testAccount()
	account.StartDate = start

	t1 := domain.NewTransaction(mustDecimal(t, "5.00"))
	t1.Timing = start.Add(3 * time.Hour)
	t2 := domain.NewTransaction(mustDecimal(t, "-2.00"))
	t2.Timing = start.Add(time.Hour)
	account.Transactions = []domain.Transaction{t1, t2} // out of order

	assert.True(t, account.BalanceAt(start.Add(4*time.Hour)).Equal(mustDecimal(t, "3.00")))
	assert.True(t, account.BalanceAt(start.Add(2*time.Hour)).Equal(mustDecimal(t, "-2.00")))
}
