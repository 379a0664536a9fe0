package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a transaction is created without an
// explicit currency code.
const DefaultCurrency = "RUB"

// ErrMalformedTransaction is returned by ParseTransaction when the
// input does not match the interchange format.
var ErrMalformedTransaction = errors.New("string is not a valid transaction")

var transactionRE = regexp.MustCompile(
	`^(\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}) #` +
		` ([0-9a-fA-F]{32}) - ([+-]\d+\.\d+) (\w+)` +
		` - ([\w\s]+)? - ([\w\s]+)?$`)

// Transaction is one leg of a transfer. The two legs of a single
// transfer share a UUID and carry negated values; the sign encodes
// debit or credit for the owning account. Once persisted a transaction
// is immutable and only ever removed together with its account.
type Transaction struct {
	UUID     uuid.UUID       `json:"uuid"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
	Timing   time.Time       `json:"timing"`
	Reason   string          `json:"reason,omitempty"`   // max 20 chars
	Category string          `json:"category,omitempty"` // max 10 chars
}

// NewTransaction creates a transaction with a fresh UUID and defaults
// for currency and timing.
func NewTransaction(value decimal.Decimal) Transaction {
	return Transaction{
		UUID:     uuid.New(),
		Value:    value,
		Currency: DefaultCurrency,
		Timing:   time.Now(),
	}
}

// Twin returns the matching opposite leg: same UUID, currency, timing,
// reason and category, with the value negated.
func (t Transaction) Twin() Transaction {
	twin := t
	twin.Value = t.Value.Neg()
	return twin
}

// Equal reports whether two transactions are the same leg: same UUID
// and the same value. Twins are intentionally unequal.
func (t Transaction) Equal(other Transaction) bool {
	return t.UUID == other.UUID && t.Value.Equal(other.Value)
}

// IsTwin reports whether other is the opposite leg of the same
// transfer: same UUID, negated value.
func (t Transaction) IsTwin(other Transaction) bool {
	return t.UUID == other.UUID && t.Value.Equal(other.Value.Neg())
}

// String renders the transaction in the interchange format:
//
//	<ISO-8601 timing> # <uuid without dashes> - <signed value> <currency> - <reason> - <category>
func (t Transaction) String() string {
	value := t.Value.StringFixed(2)
	if !strings.HasPrefix(value, "-") {
		value = "+" + value
	}
	hexUUID := strings.ReplaceAll(t.UUID.String(), "-", "")

	return fmt.Sprintf("%s # %s - %s %s - %s - %s",
		t.Timing.Format("2006-01-02T15:04:05-07:00"),
		hexUUID,
		value,
		t.Currency,
		t.Reason,
		t.Category,
	)
}

// ParseTransaction is the inverse of String. It fails with
// ErrMalformedTransaction when the input does not have the exact
// interchange shape.
func ParseTransaction(s string) (Transaction, error) {
	m := transactionRE.FindStringSubmatch(s)
	if m == nil {
		return Transaction{}, ErrMalformedTransaction
	}

	timing, err := time.Parse("2006-01-02T15:04:05-07:00", m[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: bad timing %q", ErrMalformedTransaction, m[1])
	}
	id, err := uuid.Parse(m[2])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: bad uuid %q", ErrMalformedTransaction, m[2])
	}
	value, err := decimal.NewFromString(m[3])
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: bad value %q", ErrMalformedTransaction, m[3])
	}

	return Transaction{
		UUID:     id,
		Value:    value,
		Currency: m[4],
		Timing:   timing,
		Reason:   m[5],
		Category: m[6],
	}, nil
}
