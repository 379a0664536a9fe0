package pgsql

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moneykeeper/ledger_backend/internal/apperrors"
)

const pgUniqueViolation = "23505"

// The storage engine reports constraint failures as driver prose, not
// typed diagnostics. These patterns pull the column and conflicting
// value back out so callers get a stable, field-addressable shape.
// They are coupled to the postgres message format and break if it
// changes.
var (
	uniqueDetailRE  = regexp.MustCompile(`Key \((.+?)\)=\((.+?)\) already exists`)
	queryArgumentRE = regexp.MustCompile(`invalid input for query argument \$(\d+): (.+?) \(`)
	insertColumnsRE = regexp.MustCompile(`INSERT INTO \w+ \(([^)]*)\)`)
	columnNameRE    = regexp.MustCompile(`[\w]+`)
)

// DecodeConstraintViolation translates a rejected insert into a list of
// (field, conflicting value) pairs. stmt is the SQL text of the failed
// statement, used to map positional parameters back to column names;
// when it is unavailable the raw parameter name ("$3") is reported
// instead. An empty result means nothing structured could be extracted
// and the failure must be treated as opaque.
func DecodeConstraintViolation(err error, stmt string) []apperrors.FieldViolation {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	if pgErr.Code == pgUniqueViolation {
		if m := uniqueDetailRE.FindStringSubmatch(pgErr.Detail); m != nil {
			return []apperrors.FieldViolation{{Field: m[1], Value: m[2]}}
		}
		return nil
	}

	// Generic type/format rejection: the engine names only a 1-based
	// positional parameter and the offending value.
	m := queryArgumentRE.FindStringSubmatch(pgErr.Message)
	if m == nil {
		return nil
	}
	number, err2 := strconv.Atoi(m[1])
	if err2 != nil {
		return nil
	}
	value := m[2]

	cols := insertColumnsRE.FindStringSubmatch(stmt)
	if cols == nil {
		return []apperrors.FieldViolation{{Field: "$" + m[1], Value: value}}
	}
	fields := columnNameRE.FindAllString(cols[1], -1)
	if number < 1 || number > len(fields) {
		return []apperrors.FieldViolation{{Field: "$" + m[1], Value: value}}
	}
	return []apperrors.FieldViolation{{Field: fields[number-1], Value: value}}
}

// decodeCommitError maps a failed commit into the error taxonomy: a
// ConflictError when field diagnostics could be decoded from err, an
// opaque PersistenceError otherwise.
func decodeCommitError(op string, err error, stmt string) error {
	if fields := DecodeConstraintViolation(err, stmt); len(fields) > 0 {
		return &apperrors.ConflictError{Fields: fields}
	}
	return &apperrors.PersistenceError{Op: op, Err: err}
}
