// Package csvio implements the CSV boundary: turning rows of text into
// domain.Events on the way in, and rendering an account snapshot back out.
package csvio

import (
	"fmt"

	"github.com/ledgerflow/txnengine/common"
)

const (
	// ErrCsvMalformed marks a row the CSV reader itself could not parse
	// into fields (wrong column count, unterminated quote, ...).
	ErrCsvMalformed = common.ConstError("malformed csv row")
	// ErrInvalidTransactionType marks a row whose type column is not one
	// of deposit, withdrawal, dispute, resolve or chargeback.
	ErrInvalidTransactionType = common.ConstError("invalid transaction type")
	// ErrMissingField marks a deposit or withdrawal row missing its
	// amount column.
	ErrMissingField = common.ConstError("missing required field")
	// ErrInvalidAmount marks a row whose amount column is not a valid
	// decimal amount.
	ErrInvalidAmount = common.ConstError("invalid amount")
)

// Error describes one row that failed to parse. Its Unwrap reaches the
// underlying sentinel (ErrCsvMalformed, ErrMissingField, ...), and Detail
// carries the offending raw text for diagnostics.
type Error struct {
	Err    error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}
