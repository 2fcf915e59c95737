// Package engine dispatches parsed events to account and transaction-log
// mutations, translating domain and storage failures into a single
// EngineError the caller can act on.
package engine

import (
	"fmt"

	"github.com/ledgerflow/txnengine/common"
	"github.com/ledgerflow/txnengine/domain"
)

const (
	// ErrTransactionNotFound is the underlying cause of an EngineError
	// returned when a dispute, resolve or chargeback references a
	// transaction id the log has never seen — or one that belongs to a
	// different client, which is reported identically so a client can
	// never learn whether a foreign tx id exists.
	ErrTransactionNotFound = common.ConstError("transaction not found")
	// ErrCannotDisputeWithdrawal is the underlying cause of an
	// EngineError returned when a dispute references a transaction that
	// was a withdrawal, not a deposit.
	ErrCannotDisputeWithdrawal = common.ConstError("cannot dispute a withdrawal")
)

// Error reports that processing a specific transaction id failed, and why.
// Its Unwrap chain reaches through to the underlying domain.DomainError
// when the failure came from the account state machine, so errors.Is
// against e.g. domain.ErrInsufficientFunds still works.
type Error struct {
	Tx  domain.TxID
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine: tx %d: %v", e.Tx, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
