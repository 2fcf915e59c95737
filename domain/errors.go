package domain

import "github.com/ledgerflow/txnengine/common"

// DomainError is the closed set of failures an account-state operation can
// report. Values compare with == and match via errors.Is.
type DomainError = common.ConstError

const (
	// ErrInsufficientFunds is returned by Withdrawal, Dispute, Resolve and
	// Chargeback when available (or held) funds are less than the requested
	// amount.
	ErrInsufficientFunds DomainError = "insufficient funds"
	// ErrAccountLocked is returned by Deposit, Withdrawal, Dispute and
	// Resolve when the account has already been locked by a chargeback.
	ErrAccountLocked DomainError = "account is locked"
	// ErrInvalidAmount is returned by Deposit and Withdrawal for a
	// non-positive amount.
	ErrInvalidAmount DomainError = "invalid amount"
	// ErrOverflow is returned when an arithmetic step would not fit in
	// the underlying representation.
	ErrOverflow DomainError = "arithmetic overflow"
	// ErrAlreadyDisputed is returned by Dispute when the transaction is
	// already under dispute.
	ErrAlreadyDisputed DomainError = "transaction is already disputed"
	// ErrNotDisputed is returned by Resolve and Chargeback when the
	// transaction is not currently disputed.
	ErrNotDisputed DomainError = "transaction is not disputed"
)
