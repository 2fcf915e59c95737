package domain

import "github.com/ledgerflow/txnengine/common/amount"

// Deposit credits amt into acc's available balance. amt must be strictly
// positive and acc must not be locked. Either the whole operation applies or
// none of it does: an error leaves acc completely unchanged.
func Deposit(acc *Account, amt amount.Amount) error {
	if !amt.GreaterThan(amount.Zero()) {
		return ErrInvalidAmount
	}
	if acc.Locked() {
		return ErrAccountLocked
	}
	newAvailable, ok := amount.CheckedAdd(acc.Available(), amt)
	if !ok {
		return ErrOverflow
	}
	acc.setAvailable(newAvailable)
	return nil
}

// Withdrawal debits amt from acc's available balance. amt must be strictly
// positive, acc must not be locked, and acc must hold at least amt.
func Withdrawal(acc *Account, amt amount.Amount) error {
	if !amt.GreaterThan(amount.Zero()) {
		return ErrInvalidAmount
	}
	if acc.Locked() {
		return ErrAccountLocked
	}
	if acc.Available().LessThan(amt) {
		return ErrInsufficientFunds
	}
	newAvailable, ok := amount.CheckedSub(acc.Available(), amt)
	if !ok {
		return ErrOverflow
	}
	acc.setAvailable(newAvailable)
	return nil
}

// Dispute moves amt (the amount of the referenced transaction) from
// available into held, and records tx as disputed. acc must not be locked
// and tx must not already be under dispute.
func Dispute(acc *Account, tx TxID, amt amount.Amount) error {
	if acc.Locked() {
		return ErrAccountLocked
	}
	if acc.IsDisputed(tx) {
		return ErrAlreadyDisputed
	}
	if acc.Available().LessThan(amt) {
		return ErrInsufficientFunds
	}
	newAvailable, ok := amount.CheckedSub(acc.Available(), amt)
	if !ok {
		return ErrOverflow
	}
	newHeld, ok := amount.CheckedAdd(acc.Held(), amt)
	if !ok {
		return ErrOverflow
	}
	acc.setAvailable(newAvailable)
	acc.setHeld(newHeld)
	acc.addDisputed(tx)
	return nil
}

// Resolve reverses a dispute: amt moves back from held to available, and tx
// is no longer considered disputed. acc must not be locked and tx must
// currently be under dispute.
func Resolve(acc *Account, tx TxID, amt amount.Amount) error {
	if acc.Locked() {
		return ErrAccountLocked
	}
	if !acc.IsDisputed(tx) {
		return ErrNotDisputed
	}
	if acc.Held().LessThan(amt) {
		return ErrInsufficientFunds
	}
	newHeld, ok := amount.CheckedSub(acc.Held(), amt)
	if !ok {
		return ErrOverflow
	}
	newAvailable, ok := amount.CheckedAdd(acc.Available(), amt)
	if !ok {
		return ErrOverflow
	}
	acc.setHeld(newHeld)
	acc.setAvailable(newAvailable)
	acc.removeDisputed(tx)
	return nil
}

// Chargeback finalizes a dispute against the client: amt is removed from
// held (never returned to available) and the account is locked for good.
// Unlike the other four operations, Chargeback does not check whether the
// account is already locked, so a second chargeback against an already
// locked account is still possible as long as the tx is still disputed.
func Chargeback(acc *Account, tx TxID, amt amount.Amount) error {
	if !acc.IsDisputed(tx) {
		return ErrNotDisputed
	}
	if acc.Held().LessThan(amt) {
		return ErrInsufficientFunds
	}
	newHeld, ok := amount.CheckedSub(acc.Held(), amt)
	if !ok {
		return ErrOverflow
	}
	acc.setHeld(newHeld)
	acc.lock()
	acc.removeDisputed(tx)
	return nil
}
