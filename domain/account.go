package domain

import "github.com/ledgerflow/txnengine/common/amount"

// ClientID identifies an account holder.
type ClientID uint16

// TxID identifies a single deposit or withdrawal transaction.
type TxID uint32

// Account is a client's balance state. Its available and held funds, lock
// status and set of disputed transaction ids are only ever mutated by the
// five domain operations in operations.go, never set directly from outside
// the package.
type Account struct {
	clientID  ClientID
	available amount.Amount
	held      amount.Amount
	locked    bool
	disputed  map[TxID]struct{}
}

// NewAccount returns a fresh, unlocked, zero-balance account for id.
func NewAccount(id ClientID) Account {
	return Account{clientID: id, disputed: make(map[TxID]struct{})}
}

// ClientID returns the account holder's id.
func (a Account) ClientID() ClientID { return a.clientID }

// Available returns the funds available for withdrawal or further dispute.
func (a Account) Available() amount.Amount { return a.available }

// Held returns funds currently frozen by an open dispute.
func (a Account) Held() amount.Amount { return a.held }

// Total returns available+held. It is always derived, never stored.
func (a Account) Total() amount.Amount {
	total, ok := amount.CheckedAdd(a.available, a.held)
	if !ok {
		panic("domain: available+held overflowed, which the five operations should never allow")
	}
	return total
}

// Locked reports whether the account has been frozen by a chargeback.
func (a Account) Locked() bool { return a.locked }

// IsDisputed reports whether tx is currently under dispute on this account.
func (a Account) IsDisputed(tx TxID) bool {
	_, ok := a.disputed[tx]
	return ok
}

// DisputedCount returns the number of transactions currently under dispute.
func (a Account) DisputedCount() int { return len(a.disputed) }

// Clone returns an independent copy of a, safe to hand to a caller that must
// not observe or cause mutation of the original.
func (a Account) Clone() Account {
	disputed := make(map[TxID]struct{}, len(a.disputed))
	for tx := range a.disputed {
		disputed[tx] = struct{}{}
	}
	return Account{
		clientID:  a.clientID,
		available: a.available,
		held:      a.held,
		locked:    a.locked,
		disputed:  disputed,
	}
}

func (a *Account) setAvailable(v amount.Amount) { a.available = v }
func (a *Account) setHeld(v amount.Amount)      { a.held = v }
func (a *Account) lock()                        { a.locked = true }

func (a *Account) addDisputed(tx TxID) bool {
	if a.disputed == nil {
		a.disputed = make(map[TxID]struct{})
	}
	if _, ok := a.disputed[tx]; ok {
		return false
	}
	a.disputed[tx] = struct{}{}
	return true
}

func (a *Account) removeDisputed(tx TxID) bool {
	if _, ok := a.disputed[tx]; !ok {
		return false
	}
	delete(a.disputed, tx)
	return true
}
