package storage

import (
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/internal/concurrent"
)

// accountStripes is the number of lock buckets backing an AccountStore. It
// trades memory for reduced contention under a large, evenly distributed
// client id space; picked in the same spirit as Carmen's NWaysCache sizing,
// not tuned against any particular workload.
const accountStripes = 256

// AccountStore holds every client's Account behind a striped lock, so
// updates to different clients never contend and updates to the same
// client are always applied atomically.
type AccountStore struct {
	accounts *concurrent.StripedMap[domain.ClientID, domain.Account]
}

// NewAccountStore constructs an empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: concurrent.NewStripedMap[domain.ClientID, domain.Account](accountStripes)}
}

// AccountEntry is a handle to one client's account, usable to read a
// snapshot of it or to apply an atomic read-modify-write.
type AccountEntry struct {
	store  *AccountStore
	client domain.ClientID
}

// Entry returns a handle for client. It never allocates storage by itself;
// an account only comes into existence the first time TryUpdate succeeds.
func (s *AccountStore) Entry(client domain.ClientID) AccountEntry {
	return AccountEntry{store: s, client: client}
}

// Get returns a snapshot of client's account, and whether it has ever been
// created.
func (s *AccountStore) Get(client domain.ClientID) (domain.Account, bool) {
	acc, ok := s.accounts.Get(client)
	if !ok {
		return domain.Account{}, false
	}
	return acc.Clone(), true
}

// ForEach invokes fn once per account that has ever been created, in no
// particular order. Each account passed to fn is an independent snapshot.
func (s *AccountStore) ForEach(fn func(domain.Account)) {
	s.accounts.ForEach(func(_ domain.ClientID, acc domain.Account) {
		fn(acc.Clone())
	})
}

// Read returns a snapshot of the entry's account: a freshly constructed,
// zero-balance account if it has never been created.
func (e AccountEntry) Read() domain.Account {
	if acc, ok := e.store.accounts.Get(e.client); ok {
		return acc.Clone()
	}
	return domain.NewAccount(e.client)
}

// TryUpdate atomically reads the entry's current account (or a fresh one
// if absent), applies fn to it, and commits the result — unless fn returns
// an error, in which case nothing is written and the error is returned
// wrapped as a *storage.Error. A fresh account is only persisted once fn
// succeeds against it; a failing update against a client with no prior
// history leaves that client absent from the store.
func (e AccountEntry) TryUpdate(fn func(*domain.Account) error) error {
	err := e.store.accounts.WithLock(e.client, func(existing domain.Account, present bool) (domain.Account, bool, error) {
		var acc domain.Account
		if present {
			acc = existing.Clone()
		} else {
			acc = domain.NewAccount(e.client)
		}
		if err := fn(&acc); err != nil {
			return domain.Account{}, false, err
		}
		return acc, true, nil
	})
	return wrap(err)
}
