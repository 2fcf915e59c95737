package storage

import (
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/internal/concurrent"
)

const transactionStripes = 256

// TransactionLog records the client and amount of every deposit and
// withdrawal, keyed by transaction id, so a later dispute, resolve or
// chargeback can look up what it refers to.
type TransactionLog struct {
	records *concurrent.StripedMap[domain.TxID, domain.TransactionRecord]
}

// NewTransactionLog constructs an empty TransactionLog.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{records: concurrent.NewStripedMap[domain.TxID, domain.TransactionRecord](transactionStripes)}
}

// Insert records rec under tx, silently overwriting any prior record under
// the same id.
func (l *TransactionLog) Insert(tx domain.TxID, rec domain.TransactionRecord) {
	l.records.Put(tx, rec)
}

// Get returns the record for tx, if one was ever inserted.
func (l *TransactionLog) Get(tx domain.TxID) (domain.TransactionRecord, bool) {
	return l.records.Get(tx)
}

// Contains reports whether tx has a recorded entry.
func (l *TransactionLog) Contains(tx domain.TxID) bool {
	return l.records.Contains(tx)
}
