package domain

import "github.com/ledgerflow/txnengine/common/amount"

// EventKind identifies which of the five operations an Event or
// TransactionRecord represents.
type EventKind int

const (
	KindDeposit EventKind = iota
	KindWithdrawal
	KindDispute
	KindResolve
	KindChargeback
)

func (k EventKind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Event is one parsed row of input: a deposit, withdrawal, dispute, resolve
// or chargeback against a given client and transaction id. Amount is only
// meaningful for Deposit and Withdrawal; it is the zero value otherwise.
type Event struct {
	Kind   EventKind
	Client ClientID
	Tx     TxID
	Amount amount.Amount
}

// ClientID returns the event's client id.
func (e Event) ClientID() ClientID { return e.Client }

// TxID returns the event's transaction id.
func (e Event) TxID() TxID { return e.Tx }

// TransactionRecord is what the transaction log stores for each deposit or
// withdrawal: enough to look the original movement back up when a later
// dispute, resolve or chargeback references its transaction id.
type TransactionRecord struct {
	Client ClientID
	Amount amount.Amount
	// Kind is always Deposit or Withdrawal: the log only ever records the
	// two transaction kinds that can be disputed against.
	Kind EventKind
}

// NewTransactionRecord builds a TransactionRecord for a deposit or
// withdrawal event.
func NewTransactionRecord(client ClientID, amt amount.Amount, kind EventKind) TransactionRecord {
	return TransactionRecord{Client: client, Amount: amt, Kind: kind}
}
