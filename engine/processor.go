package engine

import (
	"fmt"
	"log"

	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/storage"
)

// TransactionProcessor dispatches one Event at a time against an
// AccountStore and TransactionLog. A single processor is not meant to be
// called from more than one goroutine at once; the stream topology gives
// each shard its own processor over shared storage instead.
type TransactionProcessor struct {
	accounts *storage.AccountStore
	log      *storage.TransactionLog
}

// New builds a TransactionProcessor over the given storage.
func New(accounts *storage.AccountStore, txLog *storage.TransactionLog) *TransactionProcessor {
	return &TransactionProcessor{accounts: accounts, log: txLog}
}

// Process applies ev, returning an *Error describing the failure if it was
// rejected. A rejected event never has partial effect: either the account
// mutation and (for deposits/withdrawals) the log insert both happen, or
// neither does.
func (p *TransactionProcessor) Process(ev domain.Event) error {
	switch ev.Kind {
	case domain.KindDeposit:
		return p.deposit(ev)
	case domain.KindWithdrawal:
		return p.withdrawal(ev)
	case domain.KindDispute:
		return p.dispute(ev)
	case domain.KindResolve:
		return p.resolve(ev)
	case domain.KindChargeback:
		return p.chargeback(ev)
	default:
		return fmt.Errorf("engine: unrecognized event kind %v", ev.Kind)
	}
}

func (p *TransactionProcessor) deposit(ev domain.Event) error {
	entry := p.accounts.Entry(ev.Client)
	if err := entry.TryUpdate(func(acc *domain.Account) error {
		return domain.Deposit(acc, ev.Amount)
	}); err != nil {
		log.Printf("engine: deposit tx %d client %d rejected: %v", ev.Tx, ev.Client, err)
		return &Error{Tx: ev.Tx, Err: err}
	}
	p.log.Insert(ev.Tx, domain.NewTransactionRecord(ev.Client, ev.Amount, domain.KindDeposit))
	return nil
}

func (p *TransactionProcessor) withdrawal(ev domain.Event) error {
	entry := p.accounts.Entry(ev.Client)
	if err := entry.TryUpdate(func(acc *domain.Account) error {
		return domain.Withdrawal(acc, ev.Amount)
	}); err != nil {
		log.Printf("engine: withdrawal tx %d client %d rejected: %v", ev.Tx, ev.Client, err)
		return &Error{Tx: ev.Tx, Err: err}
	}
	p.log.Insert(ev.Tx, domain.NewTransactionRecord(ev.Client, ev.Amount, domain.KindWithdrawal))
	return nil
}

// lookup resolves the transaction record a dispute, resolve or chargeback
// refers to. A missing tx id and a tx id that belongs to a different
// client are reported identically, so a client can never distinguish
// "doesn't exist" from "belongs to someone else".
func (p *TransactionProcessor) lookup(ev domain.Event) (domain.TransactionRecord, error) {
	rec, ok := p.log.Get(ev.Tx)
	if !ok || rec.Client != ev.Client {
		log.Printf("engine: tx %d not found for client %d", ev.Tx, ev.Client)
		return domain.TransactionRecord{}, &Error{Tx: ev.Tx, Err: ErrTransactionNotFound}
	}
	return rec, nil
}

func (p *TransactionProcessor) dispute(ev domain.Event) error {
	rec, err := p.lookup(ev)
	if err != nil {
		return err
	}
	if rec.Kind == domain.KindWithdrawal {
		return &Error{Tx: ev.Tx, Err: ErrCannotDisputeWithdrawal}
	}
	entry := p.accounts.Entry(ev.Client)
	if err := entry.TryUpdate(func(acc *domain.Account) error {
		return domain.Dispute(acc, ev.Tx, rec.Amount)
	}); err != nil {
		log.Printf("engine: dispute tx %d client %d rejected: %v", ev.Tx, ev.Client, err)
		return &Error{Tx: ev.Tx, Err: err}
	}
	return nil
}

func (p *TransactionProcessor) resolve(ev domain.Event) error {
	rec, err := p.lookup(ev)
	if err != nil {
		return err
	}
	entry := p.accounts.Entry(ev.Client)
	if err := entry.TryUpdate(func(acc *domain.Account) error {
		return domain.Resolve(acc, ev.Tx, rec.Amount)
	}); err != nil {
		log.Printf("engine: resolve tx %d client %d rejected: %v", ev.Tx, ev.Client, err)
		return &Error{Tx: ev.Tx, Err: err}
	}
	return nil
}

func (p *TransactionProcessor) chargeback(ev domain.Event) error {
	rec, err := p.lookup(ev)
	if err != nil {
		return err
	}
	entry := p.accounts.Entry(ev.Client)
	if err := entry.TryUpdate(func(acc *domain.Account) error {
		return domain.Chargeback(acc, ev.Tx, rec.Amount)
	}); err != nil {
		log.Printf("engine: chargeback tx %d client %d rejected: %v", ev.Tx, ev.Client, err)
		return &Error{Tx: ev.Tx, Err: err}
	}
	return nil
}
