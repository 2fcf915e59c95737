package storage

import (
	"testing"

	"github.com/ledgerflow/txnengine/common/amount"
	"github.com/ledgerflow/txnengine/domain"
)

func TestTransactionLog_InsertGet(t *testing.T) {
	l := NewTransactionLog()
	amt, _ := amount.Parse("10.0")
	rec := domain.NewTransactionRecord(1, amt, domain.KindDeposit)
	l.Insert(1, rec)

	got, ok := l.Get(1)
	if !ok {
		t.Fatal("expected record to be present")
	}
	if got.Client != 1 || got.Amount.Raw() != amt.Raw() || got.Kind != domain.KindDeposit {
		t.Errorf("got %+v, want %+v", got, rec)
	}
}

func TestTransactionLog_GetMissing(t *testing.T) {
	l := NewTransactionLog()
	if _, ok := l.Get(99); ok {
		t.Fatal("expected miss for unknown tx id")
	}
}

func TestTransactionLog_Contains(t *testing.T) {
	l := NewTransactionLog()
	if l.Contains(1) {
		t.Fatal("expected absent")
	}
	amt, _ := amount.Parse("1.0")
	l.Insert(1, domain.NewTransactionRecord(1, amt, domain.KindDeposit))
	if !l.Contains(1) {
		t.Fatal("expected present")
	}
}

func TestTransactionLog_InsertOverwritesSilently(t *testing.T) {
	l := NewTransactionLog()
	amt1, _ := amount.Parse("1.0")
	amt2, _ := amount.Parse("2.0")
	l.Insert(1, domain.NewTransactionRecord(1, amt1, domain.KindDeposit))
	l.Insert(1, domain.NewTransactionRecord(2, amt2, domain.KindWithdrawal))

	got, _ := l.Get(1)
	if got.Client != 2 || got.Amount.Raw() != amt2.Raw() || got.Kind != domain.KindWithdrawal {
		t.Errorf("got %+v, want the second insert to have won", got)
	}
}
