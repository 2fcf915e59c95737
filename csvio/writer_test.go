package csvio

import (
	"strings"
	"testing"

	"github.com/ledgerflow/txnengine/common/amount"
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/storage"
)

func TestWriteSnapshot_Empty(t *testing.T) {
	store := storage.NewAccountStore()
	var buf strings.Builder
	if err := WriteSnapshot(&buf, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "client,available,held,total,locked\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteSnapshot_SingleAccount(t *testing.T) {
	store := storage.NewAccountStore()
	amt, _ := amount.Parse("1.5")
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Deposit(acc, amt) })

	var buf strings.Builder
	if err := WriteSnapshot(&buf, store); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "client,available,held,total,locked\n1,1.5000,0.0000,1.5000,false\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSnapshot_HeldAccount(t *testing.T) {
	store := storage.NewAccountStore()
	one, _ := amount.Parse("1.0")
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Deposit(acc, one) })
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Dispute(acc, 1, one) })

	var buf strings.Builder
	_ = WriteSnapshot(&buf, store)
	want := "client,available,held,total,locked\n1,0.0000,1.0000,1.0000,false\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSnapshot_LockedAccount(t *testing.T) {
	store := storage.NewAccountStore()
	one, _ := amount.Parse("1.0")
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Deposit(acc, one) })
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Dispute(acc, 1, one) })
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Chargeback(acc, 1, one) })

	var buf strings.Builder
	_ = WriteSnapshot(&buf, store)
	want := "client,available,held,total,locked\n1,0.0000,0.0000,0.0000,true\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteSnapshot_MultipleAccounts(t *testing.T) {
	store := storage.NewAccountStore()
	one, _ := amount.Parse("1.0")
	for _, c := range []domain.ClientID{1, 2, 3, 4} {
		_ = store.Entry(c).TryUpdate(func(acc *domain.Account) error { return domain.Deposit(acc, one) })
	}
	var buf strings.Builder
	_ = WriteSnapshot(&buf, store)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 { // header + 4 accounts
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
}

func TestWriteSnapshot_PreservesPrecision(t *testing.T) {
	store := storage.NewAccountStore()
	amt, _ := amount.Parse("1.2345")
	_ = store.Entry(1).TryUpdate(func(acc *domain.Account) error { return domain.Deposit(acc, amt) })

	var buf strings.Builder
	_ = WriteSnapshot(&buf, store)
	if !strings.Contains(buf.String(), "1.2345") {
		t.Errorf("got %q, want it to contain 1.2345", buf.String())
	}
}
