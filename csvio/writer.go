package csvio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ledgerflow/txnengine/common/amount"
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/storage"
)

// WriteSnapshot renders every account in store as CSV to w: a header row
// followed by one "client,available,held,total,locked" line per account
// that has ever been created, in no particular order.
func WriteSnapshot(w io.Writer, store *storage.AccountStore) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("client,available,held,total,locked\n"); err != nil {
		return &storage.Error{Err: err}
	}

	var writeErr error
	store.ForEach(func(acc domain.Account) {
		if writeErr != nil {
			return
		}
		line := fmt.Sprintf("%d,%s,%s,%s,%t\n",
			acc.ClientID(),
			amount.Format(acc.Available()),
			amount.Format(acc.Held()),
			amount.Format(acc.Total()),
			acc.Locked(),
		)
		if _, err := bw.WriteString(line); err != nil {
			writeErr = err
		}
	})
	if writeErr != nil {
		return &storage.Error{Err: writeErr}
	}

	if err := bw.Flush(); err != nil {
		return &storage.Error{Err: err}
	}
	return nil
}
