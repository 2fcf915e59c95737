package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ledgerflow/txnengine/common/amount"
	"github.com/ledgerflow/txnengine/domain"
	"github.com/ledgerflow/txnengine/storage"
)

// writeTable renders the same snapshot data as csvio.WriteSnapshot, as a
// human-readable table instead of CSV. The CSV format stays the default;
// this is strictly a convenience for interactive use.
func writeTable(w io.Writer, store *storage.AccountStore) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"client", "available", "held", "total", "locked"})

	var rows [][]string
	store.ForEach(func(acc domain.Account) {
		rows = append(rows, []string{
			formatClient(acc.ClientID()),
			amount.Format(acc.Available()),
			amount.Format(acc.Held()),
			amount.Format(acc.Total()),
			formatLocked(acc.Locked()),
		})
	})
	table.AppendBulk(rows)
	table.Render()
	return nil
}

func formatClient(id domain.ClientID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatLocked(locked bool) string {
	return fmt.Sprintf("%t", locked)
}
