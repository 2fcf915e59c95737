// Command txnengine reads a CSV of deposit/withdrawal/dispute/resolve/
// chargeback rows and writes the resulting per-client account snapshot.
//
// Run using
//
//	go run ./cmd/txnengine [flags] <input.csv>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ledgerflow/txnengine/csvio"
	"github.com/ledgerflow/txnengine/storage"
	"github.com/ledgerflow/txnengine/streaming"
)

var (
	shardsFlag = cli.IntFlag{
		Name:  "shards",
		Usage: "number of shards to split the input across",
		Value: 1,
	}
	errorPolicyFlag = cli.StringFlag{
		Name:  "error-policy",
		Usage: "how to react to a bad row or rejected transaction: skip, abort, or silent",
		Value: "silent",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output format for the account snapshot: csv or table",
		Value: "csv",
	}
)

func main() {
	app := &cli.App{
		Name:      "txnengine",
		Usage:     "process a CSV transaction stream into a per-client account snapshot",
		ArgsUsage: "<input.csv>",
		Flags: []cli.Flag{
			&shardsFlag,
			&errorPolicyFlag,
			&formatFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return cli.Exit("missing input CSV path", 1)
	}

	reader, err := csvio.FromFilePath(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	policy, err := resolveErrorPolicy(ctx.String(errorPolicyFlag.Name))
	if err != nil {
		return err
	}

	accounts := storage.NewAccountStore()
	txLog := storage.NewTransactionLog()

	topology := streaming.New(accounts, txLog, policy).
		WithShards(ctx.Int(shardsFlag.Name)).
		AddStream(reader)

	results := topology.Process(context.Background())
	if !results.AllSucceeded() {
		fmt.Fprintln(os.Stderr, "txnengine: one or more shards aborted early due to an error")
	}

	switch ctx.String(formatFlag.Name) {
	case "table":
		return writeTable(os.Stdout, accounts)
	default:
		return csvio.WriteSnapshot(os.Stdout, accounts)
	}
}

func resolveErrorPolicy(name string) (streaming.ErrorPolicy, error) {
	switch name {
	case "skip":
		return streaming.SkipErrors{}, nil
	case "abort":
		return streaming.AbortOnError{}, nil
	case "silent":
		return streaming.SilentSkip{}, nil
	default:
		return nil, fmt.Errorf("txnengine: unknown error policy %q (want skip, abort or silent)", name)
	}
}
