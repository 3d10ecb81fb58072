package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// snapshotCmd holds the flags for the 'snapshot' subcommand.
type snapshotCmd struct{}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "write the ledger, a timestamped copy and the export" }
func (*snapshotCmd) Usage() string {
	return `clt snapshot

  Writes financials.csv, a timestamped copy under snapshots/ and the
  spreadsheet export under exports/. The snapshot re-ingests losslessly.
`
}

func (*snapshotCmd) SetFlags(_ *flag.FlagSet) {}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := ledger.Snapshot(*dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, file := range result.Files {
		fmt.Println(file)
	}
	fmt.Printf("Snapshot of %d row(s) written\n", result.Rows)
	return subcommands.ExitSuccess
}
