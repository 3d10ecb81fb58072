package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// reconcileCmd holds the flags for the 'reconcile' subcommand.
type reconcileCmd struct{}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "compare receipt totals against statement totals" }
func (*reconcileCmd) Usage() string {
	return `clt reconcile

  Renders the per-trip difference between retail value and out of pocket,
  flagging trips whose rounded gap exceeds one unit for manual review.
`
}

func (*reconcileCmd) SetFlags(_ *flag.FlagSet) {}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReconcileMarkdown(ledger.Reconcile()))
	return subcommands.ExitSuccess
}
