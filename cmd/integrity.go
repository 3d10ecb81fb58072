package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// integrityCmd holds the flags for the 'integrity' subcommand.
type integrityCmd struct{}

func (*integrityCmd) Name() string     { return "integrity" }
func (*integrityCmd) Synopsis() string { return "audit the ledger for duplicates and missing links" }
func (*integrityCmd) Usage() string {
	return `clt integrity

  Read-only audit: counts records, suspected cross-source duplicates and
  records without a trip link. Never mutates the ledger.
`
}

func (*integrityCmd) SetFlags(_ *flag.FlagSet) {}

func (c *integrityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.IntegrityMarkdown(ledger.IntegrityCheck()))
	return subcommands.ExitSuccess
}
