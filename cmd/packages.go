package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// packagesCmd holds the flags for the 'packages' subcommand.
type packagesCmd struct{}

func (*packagesCmd) Name() string     { return "packages" }
func (*packagesCmd) Synopsis() string { return "trips with a complete documentation package" }
func (*packagesCmd) Usage() string {
	return `clt packages

  Lists the trips backed by at least one receipt, one statement, earned
  points and casino spend.
`
}

func (*packagesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *packagesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PackagesMarkdown(ledger.CompletePackages()))
	return subcommands.ExitSuccess
}
