package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// unlinkedCmd holds the flags for the 'unlinked' subcommand.
type unlinkedCmd struct{}

func (*unlinkedCmd) Name() string     { return "unlinked" }
func (*unlinkedCmd) Synopsis() string { return "list records awaiting linking or verification" }
func (*unlinkedCmd) Usage() string {
	return `clt unlinked

  Lists every record that is not yet linked to a trip or not yet verified.
`
}

func (*unlinkedCmd) SetFlags(_ *flag.FlagSet) {}

func (c *unlinkedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.UnlinkedMarkdown(ledger.Unlinked()))
	return subcommands.ExitSuccess
}
