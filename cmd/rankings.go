package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// rankingsCmd holds the flags for the 'rankings' subcommand.
type rankingsCmd struct{}

func (*rankingsCmd) Name() string     { return "rankings" }
func (*rankingsCmd) Synopsis() string { return "top trips by savings, ROI, spend, VPP and length" }
func (*rankingsCmd) Usage() string {
	return `clt rankings

  Renders the five top-ten lists. Ties go to the most recent departure.
`
}

func (*rankingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rankingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RankingsMarkdown(ledger.Rankings()))
	return subcommands.ExitSuccess
}
