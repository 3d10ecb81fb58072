package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "portfolio-wide totals across all trips" }
func (*summaryCmd) Usage() string {
	return `clt summary

  Renders the portfolio rollup: total retail value, out of pocket, savings,
  ROI, points, department breakdown and the unlinked backlog count.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(ledger.PortfolioMetrics()))
	return subcommands.ExitSuccess
}
