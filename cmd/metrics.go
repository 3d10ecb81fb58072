package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/crazycoder/cruiseledger/renderer"
)

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct{}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compute savings, ROI and points for one trip" }
func (*metricsCmd) Usage() string {
	return `clt metrics <trip-id>

  Renders the full metrics report for a single trip: retail value, out of
  pocket, savings, ROI, casino spend, points and value per point.
`
}

func (*metricsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *metricsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	m, err := ledger.Metrics(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing metrics: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TripMarkdown(m))
	return subcommands.ExitSuccess
}
