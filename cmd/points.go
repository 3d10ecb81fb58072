package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

// pointsCmd holds the flags for the 'points' subcommand.
type pointsCmd struct{}

func (*pointsCmd) Name() string     { return "points" }
func (*pointsCmd) Synopsis() string { return "record directly reported loyalty points for a trip" }
func (*pointsCmd) Usage() string {
	return `clt points <trip-id> <points>

  Stores the points figure reported by the loyalty program. Metrics keep
  the larger of this figure and the points inferred from casino spend.
`
}

func (*pointsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *pointsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	points, err := strconv.Atoi(f.Arg(1))
	if err != nil || points < 0 {
		fmt.Fprintf(os.Stderr, "Invalid points value %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.SetDirectPoints(f.Arg(0), points); err != nil {
		fmt.Fprintf(os.Stderr, "Error recording points: %v\n", err)
		return subcommands.ExitFailure
	}

	m, err := ledger.Metrics(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing metrics: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Trip %s now credits %d point(s)\n", f.Arg(0), m.Points)
	return EncodeLedger(ledger)
}
