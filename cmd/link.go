package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// linkCmd holds the flags for the 'link' subcommand.
type linkCmd struct {
	verify bool
}

func (*linkCmd) Name() string     { return "link" }
func (*linkCmd) Synopsis() string { return "link a record to a trip" }
func (*linkCmd) Usage() string {
	return `clt link [-verify] <record-id> <trip-id>

  Assigns the record to the trip. The latest link call is authoritative and
  clears the verified flag unless -verify is given.
`
}

func (c *linkCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.verify, "verify", false, "Mark the record verified (requires a usable amount)")
}

func (c *linkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	recordID, tripID := f.Arg(0), f.Arg(1)

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Link(recordID, tripID, c.verify); err != nil {
		fmt.Fprintf(os.Stderr, "Error linking: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Linked record %s to trip %s\n", recordID, tripID)
	return EncodeLedger(ledger)
}
