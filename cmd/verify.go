package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// verifyCmd holds the flags for the 'verify' subcommand.
type verifyCmd struct{}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "mark linked records as verified" }
func (*verifyCmd) Usage() string {
	return `clt verify <record-id>...

  Grants the verified flag to each linked record that carries a usable
  amount. Unknown ids are reported; the rest of the batch still applies.
`
}

func (*verifyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *verifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	verified, err := ledger.Verify(f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Some records failed: %v\n", err)
	}
	fmt.Printf("Verified %d of %d record(s)\n", verified, f.NArg())
	return EncodeLedger(ledger)
}
