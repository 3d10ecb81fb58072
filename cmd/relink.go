package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// relinkCmd holds the flags for the 'relink' subcommand.
type relinkCmd struct{}

func (*relinkCmd) Name() string     { return "relink" }
func (*relinkCmd) Synopsis() string { return "re-derive trip links for the unlinked backlog" }
func (*relinkCmd) Usage() string {
	return `clt relink

  Matches every unlinked record against the trip catalog by ship name or
  sailing dates. Already linked records are trusted as-is.
`
}

func (*relinkCmd) SetFlags(_ *flag.FlagSet) {}

func (c *relinkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	linked := ledger.Relink()
	fmt.Printf("Linked %d record(s), %d remain unlinked\n", linked, ledger.IntegrityCheck().MissingLinks)
	if linked == 0 {
		return subcommands.ExitSuccess
	}
	return EncodeLedger(ledger)
}
