package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// ingestCmd holds the flags for the 'ingest' subcommand.
type ingestCmd struct {
	file string
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "ingest raw receipt/statement rows into the ledger" }
func (*ingestCmd) Usage() string {
	return `clt ingest [-f <file>]

  Normalizes tab- or comma-delimited text with a header row, deduplicates it
  against the ledger, and flushes. Reads stdin when no file is given.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "File to ingest, '-' or empty for stdin")
}

func (c *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	var in io.Reader = os.Stdin
	if c.file != "" && c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	result, err := ledger.Ingest(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ingesting: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, issue := range result.Issues {
		logger.Warn().Int("line", issue.Line).Msg(issue.Reason)
	}

	fmt.Printf("Ingested %d record(s), skipped %d duplicate(s), %d row issue(s)\n",
		result.Inserted, result.Skipped, len(result.Issues))
	return EncodeLedger(ledger)
}
