package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	cl "github.com/crazycoder/cruiseledger"
)

// rebuildCmd holds the flags for the 'rebuild' subcommand.
type rebuildCmd struct {
	file string
}

func (*rebuildCmd) Name() string     { return "rebuild" }
func (*rebuildCmd) Synopsis() string { return "rebuild ledger records from source documents" }
func (*rebuildCmd) Usage() string {
	return `clt rebuild [-f <file>]

  Reads a JSON export of receipt and statement documents and regenerates
  spend records from it. Existing records deduplicate the regenerated set,
  so rebuild is safe to run repeatedly. Reads stdin when no file is given.

  Expected shape: {"receipts": [...], "statements": [...]}
`
}

func (c *rebuildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Documents file to rebuild from, '-' or empty for stdin")
}

func (c *rebuildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var documents struct {
		Receipts   []cl.ReceiptDocument   `json:"receipts"`
		Statements []cl.StatementDocument `json:"statements"`
	}
	if err := json.NewDecoder(in).Decode(&documents); err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding documents: %v\n", err)
		return subcommands.ExitFailure
	}

	inserted := ledger.RebuildFromDocuments(documents.Receipts, documents.Statements)
	fmt.Printf("Rebuilt %d record(s) from %d receipt(s) and %d statement(s)\n",
		inserted, len(documents.Receipts), len(documents.Statements))
	return EncodeLedger(ledger)
}
