package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	cl "github.com/crazycoder/cruiseledger"
	"github.com/crazycoder/cruiseledger/renderer"
)

// tripsCmd holds the flags for the 'trips' subcommand.
type tripsCmd struct {
	importFile string
}

func (*tripsCmd) Name() string     { return "trips" }
func (*tripsCmd) Synopsis() string { return "list the trip catalog or import trips from JSON" }
func (*tripsCmd) Usage() string {
	return `clt trips [-import <file>]

  Without flags, lists the catalog in departure order. With -import, merges
  trips from a JSON file (either {"trips": [...]} or a bare array) into the
  catalog; an existing id is replaced. Use '-' to import from stdin.
`
}

func (c *tripsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.importFile, "import", "", "JSON file of trips to merge into the catalog")
}

func (c *tripsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	catalog, err := DecodeCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading trip catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.importFile == "" {
		printMarkdown(renderer.TripsMarkdown(catalog))
		return subcommands.ExitSuccess
	}

	var in io.Reader = os.Stdin
	if c.importFile != "-" {
		file, err := os.Open(c.importFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.importFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	trips, err := cl.DecodeTrips(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding trips: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, t := range trips {
		catalog.Add(t)
	}

	if err := EncodeCatalog(catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving trip catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d trip(s), catalog now holds %d\n", len(trips), catalog.Len())
	return subcommands.ExitSuccess
}
