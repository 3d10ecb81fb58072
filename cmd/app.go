// Package cmd implements the CLI application to manage the spend ledger.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	cl "github.com/crazycoder/cruiseledger"
)

// Commands lists the subcommands a main package registers and executes.
var Commands = []subcommands.Command{
	&ingestCmd{},
	&linkCmd{},
	&verifyCmd{},
	&relinkCmd{},
	&rebuildCmd{},
	&metricsCmd{},
	&summaryCmd{},
	&rankingsCmd{},
	&packagesCmd{},
	&reconcileCmd{},
	&unlinkedCmd{},
	&integrityCmd{},
	&snapshotCmd{},
	&tripsCmd{},
	&pointsCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config = newConfig()

func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault("data-dir", ".")
	v.SetDefault("trips-file", "trips.json")
	v.SetConfigName("clt")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/clt")
	v.SetEnvPrefix("CLT")
	v.AutomaticEnv()
	_ = v.ReadInConfig() // missing config file is fine, defaults apply
	return v
}

var dataDir = flag.String("data-dir", config.GetString("data-dir"), "Directory holding financials.csv, snapshots/ and exports/")
var tripsFile = flag.String("trips-file", config.GetString("trips-file"), "Path to the trip catalog file (JSON)")

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// DecodeLedger loads the ledger from the data directory and attaches the trip
// catalog. A missing ledger file starts an empty ledger instead.
func DecodeLedger() (*cl.Ledger, error) {
	ledger, issues, err := cl.LoadLedger(*dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("dir", *dataDir).Msg("ledger does not exist, starting empty")
		ledger, err = cl.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	for _, issue := range issues {
		logger.Warn().Int("line", issue.Line).Msg(issue.Reason)
	}
	catalog, err := DecodeCatalog()
	if err != nil {
		return nil, err
	}
	ledger.SetCatalog(catalog)
	return ledger, nil
}

// DecodeCatalog loads the trip catalog; a missing file yields an empty one.
func DecodeCatalog() (*cl.Catalog, error) {
	catalog := cl.NewCatalog()
	f, err := os.Open(*tripsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("trip catalog %q: %w", *tripsFile, err)
	}
	defer f.Close()
	trips, err := cl.DecodeTrips(f)
	if err != nil {
		return nil, fmt.Errorf("trip catalog %q: %w", *tripsFile, err)
	}
	for _, t := range trips {
		catalog.Add(t)
	}
	return catalog, nil
}

// EncodeCatalog persists the trip catalog to the trips file.
func EncodeCatalog(catalog *cl.Catalog) error {
	if dir := filepath.Dir(*tripsFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("trip catalog %q: %w", *tripsFile, err)
		}
	}
	f, err := os.Create(*tripsFile)
	if err != nil {
		return fmt.Errorf("trip catalog %q: %w", *tripsFile, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"trips": catalog.Trips()})
}

// EncodeLedger flushes the ledger through a snapshot. On failure the
// in-memory set stays authoritative; the caller retries.
func EncodeLedger(ledger *cl.Ledger) subcommands.ExitStatus {
	result, err := ledger.Snapshot(*dataDir)
	if err != nil {
		logger.Error().Err(err).Msg("storage failure, ledger not flushed")
		return subcommands.ExitFailure
	}
	logger.Debug().Int("rows", result.Rows).Msg("ledger flushed")
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
