package cruiseledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ledgerFileName is the main durable storage file within the data directory.
const ledgerFileName = "financials.csv"

// pointsFileName stores direct loyalty point credits, keyed by trip id.
const pointsFileName = "points.json"

// SnapshotResult reports the files written by one snapshot.
type SnapshotResult struct {
	Files []string
	Rows  int
}

// Snapshot flushes the canonical set to the data directory: the main ledger
// file, a timestamped copy under snapshots/, and a copy under exports/.
// On failure the in-memory set remains authoritative and the caller retries.
func (l *Ledger) Snapshot(dir string) (*SnapshotResult, error) {
	stamp := time.Now().Format("20060102T150405")
	targets := []string{
		filepath.Join(dir, ledgerFileName),
		filepath.Join(dir, "snapshots", fmt.Sprintf("financials_%s.csv", stamp)),
		filepath.Join(dir, "exports", ledgerFileName),
	}
	for _, target := range targets {
		if err := writeSnapshotFile(target, l); err != nil {
			return nil, err
		}
	}
	if len(l.directPoints) > 0 {
		target := filepath.Join(dir, pointsFileName)
		if err := writePointsFile(target, l.directPoints); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return &SnapshotResult{Files: targets, Rows: l.Len()}, nil
}

func writePointsFile(path string, points map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(points); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}

func writeSnapshotFile(path string, l *Ledger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	defer f.Close()
	if err := EncodeRecords(f, l.Records()); err != nil {
		return fmt.Errorf("snapshot %q: %w", path, err)
	}
	return nil
}

// LoadLedger reads the main ledger file from the data directory. A missing
// file is reported as fs.ErrNotExist so callers can start empty instead.
func LoadLedger(dir string) (*Ledger, []RowIssue, error) {
	path := filepath.Join(dir, ledgerFileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger %q: %w", path, err)
	}
	defer f.Close()
	ledger, issues, err := DecodeLedger(f)
	if err != nil {
		return nil, issues, fmt.Errorf("ledger %q: %w", path, err)
	}
	if err := readPointsFile(filepath.Join(dir, pointsFileName), ledger.directPoints); err != nil {
		return nil, issues, err
	}
	return ledger, issues, nil
}

func readPointsFile(path string, into map[string]int) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("points %q: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&into); err != nil {
		return fmt.Errorf("points %q: %w", path, err)
	}
	return nil
}
