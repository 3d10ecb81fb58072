// Package cruiseledger provides the reconciliation and metrics engine of a
// personal travel/loyalty-finance tracker. It is designed to be local-first
// and auditable, keeping the canonical spend-record set in a human-readable,
// version-controllable file.
//
// The core functionalities include:
//   - Normalization: turning raw delimited text (receipt and statement
//     uploads) into typed spend records, tolerant of column drift and
//     malformed rows.
//   - Deduplication: dropping exact duplicate submissions with
//     source-specific composite keys.
//   - Linking: assigning each record to a trip from the catalog, by exact id
//     or fuzzy ship-name/date matching.
//   - Aggregation: per-trip and portfolio-wide metrics (retail value,
//     out-of-pocket spend, savings, return on spend, loyalty-point value),
//     rankings, reconciliation and integrity diagnostics.
//   - Snapshot: flushing the canonical set to durable storage on demand, in
//     a format that round-trips through the normalizer.
//
// This package serves as the foundational logic for the `clt` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cruiseledger
