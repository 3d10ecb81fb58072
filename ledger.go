package cruiseledger

import (
	"fmt"
	"io"
	"iter"
	"sort"

	"github.com/google/uuid"
)

// Store abstracts the canonical record set behind get/put/iterate so the
// in-memory set can later be backed by a persistent engine without touching
// the normalizer, linker, or aggregator.
type Store interface {
	Get(id string) (SpendRecord, bool)
	Put(rec SpendRecord)
	All() iter.Seq[SpendRecord]
	Len() int
	Reset(records []SpendRecord)
}

// memStore keeps records in insertion order with an id index.
// Single-writer-per-invocation, no locking.
type memStore struct {
	records []SpendRecord
	index   map[string]int
}

func newMemStore() *memStore { return &memStore{index: make(map[string]int)} }

func (s *memStore) Get(id string) (SpendRecord, bool) {
	i, ok := s.index[id]
	if !ok {
		return SpendRecord{}, false
	}
	return s.records[i], true
}

func (s *memStore) Put(rec SpendRecord) {
	if i, ok := s.index[rec.ID]; ok {
		s.records[i] = rec
		return
	}
	s.index[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
}

func (s *memStore) All() iter.Seq[SpendRecord] {
	return func(yield func(SpendRecord) bool) {
		for _, rec := range s.records {
			if !yield(rec) {
				return
			}
		}
	}
}

func (s *memStore) Len() int { return len(s.records) }

func (s *memStore) Reset(records []SpendRecord) {
	s.records = s.records[:0]
	s.index = make(map[string]int, len(records))
	for _, rec := range records {
		s.Put(rec)
	}
}

// Ledger holds the canonical spend-record set, the trip catalog it links
// against, and out-of-band loyalty point credits.
type Ledger struct {
	store        Store
	trips        *Catalog
	directPoints map[string]int
}

// NewLedger returns an empty ledger backed by the in-memory store.
func NewLedger() *Ledger {
	return &Ledger{store: newMemStore(), trips: NewCatalog(), directPoints: make(map[string]int)}
}

// SetCatalog replaces the trip catalog the linker resolves against.
func (l *Ledger) SetCatalog(c *Catalog) { l.trips = c }

// Catalog returns the trip catalog.
func (l *Ledger) Catalog() *Catalog { return l.trips }

// Len returns the canonical set size.
func (l *Ledger) Len() int { return l.store.Len() }

// Records iterates the canonical set in insertion order.
func (l *Ledger) Records() iter.Seq[SpendRecord] { return l.store.All() }

// Record returns the record with the given id.
func (l *Ledger) Record(id string) (SpendRecord, error) {
	rec, ok := l.store.Get(id)
	if !ok {
		return SpendRecord{}, fmt.Errorf("record %q: %w", id, ErrRecordNotFound)
	}
	return rec, nil
}

// Append adds drafts to the canonical set, dropping exact duplicates by the
// source-specific identity key. The seen-key set spans the existing set plus
// the whole batch, so identical rows across any number of calls collapse to
// one stored record. Returns inserted and skipped counts.
func (l *Ledger) Append(drafts ...SpendRecord) (inserted, skipped int) {
	seen := make(map[string]bool, l.store.Len()+len(drafts))
	for rec := range l.store.All() {
		seen[rec.identityKey()] = true
	}
	for _, draft := range drafts {
		key := draft.identityKey()
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true
		if draft.ID == "" {
			draft.ID = uuid.NewString()
		}
		l.store.Put(draft)
		inserted++
	}
	return inserted, skipped
}

// Reset discards the canonical set. The only delete API.
func (l *Ledger) Reset() { l.store.Reset(nil) }

// IngestResult reports the outcome of one ingestion batch. Issues lists the
// rows that degraded to defaults; they are kept, not rejected.
type IngestResult struct {
	Inserted int
	Skipped  int
	Issues   []RowIssue
}

// Ingest normalizes raw delimited text and appends the resulting drafts.
func (l *Ledger) Ingest(r io.Reader) (IngestResult, error) {
	drafts, issues, err := ParseRecords(r)
	if err != nil {
		return IngestResult{Issues: issues}, err
	}
	inserted, skipped := l.Append(drafts...)
	return IngestResult{Inserted: inserted, Skipped: skipped, Issues: issues}, nil
}

// SetDirectPoints records a known loyalty point credit for a trip. Direct
// figures take precedence over inferred ones when more generous.
func (l *Ledger) SetDirectPoints(tripID string, points int) error {
	if _, ok := l.trips.Get(tripID); !ok {
		return fmt.Errorf("points for trip %q: %w", tripID, ErrTripNotFound)
	}
	l.directPoints[tripID] = points
	return nil
}

// DirectPoints returns the recorded point credit for a trip, 0 if none.
func (l *Ledger) DirectPoints(tripID string) int { return l.directPoints[tripID] }

// tripIDs returns the distinct trip ids referenced by linked records,
// in departure-date order when the catalog knows them.
func (l *Ledger) tripIDs() []string {
	set := make(map[string]bool)
	for rec := range l.store.All() {
		if rec.Linked() {
			set[rec.TripID] = true
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, aok := l.trips.Get(ids[i])
		b, bok := l.trips.Get(ids[j])
		if aok && bok && a.Departure != b.Departure {
			return a.Departure.Before(b.Departure)
		}
		return ids[i] < ids[j]
	})
	return ids
}
