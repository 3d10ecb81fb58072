package cruiseledger

import (
	"fmt"
	"slices"
	"sort"
)

// TripMetrics is the per-trip financial performance report. All figures are
// computed over the linked, deduplicated set at call time; nothing is
// memoized.
type TripMetrics struct {
	TripID      string
	Trip        Trip // zero when the catalog does not know the id
	Receipts    int
	Statements  int
	RetailValue Money
	OutOfPocket Money
	CasinoSpend Money
	TaxesFees   Money
	Savings     Money
	ROI         float64
	Points      int
	VPP         float64
}

// Metrics computes the report for one trip. Requesting an id that neither
// the catalog nor any linked record knows is the aggregator's only hard
// failure.
func (l *Ledger) Metrics(tripID string) (*TripMetrics, error) {
	_, known := l.trips.Get(tripID)
	if !known {
		for rec := range l.store.All() {
			if rec.TripID == tripID {
				known = true
				break
			}
		}
	}
	if !known {
		return nil, fmt.Errorf("metrics for trip %q: %w", tripID, ErrTripNotFound)
	}
	m := l.tripMetrics(tripID)
	return &m, nil
}

// tripMetrics does the actual aggregation. Every division is zero-guarded
// and absent fields sum as 0; it never fails.
func (l *Ledger) tripMetrics(tripID string) TripMetrics {
	m := TripMetrics{TripID: tripID}
	m.Trip, _ = l.trips.Get(tripID)

	retail, out, casino, taxes := USD(0), USD(0), USD(0), USD(0)
	for rec := range l.store.All() {
		if rec.TripID != tripID {
			continue
		}
		switch rec.Source {
		case Receipt:
			m.Receipts++
			retail = retail.Add(rec.LineTotal).Add(rec.Tax).Add(rec.Gratuity).Sub(rec.Discount)
		case Statement:
			m.Statements++
			amt := rec.EffectiveAmount()
			if !amt.IsPositive() {
				// refunds and credits stay stored for audit but never count as spend
				continue
			}
			out = out.Add(amt)
			switch rec.Department {
			case DeptCasino:
				casino = casino.Add(amt)
			case DeptTaxes, DeptServiceFees, DeptGratuities:
				taxes = taxes.Add(amt)
			}
		}
	}

	m.RetailValue, m.OutOfPocket, m.CasinoSpend, m.TaxesFees = retail, out, casino, taxes

	savings := retail.Sub(out)
	if savings.IsNegative() {
		savings = USD(0)
	}
	m.Savings = savings

	if out.IsPositive() {
		m.ROI = savings.AsFloat() / out.AsFloat()
	}

	// 5 currency units of casino spend earn one point; a known direct credit
	// wins when more generous, never both.
	inferred := int(casino.FloorUnits(5))
	m.Points = inferred
	if direct := l.directPoints[tripID]; direct > m.Points {
		m.Points = direct
	}
	if m.Points > 0 {
		m.VPP = savings.AsFloat() / float64(m.Points)
	}
	return m
}

// PortfolioMetrics is the portfolio-wide rollup across all linked trips.
type PortfolioMetrics struct {
	Trips            []TripMetrics
	TotalRetail      Money
	TotalOutOfPocket Money
	TotalSavings     Money
	TotalTaxesFees   Money
	TotalPoints      int
	ROI              float64
	VPP              float64
	ByDepartment     map[Department]Money
	UnlinkedCount    int
}

// PortfolioMetrics aggregates every linked trip, in departure-date order.
func (l *Ledger) PortfolioMetrics() *PortfolioMetrics {
	p := &PortfolioMetrics{
		TotalRetail:      USD(0),
		TotalOutOfPocket: USD(0),
		TotalSavings:     USD(0),
		TotalTaxesFees:   USD(0),
		ByDepartment:     make(map[Department]Money),
	}
	for _, tripID := range l.tripIDs() {
		m := l.tripMetrics(tripID)
		p.Trips = append(p.Trips, m)
		p.TotalRetail = p.TotalRetail.Add(m.RetailValue)
		p.TotalOutOfPocket = p.TotalOutOfPocket.Add(m.OutOfPocket)
		p.TotalSavings = p.TotalSavings.Add(m.Savings)
		p.TotalTaxesFees = p.TotalTaxesFees.Add(m.TaxesFees)
		p.TotalPoints += m.Points
	}
	if p.TotalOutOfPocket.IsPositive() {
		p.ROI = p.TotalSavings.AsFloat() / p.TotalOutOfPocket.AsFloat()
	}
	if p.TotalPoints > 0 {
		p.VPP = p.TotalSavings.AsFloat() / float64(p.TotalPoints)
	}
	for rec := range l.store.All() {
		if !rec.Linked() {
			p.UnlinkedCount++
			continue
		}
		if rec.Source != Statement {
			continue
		}
		if amt := rec.EffectiveAmount(); amt.IsPositive() {
			sum, ok := p.ByDepartment[rec.Department]
			if !ok {
				sum = USD(0)
			}
			p.ByDepartment[rec.Department] = sum.Add(amt)
		}
	}
	return p
}

// rankingSize caps every ranking dimension.
const rankingSize = 10

// Rankings holds the top trips per dimension.
type Rankings struct {
	TopSavings        []TripMetrics
	TopROI            []TripMetrics
	LowestOutOfPocket []TripMetrics
	BestVPP           []TripMetrics
	Longest           []TripMetrics
}

// Rankings computes the five top-10 lists. Ties break toward the most
// recent departure date.
func (l *Ledger) Rankings() *Rankings {
	var all []TripMetrics
	for _, tripID := range l.tripIDs() {
		all = append(all, l.tripMetrics(tripID))
	}
	return &Rankings{
		TopSavings: rankBy(all, func(a, b TripMetrics) bool { return a.Savings.GreaterThan(b.Savings) }),
		TopROI:     rankBy(all, func(a, b TripMetrics) bool { return a.ROI > b.ROI }),
		LowestOutOfPocket: rankBy(all, func(a, b TripMetrics) bool {
			return a.OutOfPocket.LessThan(b.OutOfPocket)
		}),
		BestVPP: rankBy(all, func(a, b TripMetrics) bool { return a.VPP > b.VPP }),
		Longest: rankBy(all, func(a, b TripMetrics) bool { return a.Trip.Nights > b.Trip.Nights }),
	}
}

// rankBy sorts by the dimension, breaks ties by latest departure, and caps
// the list.
func rankBy(all []TripMetrics, better func(a, b TripMetrics) bool) []TripMetrics {
	ranked := slices.Clone(all)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if better(a, b) {
			return true
		}
		if better(b, a) {
			return false
		}
		return b.Trip.Departure.Before(a.Trip.Departure)
	})
	if len(ranked) > rankingSize {
		ranked = ranked[:rankingSize]
	}
	return ranked
}

// CompletePackages returns the trips qualifying as a full package: at least
// one linked receipt and one linked statement, points earned, and a nonzero
// casino-spend signal. Missing any one excludes the trip.
func (l *Ledger) CompletePackages() []TripMetrics {
	var complete []TripMetrics
	for _, tripID := range l.tripIDs() {
		m := l.tripMetrics(tripID)
		if m.Receipts > 0 && m.Statements > 0 && m.Points > 0 && m.CasinoSpend.IsPositive() {
			complete = append(complete, m)
		}
	}
	return complete
}

// ReconcileEntry is the per-trip reconciliation diagnostic: the absolute
// retail-vs-out-of-pocket difference rounded to whole currency units.
// Informational only, never auto-corrected.
type ReconcileEntry struct {
	TripID      string
	RetailValue Money
	OutOfPocket Money
	Difference  int64
	NeedsReview bool
}

// Reconcile flags trips whose rounded difference exceeds one currency unit.
func (l *Ledger) Reconcile() []ReconcileEntry {
	var entries []ReconcileEntry
	for _, tripID := range l.tripIDs() {
		m := l.tripMetrics(tripID)
		diff := m.RetailValue.Sub(m.OutOfPocket).Abs().RoundedUnits()
		entries = append(entries, ReconcileEntry{
			TripID:      tripID,
			RetailValue: m.RetailValue,
			OutOfPocket: m.OutOfPocket,
			Difference:  diff,
			NeedsReview: diff > 1,
		})
	}
	return entries
}

// Unlinked returns the backlog: records with no trip reference or not yet
// verified. They are excluded from per-trip aggregates.
func (l *Ledger) Unlinked() []SpendRecord {
	var backlog []SpendRecord
	for rec := range l.store.All() {
		if !rec.Linked() || !rec.Verified {
			backlog = append(backlog, rec)
		}
	}
	return backlog
}

// IntegrityReport is the read-only audit result.
type IntegrityReport struct {
	Records      int
	Duplicates   int
	MissingLinks int
}

// IntegrityCheck counts suspected duplicates by the cross-source audit key
// and records lacking a trip reference.
func (l *Ledger) IntegrityCheck() IntegrityReport {
	report := IntegrityReport{}
	seen := make(map[string]bool)
	for rec := range l.store.All() {
		report.Records++
		key := rec.auditKey()
		if seen[key] {
			report.Duplicates++
		}
		seen[key] = true
		if !rec.Linked() {
			report.MissingLinks++
		}
	}
	return report
}
