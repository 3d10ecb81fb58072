package cruiseledger

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/crazycoder/cruiseledger/date"
)

func TestLedger_Metrics(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())
	ledger.Append(
		testReceipt("T1", "R1", "2025-06-11T19:30:00", "Chops Grille", 100, 10, 5, 0),
		testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 80),
	)

	m, err := ledger.Metrics("T1")
	if err != nil {
		t.Fatalf("Metrics(T1) error = %v", err)
	}
	if !m.RetailValue.Equal(USD(115)) {
		t.Errorf("RetailValue = %s, want 115", m.RetailValue.Plain())
	}
	if !m.OutOfPocket.Equal(USD(80)) {
		t.Errorf("OutOfPocket = %s, want 80", m.OutOfPocket.Plain())
	}
	if !m.Savings.Equal(USD(35)) {
		t.Errorf("Savings = %s, want 35", m.Savings.Plain())
	}
	if m.ROI != 0.4375 {
		t.Errorf("ROI = %v, want 0.4375", m.ROI)
	}
	if m.Points != 16 {
		t.Errorf("Points = %d, want 16", m.Points)
	}
	if math.Abs(m.VPP-2.1875) > 1e-9 {
		t.Errorf("VPP = %v, want 2.1875", m.VPP)
	}
}

func TestLedger_Metrics_UnknownTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())
	if _, err := ledger.Metrics("T9"); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("Metrics(T9) error = %v, want ErrTripNotFound", err)
	}
}

func TestLedger_Metrics_Guards(t *testing.T) {
	t.Run("savings never negative", func(t *testing.T) {
		ledger := NewLedger()
		ledger.SetCatalog(testCatalog())
		ledger.Append(
			testReceipt("T1", "R1", "2025-06-11", "Chops Grille", 50, 0, 0, 0),
			testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 200),
		)
		m, err := ledger.Metrics("T1")
		if err != nil {
			t.Fatal(err)
		}
		if !m.Savings.IsZero() {
			t.Errorf("Savings = %s, want 0 when out-of-pocket exceeds retail", m.Savings.Plain())
		}
	})

	t.Run("zero out-of-pocket means zero ROI", func(t *testing.T) {
		ledger := NewLedger()
		ledger.SetCatalog(testCatalog())
		ledger.Append(testReceipt("T1", "R1", "2025-06-11", "Chops Grille", 100, 0, 0, 0))
		m, err := ledger.Metrics("T1")
		if err != nil {
			t.Fatal(err)
		}
		if m.ROI != 0 {
			t.Errorf("ROI = %v, want 0", m.ROI)
		}
	})

	t.Run("zero points means zero VPP", func(t *testing.T) {
		ledger := NewLedger()
		ledger.SetCatalog(testCatalog())
		ledger.Append(
			testReceipt("T1", "R1", "2025-06-11", "Chops Grille", 100, 0, 0, 0),
			testStatement("T1", "S1", "2025-06-12", "Daily Gratuity", DeptGratuities, 18),
		)
		m, err := ledger.Metrics("T1")
		if err != nil {
			t.Fatal(err)
		}
		if m.Points != 0 || m.VPP != 0 {
			t.Errorf("Points/VPP = %d/%v, want 0/0 without casino spend", m.Points, m.VPP)
		}
	})
}

func TestLedger_Metrics_RefundsExcluded(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())
	ledger.Append(
		testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 80),
		testStatement("T1", "S1", "2025-06-13", "Casino refund", DeptCasino, -20),
	)
	m, err := ledger.Metrics("T1")
	if err != nil {
		t.Fatal(err)
	}
	if !m.OutOfPocket.Equal(USD(80)) {
		t.Errorf("OutOfPocket = %s, want 80 (refund excluded)", m.OutOfPocket.Plain())
	}
	if ledger.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (refund remains stored for audit)", ledger.Len())
	}
	if report := ledger.IntegrityCheck(); report.Records != 2 {
		t.Errorf("IntegrityCheck records = %d, want 2", report.Records)
	}
}

func TestLedger_Metrics_PointsMonotonic(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())

	prev := 0
	for i := 0; i < 5; i++ {
		ledger.Append(testStatement("T1", "S1", fmt.Sprintf("2025-06-1%d", i+1), "Casino slots", DeptCasino, 27))
		m, err := ledger.Metrics("T1")
		if err != nil {
			t.Fatal(err)
		}
		if m.Points < prev {
			t.Fatalf("points decreased from %d to %d after adding casino spend", prev, m.Points)
		}
		prev = m.Points
	}
	// 5 x 27 = 135 casino spend, 27 inferred points
	if prev != 27 {
		t.Errorf("inferred points = %d, want 27", prev)
	}

	// a more generous direct credit wins
	if err := ledger.SetDirectPoints("T1", 100); err != nil {
		t.Fatal(err)
	}
	m, _ := ledger.Metrics("T1")
	if m.Points != 100 {
		t.Errorf("Points = %d, want direct 100", m.Points)
	}

	// a stingier direct credit never lowers the inferred figure
	if err := ledger.SetDirectPoints("T1", 5); err != nil {
		t.Fatal(err)
	}
	m, _ = ledger.Metrics("T1")
	if m.Points != 27 {
		t.Errorf("Points = %d, want inferred 27 over direct 5", m.Points)
	}
}

func TestLedger_Rankings(t *testing.T) {
	ledger := NewLedger()
	catalog := NewCatalog()
	// 12 trips, each with increasing retail value; later departures have
	// higher savings so the top entries are well defined.
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("T%02d", i)
		dep := date.New(2025, 1, i*7)
		catalog.Add(Trip{ID: id, Ship: fmt.Sprintf("Ship %02d", i), Departure: dep, Return: dep.Add(7), Nights: 7})
	}
	ledger.SetCatalog(catalog)
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("T%02d", i)
		ledger.Append(
			testReceipt(id, "R"+id, "2025-01-01", "Package "+id, float64(100+i*10), 0, 0, 0),
			testStatement(id, "S"+id, "2025-01-02", "Casino "+id, DeptCasino, 50),
		)
	}

	r := ledger.Rankings()
	if len(r.TopSavings) != 10 {
		t.Fatalf("TopSavings has %d entries, want 10", len(r.TopSavings))
	}
	if r.TopSavings[0].TripID != "T12" {
		t.Errorf("TopSavings[0] = %s, want T12", r.TopSavings[0].TripID)
	}
	for i := 1; i < len(r.TopSavings); i++ {
		if r.TopSavings[i].Savings.GreaterThan(r.TopSavings[i-1].Savings) {
			t.Errorf("TopSavings not sorted at %d", i)
		}
	}
	// all out-of-pocket are equal: the tie breaks toward the latest departure
	if r.LowestOutOfPocket[0].TripID != "T12" {
		t.Errorf("LowestOutOfPocket[0] = %s, want latest departure T12 on tie", r.LowestOutOfPocket[0].TripID)
	}
	// all nights are equal too
	if r.Longest[0].TripID != "T12" {
		t.Errorf("Longest[0] = %s, want latest departure T12 on tie", r.Longest[0].TripID)
	}
}

func TestLedger_CompletePackages(t *testing.T) {
	ledger := NewLedger()
	catalog := NewCatalog()
	for _, id := range []string{"FULL", "NORECEIPT", "NOSTATEMENT", "NOCASINO"} {
		catalog.Add(Trip{ID: id, Ship: "Ship " + id, Departure: date.MustParse("2025-06-10"), Return: date.MustParse("2025-06-17"), Nights: 7})
	}
	ledger.SetCatalog(catalog)

	ledger.Append(
		testReceipt("FULL", "R1", "2025-06-11", "Package", 200, 0, 0, 0),
		testStatement("FULL", "S1", "2025-06-12", "Casino slots", DeptCasino, 80),

		testStatement("NORECEIPT", "S2", "2025-06-12", "Casino slots", DeptCasino, 80),

		testReceipt("NOSTATEMENT", "R3", "2025-06-11", "Package", 200, 0, 0, 0),

		testReceipt("NOCASINO", "R4", "2025-06-11", "Package", 200, 0, 0, 0),
		testStatement("NOCASINO", "S4", "2025-06-12", "Daily Gratuity", DeptGratuities, 18),
	)

	complete := ledger.CompletePackages()
	if len(complete) != 1 || complete[0].TripID != "FULL" {
		ids := make([]string, 0, len(complete))
		for _, m := range complete {
			ids = append(ids, m.TripID)
		}
		t.Errorf("CompletePackages() = %v, want [FULL]", ids)
	}
}

func TestLedger_Reconcile(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())
	ledger.Append(
		// T1: retail 115 vs out 80, difference 35 flags review
		testReceipt("T1", "R1", "2025-06-11", "Chops Grille", 100, 10, 5, 0),
		testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 80),
		// T2: retail 100.40 vs out 100, rounded difference 0 is fine
		testReceipt("T2", "R2", "2025-09-02", "Spa day", 100.40, 0, 0, 0),
		testStatement("T2", "S2", "2025-09-03", "Vitality Spa", DeptSpa, 100),
	)

	entries := ledger.Reconcile()
	if len(entries) != 2 {
		t.Fatalf("Reconcile() returned %d entries, want 2", len(entries))
	}
	byTrip := map[string]ReconcileEntry{}
	for _, e := range entries {
		byTrip[e.TripID] = e
	}
	if e := byTrip["T1"]; e.Difference != 35 || !e.NeedsReview {
		t.Errorf("T1 = %+v, want difference 35 flagged", e)
	}
	if e := byTrip["T2"]; e.Difference != 0 || e.NeedsReview {
		t.Errorf("T2 = %+v, want difference 0 unflagged", e)
	}
}

func TestLedger_UnlinkedAndIntegrity(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())

	linked := testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 80)
	orphan := testStatement("", "S2", "2025-06-12", "Mystery charge", DeptOther, 9)
	ledger.Append(linked, orphan)
	if _, err := ledger.Verify(linked.ID); err != nil {
		t.Fatal(err)
	}

	backlog := ledger.Unlinked()
	if len(backlog) != 1 || backlog[0].ID != orphan.ID {
		t.Errorf("Unlinked() = %d records, want just the orphan", len(backlog))
	}

	report := ledger.IntegrityCheck()
	if report.MissingLinks != 1 {
		t.Errorf("MissingLinks = %d, want 1", report.MissingLinks)
	}
	if report.Duplicates != 0 {
		t.Errorf("Duplicates = %d, want 0", report.Duplicates)
	}
}

func TestLedger_PortfolioMetrics(t *testing.T) {
	ledger := NewLedger()
	ledger.SetCatalog(testCatalog())
	ledger.Append(
		testReceipt("T1", "R1", "2025-06-11", "Chops Grille", 100, 10, 5, 0),
		testStatement("T1", "S1", "2025-06-12", "Casino slots", DeptCasino, 80),
		testReceipt("T2", "R2", "2025-09-02", "Spa day", 200, 0, 0, 0),
		testStatement("T2", "S2", "2025-09-03", "Daily Gratuity", DeptGratuities, 18),
		testStatement("", "S3", "2025-09-04", "Mystery charge", DeptOther, 5),
	)

	p := ledger.PortfolioMetrics()
	if len(p.Trips) != 2 {
		t.Fatalf("Trips = %d, want 2", len(p.Trips))
	}
	if p.Trips[0].TripID != "T1" {
		t.Errorf("Trips[0] = %s, want departure order T1 first", p.Trips[0].TripID)
	}
	if !p.TotalRetail.Equal(USD(315)) {
		t.Errorf("TotalRetail = %s, want 315", p.TotalRetail.Plain())
	}
	if !p.TotalOutOfPocket.Equal(USD(98)) {
		t.Errorf("TotalOutOfPocket = %s, want 98", p.TotalOutOfPocket.Plain())
	}
	if !p.TotalTaxesFees.Equal(USD(18)) {
		t.Errorf("TotalTaxesFees = %s, want 18", p.TotalTaxesFees.Plain())
	}
	if p.UnlinkedCount != 1 {
		t.Errorf("UnlinkedCount = %d, want 1", p.UnlinkedCount)
	}
	if got := p.ByDepartment[DeptCasino]; !got.Equal(USD(80)) {
		t.Errorf("ByDepartment[Casino] = %s, want 80", got.Plain())
	}
}
