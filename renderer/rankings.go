package renderer

import (
	"bytes"
	"fmt"

	cl "github.com/crazycoder/cruiseledger"
	md "github.com/nao1215/markdown"
)

// RankingsMarkdown renders the five top-trip lists.
func RankingsMarkdown(r *cl.Rankings) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trip Rankings")

	section := func(title, column string, trips []cl.TripMetrics, value func(cl.TripMetrics) string) {
		if len(trips) == 0 {
			return
		}
		doc.H2(title)
		rows := make([][]string, 0, len(trips))
		for i, m := range trips {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), m.TripID, m.Trip.Ship, value(m)})
		}
		doc.Table(md.TableSet{
			Header: []string{"#", "Trip", "Ship", column},
			Rows:   rows,
		})
	}

	section("Top Savings", "Savings", r.TopSavings,
		func(m cl.TripMetrics) string { return m.Savings.String() })
	section("Top ROI", "ROI", r.TopROI,
		func(m cl.TripMetrics) string { return fmt.Sprintf("%.2f%%", m.ROI*100) })
	section("Lowest Out of Pocket", "Out of Pocket", r.LowestOutOfPocket,
		func(m cl.TripMetrics) string { return m.OutOfPocket.String() })
	section("Best Value per Point", "VPP", r.BestVPP,
		func(m cl.TripMetrics) string { return fmt.Sprintf("%.2f", m.VPP) })
	section("Longest Sailings", "Nights", r.Longest,
		func(m cl.TripMetrics) string { return fmt.Sprintf("%d", m.Trip.Nights) })

	return doc.String()
}

// PackagesMarkdown renders the complete-package classification.
func PackagesMarkdown(complete []cl.TripMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Complete Packages")
	if len(complete) == 0 {
		doc.PlainText("No trip has a receipt, a statement, points and casino spend yet.")
		return doc.String()
	}
	rows := make([][]string, 0, len(complete))
	for _, m := range complete {
		rows = append(rows, []string{
			m.TripID, m.Trip.Ship, m.Savings.String(),
			fmt.Sprintf("%d", m.Points), m.CasinoSpend.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Trip", "Ship", "Savings", "Points", "Casino Spend"},
		Rows:   rows,
	})
	return doc.String()
}
