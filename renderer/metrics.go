// Package renderer renders reports as markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	cl "github.com/crazycoder/cruiseledger"
	md "github.com/nao1215/markdown"
)

// TripMarkdown renders the per-trip metrics report.
func TripMarkdown(m *cl.TripMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := m.TripID
	if m.Trip.Ship != "" {
		title = fmt.Sprintf("%s (%s)", m.Trip.Ship, m.TripID)
	}
	doc.H1(fmt.Sprintf("Trip Metrics for %s", title))
	if m.Trip.Ship != "" {
		doc.PlainText(fmt.Sprintf("%s, %s to %s, %d nights",
			m.Trip.Itinerary, m.Trip.Departure, m.Trip.Return, m.Trip.Nights))
	}

	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Retail Value", m.RetailValue.String()},
			{"Out of Pocket", m.OutOfPocket.String()},
			{"Savings", m.Savings.String()},
			{"ROI", fmt.Sprintf("%.2f%%", m.ROI*100)},
			{"Casino Spend", m.CasinoSpend.String()},
			{"Points", fmt.Sprintf("%d", m.Points)},
			{"Value per Point", fmt.Sprintf("%.2f", m.VPP)},
			{"Taxes & Fees", m.TaxesFees.String()},
			{"Records", fmt.Sprintf("%d receipts, %d statements", m.Receipts, m.Statements)},
		},
	})

	return doc.String()
}

// PortfolioMarkdown renders the portfolio-wide rollup.
func PortfolioMarkdown(p *cl.PortfolioMetrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	doc.PlainText(fmt.Sprintf("Total Savings: %s across %d trips", p.TotalSavings, len(p.Trips)))

	doc.H2("Totals")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Retail Value", p.TotalRetail.String()},
			{"Out of Pocket", p.TotalOutOfPocket.String()},
			{"Savings", p.TotalSavings.String()},
			{"ROI", fmt.Sprintf("%.2f%%", p.ROI*100)},
			{"Points", fmt.Sprintf("%d", p.TotalPoints)},
			{"Value per Point", fmt.Sprintf("%.2f", p.VPP)},
			{"Taxes & Fees", p.TotalTaxesFees.String()},
			{"Unlinked Records", fmt.Sprintf("%d", p.UnlinkedCount)},
		},
	})

	if len(p.Trips) > 0 {
		doc.H2("Trips")
		rows := make([][]string, 0, len(p.Trips))
		for _, m := range p.Trips {
			rows = append(rows, []string{
				m.TripID, m.Trip.Ship, m.Savings.String(),
				fmt.Sprintf("%.2f%%", m.ROI*100), fmt.Sprintf("%d", m.Points),
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Trip", "Ship", "Savings", "ROI", "Points"},
			Rows:   rows,
		})
	}

	return doc.String()
}
