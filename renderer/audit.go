package renderer

import (
	"bytes"
	"fmt"

	cl "github.com/crazycoder/cruiseledger"
	md "github.com/nao1215/markdown"
)

// ReconcileMarkdown renders the per-trip reconciliation diagnostics.
func ReconcileMarkdown(entries []cl.ReconcileEntry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reconciliation")
	if len(entries) == 0 {
		doc.PlainText("No linked trips to reconcile.")
		return doc.String()
	}
	rows := make([][]string, 0, len(entries))
	flagged := 0
	for _, e := range entries {
		status := "ok"
		if e.NeedsReview {
			status = "needs review"
			flagged++
		}
		rows = append(rows, []string{
			e.TripID, e.RetailValue.String(), e.OutOfPocket.String(),
			fmt.Sprintf("%d", e.Difference), status,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Trip", "Retail", "Out of Pocket", "Difference", "Status"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d of %d trips need manual review.", flagged, len(entries)))
	return doc.String()
}

// IntegrityMarkdown renders the read-only audit result.
func IntegrityMarkdown(report cl.IntegrityReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Integrity Check")
	doc.Table(md.TableSet{
		Header: []string{"Check", "Count"},
		Rows: [][]string{
			{"Records", fmt.Sprintf("%d", report.Records)},
			{"Suspected Duplicates", fmt.Sprintf("%d", report.Duplicates)},
			{"Missing Links", fmt.Sprintf("%d", report.MissingLinks)},
		},
	})
	return doc.String()
}

// UnlinkedMarkdown renders the unlinked backlog.
func UnlinkedMarkdown(backlog []cl.SpendRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Unlinked Backlog")
	if len(backlog) == 0 {
		doc.PlainText("Every record is linked and verified.")
		return doc.String()
	}
	rows := make([][]string, 0, len(backlog))
	for _, rec := range backlog {
		when := rec.PostDate
		if when == "" {
			when = rec.ReceiptDateTime
		}
		rows = append(rows, []string{
			rec.ID, string(rec.Source), when, rec.Description,
			rec.EffectiveAmount().String(), rec.TripID,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Source", "Date", "Description", "Amount", "Trip"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d record(s) await linking or verification.", len(backlog)))
	return doc.String()
}
