package cruiseledger

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// EncodeRecords writes the canonical set as comma-delimited text with the
// canonical header, in a form ParseRecords reads back unchanged.
func EncodeRecords(w io.Writer, records iter.Seq[SpendRecord]) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(csvHeader, ",") + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for rec := range records {
		row := []string{
			rec.ID,
			string(rec.Source),
			rec.TripID,
			rec.ReceiptID,
			rec.StatementID,
			rec.ReceiptDateTime,
			rec.PostDate,
			rec.Description,
			rec.ItemDescription,
			string(rec.Category),
			string(rec.Department),
			rec.Amount.Plain(),
			rec.LineTotal.Plain(),
			rec.Tax.Plain(),
			rec.Gratuity.Plain(),
			rec.Discount.Plain(),
			rec.PaymentMethod,
			string(rec.TxnType),
			rec.Folio,
			rec.Currency,
			fmt.Sprintf("%t", rec.Verified),
		}
		for i, field := range row {
			row[i] = csvField(field)
		}
		if _, err := bw.WriteString(strings.Join(row, ",") + "\n"); err != nil {
			return fmt.Errorf("writing record %q: %w", rec.ID, err)
		}
	}
	return bw.Flush()
}

// csvField escapes a field that contains a delimiter, quote, or newline by
// quoting it and doubling embedded quotes.
func csvField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\t") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// DecodeLedger reads a snapshot back into a fresh ledger through the
// normalizer, so hand-edited files get the same coercion as uploads.
func DecodeLedger(r io.Reader) (*Ledger, []RowIssue, error) {
	ledger := NewLedger()
	result, err := ledger.Ingest(r)
	if err != nil {
		return nil, result.Issues, err
	}
	return ledger, result.Issues, nil
}
