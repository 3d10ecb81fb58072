package cruiseledger

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// csvHeader is the canonical column set, shared by the normalizer and the
// snapshot codec so a snapshot round-trips through ingestion unchanged.
var csvHeader = []string{
	"id", "sourceType", "tripId", "receiptId", "statementId",
	"receiptDateTime", "postDate", "description", "itemDescription",
	"category", "department", "amount", "lineTotal", "tax", "gratuity",
	"discount", "paymentMethod", "txnType", "folio", "currency", "verified",
}

// headerAliases maps legacy column names to canonical ones.
var headerAliases = map[string]string{
	"cruiseid": "tripid",
	"date":     "postdate",
}

// ParseRecords turns raw delimited text with a header row into spend-record
// drafts. The transform is pure: malformed rows degrade to best-effort
// defaults and are reported as RowIssues, never dropped. The delimiter is a
// tab when the header contains one, else a comma.
func ParseRecords(r io.Reader) ([]SpendRecord, []RowIssue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string
	var delim rune
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		delim = ','
		if strings.ContainsRune(raw, '\t') {
			delim = '\t'
		}
		for _, name := range splitLine(raw, delim) {
			name = strings.ToLower(strings.TrimSpace(name))
			if canonical, ok := headerAliases[name]; ok {
				name = canonical
			}
			header = append(header, name)
		}
		break
	}
	if header == nil {
		if err := scanner.Err(); err != nil {
			return nil, nil, fmt.Errorf("reading header: %w", err)
		}
		return nil, nil, fmt.Errorf("missing header row")
	}

	descIdx := -1
	for i, name := range header {
		if name == "description" {
			descIdx = i
			break
		}
	}

	var records []SpendRecord
	var issues []RowIssue
	for scanner.Scan() {
		line++
		raw := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		fields := splitLine(raw, delim)
		fields, issue := alignFields(fields, len(header), descIdx)
		if issue != "" {
			issues = append(issues, RowIssue{Line: line, Reason: issue})
		}
		rec, rowIssues := coerceRow(header, fields, line)
		issues = append(issues, rowIssues...)
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, issues, fmt.Errorf("reading rows: %w", err)
	}
	return records, issues, nil
}

// splitLine splits one delimited line, respecting quoted fields with
// doubled-quote escapes.
func splitLine(s string, delim rune) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// alignFields coerces a row to the header width. Extra fields are folded
// into the description column (or the last column when none is declared),
// preserving trailing columns; missing fields are padded with empty strings.
func alignFields(fields []string, width, descIdx int) ([]string, string) {
	switch {
	case len(fields) > width:
		extra := len(fields) - width
		target := descIdx
		if target < 0 {
			target = width - 1
		}
		parts := make([]string, 0, extra+1)
		for _, p := range fields[target : target+extra+1] {
			parts = append(parts, strings.TrimSpace(p))
		}
		merged := strings.Join(parts, " ")
		aligned := make([]string, 0, width)
		aligned = append(aligned, fields[:target]...)
		aligned = append(aligned, merged)
		aligned = append(aligned, fields[target+extra+1:]...)
		return aligned, fmt.Sprintf("%d extra field(s) folded into description", extra)
	case len(fields) < width:
		missing := width - len(fields)
		for len(fields) < width {
			fields = append(fields, "")
		}
		return fields, fmt.Sprintf("%d missing field(s) padded", missing)
	}
	return fields, ""
}

// coerceRow maps one aligned row into a SpendRecord draft.
func coerceRow(header, fields []string, line int) (SpendRecord, []RowIssue) {
	cell := func(name string) string {
		for i, h := range header {
			if h == name && i < len(fields) {
				return strings.TrimSpace(fields[i])
			}
		}
		return ""
	}
	var issues []RowIssue

	source := Statement
	switch st := strings.ToLower(cell("sourcetype")); st {
	case "receipt":
		source = Receipt
	case "statement", "":
	default:
		issues = append(issues, RowIssue{Line: line, Reason: fmt.Sprintf("unknown sourceType %q coerced to statement", st)})
	}

	rec := SpendRecord{
		ID:              cell("id"),
		Source:          source,
		TripID:          cell("tripid"),
		ReceiptID:       cell("receiptid"),
		StatementID:     cell("statementid"),
		ReceiptDateTime: cell("receiptdatetime"),
		PostDate:        cell("postdate"),
		Description:     cell("description"),
		ItemDescription: cell("itemdescription"),
		PaymentMethod:   NormalizePaymentMethod(cell("paymentmethod")),
		Folio:           cell("folio"),
		Currency:        cell("currency"),
	}
	if rec.Currency == "" {
		rec.Currency = "USD"
	}

	// Description duplicated into both fields for downstream consumers.
	if rec.ItemDescription == "" {
		rec.ItemDescription = rec.Description
	}
	if rec.Description == "" {
		rec.Description = rec.ItemDescription
	}
	if rec.Folio == "" {
		rec.Folio = ExtractRef(rec.Description)
	}

	switch category, department := cell("category"), cell("department"); {
	case category != "":
		rec.Category, rec.Department = LookupCategory(category)
		// an explicit department wins over the one the category label implies
		if department != "" {
			rec.Department = NormalizeDepartment(department)
		}
	case department != "":
		rec.Department = NormalizeDepartment(department)
		rec.Category = NormalizeCategory(department)
	default:
		rec.Category, rec.Department = CatOther, DeptOther
	}

	parse := func(name string) Money {
		m, err := ParseAmount(cell(name), rec.Currency)
		if err != nil {
			issues = append(issues, RowIssue{Line: line, Reason: fmt.Sprintf("unparseable %s %q left unset", name, cell(name))})
			return Money{}
		}
		return m
	}
	rec.Amount = parse("amount")
	rec.LineTotal = parse("linetotal")
	rec.Tax = parse("tax")
	rec.Gratuity = parse("gratuity")
	rec.Discount = parse("discount")

	if rec.Source == Receipt && !rec.LineTotal.IsSet() && rec.Amount.IsSet() {
		rec.LineTotal = rec.Amount
	}
	if rec.Source == Statement {
		rec.TxnType = Charge
		if rec.Amount.IsNegative() {
			rec.TxnType = Credit
		}
	}

	rec.Verified = strings.EqualFold(cell("verified"), "true")
	return rec, issues
}
