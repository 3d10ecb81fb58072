package cruiseledger

import (
	"strings"

	"github.com/crazycoder/cruiseledger/date"
	"github.com/google/uuid"
)

// SourceType identifies which spend source produced a record.
type SourceType string

const (
	Receipt   SourceType = "receipt"
	Statement SourceType = "statement"
)

// TxnType classifies a statement posting by its sign.
type TxnType string

const (
	Charge TxnType = "Charge"
	Credit TxnType = "Credit"
)

// SpendRecord is the canonical unit of financial data, a receipt line or a
// statement line. Monetary fields left unset mean "no value", not zero.
type SpendRecord struct {
	ID              string
	Source          SourceType
	TripID          string
	ReceiptID       string
	StatementID     string
	ReceiptDateTime string // raw as ingested, may carry a time of day
	PostDate        string
	Description     string
	ItemDescription string
	Category        Category
	Department      Department
	Amount          Money
	LineTotal       Money
	Tax             Money
	Gratuity        Money
	Discount        Money
	PaymentMethod   string
	TxnType         TxnType
	Folio           string
	Currency        string
	Verified        bool
}

// NewRecord returns an empty record for the given source with a fresh id.
func NewRecord(source SourceType) SpendRecord {
	return SpendRecord{ID: uuid.NewString(), Source: source, Currency: "USD"}
}

// Linked reports whether the record references a trip.
func (r SpendRecord) Linked() bool { return r.TripID != "" }

// HasAmount reports whether the record carries a usable monetary value.
// Verification is only granted to records that do.
func (r SpendRecord) HasAmount() bool { return r.Amount.IsSet() || r.LineTotal.IsSet() }

// EffectiveAmount returns the amount, falling back to the line total.
func (r SpendRecord) EffectiveAmount() Money {
	if r.Amount.IsSet() {
		return r.Amount
	}
	return r.LineTotal
}

// Vendor returns the text used for fuzzy trip matching.
func (r SpendRecord) Vendor() string {
	if r.ItemDescription != "" {
		return r.ItemDescription
	}
	return r.Description
}

// When returns the record's day: post date for statements, receipt date-time
// otherwise. The zero Date means no parseable date.
func (r SpendRecord) When() date.Date {
	for _, raw := range []string{r.PostDate, r.ReceiptDateTime} {
		if raw == "" {
			continue
		}
		if d, err := date.ParseTimestamp(raw); err == nil {
			return d
		}
	}
	return date.Date{}
}

// amountLike is the monetary component of identity keys: the amount, falling
// back to the line total, else "0".
func (r SpendRecord) amountLike() string {
	if a := r.EffectiveAmount(); a.IsSet() {
		return a.Plain()
	}
	return "0"
}

// identityKey is the source-specific composite deduplication key. Receipts
// key on the item description and exact date-time; statements key on the
// generic description and post date, loose enough that legitimate same-day
// same-amount postings with different descriptions survive.
func (r SpendRecord) identityKey() string {
	if r.Source == Receipt {
		desc := r.ItemDescription
		if desc == "" {
			desc = r.Description
		}
		return strings.Join([]string{r.TripID, r.ReceiptID, r.ReceiptDateTime, desc, r.amountLike()}, "|")
	}
	desc := r.Description
	if desc == "" {
		desc = r.ItemDescription
	}
	return strings.Join([]string{r.TripID, r.StatementID, r.PostDate, desc, r.amountLike()}, "|")
}

// auditKey is the cross-source key used by the integrity check.
func (r SpendRecord) auditKey() string {
	desc := r.ItemDescription
	if desc == "" {
		desc = r.Description
	}
	when := r.PostDate
	if when == "" {
		when = r.ReceiptDateTime
	}
	return strings.Join([]string{string(r.Source), r.TripID, r.ReceiptID, r.StatementID, desc, r.amountLike(), when}, "|")
}
