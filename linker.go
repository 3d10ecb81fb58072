package cruiseledger

import (
	"errors"
	"fmt"
)

// Link assigns a record to a trip. The trip id must exist in the catalog and
// the record in the canonical set; each miss is a typed failure that never
// aborts a batch. Relinking is authoritative: the previous trip reference and
// verified flag are overwritten. When verify is requested it is only granted
// if the record carries a usable monetary value, so empty placeholder records
// cannot be verified.
func (l *Ledger) Link(recordID, tripID string, verify bool) error {
	rec, ok := l.store.Get(recordID)
	if !ok {
		return fmt.Errorf("link record %q: %w", recordID, ErrRecordNotFound)
	}
	if _, ok := l.trips.Get(tripID); !ok {
		return fmt.Errorf("link record %q to trip %q: %w", recordID, tripID, ErrTripNotFound)
	}
	rec.TripID = tripID
	rec.Verified = verify && rec.HasAmount()
	l.store.Put(rec)
	return nil
}

// Verify grants the verified flag to the given records, provided each is
// linked and carries a usable amount. It returns how many were verified and
// the joined typed failures for the rest of the batch.
func (l *Ledger) Verify(recordIDs ...string) (int, error) {
	verified := 0
	var errs []error
	for _, id := range recordIDs {
		rec, ok := l.store.Get(id)
		if !ok {
			errs = append(errs, fmt.Errorf("verify record %q: %w", id, ErrRecordNotFound))
			continue
		}
		if !rec.Linked() || !rec.HasAmount() {
			continue
		}
		rec.Verified = true
		l.store.Put(rec)
		verified++
	}
	return verified, errors.Join(errs...)
}

// Relink re-derives trip references for the unlinked backlog using the fuzzy
// catalog match. Already linked records are trusted as-is. Returns how many
// records gained a link.
func (l *Ledger) Relink() int {
	linked := 0
	for rec := range l.store.All() {
		if rec.Linked() {
			continue
		}
		trip, ok := l.trips.Match(rec.Vendor(), rec.When())
		if !ok {
			continue
		}
		rec.TripID = trip.ID
		l.store.Put(rec)
		linked++
	}
	return linked
}

// ReceiptLine is one line item of a structured receipt document.
type ReceiptLine struct {
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Amount      Money  `json:"amount"`
}

// ReceiptDocument is a structured receipt from another subsystem.
// Line items flatten to one record each; a document without line items
// contributes a single record built from its totals.
type ReceiptDocument struct {
	TripID         string        `json:"tripId"`
	ReceiptID      string        `json:"receiptId"`
	DateTime       string        `json:"dateTime,omitempty"`
	Vendor         string        `json:"vendor,omitempty"`
	Lines          []ReceiptLine `json:"lineItems,omitempty"`
	TotalPaid      Money         `json:"totalPaid,omitempty"`
	TaxesAndFees   Money         `json:"taxesAndFees,omitempty"`
	Gratuities     Money         `json:"gratuities,omitempty"`
	CasinoDiscount Money         `json:"casinoDiscount,omitempty"`
}

// StatementLine is one posting of a structured statement document.
type StatementLine struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Amount      Money  `json:"amount"`
}

// StatementDocument is a structured onboard account statement.
type StatementDocument struct {
	TripID      string          `json:"tripId"`
	StatementID string          `json:"statementId"`
	Folio       string          `json:"folio,omitempty"`
	Lines       []StatementLine `json:"lineItems"`
}

// RebuildFromDocuments flattens structured receipt and statement documents
// into spend records, normalizing classification and deduplicating against
// the canonical set. Returns the number of records inserted.
func (l *Ledger) RebuildFromDocuments(receipts []ReceiptDocument, statements []StatementDocument) int {
	var drafts []SpendRecord
	for _, doc := range receipts {
		if len(doc.Lines) == 0 {
			rec := NewRecord(Receipt)
			rec.TripID = doc.TripID
			rec.ReceiptID = doc.ReceiptID
			rec.ReceiptDateTime = doc.DateTime
			rec.Description = doc.Vendor
			rec.ItemDescription = doc.Vendor
			rec.Category, rec.Department = LookupCategory(doc.Vendor)
			rec.LineTotal = doc.TotalPaid
			rec.Tax = doc.TaxesAndFees
			rec.Gratuity = doc.Gratuities
			rec.Discount = doc.CasinoDiscount
			drafts = append(drafts, rec)
			continue
		}
		for _, line := range doc.Lines {
			rec := NewRecord(Receipt)
			rec.TripID = doc.TripID
			rec.ReceiptID = doc.ReceiptID
			rec.ReceiptDateTime = doc.DateTime
			rec.Description = line.Description
			rec.ItemDescription = line.Description
			label := line.Category
			if label == "" {
				label = line.Description
			}
			rec.Category, rec.Department = LookupCategory(label)
			rec.Amount = line.Amount
			rec.LineTotal = line.Amount
			drafts = append(drafts, rec)
		}
	}
	for _, doc := range statements {
		for _, line := range doc.Lines {
			rec := NewRecord(Statement)
			rec.TripID = doc.TripID
			rec.StatementID = doc.StatementID
			rec.PostDate = line.Date
			rec.Description = line.Description
			rec.ItemDescription = line.Description
			label := line.Category
			if label == "" {
				label = line.Description
			}
			rec.Department = NormalizeDepartment(label)
			rec.Category = NormalizeCategory(label)
			rec.Amount = line.Amount
			rec.TxnType = Charge
			if line.Amount.IsNegative() {
				rec.TxnType = Credit
			}
			rec.Folio = ExtractRef(line.Description)
			if rec.Folio == "" {
				rec.Folio = doc.Folio
			}
			drafts = append(drafts, rec)
		}
	}
	inserted, _ := l.Append(drafts...)
	return inserted
}
