package cruiseledger

import "github.com/crazycoder/cruiseledger/date"

// test fixture builders shared across the package tests.

func testCatalog() *Catalog {
	c := NewCatalog()
	c.Add(Trip{ID: "T1", Ship: "Icon of the Seas", Itinerary: "Eastern Caribbean",
		Departure: date.MustParse("2025-06-10"), Return: date.MustParse("2025-06-17"), Nights: 7})
	c.Add(Trip{ID: "T2", Ship: "Wonder of the Seas", Itinerary: "Western Caribbean",
		Departure: date.MustParse("2025-09-01"), Return: date.MustParse("2025-09-08"), Nights: 7})
	return c
}

func testReceipt(tripID, receiptID, when, desc string, lineTotal, tax, gratuity, discount float64) SpendRecord {
	rec := NewRecord(Receipt)
	rec.TripID = tripID
	rec.ReceiptID = receiptID
	rec.ReceiptDateTime = when
	rec.Description = desc
	rec.ItemDescription = desc
	rec.Amount = USD(lineTotal)
	rec.LineTotal = USD(lineTotal)
	rec.Tax = USD(tax)
	rec.Gratuity = USD(gratuity)
	rec.Discount = USD(discount)
	return rec
}

func testStatement(tripID, statementID, when, desc string, dept Department, amount float64) SpendRecord {
	rec := NewRecord(Statement)
	rec.TripID = tripID
	rec.StatementID = statementID
	rec.PostDate = when
	rec.Description = desc
	rec.ItemDescription = desc
	rec.Department = dept
	rec.Category = NormalizeCategory(string(dept))
	rec.Amount = USD(amount)
	rec.TxnType = Charge
	if amount < 0 {
		rec.TxnType = Credit
	}
	return rec
}
