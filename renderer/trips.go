package renderer

import (
	"bytes"
	"fmt"

	cl "github.com/crazycoder/cruiseledger"
	md "github.com/nao1215/markdown"
)

// TripsMarkdown renders the trip catalog in departure order.
func TripsMarkdown(catalog *cl.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trip Catalog")
	if catalog.Len() == 0 {
		doc.PlainText("The catalog is empty. Import trips with 'clt trips -import'.")
		return doc.String()
	}
	rows := make([][]string, 0, catalog.Len())
	for _, t := range catalog.Trips() {
		rows = append(rows, []string{
			t.ID, t.Ship, t.Itinerary,
			t.Departure.String(), t.Return.String(), fmt.Sprintf("%d", t.Nights),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Id", "Ship", "Itinerary", "Departure", "Return", "Nights"},
		Rows:   rows,
	})
	return doc.String()
}
