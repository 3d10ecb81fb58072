package cruiseledger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/agnivade/levenshtein"

	"github.com/crazycoder/cruiseledger/date"
)

// Trip is a scheduled journey spend records link to. Owned by an external
// catalog; the linker only reads it.
type Trip struct {
	ID        string    `json:"id"`
	Ship      string    `json:"ship"`
	Itinerary string    `json:"itinerary"`
	Departure date.Date `json:"departureDate"`
	Return    date.Date `json:"returnDate"`
	Nights    int       `json:"nights"`
}

// Dates returns the sailing date range, boundaries included.
func (t Trip) Dates() date.Range { return date.Range{From: t.Departure, To: t.Return} }

// Catalog is the read-only trip reference set, kept in departure-date order.
type Catalog struct {
	trips []Trip
	index map[string]int
}

func NewCatalog() *Catalog { return &Catalog{index: make(map[string]int)} }

// Add inserts or replaces a trip by id.
func (c *Catalog) Add(t Trip) {
	if t.Nights == 0 && !t.Return.IsZero() {
		t.Nights = date.Range{From: t.Departure, To: t.Return}.Nights()
	}
	if i, ok := c.index[t.ID]; ok {
		c.trips[i] = t
	} else {
		c.index[t.ID] = len(c.trips)
		c.trips = append(c.trips, t)
	}
	sort.SliceStable(c.trips, func(i, j int) bool { return c.trips[i].Departure.Before(c.trips[j].Departure) })
	for i, trip := range c.trips {
		c.index[trip.ID] = i
	}
}

// Get returns the trip with the given id.
func (c *Catalog) Get(id string) (Trip, bool) {
	i, ok := c.index[id]
	if !ok {
		return Trip{}, false
	}
	return c.trips[i], true
}

// Trips returns all trips in departure-date order.
func (c *Catalog) Trips() []Trip { return c.trips }

// Len returns the catalog size.
func (c *Catalog) Len() int { return len(c.trips) }

// fuzzyShipThreshold is the levenshtein distance over max length above which
// two ship names are considered different.
const fuzzyShipThreshold = 0.4

// Match finds the trip a record belongs to from its vendor text and day.
// A case-insensitive ship-name substring in either direction, a close
// levenshtein match, or date containment in the sailing range each suffice
// on their own. Recall over precision: partial source data is the norm.
func (c *Catalog) Match(vendor string, on date.Date) (Trip, bool) {
	vendor = strings.ToUpper(strings.TrimSpace(vendor))
	for _, t := range c.trips {
		ship := strings.ToUpper(strings.TrimSpace(t.Ship))
		if vendor != "" && ship != "" {
			if strings.Contains(vendor, ship) || strings.Contains(ship, vendor) {
				return t, true
			}
			dist := levenshtein.ComputeDistance(vendor, ship)
			maxlen := len(vendor)
			if len(ship) > maxlen {
				maxlen = len(ship)
			}
			if maxlen > 0 && float64(dist)/float64(maxlen) < fuzzyShipThreshold {
				return t, true
			}
		}
		if !on.IsZero() && t.Dates().Contains(on) {
			return t, true
		}
	}
	return Trip{}, false
}

// DecodeTrips reads a trip catalog from a JSON feed. The feed either has a
// top-level "trips" array or is itself an array of trips.
func DecodeTrips(r io.Reader) ([]Trip, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decoding trip feed: %w", err)
	}
	jval, err := jsonpath.Get("$.trips", jobj)
	if err != nil {
		// not an envelope, try the document itself
		jval = jobj
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("trip feed is not a list")
	}
	trips := make([]Trip, 0, len(jlist))
	for i, item := range jlist {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
		var t Trip
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("trip %d: %w", i, err)
		}
		if t.ID == "" {
			return nil, fmt.Errorf("trip %d: missing id", i)
		}
		trips = append(trips, t)
	}
	return trips, nil
}
