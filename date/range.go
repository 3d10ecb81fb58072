package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the range covering from and the given number of nights.
func NewRange(from Date, nights int) Range {
	return Range{From: from, To: from.Add(nights)}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Overlaps reports whether the two ranges share at least one day.
func (r Range) Overlaps(o Range) bool { return !r.To.Before(o.From) && !o.To.Before(r.From) }

// Nights returns the number of nights spanned by the range.
func (r Range) Nights() int {
	n := 0
	for d := r.From; d.Before(r.To); d = d.Add(1) {
		n++
	}
	return n
}
