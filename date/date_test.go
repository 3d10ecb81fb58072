package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso", in: "2025-07-01", want: New(2025, time.July, 1)},
		{name: "permissive single digits", in: "2025-7-1", want: New(2025, time.July, 1)},
		{name: "garbage", in: "not a date", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "plain date", in: "2025-03-14", want: New(2025, time.March, 14)},
		{name: "iso datetime", in: "2025-03-14T18:22:05", want: New(2025, time.March, 14)},
		{name: "rfc3339", in: "2025-03-14T18:22:05Z", want: New(2025, time.March, 14)},
		{name: "space separated", in: "2025-03-14 18:22", want: New(2025, time.March, 14)},
		{name: "us style", in: "3/14/2025", want: New(2025, time.March, 14)},
		{name: "unparseable", in: "yesterday-ish", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimestamp(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseTimestamp(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	sailing := Range{From: MustParse("2025-06-10"), To: MustParse("2025-06-17")}

	testCases := []struct {
		name string
		on   string
		want bool
	}{
		{name: "before departure", on: "2025-06-09", want: false},
		{name: "departure day", on: "2025-06-10", want: true},
		{name: "mid sailing", on: "2025-06-13", want: true},
		{name: "return day", on: "2025-06-17", want: true},
		{name: "after return", on: "2025-06-18", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sailing.Contains(MustParse(tc.on)); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestRange_Overlaps(t *testing.T) {
	a := Range{From: MustParse("2025-06-10"), To: MustParse("2025-06-17")}

	testCases := []struct {
		name string
		b    Range
		want bool
	}{
		{name: "disjoint before", b: Range{From: MustParse("2025-06-01"), To: MustParse("2025-06-09")}, want: false},
		{name: "touching boundary", b: Range{From: MustParse("2025-06-17"), To: MustParse("2025-06-24")}, want: true},
		{name: "contained", b: Range{From: MustParse("2025-06-12"), To: MustParse("2025-06-14")}, want: true},
		{name: "disjoint after", b: Range{From: MustParse("2025-06-18"), To: MustParse("2025-06-25")}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tc.b, got, tc.want)
			}
			if got := tc.b.Overlaps(a); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %v", tc.b)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	r := NewRange(MustParse("2025-06-10"), 7)
	if r.To != MustParse("2025-06-17") {
		t.Errorf("NewRange To = %s, want 2025-06-17", r.To)
	}
	if got := r.Nights(); got != 7 {
		t.Errorf("Nights() = %d, want 7", got)
	}
}
