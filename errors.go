package cruiseledger

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound is returned when an operation targets an identity absent
// from the canonical set.
var ErrRecordNotFound = errors.New("record not found")

// ErrTripNotFound is returned when an explicit trip id has no catalog match.
var ErrTripNotFound = errors.New("trip not found")

// RowIssue describes a malformed input row that was coerced to best-effort
// defaults instead of being rejected.
type RowIssue struct {
	Line   int
	Reason string
}

func (i RowIssue) String() string { return fmt.Sprintf("line %d: %s", i.Line, i.Reason) }
