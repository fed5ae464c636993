// Package selection parses column selection expressions and evaluates them
// against rows.
//
// A selection expression is a comma-separated list of items, each of which
// is one of
//
//	N    column N
//	N-   columns N to the last one
//	-M   columns 1 to M
//	N-M  columns N to M (N <= M)
//
// Columns are numbered from 1.  Items are evaluated in the order they are
// given and the columns they select are concatenated, so "3,1" swaps two
// columns and "1,1-2" outputs the first column twice.
package selection

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the shape of a Range.
type Kind uint8

const (
	Single       Kind = iota // N
	LeftBounded              // N-
	RightBounded             // -M
	Closed                   // N-M
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "Single"
	case LeftBounded:
		return "LeftBounded"
	case RightBounded:
		return "RightBounded"
	case Closed:
		return "Closed"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A Range is one item of a selection expression.  Start is meaningful for
// Single, LeftBounded and Closed, End for RightBounded and Closed.  Both are
// positive when meaningful.
type Range struct {
	Kind       Kind
	Start, End int
}

// Bounds returns the first and last column of the range.  For a LeftBounded
// range the last column is math.MaxInt.
func (r Range) Bounds() (first, last int) {
	switch r.Kind {
	case Single:
		return r.Start, r.Start
	case LeftBounded:
		return r.Start, math.MaxInt
	case RightBounded:
		return 1, r.End
	case Closed:
		return r.Start, r.End
	default:
		panic("invalid range kind")
	}
}

// String returns the range in selection expression syntax.
func (r Range) String() string {
	switch r.Kind {
	case Single:
		return strconv.Itoa(r.Start)
	case LeftBounded:
		return strconv.Itoa(r.Start) + "-"
	case RightBounded:
		return "-" + strconv.Itoa(r.End)
	case Closed:
		return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
	default:
		return r.Kind.String()
	}
}

// A Spec is a parsed selection expression.  It is immutable.
type Spec struct {
	ranges []Range
}

// Ranges returns a copy of the ranges of the spec, in expression order.
func (s *Spec) Ranges() []Range {
	return append([]Range(nil), s.ranges...)
}

// Select returns the columns selected in a row of the given width, in output
// order.  Each range contributes its columns that exist in the row in
// ascending order; a range starting after the last column contributes
// nothing.  Columns covered by several ranges are returned once per range.
//
// All returned indices are between 1 and width inclusive.
func (s *Spec) Select(width int) []int {
	var indices []int
	for _, r := range s.ranges {
		first, last := r.Bounds()
		first = max(first, 1)
		last = min(last, width)
		for i := first; i <= last; i++ {
			indices = append(indices, i)
		}
	}
	return indices
}

// String returns the spec in selection expression syntax.
func (s *Spec) String() string {
	items := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		items[i] = r.String()
	}
	return strings.Join(items, ",")
}
