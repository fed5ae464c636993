package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnodel/csvcut/internal/parser"
)

// ErrInvalidSelection matches any error returned by Parse (use errors.Is).
var ErrInvalidSelection = errors.New("invalid selection")

// Reasons for a selection expression to be rejected, found in the Err field
// of a ParseError.
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrEmptyItem       = errors.New("empty item")
	ErrSyntax          = errors.New("expected N, N-, -M or N-M")
	ErrZeroColumn      = errors.New("columns are numbered from 1")
	ErrInvertedRange   = errors.New("range start is after range end")
	ErrColumnTooLarge  = errors.New("column number too large")
)

// A ParseError reports the item of a selection expression that could not be
// parsed.
type ParseError struct {
	Item string // The offending item
	Pos  int    // Position of the item in the expression, starting from 1
	Err  error  // One of the reasons above
}

func (e *ParseError) Error() string {
	if e.Item == "" {
		if e.Pos == 0 {
			return fmt.Sprintf("invalid selection: %s", e.Err)
		}
		return fmt.Sprintf("invalid selection: %s at position %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("invalid selection %q: %s", e.Item, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes all ParseError values match ErrInvalidSelection.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// Parse parses a selection expression.  See the package documentation for
// the syntax.  The returned error is always a *ParseError.
func Parse(expr string) (*Spec, error) {
	if expr == "" {
		return nil, &ParseError{Err: ErrEmptyExpression}
	}
	items := strings.Split(expr, ",")
	ranges := make([]Range, len(items))
	for i, item := range items {
		r, err := parseRange(item)
		if err != nil {
			return nil, &ParseError{Item: item, Pos: i + 1, Err: err}
		}
		ranges[i] = r
	}
	return &Spec{ranges: ranges}, nil
}

// MustParse is like Parse but panics if the expression is invalid.
func MustParse(expr string) *Spec {
	spec, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return spec
}

func parseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, ErrEmptyItem
	}
	item, err := parser.ParseItem(s)
	if err != nil {
		return Range{}, ErrSyntax
	}
	return compileItem(item)
}

func compileItem(item *parser.Item) (Range, error) {
	switch {
	case item.Closed != nil:
		start, err := columnNumber(item.Closed.Start)
		if err != nil {
			return Range{}, err
		}
		end, err := columnNumber(item.Closed.End)
		if err != nil {
			return Range{}, err
		}
		if start > end {
			return Range{}, ErrInvertedRange
		}
		return Range{Kind: Closed, Start: start, End: end}, nil
	case item.LeftBounded != nil:
		start, err := columnNumber(item.LeftBounded.Start)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: LeftBounded, Start: start}, nil
	case item.RightBounded != nil:
		end, err := columnNumber(item.RightBounded.End)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: RightBounded, End: end}, nil
	case item.Single != nil:
		n, err := columnNumber(*item.Single)
		if err != nil {
			return Range{}, err
		}
		return Range{Kind: Single, Start: n}, nil
	default:
		panic("invalid Item")
	}
}

func columnNumber(tok parser.Token) (int, error) {
	// The token only contains digits so the only possible error is overflow.
	n, err := strconv.Atoi(tok.TokValue)
	if err != nil {
		return 0, ErrColumnTooLarge
	}
	if n < 1 {
		return 0, ErrZeroColumn
	}
	return n, nil
}
