package selection

import "github.com/arnodel/csvcut/token"

// Project returns the fields of row at the given 1-based indices, in the
// order of indices.  Indices outside the row are skipped, so the result may
// be shorter than indices.
func Project(row token.Row, indices []int) token.Row {
	projected := make(token.Row, 0, len(indices))
	for _, i := range indices {
		if i < 1 || i > len(row) {
			continue
		}
		projected = append(projected, row[i-1])
	}
	return projected
}

// Cut returns the selected fields of row.
func (s *Spec) Cut(row token.Row) token.Row {
	return Project(row, s.Select(len(row)))
}

// A Pair associates a header field with a data field.
type Pair struct {
	Key, Value string
}

// Zip pairs keys and values positionally.  If one is longer than the other,
// its extra items are dropped.
func Zip(keys, values token.Row) []Pair {
	n := min(len(keys), len(values))
	pairs := make([]Pair, n)
	for i := range pairs {
		pairs[i] = Pair{Key: keys[i], Value: values[i]}
	}
	return pairs
}
