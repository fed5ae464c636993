// Package json outputs rows as JSON values, one per line (JSON lines).
package json

import (
	"github.com/arnodel/csvcut/internal/format"
	"github.com/arnodel/csvcut/selection"
	"github.com/arnodel/csvcut/token"
)

// An Encoder outputs each row it is given as a JSON value on its own line,
// using the given Printer instance for output.
//
// When Objects is false, a row is output as an array of strings, e.g.
//
//	["b","c"]
//
// When Objects is true, the row is paired with a header row and output as an
// object whose keys are the header fields, e.g.
//
//	{"name":"Alice","age":"30"}
type Encoder struct {
	format.Printer
	*format.Colorizer
	Objects bool
}

// Encode outputs one row.  The header is only used when Objects is true.
// Keys and values are paired positionally; extra fields on either side are
// dropped.  If a key occurs more than once, it is output at its first
// position with the value of its last occurrence.
//
// An error is returned if the Printer could not perform some writing
// operation, e.g. because it attempted to write to a closed pipe.
func (e *Encoder) Encode(header, row token.Row) (err error) {
	defer format.CatchPrinterError(&err)
	if e.Objects {
		e.writeObject(mergeDuplicateKeys(selection.Zip(header, row)))
	} else {
		e.writeArray(row)
	}
	e.EndLine()
	return nil
}

func (e *Encoder) writeArray(row token.Row) {
	e.PrintBytes(openArrayBytes)
	for i, field := range row {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
		}
		e.Colorizer.PrintScalar(e.Printer, token.StringScalar(field))
	}
	e.PrintBytes(closeArrayBytes)
}

func (e *Encoder) writeObject(pairs []selection.Pair) {
	e.PrintBytes(openObjectBytes)
	for i, pair := range pairs {
		if i > 0 {
			e.PrintBytes(itemSeparatorBytes)
		}
		e.Colorizer.PrintScalar(e.Printer, token.KeyScalar(pair.Key))
		e.PrintBytes(keyValueSeparatorBytes)
		e.Colorizer.PrintScalar(e.Printer, token.StringScalar(pair.Value))
	}
	e.PrintBytes(closeObjectBytes)
}

func mergeDuplicateKeys(pairs []selection.Pair) []selection.Pair {
	positions := make(map[string]int, len(pairs))
	merged := make([]selection.Pair, 0, len(pairs))
	for _, pair := range pairs {
		if i, ok := positions[pair.Key]; ok {
			merged[i].Value = pair.Value
			continue
		}
		positions[pair.Key] = len(merged)
		merged = append(merged, pair)
	}
	return merged
}

var (
	openObjectBytes        = []byte("{")
	closeObjectBytes       = []byte("}")
	openArrayBytes         = []byte("[")
	closeArrayBytes        = []byte("]")
	itemSeparatorBytes     = []byte(",")
	keyValueSeparatorBytes = []byte(":")
)
