// Package text outputs rows as delimited text.
package text

import (
	"github.com/arnodel/csvcut/internal/format"
	"github.com/arnodel/csvcut/token"
)

// An Encoder outputs each row on its own line, with fields separated by
// Delimiter.  Fields are output as they are, without quoting, even if they
// contain the delimiter.
type Encoder struct {
	format.Printer
	Delimiter rune
}

// Encode outputs one row.  The header is not used.
func (e *Encoder) Encode(header, row token.Row) (err error) {
	defer format.CatchPrinterError(&err)
	e.PrintBytes([]byte(row.Join(e.Delimiter)))
	e.EndLine()
	return nil
}
