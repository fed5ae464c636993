package csv

import (
	"io"

	"github.com/arnodel/csvcut/internal/scanner"
	"github.com/arnodel/csvcut/token"
)

// A Reader reads rows from delimited text input, one row per line.
type Reader struct {
	scanner   *scanner.Scanner
	Delimiter rune // Field delimiter, ',' by default
}

// NewReader sets up a new Reader instance to read from the given input.
func NewReader(in io.Reader) *Reader {
	return &Reader{
		scanner:   scanner.NewScanner(in),
		Delimiter: ',',
	}
}

// Read returns the next row of input.  It returns io.EOF when there are no
// more lines.  Errors from the underlying reader are returned unchanged.
func (r *Reader) Read() (token.Row, error) {
	line, err := r.scanner.ReadLine()
	if err != nil {
		return nil, err
	}
	return Tokenize(string(line), r.Delimiter), nil
}

// Line returns the number of lines read so far, which is also the line
// number of the last row returned by Read.
func (r *Reader) Line() int {
	return r.scanner.LineCount()
}
