// Package csv splits lines of delimited text into rows of fields.
//
// The quoting rules are deliberately simpler than RFC 4180:
//
//   - a field starting with a double quote is quoted, the quotes are not
//     part of the field and delimiters inside them do not end the field;
//   - the first double quote after the opening one closes the quoted part
//     (there is no "" escape);
//   - a double quote in the middle of a field is an ordinary character;
//   - a quoted field which is not closed extends to the end of the line.
//
// Fields never span several lines.
package csv

import (
	"strings"
	"unicode/utf8"

	"github.com/arnodel/csvcut/token"
)

const quote = '"'

// Tokenize splits a line into fields separated by delimiter.  The number of
// fields is always one more than the number of delimiters outside quotes, so
// an empty line is a row containing one empty field.
//
// Tokenize never fails: malformed quoting is accepted as described in the
// package documentation.
func Tokenize(line string, delimiter rune) token.Row {
	var (
		row      = make(token.Row, 0, strings.Count(line, string(delimiter))+1)
		field    strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); {
		// Invalid UTF-8 bytes decode as width 1 and are copied unchanged.
		r, width := utf8.DecodeRuneInString(line[i:])
		switch {
		case inQuotes:
			if r == quote {
				inQuotes = false
			} else {
				field.WriteString(line[i : i+width])
			}
		case r == delimiter:
			row = append(row, field.String())
			field.Reset()
		case r == quote && field.Len() == 0:
			inQuotes = true
		default:
			field.WriteString(line[i : i+width])
		}
		i += width
	}
	return append(row, field.String())
}
