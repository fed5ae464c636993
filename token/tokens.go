package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// A Row is the sequence of fields read from one line of input, in column
// order.  Columns are addressed from 1 in selection expressions, so the
// field of column n is row[n-1].
type Row []string

// Width returns the number of fields in the row.
func (r Row) Width() int {
	return len(r)
}

// Join returns the fields separated by the given delimiter.  No quoting is
// applied, so a field containing the delimiter is output verbatim.
func (r Row) Join(delimiter rune) string {
	return strings.Join(r, string(delimiter))
}

func (r Row) String() string {
	return fmt.Sprintf("Row%q", []string(r))
}

// Scalar is the encoded form of a field ready to be output as a JSON string.
//
// Since no type inference is done on fields, all scalars are strings.  The
// Bytes field contains the JSON literal including the quotes, e.g. the field
// foo"bar is represented as []byte(`"foo\"bar"`).
type Scalar struct {
	Bytes []byte

	// Flags (only KeyMask for now)
	Flags uint8
}

const (
	KeyMask = 0b001
)

// IsKey is true if the scalar is used as the key in a JSON object.
func (s *Scalar) IsKey() bool {
	return KeyMask&s.Flags != 0
}

func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%s)", s.Bytes)
}

// ToString decodes the JSON literal back into the field it represents.
func (s *Scalar) ToString() string {
	var str string
	if err := json.Unmarshal(s.Bytes, &str); err != nil {
		panic(err)
	}
	return str
}

// StringScalar encodes a field as a JSON string.  Quotes, backslashes and
// control characters are escaped, HTML characters are left alone.
func StringScalar(s string) *Scalar {
	return &Scalar{Bytes: encodeString(s)}
}

// KeyScalar is like StringScalar but marks the scalar as an object key.
func KeyScalar(s string) *Scalar {
	return &Scalar{Bytes: encodeString(s), Flags: KeyMask}
}

func encodeString(s string) []byte {
	var b bytes.Buffer
	encoder := json.NewEncoder(&b)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		panic(err)
	}
	var encodedBytes = b.Bytes()
	// Remove the new line at the end
	return encodedBytes[:len(encodedBytes)-1]
}
