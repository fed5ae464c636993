package csvcut

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/arnodel/csvcut/selection"
)

// ErrInvalidDelimiter is returned when a delimiter cannot be used to split
// lines into fields.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// ErrMissingSelection is returned by Config.Validate when there is no
// selection.
var ErrMissingSelection = errors.New("missing selection")

// Config describes how lines are cut.  It should not be modified once a
// Cutter has been made from it.
type Config struct {
	Delimiter rune            // Field delimiter
	Selection *selection.Spec // Columns to keep
	Header    bool            // The first line gives column names
	JSON      bool            // Output JSON arrays, or objects in header mode
}

// DefaultConfig returns a config with a comma delimiter and no selection.
func DefaultConfig() Config {
	return Config{Delimiter: ','}
}

// Validate checks that the config can be used.
func (c Config) Validate() error {
	if c.Selection == nil {
		return ErrMissingSelection
	}
	return ValidateDelimiter(c.Delimiter)
}

// ValidateDelimiter checks that r can be used as a field delimiter.
func ValidateDelimiter(r rune) error {
	switch r {
	case '"', '\r', '\n', 0:
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, r)
	}
	if !utf8.ValidRune(r) || r == utf8.RuneError {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, r)
	}
	return nil
}

// ParseDelimiter returns the delimiter described by s, which must contain
// exactly one character.
func ParseDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("%w: %q must be a single character", ErrInvalidDelimiter, s)
	}
	if err := ValidateDelimiter(r); err != nil {
		return 0, err
	}
	return r, nil
}
