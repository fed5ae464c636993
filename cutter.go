package csvcut

import (
	"errors"
	"io"
	"log"

	"github.com/arnodel/csvcut/internal/debug"
	"github.com/arnodel/csvcut/selection"
	"github.com/arnodel/csvcut/token"
)

// A RowReader produces rows, returning io.EOF when there are no more.
type RowReader interface {
	Read() (token.Row, error)
}

// An Encoder outputs a projected row.  In header mode, header is the
// projected header row, otherwise it is nil.
type Encoder interface {
	Encode(header, row token.Row) error
}

// State is the state of a Cutter.
type State uint8

const (
	AwaitingHeader State = iota // The next row is the header
	Streaming                   // Every row is cut and encoded
)

func (s State) String() string {
	switch s {
	case AwaitingHeader:
		return "awaiting header"
	case Streaming:
		return "streaming"
	default:
		return "unknown"
	}
}

// Stats counts what a Cutter has done so far.
type Stats struct {
	Lines  int       // Rows fed to the cutter, including the header
	Rows   int       // Rows encoded
	Header token.Row // The header row, if one has been read
}

// A Cutter applies a Config to a stream of rows.
type Cutter struct {
	config  Config
	encoder Encoder
	state   State
	header  token.Row
	stats   Stats

	// If not nil, each row and its projection are logged to Trace.
	Trace *log.Logger
}

// NewCutter returns a Cutter which sends its output to encoder.
func NewCutter(config Config, encoder Encoder) (*Cutter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	state := Streaming
	if config.Header {
		state = AwaitingHeader
	}
	return &Cutter{
		config:  config,
		encoder: encoder,
		state:   state,
	}, nil
}

// State returns the current state of the cutter.
func (c *Cutter) State() State {
	return c.state
}

// Stats returns counts of lines read and rows output so far.
func (c *Cutter) Stats() Stats {
	stats := c.stats
	stats.Header = c.header
	return stats
}

// Feed processes one row.  The first row in header mode is kept as the
// header, every other row is cut and encoded.
func (c *Cutter) Feed(row token.Row) error {
	c.stats.Lines++
	if c.state == AwaitingHeader {
		c.header = row
		c.state = Streaming
		debug.Printf("header %v, now %s", row, c.state)
		c.tracef("header: %v", row)
		return nil
	}
	header, projected := c.project(row)
	c.tracef("line %d: %v -> %v", c.stats.Lines, row, projected)
	if err := c.encoder.Encode(header, projected); err != nil {
		return err
	}
	c.stats.Rows++
	return nil
}

// Run feeds all the rows from r to the cutter.  It stops at the first error
// from r or the encoder, which it returns.  Reaching the end of r is not an
// error.
func (c *Cutter) Run(r RowReader) error {
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			debug.Printf("end of input after %d lines", c.stats.Lines)
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Feed(row); err != nil {
			return err
		}
	}
}

func (c *Cutter) project(row token.Row) (header, projected token.Row) {
	sel := c.config.Selection
	if !c.config.Header {
		return nil, sel.Cut(row)
	}
	if !c.config.JSON {
		return sel.Cut(c.header), sel.Cut(row)
	}
	// Header and row are projected with the same indices so that keys and
	// values stay aligned.
	indices := sel.Select(min(len(c.header), len(row)))
	return selection.Project(c.header, indices), selection.Project(row, indices)
}

func (c *Cutter) tracef(format string, args ...any) {
	if c.Trace != nil {
		c.Trace.Printf(format, args...)
	}
}
