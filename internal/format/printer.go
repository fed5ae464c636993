// Package format contains the output primitives shared by the encoders.
package format

import (
	"fmt"
	"io"
)

// The Printer interface is used by encoders to output records, one per line.
//
// PrintBytes() outputs bytes on the current line
// EndLine() terminates the current line
//
// The methods do not return an error because for this program it's assumed
// to be an exceptional case that outputting results in an error and the only
// sensible outcome is to stop the program.
// Instead, implementations are expected to panic with a *PrinterError when
// they encounter an error.  A user of the Printer interface can use
//
//	func printingFunction(p Printer) (err error) {
//	    defer CatchPrinterError(&err)
//	    return doSomePrinting(p)
//	}
//
// to capture such errors.
type Printer interface {
	PrintBytes([]byte)
	EndLine()
}

// CatchPrinterError can be used to capture panics caused by a Printer because
// of an error encountered while attempting to send output.  See the Printer
// interface documentation for details.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while a Printer implementation
// was sending some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// A Flusher is typically a *bufio.Writer.
type Flusher interface {
	Flush() error
}

// DefaultPrinter implements a Printer which uses an io.Writer to send output.
// If Flusher is not nil, it is flushed at the end of each line so that output
// is visible straight away (useful when writing to a terminal).
type DefaultPrinter struct {
	io.Writer
	Flusher Flusher
}

var _ Printer = &DefaultPrinter{}

// PrintBytes sends the given bytes verbatim to the printer's writer.
func (p *DefaultPrinter) PrintBytes(b []byte) {
	_, err := p.Write(b)
	if err != nil {
		panic(wrapError(err))
	}
}

// EndLine outputs '\n' and flushes the output if there is a Flusher.
func (p *DefaultPrinter) EndLine() {
	_, err := p.Write(newLineBytes)
	if err != nil {
		panic(wrapError(err))
	}
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			panic(wrapError(err))
		}
	}
}

func wrapError(err error) *PrinterError {
	return &PrinterError{Err: err}
}

var newLineBytes = []byte{'\n'}
