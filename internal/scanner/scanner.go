// Package scanner reads input one line at a time through a fixed size
// buffer.
package scanner

import (
	"bytes"
	"io"
	"slices"
)

// A Scanner splits the input of an io.Reader into lines.  It differs from
// bufio.Scanner in that lines are not limited in size: a line that does not
// fit in the buffer is assembled from the parts that had to be evicted.
type Scanner struct {
	reader io.Reader
	buf    []byte

	// The first unfilled position in buf
	// 0 <= fillIndex <= len(buf)
	fillIndex int

	// Current position in buf
	// 0 <= currentIndex <= fillIndex
	currentIndex int

	// Position in buf of the start of the line being read.
	// -1 means not reading a line
	// 0 means there may be line parts no longer in the buffer
	// lineStartIndex <= currentIndex
	lineStartIndex int

	// Parts of a line that no longer fit in the read buffer.
	lineParts [][]byte

	// Number of lines returned so far
	lineCount int

	err error
}

func NewScanner(reader io.Reader) *Scanner {
	return NewScannerSize(reader, defaultBufSize)
}

func NewScannerSize(reader io.Reader, size int) *Scanner {
	return &Scanner{
		reader:         reader,
		buf:            make([]byte, size),
		lineStartIndex: -1,
	}
}

// ReadLine returns the next line of input, without the terminating "\n" and
// without a "\r" preceding it.  The last line does not need to be
// terminated.  When the input is exhausted, it returns io.EOF.  Other errors
// from the underlying reader are returned as they are.
//
// The returned slice is owned by the caller.
func (s *Scanner) ReadLine() ([]byte, error) {
	s.startLine()
	for {
		if i := bytes.IndexByte(s.buf[s.currentIndex:s.fillIndex], '\n'); i >= 0 {
			s.currentIndex += i
			line := s.endLine()
			s.currentIndex++
			s.lineCount++
			return trimCR(line), nil
		}
		s.currentIndex = s.fillIndex
		if s.err != nil {
			break
		}
		s.fillBuf()
	}
	line := s.endLine()
	if s.err != io.EOF {
		return nil, s.err
	}
	if len(line) == 0 {
		return nil, io.EOF
	}
	s.lineCount++
	return trimCR(line), nil
}

// LineCount returns how many lines have been returned by ReadLine.
func (s *Scanner) LineCount() int {
	return s.lineCount
}

func (s *Scanner) fillBuf() {
	if s.fillIndex == len(s.buf) {
		var baseIndex int
		switch {
		case s.lineStartIndex > 0:
			// Shift the buffer so the line remains wholly in it.
			baseIndex = s.lineStartIndex
			s.lineStartIndex = 0
		case s.lineStartIndex == 0:
			// The line takes the whole buffer, set the scanned part aside.
			s.lineParts = append(s.lineParts, slices.Clone(s.buf[:s.currentIndex]))
			baseIndex = s.currentIndex
		default:
			baseIndex = s.currentIndex
		}
		if baseIndex > 0 {
			copy(s.buf, s.buf[baseIndex:s.fillIndex])
			s.fillIndex -= baseIndex
			s.currentIndex -= baseIndex
		}
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := s.reader.Read(s.buf[s.fillIndex:])
		s.fillIndex += n
		if err != nil {
			s.err = err
			return
		}
		if n > 0 {
			return
		}
	}
	s.err = io.ErrNoProgress
}

func (s *Scanner) startLine() {
	if s.lineStartIndex >= 0 {
		panic("already reading a line")
	}
	s.lineStartIndex = s.currentIndex
}

func (s *Scanner) endLine() []byte {
	if s.lineStartIndex < 0 {
		panic("not reading a line")
	}
	if s.lineParts == nil {
		lineBytes := slices.Clone(s.buf[s.lineStartIndex:s.currentIndex])
		s.lineStartIndex = -1
		return lineBytes
	}
	// Precalculate the size of the line so it doesn't have to be grown mid-concatenation
	lineLen := s.currentIndex - s.lineStartIndex
	for _, p := range s.lineParts {
		lineLen += len(p)
	}
	lineBytes := make([]byte, 0, lineLen)
	for _, p := range s.lineParts {
		lineBytes = append(lineBytes, p...)
	}
	lineBytes = append(lineBytes, s.buf[s.lineStartIndex:s.currentIndex]...)
	s.lineStartIndex = -1
	s.lineParts = nil
	return lineBytes
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

const (
	maxConsecutiveEmptyReads = 100
	defaultBufSize           = 8192
)
