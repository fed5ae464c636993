package scanner

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func strScanner(s string, size int) *Scanner {
	return NewScannerSize(strings.NewReader(s), size)
}

func assertReadLine(t *testing.T, s *Scanner, xline string) {
	t.Helper()
	line, err := s.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine: unexpected error %s", err)
	}
	if string(line) != xline {
		t.Fatalf("ReadLine: expected %q, got %q", xline, line)
	}
}

func assertEOF(t *testing.T, s *Scanner) {
	t.Helper()
	line, err := s.ReadLine()
	if err != io.EOF {
		t.Fatalf("ReadLine: expected EOF, got line %q, err %v", line, err)
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{"empty input", "", nil},
		{"single line no newline", "a,b,c", []string{"a,b,c"}},
		{"single line with newline", "a,b,c\n", []string{"a,b,c"}},
		{"several lines", "a,b,c\n2,3,4\n11,12,13\n", []string{"a,b,c", "2,3,4", "11,12,13"}},
		{"crlf", "a,b\r\nc,d\r\n", []string{"a,b", "c,d"}},
		{"empty lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"cr in the middle kept", "a\rb\n", []string{"a\rb"}},
	}
	for _, size := range []int{1, 2, 3, 7, defaultBufSize} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := strScanner(tt.input, size)
				for _, line := range tt.lines {
					assertReadLine(t, s, line)
				}
				assertEOF(t, s)
				assertEOF(t, s)
				if s.LineCount() != len(tt.lines) {
					t.Errorf("LineCount: expected %d, got %d", len(tt.lines), s.LineCount())
				}
			})
		}
	}
}

func TestLongLines(t *testing.T) {
	long := strings.Repeat("0123456789", 100)
	input := long + "\nshort\n" + long + long
	s := strScanner(input, 16)
	assertReadLine(t, s, long)
	assertReadLine(t, s, "short")
	assertReadLine(t, s, long+long)
	assertEOF(t, s)
}

func TestOneByteReader(t *testing.T) {
	s := NewScannerSize(iotest.OneByteReader(strings.NewReader("x,y\nz\n")), 4)
	assertReadLine(t, s, "x,y")
	assertReadLine(t, s, "z")
	assertEOF(t, s)
}

func TestReadError(t *testing.T) {
	errBoom := errors.New("boom")
	s := NewScanner(io.MultiReader(strings.NewReader("a\nb"), iotest.ErrReader(errBoom)))
	assertReadLine(t, s, "a")
	_, err := s.ReadLine()
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom error, got %v", err)
	}
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) {
	return 0, nil
}

func TestNoProgress(t *testing.T) {
	s := NewScanner(emptyReader{})
	_, err := s.ReadLine()
	if err != io.ErrNoProgress {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}
}
