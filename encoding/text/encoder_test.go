package text

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/arnodel/csvcut/internal/format"
	"github.com/arnodel/csvcut/token"
)

func TestEncoder(t *testing.T) {
	tests := []struct {
		name      string
		delimiter rune
		rows      []token.Row
		expected  string
	}{
		{"single column", ',', []token.Row{{"a"}, {"2"}, {"11"}}, "a\n2\n11\n"},
		{"several columns", ',', []token.Row{{"b", "c"}, {"3", "4"}}, "b,c\n3,4\n"},
		{"empty rows", ',', []token.Row{{}, {""}}, "\n\n"},
		{"tab", '\t', []token.Row{{"a", "b"}}, "a\tb\n"},
		{"no requoting", ',', []token.Row{{"a,b", `"c"`}}, "a,b,\"c\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			encoder := &Encoder{Printer: &format.DefaultPrinter{Writer: &b}, Delimiter: tt.delimiter}
			for _, row := range tt.rows {
				if err := encoder.Encode(nil, row); err != nil {
					t.Fatalf("unexpected error: %s", err)
				}
			}
			if b.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, b.String())
			}
		})
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, syscall.EPIPE
}

func TestEncoderBrokenPipe(t *testing.T) {
	encoder := &Encoder{Printer: &format.DefaultPrinter{Writer: brokenPipe{}}, Delimiter: ','}
	err := encoder.Encode(nil, token.Row{"a"})
	if !errors.Is(err, syscall.EPIPE) {
		t.Fatalf("expected EPIPE, got %v", err)
	}
}
