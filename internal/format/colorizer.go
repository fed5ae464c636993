package format

import "github.com/arnodel/csvcut/token"

// A Colorizer surrounds scalars with terminal color codes.  A nil *Colorizer
// is valid and prints scalars without color.
type Colorizer struct {
	KeyColorCode    []byte
	StringColorCode []byte
	ResetCode       []byte
}

func (c *Colorizer) ScalarColorCode(scalar *token.Scalar) []byte {
	if scalar.IsKey() {
		return c.KeyColorCode
	}
	return c.StringColorCode
}

func (c *Colorizer) PrintScalar(p Printer, scalar *token.Scalar) {
	if c != nil {
		p.PrintBytes(c.ScalarColorCode(scalar))
	}
	p.PrintBytes(scalar.Bytes)
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}
