package csvcut

import (
	"github.com/arnodel/csvcut/encoding/json"
	"github.com/arnodel/csvcut/encoding/text"
	"github.com/arnodel/csvcut/internal/format"
)

// NewEncoder returns the encoder matching the output mode of config: JSON
// objects in JSON header mode, JSON arrays in JSON mode and delimited text
// otherwise.  The colorizer is only used for JSON output and may be nil.
func NewEncoder(config Config, printer format.Printer, colorizer *format.Colorizer) Encoder {
	if config.JSON {
		return &json.Encoder{
			Printer:   printer,
			Colorizer: colorizer,
			Objects:   config.Header,
		}
	}
	return &text.Encoder{
		Printer:   printer,
		Delimiter: config.Delimiter,
	}
}
