// Package csvcut selects columns from lines of delimited text.
//
// Each input line is split into fields, the fields named by a selection
// expression are kept, and the result is output either as delimited text
// or as a JSON value:
//
//    read line -> tokenize -> project -> encode
//
// A selection expression is a comma separated list of 1-based column
// numbers and ranges, e.g. "1,3-5,8-".  See the selection package for the
// details.
//
// In header mode the first line gives the column names.  It is never output
// itself, but in JSON mode it supplies the keys of the objects output for
// each following line.
//
// Rows are processed one at a time, so memory usage does not grow with the
// size of the input and output is available straight away.
//
// The CLI utility is in the directory cmd/csvcut. You can install it with:
//
//	go install github.com/arnodel/csvcut/cmd/csvcut
package csvcut
