// Package parser implements the grammar of one item of a column selection
// expression:
//
//	Item         = Closed | LeftBounded | RightBounded | Single ;
//	Closed       = int "-" int ;
//	LeftBounded  = int "-" ;
//	RightBounded = "-" int ;
//	Single       = int ;
//
// Alternatives are tried in order, so "3-5" is Closed rather than
// LeftBounded followed by junk.
package parser

import (
	"errors"

	"github.com/arnodel/grammar"
)

type Token = grammar.SimpleToken

type Item struct {
	grammar.OneOf
	*Closed
	*LeftBounded
	*RightBounded
	Single *Token `tok:"int"`
}

type Closed struct {
	grammar.Seq
	Start Token `tok:"int"`
	Dash  Token `tok:"op,-"`
	End   Token `tok:"int"`
}

type LeftBounded struct {
	grammar.Seq
	Start Token `tok:"int"`
	Dash  Token `tok:"op,-"`
}

type RightBounded struct {
	grammar.Seq
	Dash Token `tok:"op,-"`
	End  Token `tok:"int"`
}

// ParseItem parses the whole of s as an Item.
func ParseItem(s string) (*Item, error) {
	stream, err := TokeniseItem(s)
	if err != nil {
		return nil, err
	}
	var item Item
	if parseErr := grammar.Parse(&item, stream); parseErr != nil {
		return nil, parseErr
	}
	if n := stream.Next(); n != grammar.EOF {
		return nil, ErrTrailingInput
	}
	return &item, nil
}

var ErrTrailingInput = errors.New("trailing input")
