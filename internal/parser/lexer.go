package parser

import "github.com/arnodel/grammar"

// TokeniseItem splits one item of a selection expression (i.e. the text
// between two commas) into tokens.  There is no whitespace token, so spaces
// are a tokenising error.
var TokeniseItem = grammar.SimpleTokeniser([]grammar.TokenDef{
	{
		Name: "int",
		Ptn:  `[0-9]+`,
	},
	{
		Name: "op",
		Ptn:  `-`,
	},
})
