// Package token defines the tokens produced when lexing reader input.
package token

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char   int
	Line   int
	Column int
	File   string
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// Token represents one token lexed from the input source text.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	COMMA    = ","
	EOF      = "EOF"
	FALSE    = "FALSE"
	FLOAT    = "FLOAT"
	IDENT    = "IDENT"
	ILLEGAL  = "ILLEGAL"
	INT      = "INT"
	LBRACKET = "["
	LPAREN   = "("
	MINUS    = "-"
	NIL      = "NIL"
	PERIOD   = "."
	RBRACKET = "]"
	RPAREN   = ")"
	STRING   = "STRING"
	TRUE     = "TRUE"
)

// Reserved keywords
var keywords = map[string]Type{
	"false": FALSE,
	"nil":   NIL,
	"true":  TRUE,
}

// LookupIdentifier is used to determine whether an identifier is a keyword.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
