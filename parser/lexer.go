package parser

import (
	"strings"
	"unicode"

	"github.com/quill-lang/quill/token"
)

// Lexer turns reader input into a stream of tokens.
type Lexer struct {
	input    []rune
	filename string
	pos      int // index of the current rune
	line     int // 0-based line of the current rune
	column   int // 0-based column of the current rune
}

// NewLexer creates a lexer for the given input text.
func NewLexer(input string, filename string) *Lexer {
	return &Lexer{input: []rune(input), filename: filename}
}

// Filename returns the name associated with the input, if any.
func (l *Lexer) Filename() string {
	return l.filename
}

// LineText returns the text of the line containing the given token.
func (l *Lexer) LineText(tok token.Token) string {
	lines := strings.Split(string(l.input), "\n")
	if tok.StartPosition.Line < len(lines) {
		return lines[tok.StartPosition.Line]
	}
	return ""
}

func (l *Lexer) position() token.Position {
	return token.Position{
		Char:   l.pos,
		Line:   l.line,
		Column: l.column,
		File:   l.filename,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() rune {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// Next returns the next token in the input. At the end of input it returns
// an EOF token; it never blocks or fails.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()
	start := l.position()

	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, StartPosition: start, EndPosition: start}
	}

	ch := l.peek()
	switch ch {
	case '(', ')', '[', ']', ',', '.', '-':
		l.advance()
		return token.Token{
			Type:          token.Type(string(ch)),
			Literal:       string(ch),
			StartPosition: start,
			EndPosition:   l.position(),
		}
	case '"', '\'':
		return l.readString(start)
	}

	if unicode.IsDigit(ch) {
		return l.readNumber(start)
	}
	if isIdentStart(ch) {
		return l.readIdentifier(start)
	}

	l.advance()
	return token.Token{
		Type:          token.ILLEGAL,
		Literal:       string(ch),
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readString(start token.Position) token.Token {
	quote := l.advance()
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.advance()
		if ch == quote {
			return token.Token{
				Type:          token.STRING,
				Literal:       sb.String(),
				StartPosition: start,
				EndPosition:   l.position(),
			}
		}
		if ch == '\\' && l.pos < len(l.input) {
			esc := l.advance()
			switch esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '\\', '"', '\'':
				sb.WriteRune(esc)
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
			continue
		}
		sb.WriteRune(ch)
	}
	// Unterminated string
	return token.Token{
		Type:          token.ILLEGAL,
		Literal:       sb.String(),
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readNumber(start token.Position) token.Token {
	var sb strings.Builder
	tokType := token.Type(token.INT)
	if l.peek() == '0' {
		sb.WriteRune(l.advance())
		if l.peek() == 'x' || l.peek() == 'X' {
			sb.WriteRune(l.advance())
			for l.pos < len(l.input) && isHexDigit(l.peek()) {
				sb.WriteRune(l.advance())
			}
			return token.Token{
				Type:          token.INT,
				Literal:       sb.String(),
				StartPosition: start,
				EndPosition:   l.position(),
			}
		}
	}
	for l.pos < len(l.input) && unicode.IsDigit(l.peek()) {
		sb.WriteRune(l.advance())
	}
	if l.pos < len(l.input) && l.peek() == '.' {
		// A period only belongs to the number if a digit follows; otherwise
		// it starts a method call like (1).size()
		if l.pos+1 < len(l.input) && unicode.IsDigit(l.input[l.pos+1]) {
			tokType = token.FLOAT
			sb.WriteRune(l.advance())
			for l.pos < len(l.input) && unicode.IsDigit(l.peek()) {
				sb.WriteRune(l.advance())
			}
		}
	}
	if l.pos < len(l.input) && (l.peek() == 'e' || l.peek() == 'E') {
		tokType = token.FLOAT
		sb.WriteRune(l.advance())
		if l.peek() == '+' || l.peek() == '-' {
			sb.WriteRune(l.advance())
		}
		for l.pos < len(l.input) && unicode.IsDigit(l.peek()) {
			sb.WriteRune(l.advance())
		}
	}
	return token.Token{
		Type:          tokType,
		Literal:       sb.String(),
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func (l *Lexer) readIdentifier(start token.Position) token.Token {
	var sb strings.Builder
	for l.pos < len(l.input) && isIdentPart(l.peek()) {
		sb.WriteRune(l.advance())
	}
	literal := sb.String()
	return token.Token{
		Type:          token.LookupIdentifier(literal),
		Literal:       literal,
		StartPosition: start,
		EndPosition:   l.position(),
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isHexDigit(ch rune) bool {
	return unicode.IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
