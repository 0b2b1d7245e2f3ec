// Package parser implements the Quill reader: it parses value-literal
// expressions with method-call chains and evaluates them to objects.
//
// The grammar covers the literal syntax of the value core:
//
//	(,)  (1,)  (1, "two", [3])  [1, 2]  "text"  42  1.5  true  false  nil
//
// plus method calls on any value, such as (1, -1, 99).sort_copy().
package parser

import (
	"context"
	"strconv"
	"strings"

	"github.com/quill-lang/quill/errors"
	"github.com/quill-lang/quill/object"
	"github.com/quill-lang/quill/token"
)

// Option is a configuration function for the parser.
type Option func(*Parser)

// WithFilename associates a filename with the input for error reporting.
func WithFilename(filename string) Option {
	return func(p *Parser) {
		p.filename = filename
	}
}

// WithGlobals supplies named functions that may be called at value
// position, such as sorted(...) or len(...).
func WithGlobals(globals map[string]object.Object) Option {
	return func(p *Parser) {
		p.globals = globals
	}
}

// Parser evaluates reader input against the object system.
type Parser struct {
	lexer    *Lexer
	filename string
	globals  map[string]object.Object
	curToken token.Token
}

// New creates a parser for the given input text.
func New(input string, opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.lexer = NewLexer(input, p.filename)
	p.curToken = p.lexer.Next()
	return p
}

// Evaluate parses and evaluates a single reader expression. The entire
// input must be consumed; trailing tokens are a syntax error.
func Evaluate(ctx context.Context, input string, opts ...Option) (object.Object, error) {
	p := New(input, opts...)
	obj, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.EOF {
		return nil, p.syntaxErrorf("unexpected %q after expression", p.curToken.Literal)
	}
	return obj, nil
}

func (p *Parser) next() {
	p.curToken = p.lexer.Next()
}

func (p *Parser) expect(t token.Type) error {
	if p.curToken.Type != t {
		if p.curToken.Type == token.EOF {
			return p.syntaxErrorf("unexpected end of input (expected %q)", string(t))
		}
		return p.syntaxErrorf("expected %q (got %q)", string(t), p.curToken.Literal)
	}
	p.next()
	return nil
}

func (p *Parser) location() errors.SourceLocation {
	return errors.SourceLocation{
		Filename: p.filename,
		Line:     p.curToken.StartPosition.LineNumber(),
		Column:   p.curToken.StartPosition.ColumnNumber(),
		Source:   p.lexer.LineText(p.curToken),
	}
}

func (p *Parser) syntaxErrorf(format string, args ...interface{}) error {
	return errors.SyntaxErrorf(p.location(), format, args...)
}

// parseExpr parses a value followed by zero or more method calls.
func (p *Parser) parseExpr(ctx context.Context) (object.Object, error) {
	obj, err := p.parseValue(ctx)
	if err != nil {
		return nil, err
	}
	for p.curToken.Type == token.PERIOD {
		p.next()
		obj, err = p.parseMethodCall(ctx, obj)
		if err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (p *Parser) parseMethodCall(ctx context.Context, receiver object.Object) (object.Object, error) {
	if p.curToken.Type != token.IDENT {
		return nil, p.syntaxErrorf("expected a method name (got %q)", p.curToken.Literal)
	}
	name := p.curToken.Literal
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []object.Object
	for p.curToken.Type != token.RPAREN {
		arg, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curToken.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	method, ok := receiver.GetAttr(name)
	if !ok {
		return nil, errors.TypeErrorf("%s has no method %q", receiver.Type(), name)
	}
	callable, ok := method.(object.Callable)
	if !ok {
		return nil, errors.TypeErrorf("%s.%s is not callable", receiver.Type(), name)
	}
	return callable.Call(ctx, args...)
}

// parseGlobalCall parses a call to a named global function, e.g. len(x).
func (p *Parser) parseGlobalCall(ctx context.Context) (object.Object, error) {
	name := p.curToken.Literal
	nameLoc := p.location()
	p.next()
	if p.curToken.Type != token.LPAREN {
		return nil, errors.SyntaxErrorf(nameLoc, "unexpected identifier %q", name)
	}
	p.next()
	var args []object.Object
	for p.curToken.Type != token.RPAREN {
		arg, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curToken.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	fn, ok := p.globals[name]
	if !ok {
		return nil, errors.EvalErrorf("undefined function: %s", name)
	}
	callable, ok := fn.(object.Callable)
	if !ok {
		return nil, errors.TypeErrorf("%s is not callable", name)
	}
	return callable.Call(ctx, args...)
}

func (p *Parser) parseValue(ctx context.Context) (object.Object, error) {
	switch p.curToken.Type {
	case token.INT:
		return p.parseInt(false)
	case token.FLOAT:
		return p.parseFloat(false)
	case token.MINUS:
		return p.parseNegativeNumber()
	case token.STRING:
		lit := p.curToken.Literal
		p.next()
		return object.NewString(lit), nil
	case token.TRUE:
		p.next()
		return object.True, nil
	case token.FALSE:
		p.next()
		return object.False, nil
	case token.NIL:
		p.next()
		return object.Nil, nil
	case token.IDENT:
		return p.parseGlobalCall(ctx)
	case token.LBRACKET:
		return p.parseList(ctx)
	case token.LPAREN:
		return p.parseTupleOrGroup(ctx)
	case token.EOF:
		return nil, p.syntaxErrorf("unexpected end of input")
	default:
		return nil, p.syntaxErrorf("unexpected token %q", p.curToken.Literal)
	}
}

func (p *Parser) parseInt(negative bool) (object.Object, error) {
	lit := p.curToken.Literal
	var value int64
	var err error
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		value, err = strconv.ParseInt(lit[2:], 16, 64)
	} else {
		value, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		return nil, p.syntaxErrorf("invalid integer: %s", lit)
	}
	p.next()
	if negative {
		value = -value
	}
	return object.NewInt(value), nil
}

func (p *Parser) parseFloat(negative bool) (object.Object, error) {
	lit := p.curToken.Literal
	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.syntaxErrorf("invalid float: %s", lit)
	}
	p.next()
	if negative {
		value = -value
	}
	return object.NewFloat(value), nil
}

func (p *Parser) parseNegativeNumber() (object.Object, error) {
	p.next() // consume "-"
	switch p.curToken.Type {
	case token.INT:
		return p.parseInt(true)
	case token.FLOAT:
		return p.parseFloat(true)
	default:
		return nil, p.syntaxErrorf("expected a number after \"-\" (got %q)", p.curToken.Literal)
	}
}

func (p *Parser) parseList(ctx context.Context) (object.Object, error) {
	p.next() // consume "["
	var items []object.Object
	for p.curToken.Type != token.RBRACKET {
		item, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.curToken.Type == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return object.NewList(items), nil
}

// parseTupleOrGroup handles the shared "(" syntax of tuples and grouping:
//
//	(,)        the empty tuple
//	(1)        the value 1 (grouping, not a tuple)
//	(1,)       a one-element tuple
//	(1, 2)     a two-element tuple
//	(1, 2,)    trailing comma allowed
func (p *Parser) parseTupleOrGroup(ctx context.Context) (object.Object, error) {
	p.next() // consume "("

	// The empty tuple is written (,)
	if p.curToken.Type == token.COMMA {
		p.next()
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return object.NewEmptyTuple(), nil
	}
	if p.curToken.Type == token.RPAREN {
		return nil, p.syntaxErrorf("the empty tuple is written (,)")
	}

	first, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	// A parenthesized value without a comma is the value itself
	if p.curToken.Type == token.RPAREN {
		p.next()
		return first, nil
	}

	items := []object.Object{first}
	for p.curToken.Type == token.COMMA {
		p.next()
		if p.curToken.Type == token.RPAREN {
			break // trailing comma
		}
		item, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return object.NewTuple(items), nil
}
