/*
File    : gomix-lang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an ast.Program. It is
// deliberately shape-blind to operator precedence: every Binary node it
// emits is a uniformly right-associative spine at one precedence, per
// §4.2 — the fixity table it builds along the way (from infixl/infixr
// declarations) is only consumed later, by package reassoc.
//
// Unlike the teacher's go-mix parser, which is a classic Pratt parser
// consulting a precedence table while it parses, this parser never
// consults precedence at all: the table is an output, not an input.
package parser

import (
	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/span"
)

// Parser consumes a fixed token slice (already produced by the lexer) and
// builds one ast.Program plus the FixityTable accumulated from any
// infixl/infixr declarations it encounters.
type Parser struct {
	toks   []lexer.Token
	pos    int
	fixity *ast.FixityTable
}

// New wraps a token stream (as returned by lexer.Tokenize, which omits the
// trailing EOF token) ready for parsing.
func New(toks []lexer.Token) *Parser {
	buf := make([]lexer.Token, len(toks), len(toks)+1)
	copy(buf, toks)
	var eofSpan span.Span
	if len(toks) > 0 {
		eofSpan = toks[len(toks)-1].Span
	}
	buf = append(buf, lexer.Token{Kind: lexer.EOF, Literal: "", Span: eofSpan})
	return &Parser{toks: buf, fixity: ast.NewFixityTable()}
}

// Parse consumes the whole token stream and returns the program together
// with the fixity table built while parsing. It aborts with the first
// diag.Error encountered, per the pipeline's single-error-per-pass policy.
func (p *Parser) Parse() (*ast.Program, *ast.FixityTable, error) {
	start := p.cur().Span
	var stmts []ast.Stmt
	for !p.check(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, nil, err
		}
		stmts = append(stmts, stmt)
	}
	end := start
	if len(stmts) > 0 {
		end = stmts[len(stmts)-1].Span()
	}
	return &ast.Program{Stmts: stmts, Sp: span.Merge(start, end)}, p.fixity, nil
}

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) check(k lexer.Kind) bool {
	return p.cur().Kind == k
}

func (p *Parser) checkSymbol(lit string) bool {
	t := p.cur()
	return t.Kind == lexer.Symbol && t.Literal == lit
}

func (p *Parser) parseError(format string, args ...interface{}) error {
	return diag.New(diag.ParseError, p.cur().Span, format, args...)
}

func (p *Parser) expect(k lexer.Kind, what string) (lexer.Token, error) {
	if !p.check(k) {
		return lexer.Token{}, p.parseError("expected %s, found %q", what, p.cur().Literal)
	}
	return p.advance(), nil
}

// expectSymbol consumes a Symbol token whose literal is exactly lit (used
// for "=" and the lambda "|" delimiter).
func (p *Parser) expectSymbol(lit string) (lexer.Token, error) {
	if !p.checkSymbol(lit) {
		return lexer.Token{}, p.parseError("expected %q, found %q", lit, p.cur().Literal)
	}
	return p.advance(), nil
}

func (p *Parser) expectSemicolon() error {
	_, err := p.expect(lexer.Semicolon, "';'")
	return err
}
