/*
File    : gomix-lang/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/span"
)

// parseExpression = assignment-or-binary. Assignment is right-associative
// and sits below every binary operator: "a = b = c" parses as
// Assign(a, Assign(b, c)), and "a = b + c" parses the RHS as a whole
// binary expression before wrapping it in Assign.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseBinary()
	if err != nil {
		return nil, err
	}
	if p.checkSymbol("=") {
		p.advance()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: left, Value: value, Sp: span.Merge(left.Span(), value.Span())}, nil
	}
	return left, nil
}

// parseBinary implements "binary = unary (symbol unary)*", folded
// right-associatively regardless of which symbol appears where — the
// parser never consults precedence. "=" is excluded since it belongs to
// parseExpression's assignment check, not the generic binary chain.
func (p *Parser) parseBinary() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryTail(left)
}

func (p *Parser) parseBinaryTail(left ast.Expr) (ast.Expr, error) {
	if p.cur().Kind != lexer.Symbol || p.cur().Literal == "=" {
		return left, nil
	}
	opTok := p.advance()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	rest, err := p.parseBinaryTail(right)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Op: opTok.Literal, OpSpan: opTok.Span, L: left, R: rest, Sp: span.Merge(left.Span(), rest.Span())}, nil
}

// parseUnary implements "symbol* postfix_chain": every leading Symbol
// token (the lexer already folded any adjacent operator characters into
// one token) becomes its own Unary node wrapping the rest of the chain.
// A leading "|" or "||" is excluded from this generic prefix-operator
// loop and falls through to parsePostfix/parseAtom instead, since those
// symbols open a lambda literal, not a unary operator application.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.cur().Kind == lexer.Symbol && p.cur().Literal != "=" && p.cur().Literal != "|" && p.cur().Literal != "||" {
		opTok := p.advance()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: opTok.Literal, OpSpan: opTok.Span, X: x, Sp: span.Merge(opTok.Span, x.Span())}, nil
	}
	return p.parsePostfix()
}

// parsePostfix implements "postfix_chain = atom ( (args) | [expr] | .ident )*".
func (p *Parser) parsePostfix() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.check(lexer.LParen):
			p.advance()
			args, err := p.parseExprListUntil(lexer.RParen)
			if err != nil {
				return nil, err
			}
			rparen, err := p.expect(lexer.RParen, "')'")
			if err != nil {
				return nil, err
			}
			atom = &ast.Call{Callee: atom, Args: args, Sp: span.Merge(atom.Span(), rparen.Span)}
		case p.check(lexer.LBracket):
			p.advance()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			rbracket, err := p.expect(lexer.RBracket, "']'")
			if err != nil {
				return nil, err
			}
			atom = &ast.Index{Recv: atom, Idx: idx, Sp: span.Merge(atom.Span(), rbracket.Span)}
		case p.checkSymbol("."):
			p.advance()
			fieldTok, err := p.expect(lexer.Identifier, "field name")
			if err != nil {
				return nil, err
			}
			atom = &ast.FieldAccess{Recv: atom, Field: fieldTok.Literal, Sp: span.Merge(atom.Span(), fieldTok.Span)}
		default:
			return atom, nil
		}
	}
}

// parseAtom implements:
//
//	atom = literal | identifier | "(" expr ")" | "(" ")"
//	     | "[" expr_list? "]" | lambda
func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.cur()
	switch tok.Kind {
	case lexer.Int:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			return nil, p.parseErrorAt(tok.Span, "malformed integer literal %q", tok.Literal)
		}
		return &ast.IntLit{Value: int32(v), Sp: tok.Span}, nil
	case lexer.Float:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			return nil, p.parseErrorAt(tok.Span, "malformed float literal %q", tok.Literal)
		}
		return &ast.FloatLit{Value: float32(v), Sp: tok.Span}, nil
	case lexer.KwTrue:
		p.advance()
		return &ast.BoolLit{Value: true, Sp: tok.Span}, nil
	case lexer.KwFalse:
		p.advance()
		return &ast.BoolLit{Value: false, Sp: tok.Span}, nil
	case lexer.String:
		p.advance()
		return &ast.StringLit{Value: tok.Literal, Sp: tok.Span}, nil
	case lexer.Identifier:
		p.advance()
		return &ast.Identifier{Name: tok.Literal, Sp: tok.Span}, nil
	case lexer.LParen:
		return p.parseParenOrUnit()
	case lexer.LBracket:
		return p.parseListLit()
	case lexer.Symbol:
		if tok.Literal == "|" || tok.Literal == "||" {
			return p.parseLambda()
		}
	}
	return nil, p.parseError("unexpected token %q", tok.Literal)
}

func (p *Parser) parseErrorAt(sp span.Span, format string, args ...interface{}) error {
	return diag.New(diag.ParseError, sp, format, args...)
}

func (p *Parser) parseParenOrUnit() (ast.Expr, error) {
	open := p.advance() // '('
	if p.check(lexer.RParen) {
		close := p.advance()
		return &ast.UnitLit{Sp: span.Merge(open.Span, close.Span)}, nil
	}
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	return inner, nil
}

func (p *Parser) parseListLit() (ast.Expr, error) {
	open := p.advance() // '['
	elems, err := p.parseExprListUntil(lexer.RBracket)
	if err != nil {
		return nil, err
	}
	close, err := p.expect(lexer.RBracket, "']'")
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Elems: elems, Sp: span.Merge(open.Span, close.Span)}, nil
}

// parseExprListUntil parses a comma-separated expression list (trailing
// comma allowed) up to but not consuming close.
func (p *Parser) parseExprListUntil(close lexer.Kind) ([]ast.Expr, error) {
	var elems []ast.Expr
	for !p.check(close) {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	return elems, nil
}

// parseLambda implements "|params| (expr|block)". An empty parameter
// list written with no space (e.g. "||expr") lexes as a single "||"
// Symbol token rather than two adjacent "|" tokens — the lexer's
// maximal-munch rule applies to lambda delimiters exactly as it does to
// any other operator run — so that shape is treated as a zero-parameter
// lambda directly, without needing two separate "|" tokens.
func (p *Parser) parseLambda() (ast.Expr, error) {
	if p.checkSymbol("||") {
		open := p.advance()
		body, err := p.parseLambdaBody()
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Params: nil, Body: body, Sp: span.Merge(open.Span, body.Sp)}, nil
	}
	open, err := p.expectSymbol("|")
	if err != nil {
		return nil, err
	}
	var params []string
	for !p.checkSymbol("|") {
		tok, err := p.expect(lexer.Identifier, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, tok.Literal)
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectSymbol("|"); err != nil {
		return nil, err
	}
	body, err := p.parseLambdaBody()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: params, Body: body, Sp: span.Merge(open.Span, body.Sp)}, nil
}

// parseLambdaBody accepts either a block or a single bare expression,
// wrapping the latter in a synthetic one-statement block so evaluation
// (which yields a block's completion from its last statement) treats it
// identically to `{ expr }`.
func (p *Parser) parseLambdaBody() (*ast.Block, error) {
	if p.check(lexer.LBrace) {
		return p.parseBlock()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExprStmt{X: expr, Sp: expr.Span()}
	return &ast.Block{Stmts: []ast.Stmt{stmt}, Sp: expr.Span()}, nil
}
