/*
File    : gomix-lang/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/span"
)

func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.cur().Kind {
	case lexer.KwLet:
		return p.parseLet()
	case lexer.KwFun:
		return p.parseFunDecl(nil, false)
	case lexer.KwInfixl, lexer.KwInfixr:
		return p.parseFixedFunDecl()
	case lexer.KwStruct:
		return p.parseStructDecl()
	case lexer.KwImpl:
		return p.parseImplBlock()
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwBreak:
		tok := p.advance()
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		return &ast.Break{Sp: tok.Span}, nil
	case lexer.KwContinue:
		tok := p.advance()
		if err := p.expectSemicolon(); err != nil {
			return nil, err
		}
		return &ast.Continue{Sp: tok.Span}, nil
	case lexer.LBrace:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLet() (ast.Stmt, error) {
	start := p.advance().Span // 'let'
	nameTok, err := p.expect(lexer.Identifier, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectSymbol("="); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.Let{Name: nameTok.Literal, Init: init, Sp: span.Merge(start, init.Span())}, nil
}

// parseFixedFunDecl parses `infixl <prec> fun <symbol>(<params>) <block>`
// or the infixr equivalent — the only place a DeclaredFixity prefix can
// appear in the grammar.
func (p *Parser) parseFixedFunDecl() (ast.Stmt, error) {
	assocTok := p.advance() // KwInfixl or KwInfixr
	assoc := ast.Left
	if assocTok.Kind == lexer.KwInfixr {
		assoc = ast.Right
	}
	precTok, err := p.expect(lexer.Int, "precedence literal")
	if err != nil {
		return nil, err
	}
	prec, convErr := strconv.Atoi(precTok.Literal)
	if convErr != nil {
		return nil, p.parseError("malformed precedence literal %q", precTok.Literal)
	}
	fixity := &ast.DeclaredFixity{Assoc: assoc, Precedence: prec}
	fd, err := p.parseFunDecl(fixity, false)
	if err != nil {
		return nil, err
	}
	fd.Sp = span.Merge(assocTok.Span, fd.Sp)
	return fd, nil
}

// parseFunDecl parses `fun <name>(<params>) <block>`. name may be an
// Identifier or a Symbol token — only the latter may carry a non-nil
// fixityPrefix, and only outside impl blocks: operators are not supported
// as struct methods (isMethod==true rejects a Symbol name outright).
func (p *Parser) parseFunDecl(fixityPrefix *ast.DeclaredFixity, isMethod bool) (*ast.FunDecl, error) {
	start := p.cur().Span
	if _, err := p.expect(lexer.KwFun, "'fun'"); err != nil {
		return nil, err
	}
	nameTok := p.cur()
	if nameTok.Kind != lexer.Identifier && nameTok.Kind != lexer.Symbol {
		return nil, p.parseError("expected function name, found %q", nameTok.Literal)
	}
	p.advance()
	if isMethod && nameTok.Kind == lexer.Symbol {
		return nil, p.parseError("operators are not supported as struct methods")
	}
	if fixityPrefix != nil && nameTok.Kind != lexer.Symbol {
		return nil, p.parseError("infixl/infixr may only prefix an operator (symbol) function name, not %q", nameTok.Literal)
	}
	if _, err := p.expect(lexer.LParen, "'('"); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if fixityPrefix != nil {
		if declErr := p.fixity.Declare(nameTok.Literal, fixityPrefix.Precedence, fixityPrefix.Assoc); declErr != nil {
			return nil, p.parseError("%s", declErr.Error())
		}
	}
	return &ast.FunDecl{
		Name:     nameTok.Literal,
		Params:   params,
		Body:     body,
		Fixity:   fixityPrefix,
		IsMethod: isMethod,
		Sp:       span.Merge(start, body.Sp),
	}, nil
}

func (p *Parser) parseParamList() ([]string, error) {
	var params []string
	for !p.check(lexer.RParen) {
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
	return params, nil
}

func (p *Parser) parseStructDecl() (ast.Stmt, error) {
	start := p.advance().Span // 'struct'
	nameTok, err := p.expect(lexer.Identifier, "struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var fields []string
	for !p.check(lexer.RBrace) {
		tok, err := p.expect(lexer.Identifier, "field name")
		if err != nil {
			return nil, err
		}
		fields = append(fields, tok.Literal)
		if p.check(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return &ast.StructDecl{Name: nameTok.Literal, Fields: fields, Sp: span.Merge(start, end.Span)}, nil
}

func (p *Parser) parseImplBlock() (ast.Stmt, error) {
	start := p.advance().Span // 'impl'
	nameTok, err := p.expect(lexer.Identifier, "struct name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBrace, "'{'"); err != nil {
		return nil, err
	}
	var methods []*ast.FunDecl
	for !p.check(lexer.RBrace) {
		if p.check(lexer.KwInfixl) || p.check(lexer.KwInfixr) {
			return nil, p.parseError("operators are not supported as struct methods")
		}
		method, err := p.parseFunDecl(nil, true)
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	end, err := p.expect(lexer.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return &ast.ImplBlock{StructName: nameTok.Literal, Methods: methods, Sp: span.Merge(start, end.Span)}, nil
}

func (p *Parser) parseIf() (*ast.If, error) {
	start := p.advance().Span // 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then, Sp: span.Merge(start, then.Sp)}
	if p.check(lexer.KwElse) {
		p.advance()
		if p.check(lexer.KwIf) {
			nestedIf, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			node.Else = &ast.Block{Stmts: []ast.Stmt{nestedIf}, Sp: nestedIf.Sp}
		} else {
			elseBlock, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			node.Else = elseBlock
		}
		node.Sp = span.Merge(start, node.Else.Sp)
	}
	return node, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.advance().Span // 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, Sp: span.Merge(start, body.Sp)}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.advance().Span // 'return'
	if p.check(lexer.Semicolon) {
		end := p.advance().Span
		return &ast.Return{Value: nil, Sp: span.Merge(start, end)}, nil
	}
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.Return{Value: val, Sp: span.Merge(start, val.Span())}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	start, err := p.expect(lexer.LBrace, "'{'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.check(lexer.RBrace) && !p.check(lexer.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	end, err := p.expect(lexer.RBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return &ast.Block{Stmts: stmts, Sp: span.Merge(start.Span, end.Span)}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	x, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, Sp: x.Span()}, nil
}
