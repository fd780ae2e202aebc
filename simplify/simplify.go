/*
File    : gomix-lang/simplify/simplify.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package simplify rewrites a resolved AST into the minimal form the
// interpreter actually runs: every non-method `fun` declaration, at any
// nesting depth, becomes a `let` binding of a Lambda (methods keep their
// FunDecl shape), every operator
// application becomes an ordinary Call against an Identifier naming the
// operator, and same-kind literal arithmetic is folded at simplify time.
package simplify

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/ast"
)

// Run simplifies prog in place and returns it. Let desugaring changes a
// statement's concrete type, so prog.Stmts is replaced with a new slice
// holding the rewritten statements.
func Run(prog *ast.Program) *ast.Program {
	prog.Stmts = simplifyStmts(prog.Stmts)
	return prog
}

func simplifyStmts(stmts []ast.Stmt) []ast.Stmt {
	out := make([]ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = simplifyStmt(s)
	}
	return out
}

func simplifyStmt(stmt ast.Stmt) ast.Stmt {
	switch s := stmt.(type) {
	case *ast.Let:
		s.Init = simplifyExpr(s.Init)
		return s
	case *ast.ExprStmt:
		s.X = simplifyExpr(s.X)
		return s
	case *ast.If:
		s.Cond = simplifyExpr(s.Cond)
		s.Then.Stmts = simplifyStmts(s.Then.Stmts)
		if s.Else != nil {
			s.Else.Stmts = simplifyStmts(s.Else.Stmts)
		}
		return s
	case *ast.While:
		s.Cond = simplifyExpr(s.Cond)
		s.Body.Stmts = simplifyStmts(s.Body.Stmts)
		return s
	case *ast.Block:
		s.Stmts = simplifyStmts(s.Stmts)
		return s
	case *ast.Return:
		if s.Value != nil {
			s.Value = simplifyExpr(s.Value)
		}
		return s
	case *ast.Break, *ast.Continue:
		return s
	case *ast.FunDecl:
		s.Body.Stmts = simplifyStmts(s.Body.Stmts)
		if s.IsMethod {
			return s
		}
		// fun name(ps) body => let name = lambda(ps) body
		return &ast.Let{
			Name: s.Name,
			Init: &ast.Lambda{Params: s.Params, Body: s.Body, Sp: s.Sp},
			Sp:   s.Sp,
		}
	case *ast.StructDecl:
		return s
	case *ast.ImplBlock:
		for i, m := range s.Methods {
			m.Body.Stmts = simplifyStmts(m.Body.Stmts)
			s.Methods[i] = m
		}
		return s
	}
	panic(fmt.Sprintf("simplify: unhandled statement %T", stmt))
}

func simplifyExpr(e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.StringLit, *ast.UnitLit, *ast.Identifier:
		return x
	case *ast.ListLit:
		for i, el := range x.Elems {
			x.Elems[i] = simplifyExpr(el)
		}
		return x
	case *ast.Unary:
		arg := simplifyExpr(x.X)
		return &ast.Call{
			Callee: &ast.Identifier{Name: x.Op, Sp: x.OpSpan},
			Args:   []ast.Expr{arg},
			Sp:     x.Sp,
		}
	case *ast.Binary:
		l := simplifyExpr(x.L)
		r := simplifyExpr(x.R)
		if folded, ok := foldConstant(x.Op, l, r); ok {
			return folded
		}
		return &ast.Call{
			Callee: &ast.Identifier{Name: x.Op, Sp: x.OpSpan},
			Args:   []ast.Expr{l, r},
			Sp:     x.Sp,
		}
	case *ast.Call:
		x.Callee = simplifyExpr(x.Callee)
		for i, a := range x.Args {
			x.Args[i] = simplifyExpr(a)
		}
		return x
	case *ast.Index:
		x.Recv = simplifyExpr(x.Recv)
		x.Idx = simplifyExpr(x.Idx)
		return x
	case *ast.FieldAccess:
		x.Recv = simplifyExpr(x.Recv)
		return x
	case *ast.Assign:
		x.Target = simplifyExpr(x.Target)
		x.Value = simplifyExpr(x.Value)
		return x
	case *ast.Lambda:
		x.Body.Stmts = simplifyStmts(x.Body.Stmts)
		return x
	}
	panic(fmt.Sprintf("simplify: unhandled expression %T", e))
}

// foldConstant evaluates op over two literals of the same numeric kind at
// simplify time. Division and modulo by zero are deliberately left
// unfolded so they surface as runtime DivisionByZero errors; Int/Float
// mixes are left unfolded so they surface as runtime TypeMismatch errors.
func foldConstant(op string, l, r ast.Expr) (ast.Expr, bool) {
	if li, ok := l.(*ast.IntLit); ok {
		if ri, ok := r.(*ast.IntLit); ok {
			return foldInt(op, li, ri)
		}
		return nil, false
	}
	if lf, ok := l.(*ast.FloatLit); ok {
		if rf, ok := r.(*ast.FloatLit); ok {
			return foldFloat(op, lf, rf)
		}
		return nil, false
	}
	return nil, false
}

func foldInt(op string, l, r *ast.IntLit) (ast.Expr, bool) {
	sp := l.Sp
	switch op {
	case "+":
		return &ast.IntLit{Value: l.Value + r.Value, Sp: sp}, true
	case "-":
		return &ast.IntLit{Value: l.Value - r.Value, Sp: sp}, true
	case "*":
		return &ast.IntLit{Value: l.Value * r.Value, Sp: sp}, true
	case "/", "%":
		if r.Value == 0 {
			return nil, false
		}
		if op == "/" {
			return &ast.IntLit{Value: l.Value / r.Value, Sp: sp}, true
		}
		return &ast.IntLit{Value: l.Value % r.Value, Sp: sp}, true
	}
	return nil, false
}

func foldFloat(op string, l, r *ast.FloatLit) (ast.Expr, bool) {
	sp := l.Sp
	switch op {
	case "+":
		return &ast.FloatLit{Value: l.Value + r.Value, Sp: sp}, true
	case "-":
		return &ast.FloatLit{Value: l.Value - r.Value, Sp: sp}, true
	case "*":
		return &ast.FloatLit{Value: l.Value * r.Value, Sp: sp}, true
	case "/":
		if r.Value == 0 {
			return nil, false
		}
		return &ast.FloatLit{Value: l.Value / r.Value, Sp: sp}, true
	}
	return nil, false
}
