/*
File    : gomix-lang/reassoc/reassoc.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package reassoc rebuilds binary-expression spines after the parser has
// emitted them uniformly right-associative at a single precedence. It is
// the one pass that actually reads the fixity table the parser built.
//
// Key observation exploited below: because the parser only ever nests a
// further Binary node into the *right* child (parseBinaryTail recurses on
// R, never on L), a chain of Binary nodes linked purely through R is
// exactly one spine — the thing reassociation must flatten and rebuild.
// Any Binary reachable only through an L child, or through a Call/Index/
// ListLit/parenthesized-atom boundary, is a separately grouped
// subexpression and is reassociated independently, then treated as one
// opaque operand by the spine that contains it.
package reassoc

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/span"
)

// Run reassociates every binary spine in prog against table, in place.
func Run(prog *ast.Program, table *ast.FixityTable) error {
	for _, stmt := range prog.Stmts {
		if err := reassocStmt(stmt, table); err != nil {
			return err
		}
	}
	return nil
}

func reassocBlock(b *ast.Block, table *ast.FixityTable) error {
	for _, stmt := range b.Stmts {
		if err := reassocStmt(stmt, table); err != nil {
			return err
		}
	}
	return nil
}

func reassocStmt(stmt ast.Stmt, table *ast.FixityTable) error {
	switch s := stmt.(type) {
	case *ast.Let:
		ne, err := reassocExpr(s.Init, table)
		if err != nil {
			return err
		}
		s.Init = ne
		return nil
	case *ast.ExprStmt:
		ne, err := reassocExpr(s.X, table)
		if err != nil {
			return err
		}
		s.X = ne
		return nil
	case *ast.If:
		nc, err := reassocExpr(s.Cond, table)
		if err != nil {
			return err
		}
		s.Cond = nc
		if err := reassocBlock(s.Then, table); err != nil {
			return err
		}
		if s.Else != nil {
			return reassocBlock(s.Else, table)
		}
		return nil
	case *ast.While:
		nc, err := reassocExpr(s.Cond, table)
		if err != nil {
			return err
		}
		s.Cond = nc
		return reassocBlock(s.Body, table)
	case *ast.Block:
		return reassocBlock(s, table)
	case *ast.Return:
		if s.Value == nil {
			return nil
		}
		nv, err := reassocExpr(s.Value, table)
		if err != nil {
			return err
		}
		s.Value = nv
		return nil
	case *ast.Break, *ast.Continue:
		return nil
	case *ast.FunDecl:
		return reassocBlock(s.Body, table)
	case *ast.StructDecl:
		return nil
	case *ast.ImplBlock:
		for _, m := range s.Methods {
			if err := reassocBlock(m.Body, table); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("reassoc: unhandled statement %T", stmt)
}

func reassocExpr(e ast.Expr, table *ast.FixityTable) (ast.Expr, error) {
	switch x := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.StringLit, *ast.UnitLit, *ast.Identifier:
		return e, nil
	case *ast.ListLit:
		for i, el := range x.Elems {
			ne, err := reassocExpr(el, table)
			if err != nil {
				return nil, err
			}
			x.Elems[i] = ne
		}
		return x, nil
	case *ast.Unary:
		nx, err := reassocExpr(x.X, table)
		if err != nil {
			return nil, err
		}
		x.X = nx
		return x, nil
	case *ast.Binary:
		return reassocSpine(x, table)
	case *ast.Call:
		nc, err := reassocExpr(x.Callee, table)
		if err != nil {
			return nil, err
		}
		x.Callee = nc
		for i, a := range x.Args {
			na, err := reassocExpr(a, table)
			if err != nil {
				return nil, err
			}
			x.Args[i] = na
		}
		return x, nil
	case *ast.Index:
		nr, err := reassocExpr(x.Recv, table)
		if err != nil {
			return nil, err
		}
		x.Recv = nr
		ni, err := reassocExpr(x.Idx, table)
		if err != nil {
			return nil, err
		}
		x.Idx = ni
		return x, nil
	case *ast.FieldAccess:
		nr, err := reassocExpr(x.Recv, table)
		if err != nil {
			return nil, err
		}
		x.Recv = nr
		return x, nil
	case *ast.Assign:
		nt, err := reassocExpr(x.Target, table)
		if err != nil {
			return nil, err
		}
		x.Target = nt
		nv, err := reassocExpr(x.Value, table)
		if err != nil {
			return nil, err
		}
		x.Value = nv
		return x, nil
	case *ast.Lambda:
		if err := reassocBlock(x.Body, table); err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, fmt.Errorf("reassoc: unhandled expression %T", e)
}

type opRef struct {
	sym string
	sp  span.Span
}

// reassocSpine flattens the right-leaning chain rooted at root, recursively
// reassociates every operand (each is opaque to this spine), and reduces
// the flat operand/operator lists per the fixity table.
func reassocSpine(root *ast.Binary, table *ast.FixityTable) (ast.Expr, error) {
	var operands []ast.Expr
	var ops []opRef
	cur := root
	for {
		ops = append(ops, opRef{sym: cur.Op, sp: cur.OpSpan})
		operands = append(operands, cur.L)
		if rb, ok := cur.R.(*ast.Binary); ok {
			cur = rb
			continue
		}
		operands = append(operands, cur.R)
		break
	}

	for i, o := range operands {
		no, err := reassocExpr(o, table)
		if err != nil {
			return nil, err
		}
		operands[i] = no
	}

	return reduceSpine(operands, ops, table)
}

// reduceSpine repeatedly collapses the highest-precedence operator (ties
// broken by associativity: left-assoc groups leftmost-first, right-assoc
// groups rightmost-first) until one operand remains.
func reduceSpine(operands []ast.Expr, ops []opRef, table *ast.FixityTable) (ast.Expr, error) {
	for len(ops) > 0 {
		precs := make([]int, len(ops))
		assocs := make([]ast.Assoc, len(ops))
		maxPrec := -1
		for i, o := range ops {
			fx, ok := table.LookupBinary(o.sym)
			if !ok {
				return nil, diag.New(diag.UnknownOperator, o.sp, "unknown operator %q", o.sym)
			}
			precs[i] = fx.Precedence
			assocs[i] = fx.Assoc
			if fx.Precedence > maxPrec {
				maxPrec = fx.Precedence
			}
		}

		representative := ast.Left
		haveRepresentative := false
		for i := 0; i < len(ops); i++ {
			if precs[i] != maxPrec {
				continue
			}
			if !haveRepresentative {
				representative = assocs[i]
				haveRepresentative = true
			}
			if i+1 < len(ops) && precs[i+1] == maxPrec && assocs[i+1] != assocs[i] {
				return nil, diag.New(diag.AmbiguousAssociativity, ops[i+1].sp,
					"ambiguous mix of left- and right-associative operators %q and %q at precedence %d",
					ops[i].sym, ops[i+1].sym, maxPrec)
			}
		}

		reduceIdx := -1
		if representative == ast.Left {
			for i := 0; i < len(ops); i++ {
				if precs[i] == maxPrec {
					reduceIdx = i
					break
				}
			}
		} else {
			for i := len(ops) - 1; i >= 0; i-- {
				if precs[i] == maxPrec {
					reduceIdx = i
					break
				}
			}
		}

		l, r := operands[reduceIdx], operands[reduceIdx+1]
		merged := &ast.Binary{Op: ops[reduceIdx].sym, OpSpan: ops[reduceIdx].sp, L: l, R: r, Sp: span.Merge(l.Span(), r.Span())}

		newOperands := make([]ast.Expr, 0, len(operands)-1)
		newOperands = append(newOperands, operands[:reduceIdx]...)
		newOperands = append(newOperands, merged)
		newOperands = append(newOperands, operands[reduceIdx+2:]...)
		operands = newOperands

		newOps := make([]opRef, 0, len(ops)-1)
		newOps = append(newOps, ops[:reduceIdx]...)
		newOps = append(newOps, ops[reduceIdx+1:]...)
		ops = newOps
	}
	return operands[0], nil
}
