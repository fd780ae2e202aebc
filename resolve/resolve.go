/*
File    : gomix-lang/resolve/resolve.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolve validates declarations and uses against the language's
// unusually strict naming rule: no two declarations anywhere in a program
// — variable, function, or struct type — may share a name, and every
// identifier use must resolve to some declaration in scope. It also
// collects unused-name warnings, which never abort the pass.
//
// Two distinct bookkeeping structures cooperate here: Resolver.global is
// a flat, whole-program uniqueness set (order-independent — redeclaring
// "x" anywhere is an error, nested or not); the scope chain (scope.go) is
// the ordinary lexically-nested visibility structure that decides whether
// a given declaration is reachable from a given use site. A name can be
// globally unique and still be out of scope.
package resolve

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/span"
)

type trackableDecl struct {
	name string
	sp   span.Span
}

// Resolver walks a parsed (and reassociated) program once.
type Resolver struct {
	global       map[string]span.Span          // whole-program uniqueness set
	usage        map[string]bool                // name -> referenced at least once
	trackable    []trackableDecl                // let/fun declarations eligible for unused warnings
	methodTables map[string]map[string]span.Span // struct name -> method name -> span
	warnings     []diag.Warning
}

// Run resolves prog, returning accumulated warnings on success or the
// first error encountered.
func Run(prog *ast.Program) ([]diag.Warning, error) {
	r := &Resolver{
		global:       make(map[string]span.Span),
		usage:        make(map[string]bool),
		methodTables: make(map[string]map[string]span.Span),
	}
	root := newScope(nil)
	// The library natives the root environment provides are visible as
	// ordinary names; they are not part of the global uniqueness set.
	for _, name := range []string{"print", "len", "abs", "min", "max", "sqrt", "upper", "lower", "split", "join", "push", "pop"} {
		root.declare(name, span.Span{})
	}
	if err := r.resolveStmts(prog.Stmts, root); err != nil {
		return nil, err
	}
	return r.unusedWarnings(), nil
}

func (r *Resolver) declareGlobal(name string, sp span.Span) error {
	if _, exists := r.global[name]; exists {
		return diag.New(diag.RedeclaredName, sp, "%q is already declared", name)
	}
	r.global[name] = sp
	return nil
}

// resolveStmts hoists fun/struct declarations into sc before walking any
// statement body, so forward and mutually-recursive references resolve.
func (r *Resolver) resolveStmts(stmts []ast.Stmt, sc *scope) error {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunDecl:
			if err := r.declareGlobal(s.Name, s.Sp); err != nil {
				return err
			}
			sc.declare(s.Name, s.Sp)
			r.trackable = append(r.trackable, trackableDecl{s.Name, s.Sp})
		case *ast.StructDecl:
			if err := r.declareGlobal(s.Name, s.Sp); err != nil {
				return err
			}
			sc.declare(s.Name, s.Sp)
		}
	}
	for _, stmt := range stmts {
		if err := r.resolveStmt(stmt, sc); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveBlock(b *ast.Block, parent *scope) error {
	return r.resolveStmts(b.Stmts, newScope(parent))
}

func (r *Resolver) resolveStmt(stmt ast.Stmt, sc *scope) error {
	switch s := stmt.(type) {
	case *ast.Let:
		// Declare the name before resolving Init, not after: a lambda
		// initializer may reference its own let-bound name recursively
		// (e.g. `let f = |n| { ... f(n-1) ... };`), and that reference
		// must already be in scope when resolveLambda walks the body.
		if err := r.declareGlobal(s.Name, s.Sp); err != nil {
			return err
		}
		sc.declare(s.Name, s.Sp)
		r.trackable = append(r.trackable, trackableDecl{s.Name, s.Sp})
		if err := r.resolveExpr(s.Init, sc); err != nil {
			return err
		}
		return nil
	case *ast.ExprStmt:
		return r.resolveExpr(s.X, sc)
	case *ast.If:
		if err := r.resolveExpr(s.Cond, sc); err != nil {
			return err
		}
		if err := r.resolveBlock(s.Then, sc); err != nil {
			return err
		}
		if s.Else != nil {
			return r.resolveBlock(s.Else, sc)
		}
		return nil
	case *ast.While:
		if err := r.resolveExpr(s.Cond, sc); err != nil {
			return err
		}
		return r.resolveBlock(s.Body, sc)
	case *ast.Block:
		return r.resolveBlock(s, sc)
	case *ast.Return:
		if s.Value != nil {
			return r.resolveExpr(s.Value, sc)
		}
		return nil
	case *ast.Break, *ast.Continue:
		return nil
	case *ast.FunDecl:
		// Name already hoisted by resolveStmts; resolve the body here.
		return r.resolveFunBody(s, sc)
	case *ast.StructDecl:
		// Fields are labels, not identifiers; nothing further to resolve.
		return nil
	case *ast.ImplBlock:
		return r.resolveImplBlock(s, sc)
	}
	return fmt.Errorf("resolve: unhandled statement %T", stmt)
}

// resolveFunBody opens a scope for params (declared globally-unique, per
// the spec's unrelaxed flat-namespace rule, but exempt from unused-name
// warnings) and resolves the body inside a further nested block scope.
func (r *Resolver) resolveFunBody(fd *ast.FunDecl, parent *scope) error {
	fnScope := newScope(parent)
	for _, param := range fd.Params {
		if err := r.declareGlobal(param, fd.Sp); err != nil {
			return err
		}
		fnScope.declare(param, fd.Sp)
		r.usage[param] = true // parameters are exempt from unused warnings
	}
	return r.resolveBlock(fd.Body, fnScope)
}

// resolveImplBlock registers the impl's methods in a per-struct method
// table — not the enclosing scope, and not the global uniqueness set, per
// §4.4: "the methods themselves register under the struct's method table
// rather than the outer scope." Two different structs may each declare a
// method named "sum" without conflict; the same struct may not declare
// "sum" twice.
func (r *Resolver) resolveImplBlock(ib *ast.ImplBlock, sc *scope) error {
	if _, ok := sc.resolve(ib.StructName); !ok {
		return diag.New(diag.UndeclaredName, ib.Sp, "impl block names undeclared struct %q", ib.StructName)
	}
	methods := make(map[string]span.Span, len(ib.Methods))
	for _, m := range ib.Methods {
		if _, exists := methods[m.Name]; exists {
			return diag.New(diag.RedeclaredName, m.Sp, "method %q is already declared on struct %q", m.Name, ib.StructName)
		}
		methods[m.Name] = m.Sp
	}
	r.methodTables[ib.StructName] = methods
	for _, m := range ib.Methods {
		if err := r.resolveFunBody(m, sc); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) resolveExpr(e ast.Expr, sc *scope) error {
	switch x := e.(type) {
	case *ast.IntLit, *ast.FloatLit, *ast.BoolLit, *ast.StringLit, *ast.UnitLit:
		return nil
	case *ast.ListLit:
		for _, el := range x.Elems {
			if err := r.resolveExpr(el, sc); err != nil {
				return err
			}
		}
		return nil
	case *ast.Identifier:
		if _, ok := sc.resolve(x.Name); !ok {
			return diag.New(diag.UndeclaredName, x.Sp, "undeclared name %q", x.Name)
		}
		r.usage[x.Name] = true
		return nil
	case *ast.Unary:
		return r.resolveExpr(x.X, sc)
	case *ast.Binary:
		if err := r.resolveExpr(x.L, sc); err != nil {
			return err
		}
		return r.resolveExpr(x.R, sc)
	case *ast.Call:
		if err := r.resolveExpr(x.Callee, sc); err != nil {
			return err
		}
		for _, a := range x.Args {
			if err := r.resolveExpr(a, sc); err != nil {
				return err
			}
		}
		return nil
	case *ast.Index:
		if err := r.resolveExpr(x.Recv, sc); err != nil {
			return err
		}
		return r.resolveExpr(x.Idx, sc)
	case *ast.FieldAccess:
		return r.resolveExpr(x.Recv, sc)
	case *ast.Assign:
		return r.resolveAssign(x, sc)
	case *ast.Lambda:
		return r.resolveLambda(x, sc)
	}
	return fmt.Errorf("resolve: unhandled expression %T", e)
}

func (r *Resolver) resolveAssign(a *ast.Assign, sc *scope) error {
	if err := r.resolveExpr(a.Value, sc); err != nil {
		return err
	}
	if id, ok := a.Target.(*ast.Identifier); ok {
		if _, found := sc.resolve(id.Name); !found {
			return diag.New(diag.AssignToUndeclared, id.Sp, "assignment to undeclared name %q", id.Name)
		}
		r.usage[id.Name] = true
		return nil
	}
	return r.resolveExpr(a.Target, sc)
}

func (r *Resolver) resolveLambda(l *ast.Lambda, sc *scope) error {
	lamScope := newScope(sc)
	for _, param := range l.Params {
		if err := r.declareGlobal(param, l.Sp); err != nil {
			return err
		}
		lamScope.declare(param, l.Sp)
		r.usage[param] = true // parameters are exempt from unused warnings
	}
	return r.resolveBlock(l.Body, lamScope)
}

func (r *Resolver) unusedWarnings() []diag.Warning {
	for _, d := range r.trackable {
		if !r.usage[d.name] {
			r.warnings = append(r.warnings, diag.Warning{
				Message: fmt.Sprintf("%q is declared but never used", d.name),
				Span:    d.sp,
			})
		}
	}
	return r.warnings
}
