/*
File    : gomix-lang/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks a simplified AST against an environment chain,
// grounded on the teacher's eval package shape (eval/evaluator.go's
// Evaluator, eval/eval_statements.go's statement dispatch,
// eval/eval_structs.go's instance construction) but rebuilt around this
// language's completion model and value set.
//
// By the time a program reaches this package it has already been
// resolved and simplified: every Unary/Binary node is gone (desugared to
// Call(Identifier(op), args) — see package simplify), and every
// non-method `fun` declaration is gone (desugared to Let of a Lambda).
// Only impl-block methods keep their FunDecl shape.
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/span"
)

// CompletionKind tags how a statement finished.
type CompletionKind int

const (
	Normal CompletionKind = iota
	BreakC
	ContinueC
	ReturnC
)

// Completion is the outcome of evaluating a statement. Value is only
// meaningful for Normal (the statement's expression value, or Unit) and
// ReturnC (the returned value).
type Completion struct {
	Kind  CompletionKind
	Value object.Value
}

func normal(v object.Value) Completion { return Completion{Kind: Normal, Value: v} }

// Run evaluates every top-level statement in prog against env in order,
// returning the value of the final statement. A stray break/continue/
// return reaching the top level is an error, per the taxonomy in §7.
func Run(prog *ast.Program, env object.Environment) (object.Value, error) {
	result := object.Value(object.Unit{})
	for _, stmt := range prog.Stmts {
		c, err := evalStmt(stmt, env)
		if err != nil {
			return nil, err
		}
		switch c.Kind {
		case BreakC:
			return nil, diag.New(diag.BreakOutsideLoop, stmt.Span(), "break outside loop")
		case ContinueC:
			return nil, diag.New(diag.ContinueOutsideLoop, stmt.Span(), "continue outside loop")
		case ReturnC:
			return nil, diag.New(diag.ReturnOutsideFunction, stmt.Span(), "return outside function")
		}
		result = c.Value
	}
	return result, nil
}

func evalBlock(b *ast.Block, parent object.Environment) (Completion, error) {
	env := parent.Child()
	result := normal(object.Value(object.Unit{}))
	for _, stmt := range b.Stmts {
		c, err := evalStmt(stmt, env)
		if err != nil {
			return Completion{}, err
		}
		if c.Kind != Normal {
			return c, nil
		}
		result = c
	}
	return result, nil
}

func evalStmt(stmt ast.Stmt, env object.Environment) (Completion, error) {
	switch s := stmt.(type) {
	case *ast.Let:
		v, err := evalExpr(s.Init, env)
		if err != nil {
			return Completion{}, err
		}
		env.Define(s.Name, v)
		return normal(object.Unit{}), nil
	case *ast.ExprStmt:
		v, err := evalExpr(s.X, env)
		if err != nil {
			return Completion{}, err
		}
		return normal(v), nil
	case *ast.If:
		cond, err := evalExpr(s.Cond, env)
		if err != nil {
			return Completion{}, err
		}
		bv, ok := cond.(object.Bool)
		if !ok {
			return Completion{}, diag.New(diag.TypeMismatch, s.Cond.Span(), "if condition must be Bool")
		}
		if bv.Value {
			return evalBlock(s.Then, env)
		}
		if s.Else != nil {
			return evalBlock(s.Else, env)
		}
		return normal(object.Unit{}), nil
	case *ast.While:
		return evalWhile(s, env)
	case *ast.Block:
		return evalBlock(s, env)
	case *ast.Return:
		if s.Value == nil {
			return Completion{Kind: ReturnC, Value: object.Unit{}}, nil
		}
		v, err := evalExpr(s.Value, env)
		if err != nil {
			return Completion{}, err
		}
		return Completion{Kind: ReturnC, Value: v}, nil
	case *ast.Break:
		return Completion{Kind: BreakC}, nil
	case *ast.Continue:
		return Completion{Kind: ContinueC}, nil
	case *ast.FunDecl:
		// Simplify desugars every non-method fun to a Let of a Lambda;
		// only methods keep this shape, and those are only ever reached
		// through evalImplBlock below, never as a free-standing statement.
		return Completion{}, fmt.Errorf("eval: unexpected bare function declaration %q", s.Name)
	case *ast.StructDecl:
		fields := append([]string(nil), s.Fields...)
		st := &object.StructType{Name: s.Name, Fields: fields, Methods: make(map[string]*object.Function)}
		env.Define(s.Name, st)
		return normal(object.Unit{}), nil
	case *ast.ImplBlock:
		return evalImplBlock(s, env)
	}
	return Completion{}, fmt.Errorf("eval: unhandled statement %T", stmt)
}

func evalWhile(w *ast.While, env object.Environment) (Completion, error) {
	for {
		cond, err := evalExpr(w.Cond, env)
		if err != nil {
			return Completion{}, err
		}
		bv, ok := cond.(object.Bool)
		if !ok {
			return Completion{}, diag.New(diag.TypeMismatch, w.Cond.Span(), "while condition must be Bool")
		}
		if !bv.Value {
			return normal(object.Unit{}), nil
		}
		c, err := evalBlock(w.Body, env)
		if err != nil {
			return Completion{}, err
		}
		switch c.Kind {
		case BreakC:
			return normal(object.Unit{}), nil
		case ReturnC:
			return c, nil
		case ContinueC, Normal:
			continue
		}
	}
}

// evalImplBlock attaches every method as a Function closed over the
// environment the impl block itself executes in; bindMethod (in
// eval_access.go) later wraps one of these in a child environment that
// binds its first parameter to the instance at access time.
func evalImplBlock(ib *ast.ImplBlock, env object.Environment) (Completion, error) {
	v, ok := env.Get(ib.StructName)
	if !ok {
		return Completion{}, fmt.Errorf("eval: undeclared struct %q in impl block", ib.StructName)
	}
	st, ok := v.(*object.StructType)
	if !ok {
		return Completion{}, diag.New(diag.TypeMismatch, ib.Sp, "%q is not a struct type", ib.StructName)
	}
	for _, m := range ib.Methods {
		st.Methods[m.Name] = &object.Function{Name: m.Name, Params: m.Params, Body: m.Body, Env: env}
	}
	return normal(object.Unit{}), nil
}

func evalExpr(e ast.Expr, env object.Environment) (object.Value, error) {
	switch x := e.(type) {
	case *ast.IntLit:
		return object.Int{Value: x.Value}, nil
	case *ast.FloatLit:
		return object.Float{Value: x.Value}, nil
	case *ast.BoolLit:
		return object.Bool{Value: x.Value}, nil
	case *ast.StringLit:
		return object.Str{Value: x.Value}, nil
	case *ast.UnitLit:
		return object.Unit{}, nil
	case *ast.ListLit:
		elems := make([]object.Value, len(x.Elems))
		for i, el := range x.Elems {
			v, err := evalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &object.List{Elems: elems}, nil
	case *ast.Identifier:
		v, ok := env.Get(x.Name)
		if !ok {
			return nil, diag.New(diag.UndeclaredName, x.Sp, "undeclared name %q", x.Name)
		}
		return v, nil
	case *ast.Call:
		return evalCall(x, env)
	case *ast.Index:
		return evalIndex(x, env)
	case *ast.FieldAccess:
		return evalFieldAccess(x, env)
	case *ast.Assign:
		return evalAssign(x, env)
	case *ast.Lambda:
		return &object.Function{Params: x.Params, Body: x.Body, Env: env}, nil
	}
	return nil, fmt.Errorf("eval: unhandled expression %T", e)
}

func evalCall(c *ast.Call, env object.Environment) (object.Value, error) {
	calleeVal, err := evalExpr(c.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	switch callee := calleeVal.(type) {
	case *object.Function:
		return callFunction(callee, args, c.Sp)
	case *object.NativeFunction:
		return callee.Fn(args, c.Sp)
	case *object.StructType:
		return constructStruct(callee, args, c.Sp)
	default:
		return nil, diag.New(diag.TypeMismatch, c.Sp, "value is not callable")
	}
}

func callFunction(f *object.Function, args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != len(f.Params) {
		name := f.Name
		if name == "" {
			name = "<anonymous>"
		}
		return nil, diag.New(diag.ArityMismatch, sp, "function %s expects %d argument(s), got %d", name, len(f.Params), len(args))
	}
	callEnv := f.Env.Child()
	for i, p := range f.Params {
		callEnv.Define(p, args[i])
	}
	c, err := evalBlock(f.Body, callEnv)
	if err != nil {
		return nil, err
	}
	switch c.Kind {
	case ReturnC:
		return c.Value, nil
	case BreakC:
		return nil, diag.New(diag.BreakOutsideLoop, sp, "break outside loop")
	case ContinueC:
		return nil, diag.New(diag.ContinueOutsideLoop, sp, "continue outside loop")
	default:
		// A body that falls through yields its block's completion value:
		// the last statement's value if that is an expression statement,
		// Unit otherwise.
		return c.Value, nil
	}
}

func constructStruct(st *object.StructType, args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != len(st.Fields) {
		return nil, diag.New(diag.ArityMismatch, sp, "struct %s expects %d field(s), got %d", st.Name, len(st.Fields), len(args))
	}
	fields := make(map[string]object.Value, len(st.Fields))
	for i, name := range st.Fields {
		fields[name] = args[i]
	}
	return &object.StructInstance{Type: st, Fields: fields}, nil
}
