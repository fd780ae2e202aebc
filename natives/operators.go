/*
File    : gomix-lang/natives/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package natives supplies the root environment the driver hands to
// eval.Run: the builtin operator callables the simplifier's desugaring
// requires (every Unary/Binary becomes Call(Identifier(op), args) before
// the interpreter ever sees it — see package simplify) plus a small
// standard library, grounded on the teacher's std package's
// table-driven Builtin registration (std/builtins.go, std/math.go,
// std/strings.go, std/list.go).
//
// && and || are registered as ordinary two-argument callables like every
// other operator. Because Call always evaluates every argument before
// dispatch (see eval.evalCall), this means logical operators never
// short-circuit — one of the two behaviors the source's own ambiguity
// around &&/|| explicitly allows, chosen here as a direct consequence of
// the operator-to-call desugaring rather than as a special case bolted
// onto evaluation.
package natives

import (
	"math"

	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/span"
)

func arityErr(sym, want string, got int, sp span.Span) error {
	return diag.New(diag.ArityMismatch, sp, "operator %q expects %s argument(s), got %d", sym, want, got)
}

func typeErr(sym string, sp span.Span) error {
	return diag.New(diag.TypeMismatch, sp, "operator %q: mismatched or unsupported operand types", sym)
}

func installOperators(env object.Environment) {
	def := func(name string, fn func([]object.Value, span.Span) (object.Value, error)) {
		env.Define(name, &object.NativeFunction{Name: name, Variadic: true, Fn: fn})
	}
	def("+", opAdd)
	def("-", opSub)
	def("*", opMul)
	def("/", opDiv)
	def("%", opMod)
	def("==", opEq)
	def("!=", opNe)
	def("<", opLt)
	def("<=", opLe)
	def(">", opGt)
	def(">=", opGe)
	def("&&", opAnd)
	def("||", opOr)
	def("!", opNot)
}

func opAdd(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("+", "2", len(args), sp)
	}
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr("+", sp)
		}
		return object.Int{Value: l.Value + r.Value}, nil
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr("+", sp)
		}
		return object.Float{Value: l.Value + r.Value}, nil
	case object.Str:
		r, ok := args[1].(object.Str)
		if !ok {
			return nil, typeErr("+", sp)
		}
		return object.Str{Value: l.Value + r.Value}, nil
	}
	return nil, typeErr("+", sp)
}

// opSub handles both the unary (negation) and binary (subtraction) "-",
// since both desugar to a Call against the same operator identifier.
func opSub(args []object.Value, sp span.Span) (object.Value, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case object.Int:
			return object.Int{Value: -v.Value}, nil
		case object.Float:
			return object.Float{Value: -v.Value}, nil
		}
		return nil, typeErr("-", sp)
	case 2:
		switch l := args[0].(type) {
		case object.Int:
			r, ok := args[1].(object.Int)
			if !ok {
				return nil, typeErr("-", sp)
			}
			return object.Int{Value: l.Value - r.Value}, nil
		case object.Float:
			r, ok := args[1].(object.Float)
			if !ok {
				return nil, typeErr("-", sp)
			}
			return object.Float{Value: l.Value - r.Value}, nil
		}
		return nil, typeErr("-", sp)
	}
	return nil, arityErr("-", "1 or 2", len(args), sp)
}

func opMul(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("*", "2", len(args), sp)
	}
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr("*", sp)
		}
		return object.Int{Value: l.Value * r.Value}, nil
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr("*", sp)
		}
		return object.Float{Value: l.Value * r.Value}, nil
	}
	return nil, typeErr("*", sp)
}

func opDiv(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("/", "2", len(args), sp)
	}
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr("/", sp)
		}
		if r.Value == 0 {
			return nil, diag.New(diag.DivisionByZero, sp, "division by zero")
		}
		return object.Int{Value: l.Value / r.Value}, nil
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr("/", sp)
		}
		if r.Value == 0 {
			return nil, diag.New(diag.DivisionByZero, sp, "division by zero")
		}
		return object.Float{Value: l.Value / r.Value}, nil
	}
	return nil, typeErr("/", sp)
}

func opMod(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("%", "2", len(args), sp)
	}
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr("%", sp)
		}
		if r.Value == 0 {
			return nil, diag.New(diag.DivisionByZero, sp, "modulo by zero")
		}
		return object.Int{Value: l.Value % r.Value}, nil
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr("%", sp)
		}
		if r.Value == 0 {
			return nil, diag.New(diag.DivisionByZero, sp, "modulo by zero")
		}
		return object.Float{Value: float32(math.Mod(float64(l.Value), float64(r.Value)))}, nil
	}
	return nil, typeErr("%", sp)
}

func opEq(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("==", "2", len(args), sp)
	}
	eq, ok := equalSameKind(args[0], args[1])
	if !ok {
		return nil, typeErr("==", sp)
	}
	return object.Bool{Value: eq}, nil
}

func opNe(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("!=", "2", len(args), sp)
	}
	eq, ok := equalSameKind(args[0], args[1])
	if !ok {
		return nil, typeErr("!=", sp)
	}
	return object.Bool{Value: !eq}, nil
}

func equalSameKind(l, r object.Value) (bool, bool) {
	switch lv := l.(type) {
	case object.Int:
		rv, ok := r.(object.Int)
		return ok && lv.Value == rv.Value, ok
	case object.Float:
		rv, ok := r.(object.Float)
		return ok && lv.Value == rv.Value, ok
	case object.Str:
		rv, ok := r.(object.Str)
		return ok && lv.Value == rv.Value, ok
	case object.Bool:
		rv, ok := r.(object.Bool)
		return ok && lv.Value == rv.Value, ok
	}
	return false, false
}

func opLt(args []object.Value, sp span.Span) (object.Value, error)  { return compareOp("<", args, sp) }
func opLe(args []object.Value, sp span.Span) (object.Value, error)  { return compareOp("<=", args, sp) }
func opGt(args []object.Value, sp span.Span) (object.Value, error)  { return compareOp(">", args, sp) }
func opGe(args []object.Value, sp span.Span) (object.Value, error)  { return compareOp(">=", args, sp) }

// compareOp implements the four ordering comparisons, defined only for
// same-kind numeric pairs and for Str (Bool has no ordering).
func compareOp(sym string, args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr(sym, "2", len(args), sp)
	}
	var less, equal bool
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr(sym, sp)
		}
		less, equal = l.Value < r.Value, l.Value == r.Value
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr(sym, sp)
		}
		less, equal = l.Value < r.Value, l.Value == r.Value
	case object.Str:
		r, ok := args[1].(object.Str)
		if !ok {
			return nil, typeErr(sym, sp)
		}
		less, equal = l.Value < r.Value, l.Value == r.Value
	default:
		return nil, typeErr(sym, sp)
	}
	switch sym {
	case "<":
		return object.Bool{Value: less}, nil
	case "<=":
		return object.Bool{Value: less || equal}, nil
	case ">":
		return object.Bool{Value: !less && !equal}, nil
	default: // ">="
		return object.Bool{Value: !less}, nil
	}
}

func opAnd(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("&&", "2", len(args), sp)
	}
	l, ok1 := args[0].(object.Bool)
	r, ok2 := args[1].(object.Bool)
	if !ok1 || !ok2 {
		return nil, typeErr("&&", sp)
	}
	return object.Bool{Value: l.Value && r.Value}, nil
}

func opOr(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr("||", "2", len(args), sp)
	}
	l, ok1 := args[0].(object.Bool)
	r, ok2 := args[1].(object.Bool)
	if !ok1 || !ok2 {
		return nil, typeErr("||", sp)
	}
	return object.Bool{Value: l.Value || r.Value}, nil
}

func opNot(args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityErr("!", "1", len(args), sp)
	}
	v, ok := args[0].(object.Bool)
	if !ok {
		return nil, typeErr("!", sp)
	}
	return object.Bool{Value: !v.Value}, nil
}
