/*
File    : gomix-lang/natives/library.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Supplemented library natives, grounded on the teacher's table-driven
// std.Builtin registrations: std/math.go for abs/min/max/sqrt,
// std/strings.go for upper/lower/split/join, std/list.go for
// push/pop/len (the teacher's pushback_list/popback_list/size_list).
// print is the one native §6 names explicitly.
package natives

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/span"
)

// Install registers every builtin operator and library native into env.
// A nil out defaults to os.Stdout, matching the driver's and REPL's use.
func Install(env object.Environment, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	installOperators(env)
	installLibrary(env, out)
}

func installLibrary(env object.Environment, out io.Writer) {
	def := func(name string, variadic bool, fn func([]object.Value, span.Span) (object.Value, error)) {
		env.Define(name, &object.NativeFunction{Name: name, Variadic: variadic, Fn: fn})
	}

	def("print", true, func(args []object.Value, sp span.Span) (object.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return object.Unit{}, nil
	})

	def("len", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 1 {
			return nil, arityErr("len", "1", len(args), sp)
		}
		switch v := args[0].(type) {
		case *object.List:
			return object.Int{Value: int32(len(v.Elems))}, nil
		case object.Str:
			return object.Int{Value: int32(len(v.Value))}, nil
		}
		return nil, typeErr("len", sp)
	})

	def("abs", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 1 {
			return nil, arityErr("abs", "1", len(args), sp)
		}
		switch v := args[0].(type) {
		case object.Int:
			if v.Value < 0 {
				return object.Int{Value: -v.Value}, nil
			}
			return v, nil
		case object.Float:
			return object.Float{Value: float32(math.Abs(float64(v.Value)))}, nil
		}
		return nil, typeErr("abs", sp)
	})

	def("min", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		return minMax("min", args, sp)
	})
	def("max", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		return minMax("max", args, sp)
	})

	def("sqrt", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 1 {
			return nil, arityErr("sqrt", "1", len(args), sp)
		}
		v, ok := args[0].(object.Float)
		if !ok {
			return nil, typeErr("sqrt", sp)
		}
		return object.Float{Value: float32(math.Sqrt(float64(v.Value)))}, nil
	})

	def("upper", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		s, ok := oneStr(args)
		if !ok {
			return nil, typeErr("upper", sp)
		}
		return object.Str{Value: strings.ToUpper(s)}, nil
	})
	def("lower", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		s, ok := oneStr(args)
		if !ok {
			return nil, typeErr("lower", sp)
		}
		return object.Str{Value: strings.ToLower(s)}, nil
	})

	def("split", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 2 {
			return nil, arityErr("split", "2", len(args), sp)
		}
		s, ok1 := args[0].(object.Str)
		sep, ok2 := args[1].(object.Str)
		if !ok1 || !ok2 {
			return nil, typeErr("split", sp)
		}
		parts := strings.Split(s.Value, sep.Value)
		elems := make([]object.Value, len(parts))
		for i, p := range parts {
			elems[i] = object.Str{Value: p}
		}
		return &object.List{Elems: elems}, nil
	})

	def("join", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 2 {
			return nil, arityErr("join", "2", len(args), sp)
		}
		list, ok1 := args[0].(*object.List)
		sep, ok2 := args[1].(object.Str)
		if !ok1 || !ok2 {
			return nil, typeErr("join", sp)
		}
		parts := make([]string, len(list.Elems))
		for i, e := range list.Elems {
			s, ok := e.(object.Str)
			if !ok {
				return nil, typeErr("join", sp)
			}
			parts[i] = s.Value
		}
		return object.Str{Value: strings.Join(parts, sep.Value)}, nil
	})

	// push mutates the list's backing slice in place, consistent with
	// List being a shared reference value everywhere else in the
	// language (see object.List's doc comment).
	def("push", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 2 {
			return nil, arityErr("push", "2", len(args), sp)
		}
		list, ok := args[0].(*object.List)
		if !ok {
			return nil, typeErr("push", sp)
		}
		list.Elems = append(list.Elems, args[1])
		return list, nil
	})

	def("pop", false, func(args []object.Value, sp span.Span) (object.Value, error) {
		if len(args) != 1 {
			return nil, arityErr("pop", "1", len(args), sp)
		}
		list, ok := args[0].(*object.List)
		if !ok {
			return nil, typeErr("pop", sp)
		}
		n := len(list.Elems)
		if n == 0 {
			return nil, diag.New(diag.IndexOutOfRange, sp, "pop: list is empty")
		}
		last := list.Elems[n-1]
		list.Elems = list.Elems[:n-1]
		return last, nil
	})
}

func oneStr(args []object.Value) (string, bool) {
	if len(args) != 1 {
		return "", false
	}
	s, ok := args[0].(object.Str)
	return s.Value, ok
}

func minMax(sym string, args []object.Value, sp span.Span) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityErr(sym, "2", len(args), sp)
	}
	switch l := args[0].(type) {
	case object.Int:
		r, ok := args[1].(object.Int)
		if !ok {
			return nil, typeErr(sym, sp)
		}
		if (sym == "min") == (l.Value < r.Value) {
			return l, nil
		}
		return r, nil
	case object.Float:
		r, ok := args[1].(object.Float)
		if !ok {
			return nil, typeErr(sym, sp)
		}
		if (sym == "min") == (l.Value < r.Value) {
			return l, nil
		}
		return r, nil
	}
	return nil, typeErr(sym, sp)
}
