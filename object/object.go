/*
File    : gomix-lang/object/object.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object defines the runtime value representation the
// interpreter operates on: the tagged variants named in the data model
// (Int, Float, Bool, Str, List, Unit, Function, NativeFunction,
// StructType, StructInstance) behind one Value interface, grounded on the
// teacher's GoMixObject/GoMixType interface shape in objects/objects.go.
//
// Environment is declared here, not in package environ, purely to avoid
// an import cycle: Function needs to hold the environment it closed
// over, and environ needs Value to build that environment's bindings.
// Declaring the interface at the point of use (here) and satisfying it
// structurally from environ mirrors how the teacher's function package
// depends on scope.Scope without scope depending back on function.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/span"
)

// Kind identifies which runtime value variant a Value holds.
type Kind string

const (
	IntKind            Kind = "int"
	FloatKind          Kind = "float"
	BoolKind           Kind = "bool"
	StrKind            Kind = "str"
	ListKind           Kind = "list"
	UnitKind           Kind = "unit"
	FunctionKind       Kind = "function"
	NativeFunctionKind Kind = "native_function"
	StructTypeKind     Kind = "struct_type"
	StructInstanceKind Kind = "struct_instance"
)

// Value is satisfied by every runtime value variant.
type Value interface {
	Kind() Kind
	String() string
}

// Environment is the subset of environ.Environment's behavior that object
// values need to reference (a Function closes over one, a bound method
// builds a child of one). The concrete implementation lives in package
// environ.
type Environment interface {
	Get(name string) (Value, bool)
	Define(name string, v Value)
	Set(name string, v Value) bool
	Child() Environment
}

// ---- Value-like (immutable) variants ----

type Int struct{ Value int32 }

func (Int) Kind() Kind         { return IntKind }
func (i Int) String() string   { return strconv.FormatInt(int64(i.Value), 10) }

type Float struct{ Value float32 }

func (Float) Kind() Kind       { return FloatKind }
func (f Float) String() string { return strconv.FormatFloat(float64(f.Value), 'g', -1, 32) }

type Bool struct{ Value bool }

func (Bool) Kind() Kind { return BoolKind }
func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Str is immutable; Go's string type already has value semantics, so no
// extra wrapping is required to keep assignment from aliasing.
type Str struct{ Value string }

func (Str) Kind() Kind       { return StrKind }
func (s Str) String() string { return s.Value }

type Unit struct{}

func (Unit) Kind() Kind     { return UnitKind }
func (Unit) String() string { return "()" }

// ---- Reference (shared) variants ----

// List is always handled through a *List pointer so that assignment of a
// list aliases the same backing slice rather than copying it.
type List struct {
	Elems []Value
}

func (*List) Kind() Kind { return ListKind }
func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Function is a closure: parameters, body, and the environment in force
// at its definition site. Name is empty for anonymous lambdas.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    Environment
}

func (*Function) Kind() Kind { return FunctionKind }
func (f *Function) String() string {
	name := f.Name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("function(%s)", name)
}

// NativeFunction wraps a host-implemented callable (builtin operators,
// and the natives package's library functions). Fn receives the call
// site's span so it can report ArityMismatch/TypeMismatch diagnostics
// that point at the call, not at the native's definition.
type NativeFunction struct {
	Name     string
	Variadic bool
	Fn       func(args []Value, sp span.Span) (Value, error)
}

func (*NativeFunction) Kind() Kind         { return NativeFunctionKind }
func (n *NativeFunction) String() string   { return fmt.Sprintf("native(%s)", n.Name) }

// StructType is the callable value a `struct` declaration binds: calling
// it constructs a StructInstance. Methods are populated once the
// corresponding impl block is evaluated.
type StructType struct {
	Name    string
	Fields  []string
	Methods map[string]*Function
}

func (*StructType) Kind() Kind       { return StructTypeKind }
func (s *StructType) String() string { return fmt.Sprintf("struct(%s)", s.Name) }

func (s *StructType) Method(name string) (*Function, bool) {
	m, ok := s.Methods[name]
	return m, ok
}

// StructInstance holds a struct value's mutable field map and a
// reference back to its type, used both for field access/assignment and
// for resolving bound methods.
type StructInstance struct {
	Type   *StructType
	Fields map[string]Value
}

func (*StructInstance) Kind() Kind { return StructInstanceKind }
func (s *StructInstance) String() string {
	return fmt.Sprintf("%s { ... }", s.Type.Name)
}
