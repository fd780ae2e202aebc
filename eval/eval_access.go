/*
File    : gomix-lang/eval/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Index/field read, write, and bound-method access.
package eval

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/object"
)

// normalizeIndex maps a negative index i to len+i; callers still must
// bounds-check the result against [0, length).
func normalizeIndex(i int32, length int) int {
	if i < 0 {
		return int(i) + length
	}
	return int(i)
}

func evalIndex(ix *ast.Index, env object.Environment) (object.Value, error) {
	recv, err := evalExpr(ix.Recv, env)
	if err != nil {
		return nil, err
	}
	list, ok := recv.(*object.List)
	if !ok {
		return nil, diag.New(diag.TypeMismatch, ix.Sp, "index target is not a list")
	}
	idxVal, err := evalExpr(ix.Idx, env)
	if err != nil {
		return nil, err
	}
	iv, ok := idxVal.(object.Int)
	if !ok {
		return nil, diag.New(diag.TypeMismatch, ix.Idx.Span(), "list index must be Int")
	}
	i := normalizeIndex(iv.Value, len(list.Elems))
	if i < 0 || i >= len(list.Elems) {
		return nil, diag.New(diag.IndexOutOfRange, ix.Sp, "index %d out of range for list of length %d", iv.Value, len(list.Elems))
	}
	return list.Elems[i], nil
}

func evalFieldAccess(fa *ast.FieldAccess, env object.Environment) (object.Value, error) {
	recv, err := evalExpr(fa.Recv, env)
	if err != nil {
		return nil, err
	}
	inst, ok := recv.(*object.StructInstance)
	if !ok {
		return nil, diag.New(diag.TypeMismatch, fa.Sp, "field access target is not a struct instance")
	}
	if v, ok := inst.Fields[fa.Field]; ok {
		return v, nil
	}
	if m, ok := inst.Type.Method(fa.Field); ok {
		return bindMethod(m, inst), nil
	}
	return nil, diag.New(diag.UnknownField, fa.Sp, "struct %s has no field or method %q", inst.Type.Name, fa.Field)
}

// bindMethod wraps a method's Function in a fresh child environment that
// binds the method's first parameter (conventionally "self") to the
// instance and drops it from the parameter list, so the existing
// Call/callFunction path handles bound-method calls with no special case.
func bindMethod(m *object.Function, self *object.StructInstance) *object.Function {
	boundEnv := m.Env.Child()
	params := m.Params
	if len(params) > 0 {
		boundEnv.Define(params[0], self)
		params = params[1:]
	}
	return &object.Function{Name: m.Name, Params: params, Body: m.Body, Env: boundEnv}
}

func evalAssign(a *ast.Assign, env object.Environment) (object.Value, error) {
	v, err := evalExpr(a.Value, env)
	if err != nil {
		return nil, err
	}
	switch t := a.Target.(type) {
	case *ast.Identifier:
		if !env.Set(t.Name, v) {
			return nil, diag.New(diag.AssignToUndeclared, t.Sp, "assignment to undeclared name %q", t.Name)
		}
		return v, nil
	case *ast.Index:
		return v, assignIndex(t, v, env)
	case *ast.FieldAccess:
		return v, assignField(t, v, env)
	}
	return nil, fmt.Errorf("eval: unsupported assignment target %T", a.Target)
}

func assignIndex(t *ast.Index, v object.Value, env object.Environment) error {
	recv, err := evalExpr(t.Recv, env)
	if err != nil {
		return err
	}
	list, ok := recv.(*object.List)
	if !ok {
		return diag.New(diag.TypeMismatch, t.Sp, "index assignment target is not a list")
	}
	idxVal, err := evalExpr(t.Idx, env)
	if err != nil {
		return err
	}
	iv, ok := idxVal.(object.Int)
	if !ok {
		return diag.New(diag.TypeMismatch, t.Idx.Span(), "list index must be Int")
	}
	i := normalizeIndex(iv.Value, len(list.Elems))
	if i < 0 || i >= len(list.Elems) {
		return diag.New(diag.IndexOutOfRange, t.Sp, "index %d out of range for list of length %d", iv.Value, len(list.Elems))
	}
	list.Elems[i] = v
	return nil
}

func assignField(t *ast.FieldAccess, v object.Value, env object.Environment) error {
	recv, err := evalExpr(t.Recv, env)
	if err != nil {
		return err
	}
	inst, ok := recv.(*object.StructInstance)
	if !ok {
		return diag.New(diag.TypeMismatch, t.Sp, "field assignment target is not a struct instance")
	}
	if _, exists := inst.Fields[t.Field]; !exists {
		return diag.New(diag.UnknownField, t.Sp, "struct %s has no field %q", inst.Type.Name, t.Field)
	}
	inst.Fields[t.Field] = v
	return nil
}
