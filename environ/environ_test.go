/*
File    : gomix-lang/environ/environ_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environ

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/object"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_GetWalksParentChain(t *testing.T) {
	root := New(nil)
	root.Define("x", object.Int{Value: 1})
	child := New(root)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, object.Int{Value: 1}, v)
}

func TestEnvironment_SetUpdatesOwningEnvironment(t *testing.T) {
	root := New(nil)
	root.Define("x", object.Int{Value: 1})
	child := New(root)
	ok := child.Set("x", object.Int{Value: 2})
	assert.True(t, ok)
	v, _ := root.Get("x")
	assert.Equal(t, object.Int{Value: 2}, v)
	_, definedLocally := child.vars["x"]
	assert.False(t, definedLocally)
}

func TestEnvironment_SetReturnsFalseWhenUnbound(t *testing.T) {
	root := New(nil)
	assert.False(t, root.Set("missing", object.Unit{}))
}

func TestEnvironment_DefineCapturedByReferenceEnablesRecursion(t *testing.T) {
	root := New(nil)
	// Mirrors `let f = lambda... f ...` recursion: the closure captures
	// root by reference before "f" is defined, and still sees it later.
	fn := &object.Function{Name: "f", Env: root}
	root.Define("f", fn)
	seen, ok := fn.Env.Get("f")
	assert.True(t, ok)
	assert.Same(t, fn, seen)
}
