/*
File    : gomix-lang/natives/natives_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package natives

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/gomix-lang/environ"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/span"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, env object.Environment, name string, args ...object.Value) (object.Value, error) {
	t.Helper()
	v, ok := env.Get(name)
	require.True(t, ok, "native %q not installed", name)
	fn, ok := v.(*object.NativeFunction)
	require.True(t, ok)
	return fn.Fn(args, span.Span{})
}

func TestInstall_ArithmeticOperators(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	v, err := call(t, env, "+", object.Int{Value: 2}, object.Int{Value: 3})
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 5}, v)

	v, err = call(t, env, "-", object.Int{Value: 4})
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: -4}, v)
}

func TestInstall_DivisionByZeroIsError(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	_, err := call(t, env, "/", object.Int{Value: 1}, object.Int{Value: 0})
	require.Error(t, err)
}

func TestInstall_MixedKindIsTypeMismatch(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	_, err := call(t, env, "+", object.Int{Value: 1}, object.Float{Value: 1})
	require.Error(t, err)
}

func TestInstall_LogicalOperatorsDoNotShortCircuitButStillCompute(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	v, err := call(t, env, "&&", object.Bool{Value: false}, object.Bool{Value: true})
	require.NoError(t, err)
	require.Equal(t, object.Bool{Value: false}, v)
}

func TestInstall_PrintWritesSpaceJoinedArgsWithNewline(t *testing.T) {
	var buf bytes.Buffer
	env := object.Environment(environ.New(nil))
	Install(env, &buf)

	_, err := call(t, env, "print", object.Int{Value: 1}, object.Str{Value: "hi"})
	require.NoError(t, err)
	require.Equal(t, "1 hi\n", buf.String())
}

func TestInstall_ListLenPushPop(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	list := &object.List{Elems: []object.Value{object.Int{Value: 1}}}
	v, err := call(t, env, "len", list)
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 1}, v)

	_, err = call(t, env, "push", list, object.Int{Value: 2})
	require.NoError(t, err)
	require.Equal(t, []object.Value{object.Int{Value: 1}, object.Int{Value: 2}}, list.Elems)

	popped, err := call(t, env, "pop", list)
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 2}, popped)
}

func TestInstall_PopEmptyListIsError(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	_, err := call(t, env, "pop", &object.List{})
	require.Error(t, err)
}

func TestInstall_StringHelpers(t *testing.T) {
	env := object.Environment(environ.New(nil))
	Install(env, nil)

	v, err := call(t, env, "upper", object.Str{Value: "hi"})
	require.NoError(t, err)
	require.Equal(t, object.Str{Value: "HI"}, v)

	v, err = call(t, env, "split", object.Str{Value: "a,b"}, object.Str{Value: ","})
	require.NoError(t, err)
	list, ok := v.(*object.List)
	require.True(t, ok)
	require.Equal(t, []object.Value{object.Str{Value: "a"}, object.Str{Value: "b"}}, list.Elems)

	v, err = call(t, env, "join", list, object.Str{Value: "-"})
	require.NoError(t, err)
	require.Equal(t, object.Str{Value: "a-b"}, v)
}
