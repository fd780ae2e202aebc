/*
File    : gomix-lang/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/environ"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/natives"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/akashmaji946/gomix-lang/reassoc"
	"github.com/akashmaji946/gomix-lang/resolve"
	"github.com/akashmaji946/gomix-lang/simplify"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (object.Value, error) {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	prog, table, err := parser.New(toks).Parse()
	require.NoError(t, err)
	require.NoError(t, reassoc.Run(prog, table))
	_, err = resolve.Run(prog)
	require.NoError(t, err)
	prog = simplify.Run(prog)
	env := object.Environment(environ.New(nil))
	natives.Install(env, nil)
	return Run(prog, env)
}

// Scenario 1: 1 + 2 * 3; -> Int 7
func TestEval_ArithmeticPrecedence(t *testing.T) {
	v, err := run(t, "1 + 2 * 3;")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 7}, v)
}

// Scenario 2: let x = 10; x = x + 5; x; -> Int 15
func TestEval_LetAndReassign(t *testing.T) {
	v, err := run(t, "let x = 10; x = x + 5; x;")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 15}, v)
}

// Scenario 3: recursive factorial -> Int 120
func TestEval_RecursiveFunction(t *testing.T) {
	v, err := run(t, "fun f(n) { if n == 0 { return 1; } return n * f(n - 1); } f(5);")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 120}, v)
}

// Scenario 4: lambda add -> Int 7
func TestEval_Lambda(t *testing.T) {
	v, err := run(t, "let add = |a, b| a + b; add(3, 4);")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 7}, v)
}

// Scenario 5: struct + impl method -> Int 5
func TestEval_StructMethod(t *testing.T) {
	v, err := run(t, "struct P { x, y } impl P { fun sum(self) { return self.x + self.y; } } let p = P(2, 3); p.sum();")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 5}, v)
}

// Scenario 6: negative-index list assignment -> [1, 2, 99]
func TestEval_NegativeIndexAssignment(t *testing.T) {
	v, err := run(t, "let xs = [1,2,3]; xs[-1] = 99; xs;")
	require.NoError(t, err)
	list, ok := v.(*object.List)
	require.True(t, ok)
	require.Equal(t, []object.Value{object.Int{Value: 1}, object.Int{Value: 2}, object.Int{Value: 99}}, list.Elems)
}

// Scenario 7: 1 / 0; -> DivisionByZero
func TestEval_DivisionByZero(t *testing.T) {
	_, err := run(t, "1 / 0;")
	require.Error(t, err)
}

// Scenario 10: 1 + 1.0; -> TypeMismatch
func TestEval_MixedIntFloatIsTypeMismatch(t *testing.T) {
	_, err := run(t, "1 + 1.0;")
	require.Error(t, err)
}

func TestEval_ClosureCapturesByReferenceForRecursion(t *testing.T) {
	v, err := run(t, "let f = |n| { if n == 0 { return 0; } return 1 + f(n - 1); }; f(3);")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 3}, v)
}

func TestEval_WhileLoopWithBreakAndContinue(t *testing.T) {
	v, err := run(t, `
let i = 0;
let total = 0;
while i < 10 {
	i = i + 1;
	if i == 5 { continue; }
	if i > 8 { break; }
	total = total + i;
}
total;
`)
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 1 + 2 + 3 + 4 + 6 + 7 + 8}, v)
}

func TestEval_ListAliasingSharesBackingStore(t *testing.T) {
	v, err := run(t, "let a = [1, 2]; let b = a; b[0] = 99; a[0];")
	require.NoError(t, err)
	require.Equal(t, object.Int{Value: 99}, v)
}

func TestEval_IndexOutOfRangeIsError(t *testing.T) {
	_, err := run(t, "let xs = [1]; xs[5];")
	require.Error(t, err)
}

func TestEval_UnknownFieldIsError(t *testing.T) {
	_, err := run(t, "struct P { x } let p = P(1); p.y;")
	require.Error(t, err)
}

func TestEval_CallArityMismatchIsError(t *testing.T) {
	_, err := run(t, "fun f(a, b) { return a; } f(1);")
	require.Error(t, err)
}
