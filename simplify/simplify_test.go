/*
File    : gomix-lang/simplify/simplify_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package simplify

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/akashmaji946/gomix-lang/reassoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseReassocSimplify(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	prog, table, err := parser.New(toks).Parse()
	require.NoError(t, err)
	require.NoError(t, reassoc.Run(prog, table))
	return Run(prog)
}

func TestSimplify_ConstantFoldsSameKindIntArithmetic(t *testing.T) {
	prog := parseReassocSimplify(t, "1 + 2 * 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	lit, ok := stmt.X.(*ast.IntLit)
	require.True(t, ok, "fully-literal same-kind arithmetic should fold to a single IntLit")
	assert.EqualValues(t, 7, lit.Value)
}

func TestSimplify_DoesNotFoldDivisionByZero(t *testing.T) {
	prog := parseReassocSimplify(t, "1 / 0;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.Call)
	require.True(t, ok, "division by zero must survive to runtime, not fold")
	callee := call.Callee.(*ast.Identifier)
	assert.Equal(t, "/", callee.Name)
}

func TestSimplify_DoesNotFoldMixedIntFloat(t *testing.T) {
	prog := parseReassocSimplify(t, "1 + 1.0;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.Call)
	require.True(t, ok, "Int/Float mix must surface as a runtime type error, not fold")
	assert.Len(t, call.Args, 2)
}

func TestSimplify_BinaryDesugarsToCallOfOperatorIdentifier(t *testing.T) {
	prog := parseReassocSimplify(t, "let x = a - b;")
	// a - b references undeclared names but simplify runs after resolve in
	// the real pipeline; here we only exercise desugaring shape.
	let := prog.Stmts[0].(*ast.Let)
	call, ok := let.Init.(*ast.Call)
	require.True(t, ok)
	callee := call.Callee.(*ast.Identifier)
	assert.Equal(t, "-", callee.Name)
	require.Len(t, call.Args, 2)
}

func TestSimplify_UnaryDesugarsToCallOfOperatorIdentifier(t *testing.T) {
	prog := parseReassocSimplify(t, "- x;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	call, ok := stmt.X.(*ast.Call)
	require.True(t, ok)
	callee := call.Callee.(*ast.Identifier)
	assert.Equal(t, "-", callee.Name)
	require.Len(t, call.Args, 1)
}

func TestSimplify_TopLevelFunDeclBecomesLetOfLambda(t *testing.T) {
	prog := parseReassocSimplify(t, "fun add(a, b) { return a + b; }")
	let, ok := prog.Stmts[0].(*ast.Let)
	require.True(t, ok, "a non-method fun decl should desugar to let name = lambda")
	assert.Equal(t, "add", let.Name)
	lam, ok := let.Init.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
}

func TestSimplify_MethodFunDeclIsNotDesugaredToLet(t *testing.T) {
	prog := parseReassocSimplify(t, `
struct P { x, y }
impl P {
	fun sum(self) { return self.x + self.y; }
}
`)
	ib, ok := prog.Stmts[1].(*ast.ImplBlock)
	require.True(t, ok)
	require.Len(t, ib.Methods, 1)
	assert.True(t, ib.Methods[0].IsMethod)
}
