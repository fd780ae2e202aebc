/*
File    : gomix-lang/reassoc/reassoc_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package reassoc

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAndReassoc(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	prog, table, err := parser.New(toks).Parse()
	require.NoError(t, err)
	require.NoError(t, Run(prog, table))
	return prog
}

func TestReassoc_PrecedenceClimbsOverUniformRightSpine(t *testing.T) {
	prog := parseAndReassoc(t, "1 + 2 * 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	top, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)
	_, lok := top.L.(*ast.IntLit)
	assert.True(t, lok)
	mul, rok := top.R.(*ast.Binary)
	require.True(t, rok)
	assert.Equal(t, "*", mul.Op)
}

func TestReassoc_SamePrecedenceLeftAssocGroupsLeftmostFirst(t *testing.T) {
	prog := parseAndReassoc(t, "1 - 2 - 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	top, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "-", top.Op)
	inner, ok := top.L.(*ast.Binary)
	require.True(t, ok, "left-assoc should group (1 - 2) - 3, nesting on the left")
	assert.Equal(t, "-", inner.Op)
	_, ok = top.R.(*ast.IntLit)
	assert.True(t, ok)
}

func TestReassoc_UserInfixrOperatorGroupsRightmostFirst(t *testing.T) {
	prog := parseAndReassoc(t, "infixr 7 fun **(a, b) { return a; } 2 ** 3 ** 4;")
	exprStmt := prog.Stmts[len(prog.Stmts)-1].(*ast.ExprStmt)
	top, ok := exprStmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "**", top.Op)
	_, lok := top.L.(*ast.IntLit)
	assert.True(t, lok)
	inner, rok := top.R.(*ast.Binary)
	require.True(t, rok, "infixr should group 2 ** (3 ** 4), nesting on the right")
	assert.Equal(t, "**", inner.Op)
}

func TestReassoc_ParenthesesAreAnOpaqueGroupingBoundary(t *testing.T) {
	prog := parseAndReassoc(t, "(1 + 2) * 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	top, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", top.Op)
	add, ok := top.L.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", add.Op)
	_, ok = top.R.(*ast.IntLit)
	assert.True(t, ok)
}

func TestReassoc_UnknownOperatorIsError(t *testing.T) {
	toks := lexer.New("infixl 3 fun @@(a, b) { return a; }").Tokenize()
	prog, table, err := parser.New(toks).Parse()
	require.NoError(t, err)
	// Splice in a use of a symbol the table never saw registered.
	bogus := &ast.ExprStmt{X: &ast.Binary{Op: "###", L: &ast.IntLit{Value: 1}, R: &ast.IntLit{Value: 2}}}
	prog.Stmts = append(prog.Stmts, bogus)
	err = Run(prog, table)
	require.Error(t, err)
}

func TestReassoc_ConflictingAssocAtSamePrecedenceIsAmbiguous(t *testing.T) {
	toks := lexer.New("infixl 9 fun @(a, b) { return a; } infixr 9 fun #(a, b) { return a; }").Tokenize()
	prog, table, err := parser.New(toks).Parse()
	require.NoError(t, err)
	mixed := &ast.ExprStmt{X: &ast.Binary{
		Op: "@",
		L:  &ast.IntLit{Value: 1},
		R: &ast.Binary{
			Op: "#",
			L:  &ast.IntLit{Value: 2},
			R:  &ast.IntLit{Value: 3},
		},
	}}
	prog.Stmts = append(prog.Stmts, mixed)
	err = Run(prog, table)
	require.Error(t, err)
}

func TestReassoc_NestedCallArgumentsAreReassociatedIndependently(t *testing.T) {
	prog := parseAndReassoc(t, "f(1 + 2 * 3, a - b - c);")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	call := stmt.X.(*ast.Call)
	require.Len(t, call.Args, 2)
	arg0 := call.Args[0].(*ast.Binary)
	assert.Equal(t, "+", arg0.Op)
	_, rok := arg0.R.(*ast.Binary)
	assert.True(t, rok)
	arg1 := call.Args[1].(*ast.Binary)
	assert.Equal(t, "-", arg1.Op)
	_, lok := arg1.L.(*ast.Binary)
	assert.True(t, lok, "left-assoc subtraction should nest on the left even inside a call arg")
}
