/*
File    : gomix-lang/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *ast.FixityTable) {
	t.Helper()
	toks := lexer.New(src).Tokenize()
	prog, table, err := New(toks).Parse()
	require.NoError(t, err)
	return prog, table
}

func TestParse_LetStatement(t *testing.T) {
	prog, _ := parseSrc(t, "let x = 1 + 2;")
	require.Len(t, prog.Stmts, 1)
	let, ok := prog.Stmts[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	bin, ok := let.Init.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParse_BinaryIsUniformlyRightAssociative(t *testing.T) {
	prog, _ := parseSrc(t, "1 + 2 * 3;")
	require.Len(t, prog.Stmts, 1)
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", outer.Op)
	_, lok := outer.L.(*ast.IntLit)
	assert.True(t, lok, "left operand should be the bare literal 1")
	inner, rok := outer.R.(*ast.Binary)
	require.True(t, rok, "right operand should itself be a Binary, not flattened left")
	assert.Equal(t, "*", inner.Op)
}

func TestParse_UnaryStacksRecursively(t *testing.T) {
	prog, _ := parseSrc(t, "- - 5;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, "-", outer.Op)
	inner, ok := outer.X.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Op)
	_, ok = inner.X.(*ast.IntLit)
	assert.True(t, ok)
}

func TestParse_AssignIsRightAssociativeAndChains(t *testing.T) {
	prog, _ := parseSrc(t, "a = b = 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", outer.Target.(*ast.Identifier).Name)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Target.(*ast.Identifier).Name)
}

func TestParse_FunDeclWithInfixrRegistersOperator(t *testing.T) {
	_, table := parseSrc(t, "infixr 7 fun **(a, b) { return a; }")
	f, ok := table.LookupBinary("**")
	require.True(t, ok)
	assert.Equal(t, 7, f.Precedence)
	assert.Equal(t, ast.Right, f.Assoc)
}

func TestParse_ImplBlockRejectsOperatorMethod(t *testing.T) {
	toks := lexer.New("impl Foo { infixl 1 fun +(a, b) { return a; } }").Tokenize()
	_, _, err := New(toks).Parse()
	require.Error(t, err)
}

func TestParse_ImplBlockRejectsSymbolNamedMethod(t *testing.T) {
	toks := lexer.New("impl Foo { fun +(a, b) { return a; } }").Tokenize()
	_, _, err := New(toks).Parse()
	require.Error(t, err)
}

func TestParse_LambdaEmptyParamsIsMaximalMunchPipePipe(t *testing.T) {
	prog, _ := parseSrc(t, "let f = ||5;")
	let := prog.Stmts[0].(*ast.Let)
	lam, ok := let.Init.(*ast.Lambda)
	require.True(t, ok)
	assert.Empty(t, lam.Params)
}

func TestParse_LambdaWithParamsAndBlockBody(t *testing.T) {
	prog, _ := parseSrc(t, "let add = |a, b| { return a + b; };")
	let := prog.Stmts[0].(*ast.Let)
	lam, ok := let.Init.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lam.Params)
	require.Len(t, lam.Body.Stmts, 1)
	_, ok = lam.Body.Stmts[0].(*ast.Return)
	assert.True(t, ok)
}

func TestParse_IfElseIfIsNestedBlockSugar(t *testing.T) {
	prog, _ := parseSrc(t, "if a { } else if b { } else { }")
	ifNode, ok := prog.Stmts[0].(*ast.If)
	require.True(t, ok)
	require.NotNil(t, ifNode.Else)
	require.Len(t, ifNode.Else.Stmts, 1)
	nested, ok := ifNode.Else.Stmts[0].(*ast.If)
	require.True(t, ok)
	assert.NotNil(t, nested.Else)
}

func TestParse_ListLiteralAllowsTrailingComma(t *testing.T) {
	prog, _ := parseSrc(t, "[1, 2, 3,];")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	list, ok := stmt.X.(*ast.ListLit)
	require.True(t, ok)
	assert.Len(t, list.Elems, 3)
}

func TestParse_StructAndImplBlocks(t *testing.T) {
	prog, _ := parseSrc(t, `
struct Point { x, y }
impl Point {
	fun sum(self) { return self.x + self.y; }
}
`)
	require.Len(t, prog.Stmts, 2)
	sd, ok := prog.Stmts[0].(*ast.StructDecl)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, sd.Fields)
	ib, ok := prog.Stmts[1].(*ast.ImplBlock)
	require.True(t, ok)
	require.Len(t, ib.Methods, 1)
	assert.True(t, ib.Methods[0].IsMethod)
}

func TestParse_PostfixChainCallIndexField(t *testing.T) {
	prog, _ := parseSrc(t, "foo(1, 2)[0].bar;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	field, ok := stmt.X.(*ast.FieldAccess)
	require.True(t, ok)
	assert.Equal(t, "bar", field.Field)
	idx, ok := field.Recv.(*ast.Index)
	require.True(t, ok)
	call, ok := idx.Recv.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_UnitLiteral(t *testing.T) {
	prog, _ := parseSrc(t, "();")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	_, ok := stmt.X.(*ast.UnitLit)
	assert.True(t, ok)
}

func TestParse_MissingSemicolonIsParseError(t *testing.T) {
	toks := lexer.New("let x = 1").Tokenize()
	_, _, err := New(toks).Parse()
	require.Error(t, err)
}
