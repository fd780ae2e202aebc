/*
File    : gomix-lang/resolve/resolve_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolve

import (
	"testing"

	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NoWarningsWhenEveryNameUsed(t *testing.T) {
	toks := lexer.New("let x = 1; x;").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	warnings, err := Run(prog)
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestResolve_UnusedLetProducesWarning(t *testing.T) {
	toks := lexer.New("let x = 1;").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	warnings, err := Run(prog)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
}

func TestResolve_ParametersExemptFromUnusedWarning(t *testing.T) {
	toks := lexer.New("fun f(n) { return 1; }").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	warnings, err := Run(prog)
	require.NoError(t, err)
	require.Len(t, warnings, 1) // f itself is unused, n is exempt
	assert.Contains(t, warnings[0].Message, "f")
}

func TestResolve_RedeclarationIsError(t *testing.T) {
	toks := lexer.New("let y = 1; let y = 2;").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.Error(t, err)
}

func TestResolve_UndeclaredNameIsError(t *testing.T) {
	toks := lexer.New("x;").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.Error(t, err)
}

func TestResolve_AssignToUndeclaredIsError(t *testing.T) {
	toks := lexer.New("x = 1;").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.Error(t, err)
}

func TestResolve_RecursiveFunctionResolvesForwardReference(t *testing.T) {
	toks := lexer.New("fun f(n) { if n == 0 { return 1; } return n * f(n - 1); } f(5);").Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.NoError(t, err)
}

func TestResolve_StructAndImplMethodsDoNotCollideAcrossStructs(t *testing.T) {
	toks := lexer.New(`
struct P { x, y }
impl P { fun sum(p) { return p; } }
struct Q { x, y }
impl Q { fun sum(q) { return q; } }
`).Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.NoError(t, err)
}

func TestResolve_DuplicateMethodOnSameStructIsError(t *testing.T) {
	toks := lexer.New(`
struct P { x, y }
impl P {
	fun sum(p) { return p; }
	fun sum(p) { return p; }
}
`).Tokenize()
	prog, _, err := parser.New(toks).Parse()
	require.NoError(t, err)
	_, err = Run(prog)
	require.Error(t, err)
}
