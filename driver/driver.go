/*
File    : gomix-lang/driver/driver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package driver wires the pipeline lexer -> parser -> reassoc ->
// resolve -> simplify -> eval into the single entry point both the REPL
// and the file runner use, grounded on the teacher's main.go/Compile
// sequencing (lex, parse, then hand the tree to an Evaluator).
//
// Every pass aborts the run at its first error, per the taxonomy's
// propagation policy: a lex error is reported before parsing starts, a
// parse error before reassociation, and so on down the chain.
package driver

import (
	"io"

	"github.com/akashmaji946/gomix-lang/ast"
	"github.com/akashmaji946/gomix-lang/diag"
	"github.com/akashmaji946/gomix-lang/environ"
	"github.com/akashmaji946/gomix-lang/eval"
	"github.com/akashmaji946/gomix-lang/lexer"
	"github.com/akashmaji946/gomix-lang/natives"
	"github.com/akashmaji946/gomix-lang/object"
	"github.com/akashmaji946/gomix-lang/parser"
	"github.com/akashmaji946/gomix-lang/reassoc"
	"github.com/akashmaji946/gomix-lang/resolve"
	"github.com/akashmaji946/gomix-lang/simplify"
)

// Result is what a full pipeline run produces: the last statement's
// value plus any non-fatal warnings the resolver collected (currently
// only unused-name reports).
type Result struct {
	Value    object.Value
	Warnings []diag.Warning
}

// NewEnvironment builds a root environment with every builtin operator
// and library native installed, ready to hand to Run. out is where
// print writes; a nil out defaults to os.Stdout (see natives.Install).
func NewEnvironment(out io.Writer) object.Environment {
	env := object.Environment(environ.New(nil))
	natives.Install(env, out)
	return env
}

// Run pushes src through the whole pipeline against env and returns the
// final expression's value. The caller owns env's lifetime: the REPL
// hands Run a fresh one per line (see package repl), while the file
// runner uses one for the whole program.
func Run(src string, env object.Environment) (Result, error) {
	prog, err := compile(src)
	if err != nil {
		return Result{}, err
	}
	warnings, err := resolve.Run(prog)
	if err != nil {
		return Result{}, err
	}
	prog = simplify.Run(prog)
	v, err := eval.Run(prog, env)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Warnings: warnings}, nil
}

// compile runs every pass up to and including reassociation, the part
// of the pipeline that is identical whether or not the caller wants to
// inspect warnings separately (RunFile and the REPL both start here).
func compile(src string) (*ast.Program, error) {
	l := lexer.New(src)
	toks := l.Tokenize()
	if l.HasErrors() {
		return nil, l.Errors()[0]
	}
	prog, table, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err
	}
	if err := reassoc.Run(prog, table); err != nil {
		return nil, err
	}
	return prog, nil
}

// RunFile loads a source file's entire contents as one program against a
// fresh environment, used by cmd/gomix's file-argument path.
func RunFile(text string, out io.Writer) (Result, error) {
	env := NewEnvironment(out)
	return Run(text, env)
}
