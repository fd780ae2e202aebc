/*
File    : gomix-lang/diag/diag.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag defines the error taxonomy and warning records shared by
// every pass in the pipeline. Each pass aborts on the first error it
// produces and surfaces it verbatim to the driver; warnings, in contrast,
// accumulate and are returned alongside a successful result.
package diag

import (
	"fmt"

	"github.com/akashmaji946/gomix-lang/span"
)

// Kind identifies which phase and failure mode produced a Diagnostic.
type Kind string

const (
	LexError       Kind = "LexError"
	ParseError     Kind = "ParseError"
	UnknownOperator          Kind = "UnknownOperator"
	AmbiguousAssociativity   Kind = "AmbiguousAssociativity"
	UndeclaredName    Kind = "UndeclaredName"
	RedeclaredName    Kind = "RedeclaredName"
	AssignToUndeclared Kind = "AssignToUndeclared"
	TypeMismatch      Kind = "TypeMismatch"
	DivisionByZero    Kind = "DivisionByZero"
	IndexOutOfRange   Kind = "IndexOutOfRange"
	UnknownField      Kind = "UnknownField"
	ArityMismatch     Kind = "ArityMismatch"
	BreakOutsideLoop     Kind = "BreakOutsideLoop"
	ContinueOutsideLoop  Kind = "ContinueOutsideLoop"
	ReturnOutsideFunction Kind = "ReturnOutsideFunction"
)

// Error is the single concrete type behind every pipeline failure. It
// carries the offending Kind, a human-readable Message, and the primary
// Span the host should use to render a caret under the source line.
type Error struct {
	Kind    Kind
	Message string
	Span    span.Span
}

// Error implements the error interface, formatting as "[Kind] message
// (line:col)" (e.g. "[ParseError] ...") to match the bracketed-tag style
// the REPL and CLI print in red.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s (%s)", e.Kind, e.Message, e.Span)
}

// New builds an *Error for the given kind, formatted message, and span.
func New(kind Kind, sp span.Span, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Span: sp}
}

// Warning is a non-fatal diagnostic — currently only the resolver's
// unused-name report. Warnings never abort a pass.
type Warning struct {
	Message string
	Span    span.Span
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s)", w.Message, w.Span)
}
