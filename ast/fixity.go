/*
File    : gomix-lang/ast/fixity.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "fmt"

// Assoc is the associativity half of a Fixity.
type Assoc int

const (
	Left Assoc = iota
	Right
)

func (a Assoc) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Fixity is precedence (0-10) + associativity + arity for one operator
// symbol, per spec.md §3's fixity record.
type Fixity struct {
	Precedence int
	Assoc      Assoc
	Arity      int
}

// reservedSymbols may never be declared via infixl/infixr: "=" (plain
// assignment), "." (field access), "?" (reserved for future use), "|"
// (lambda parameter delimiter).
var reservedSymbols = map[string]bool{
	"=": true, ".": true, "?": true, "|": true,
}

// isReservedStarSlash mirrors lexer.isReservedStarSlash without importing
// the lexer package (ast sits below lexer in the dependency graph):
// one-or-more '*' terminated by a single '/' is reserved for block
// comment ends.
func isReservedStarSlash(s string) bool {
	if len(s) < 2 || s[len(s)-1] != '/' {
		return false
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '*' {
			return false
		}
	}
	return true
}

// IsReserved reports whether symbol can never be a user-declared operator.
func IsReserved(symbol string) bool {
	return reservedSymbols[symbol] || isReservedStarSlash(symbol)
}

// FixityTable maps operator symbols to their Fixity. One table exists per
// program run; it is built during parsing (seeded with builtins, then
// appended to by infixl/infixr declarations) and consumed by reassoc.
type FixityTable struct {
	entries map[string]Fixity
}

// NewFixityTable returns a table seeded with the builtin operators from
// spec.md §6's table.
func NewFixityTable() *FixityTable {
	t := &FixityTable{entries: make(map[string]Fixity)}
	for _, sym := range []string{"*", "/", "%"} {
		t.entries[sym] = Fixity{Precedence: 6, Assoc: Left, Arity: 2}
	}
	for _, sym := range []string{"+", "-"} {
		t.entries[sym] = Fixity{Precedence: 5, Assoc: Left, Arity: 2}
	}
	for _, sym := range []string{"==", "!=", "<", "<=", ">", ">="} {
		t.entries[sym] = Fixity{Precedence: 4, Assoc: Left, Arity: 2}
	}
	t.entries["&&"] = Fixity{Precedence: 3, Assoc: Left, Arity: 2}
	t.entries["||"] = Fixity{Precedence: 2, Assoc: Left, Arity: 2}
	// Unary operators carry no binary precedence/associativity; they
	// attach tighter than any binary by construction (see reassoc).
	t.entries[unaryKey("-")] = Fixity{Arity: 1}
	t.entries[unaryKey("!")] = Fixity{Arity: 1}
	return t
}

// unaryKey distinguishes a unary entry from a binary entry sharing the
// same symbol (e.g. unary "-" vs. binary "-").
func unaryKey(symbol string) string { return "unary:" + symbol }

// Declare appends a user fixity declaration (from `infixl`/`infixr`).
// Redeclaring any symbol — builtin or user — is an error, as is
// declaring a reserved symbol; precedence outside [0,10] is clamped
// rather than rejected.
func (t *FixityTable) Declare(symbol string, precedence int, assoc Assoc) error {
	if IsReserved(symbol) {
		return fmt.Errorf("%q is a reserved symbol and cannot be declared as an operator", symbol)
	}
	if precedence < 0 {
		precedence = 0
	} else if precedence > 10 {
		precedence = 10
	}
	if _, exists := t.entries[symbol]; exists {
		return fmt.Errorf("operator %q is already declared", symbol)
	}
	t.entries[symbol] = Fixity{Precedence: precedence, Assoc: assoc, Arity: 2}
	return nil
}

// LookupBinary returns the Fixity of symbol as a binary operator.
func (t *FixityTable) LookupBinary(symbol string) (Fixity, bool) {
	f, ok := t.entries[symbol]
	if !ok || f.Arity != 2 {
		return Fixity{}, false
	}
	return f, true
}

// IsUnary reports whether symbol is a known unary operator.
func (t *FixityTable) IsUnary(symbol string) bool {
	f, ok := t.entries[unaryKey(symbol)]
	return ok && f.Arity == 1
}

// Symbols returns every binary operator symbol in the table, builtin and
// user-declared, in no particular order.
func (t *FixityTable) Symbols() []string {
	var out []string
	for sym, f := range t.entries {
		if f.Arity == 2 {
			out = append(out, sym)
		}
	}
	return out
}
