/*
File    : gomix-lang/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the node types produced by the parser and consumed
// by every later pass (reassoc, resolve, simplify, eval). Every node
// carries a Span so diagnostics can point back at source text.
//
// The parser emits every Binary node uniformly right-associative at a
// single precedence (see package reassoc for why); nothing in this
// package enforces shape, it only stores it.
package ast

import "github.com/akashmaji946/gomix-lang/span"

// Node is satisfied by every Expr and Stmt.
type Node interface {
	Span() span.Span
}

// Expr is satisfied by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file or REPL line.
type Program struct {
	Stmts []Stmt
	Sp    span.Span
}

func (p *Program) Span() span.Span { return p.Sp }

// ---- Expressions ----

type IntLit struct {
	Value int32
	Sp    span.Span
}

type FloatLit struct {
	Value float32
	Sp    span.Span
}

type BoolLit struct {
	Value bool
	Sp    span.Span
}

type StringLit struct {
	Value string
	Sp    span.Span
}

type UnitLit struct {
	Sp span.Span
}

type ListLit struct {
	Elems []Expr
	Sp    span.Span
}

type Identifier struct {
	Name string
	Sp   span.Span
}

// Unary is a prefix application of a single symbol token (e.g. "-x",
// "!ok"). Every leading symbol in the parser's `symbol* postfix_chain`
// rule becomes its own nested Unary node.
type Unary struct {
	Op     string
	OpSpan span.Span
	X      Expr
	Sp     span.Span
}

// Binary is a binary application. The parser only ever produces binaries
// shaped as a uniformly right-leaning spine at precedence 0; reassoc
// rebuilds the real shape per the fixity table before anything downstream
// sees it.
type Binary struct {
	Op     string
	OpSpan span.Span
	L, R   Expr
	Sp     span.Span
}

type Call struct {
	Callee Expr
	Args   []Expr
	Sp     span.Span
}

type Index struct {
	Recv Expr
	Idx  Expr
	Sp   span.Span
}

type FieldAccess struct {
	Recv  Expr
	Field string
	Sp    span.Span
}

// Assign covers every assignment target shape — identifier, index, and
// field — spec.md lists a statement-level "Assign" variant separately for
// emphasis on indexed/field writes, but since assignment only ever
// appears as an expression-statement in the grammar, this single node
// backs both: a bare assignment statement is just ExprStmt{X: *Assign}.
type Assign struct {
	Target Expr
	Value  Expr
	Sp     span.Span
}

type Lambda struct {
	Params []string
	Body   *Block
	Sp     span.Span
}

func (*IntLit) exprNode()      {}
func (*FloatLit) exprNode()    {}
func (*BoolLit) exprNode()     {}
func (*StringLit) exprNode()   {}
func (*UnitLit) exprNode()     {}
func (*ListLit) exprNode()     {}
func (*Identifier) exprNode()  {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Call) exprNode()        {}
func (*Index) exprNode()       {}
func (*FieldAccess) exprNode() {}
func (*Assign) exprNode()      {}
func (*Lambda) exprNode()      {}

func (n *IntLit) Span() span.Span      { return n.Sp }
func (n *FloatLit) Span() span.Span    { return n.Sp }
func (n *BoolLit) Span() span.Span     { return n.Sp }
func (n *StringLit) Span() span.Span   { return n.Sp }
func (n *UnitLit) Span() span.Span     { return n.Sp }
func (n *ListLit) Span() span.Span     { return n.Sp }
func (n *Identifier) Span() span.Span  { return n.Sp }
func (n *Unary) Span() span.Span       { return n.Sp }
func (n *Binary) Span() span.Span      { return n.Sp }
func (n *Call) Span() span.Span        { return n.Sp }
func (n *Index) Span() span.Span       { return n.Sp }
func (n *FieldAccess) Span() span.Span { return n.Sp }
func (n *Assign) Span() span.Span      { return n.Sp }
func (n *Lambda) Span() span.Span      { return n.Sp }

// ---- Statements ----

type ExprStmt struct {
	X  Expr
	Sp span.Span
}

type Let struct {
	Name string
	Init Expr
	Sp   span.Span
}

type If struct {
	Cond Expr
	Then *Block
	Else *Block // nil if no else; `else if` is nested as Else={If} sugar
	Sp   span.Span
}

type While struct {
	Cond Expr
	Body *Block
	Sp   span.Span
}

type Block struct {
	Stmts []Stmt
	Sp    span.Span
}

type Return struct {
	Value Expr // nil for bare `return;`
	Sp    span.Span
}

type Break struct{ Sp span.Span }

type Continue struct{ Sp span.Span }

// DeclaredFixity is the optional `infixl`/`infixr` prefix on a `fun`
// declaration whose name is a symbol.
type DeclaredFixity struct {
	Assoc      Assoc
	Precedence int
}

type FunDecl struct {
	Name     string
	Params   []string
	Body     *Block
	Fixity   *DeclaredFixity // non-nil only for infixl/infixr-prefixed decls
	IsMethod bool            // true when parsed inside an impl block
	Sp       span.Span
}

type StructDecl struct {
	Name   string
	Fields []string
	Sp     span.Span
}

type ImplBlock struct {
	StructName string
	Methods    []*FunDecl
	Sp         span.Span
}

func (*ExprStmt) stmtNode()   {}
func (*Let) stmtNode()        {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Block) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Break) stmtNode()      {}
func (*Continue) stmtNode()   {}
func (*FunDecl) stmtNode()    {}
func (*StructDecl) stmtNode() {}
func (*ImplBlock) stmtNode()  {}

func (n *ExprStmt) Span() span.Span   { return n.Sp }
func (n *Let) Span() span.Span        { return n.Sp }
func (n *If) Span() span.Span         { return n.Sp }
func (n *While) Span() span.Span      { return n.Sp }
func (n *Block) Span() span.Span      { return n.Sp }
func (n *Return) Span() span.Span     { return n.Sp }
func (n *Break) Span() span.Span      { return n.Sp }
func (n *Continue) Span() span.Span   { return n.Sp }
func (n *FunDecl) Span() span.Span    { return n.Sp }
func (n *StructDecl) Span() span.Span { return n.Sp }
func (n *ImplBlock) Span() span.Span  { return n.Sp }
