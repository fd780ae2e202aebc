/*
File    : gomix-lang/environ/environ.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environ implements the environment chain the interpreter
// evaluates against: a mapping from name to object.Value plus a link to
// a parent environment. Grounded on the teacher's scope.Scope
// (scope/scope.go), stripped of the Consts/LetVars/LetTypes bookkeeping
// that package carried for a different, type-checked `let` — this
// language's resolver already rejects redeclaration and undeclared
// names before evaluation ever runs, so the environment only needs
// lookup, define, and assign.
package environ

import "github.com/akashmaji946/gomix-lang/object"

// Environment is a single link in the lexical chain a closure captures.
type Environment struct {
	vars   map[string]object.Value
	parent *Environment
}

// New creates an environment with the given parent (nil for the root).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]object.Value), parent: parent}
}

// Get walks the chain from this environment outward, returning the first
// binding found.
func (e *Environment) Get(name string) (object.Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in this environment only, shadowing any outer
// binding of the same name for lookups rooted here. The resolver's flat
// uniqueness check means this never actually collides with an outer
// name in a valid program; Define still just overwrites rather than
// erroring, since re-validating uniqueness at eval time is not its job.
func (e *Environment) Define(name string, v object.Value) {
	e.vars[name] = v
}

// Set writes to the innermost environment in the chain that already
// binds name, leaving outer bindings created by Define in other
// environments untouched except at their own level. Returns false if no
// environment in the chain binds name.
func (e *Environment) Set(name string, v object.Value) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return true
		}
	}
	return false
}

// Child creates a new environment nested under this one, satisfying
// object.Environment for callers that only hold the interface.
func (e *Environment) Child() object.Environment {
	return New(e)
}
