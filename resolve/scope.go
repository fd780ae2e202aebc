/*
File    : gomix-lang/resolve/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolve

import "github.com/akashmaji946/gomix-lang/span"

// scope is a single link in the lexical visibility chain. It answers "is
// this name reachable from here", which is a separate question from
// global uniqueness (tracked on Resolver.global): a name can be declared
// exactly once in the whole program and still be invisible outside the
// block/function/lambda that bound it.
type scope struct {
	parent *scope
	names  map[string]span.Span
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, names: make(map[string]span.Span)}
}

func (s *scope) resolve(name string) (span.Span, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sp, ok := cur.names[name]; ok {
			return sp, true
		}
	}
	return span.Span{}, false
}

func (s *scope) declare(name string, sp span.Span) {
	s.names[name] = sp
}
