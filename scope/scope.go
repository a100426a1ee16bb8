// Package scope implements the immutable-link chain of name to
// value.Value frames the evaluator resolves symbols against.
package scope

import (
	"fmt"

	"github.com/volsungdenichor/edn/value"
)

// UnboundSymbol is raised by Lookup when a symbol resolves in neither
// the current frame nor any outer frame.
type UnboundSymbol struct {
	Symbol string
}

func (e *UnboundSymbol) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Symbol)
}

// Scope is a frame (Symbol -> Value) plus an optional link to an outer
// Scope. Definitions never mutate an outer frame; a function captures
// its definition-time Scope by reference, and that reference survives
// the call because Scope is heap-allocated and shared via its pointer.
type Scope struct {
	frame map[string]value.Value
	outer *Scope
}

// New constructs a root Scope with no outer link.
func New() *Scope {
	return &Scope{frame: map[string]value.Value{}}
}

// Push constructs a new Scope whose outer is s.
func (s *Scope) Push() *Scope {
	return &Scope{frame: map[string]value.Value{}, outer: s}
}

// Define inserts or overwrites sym in the current frame and returns v.
func (s *Scope) Define(sym string, v value.Value) value.Value {
	s.frame[sym] = v
	return v
}

// Lookup searches the current frame, then each outer frame in turn.
func (s *Scope) Lookup(sym string) (value.Value, error) {
	for cur := s; cur != nil; cur = cur.outer {
		if v, ok := cur.frame[sym]; ok {
			return v, nil
		}
	}
	return value.Nil, &UnboundSymbol{Symbol: sym}
}
