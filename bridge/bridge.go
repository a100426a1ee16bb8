// Package bridge is the contract by which native Go functions are
// exposed as value.Callable values the evaluator can invoke exactly
// like a user-defined function.
package bridge

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/volsungdenichor/edn/value"
)

// HostError is the error kind a native callable raises on its own
// validation failures; it is opaque to the evaluator, which wraps it
// the same way it wraps any other error.
type HostError struct {
	Name    string
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// NewHostError builds a HostError for the named native function.
func NewHostError(name, format string, args ...interface{}) error {
	return &HostError{Name: name, Message: fmt.Sprintf(format, args...)}
}

// Func is the signature every native callable implements: it receives
// a borrowed slice of already-evaluated arguments and returns a
// result or an error. Implementations must not mutate args and must
// be safe to call re-entrantly, so that a host `map`/`filter` may call
// back into a user-defined function.
type Func func(args []value.Value) (value.Value, error)

// NativeFn adapts a Func to value.Callable so it can be installed into
// a Scope with value.FromCallable.
type NativeFn struct {
	Name string
	Fn   Func
}

// New wraps fn as a NativeFn Callable named name.
func New(name string, fn Func) *NativeFn {
	return &NativeFn{Name: name, Fn: fn}
}

func (n *NativeFn) Call(args []value.Value) (value.Value, error) {
	v, err := n.Fn(args)
	if err != nil {
		return value.Nil, errors.WithMessage(err, n.Name)
	}
	return v, nil
}

func (n *NativeFn) Describe() string { return "native:" + n.Name }

// AsValue is a convenience for installing a native function directly
// into a scope: scope.Define(name, bridge.AsValue(name, fn)).
func AsValue(name string, fn Func) value.Value {
	return value.FromCallable(New(name, fn))
}

// CheckArity raises a HostError unless len(args) == n.
func CheckArity(name string, args []value.Value, n int) error {
	if len(args) != n {
		return NewHostError(name, "expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

// CheckArityAtLeast raises a HostError unless len(args) >= n.
func CheckArityAtLeast(name string, args []value.Value, n int) error {
	if len(args) < n {
		return NewHostError(name, "expected at least %d argument(s), got %d", n, len(args))
	}
	return nil
}
