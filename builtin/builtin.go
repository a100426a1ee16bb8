// Package builtin provides the default host callables installed by
// the CLI shim (cmd/edn) into a fresh root scope: arithmetic and
// comparison operators, type/print introspection, and the handful of
// higher-order functions a runnable interpreter needs. None of this is
// part of the core evaluator; it is an external collaborator wired in
// by whatever installs a root scope.
package builtin

import (
	"fmt"

	"github.com/volsungdenichor/edn/bridge"
	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

// Install defines every builtin in sc and returns it for chaining.
func Install(sc *scope.Scope) *scope.Scope {
	for name, fn := range table() {
		sc.Define(name, bridge.AsValue(name, fn))
	}
	return sc
}

func table() map[string]bridge.Func {
	return map[string]bridge.Func{
		"+":  arithFold("+", 0, addI, addF),
		"-":  subtract,
		"*":  arithFold("*", 1, mulI, mulF),
		"/":  divide,
		"=":  equalFn,
		"!=": notEqualFn,
		"<":  compareFn("<", func(c int) bool { return c < 0 }),
		">":  compareFn(">", func(c int) bool { return c > 0 }),
		"<=": compareFn("<=", func(c int) bool { return c <= 0 }),
		">=": compareFn(">=", func(c int) bool { return c >= 0 }),

		"type":  typeFn,
		"print": printFn,
		"odd?":  oddFn,
		"map":   mapFn,
		"filter": filterFn,
	}
}

func addI(a, b int32) int32     { return a + b }
func addF(a, b float64) float64 { return a + b }
func mulI(a, b int32) int32     { return a * b }
func mulF(a, b float64) float64 { return a * b }
func subI(a, b int32) int32     { return a - b }
func subF(a, b float64) float64 { return a - b }
func divF(a, b float64) float64 { return a / b }

func arithFold(name string, identity int32, iop func(int32, int32) int32, fop func(float64, float64) float64) bridge.Func {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Int(identity), nil
		}
		acc, ok := toNumeric(args[0])
		if !ok {
			return value.Nil, bridge.NewHostError(name, "argument 0 is not a number: %s", value.Format(args[0], value.Readable))
		}
		for i, a := range args[1:] {
			n, ok := toNumeric(a)
			if !ok {
				return value.Nil, bridge.NewHostError(name, "argument %d is not a number: %s", i+1, value.Format(a, value.Readable))
			}
			acc = combine(acc, n, iop, fop)
		}
		return acc.toValue(), nil
	}
}

func subtract(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArityAtLeast("-", args, 1); err != nil {
		return value.Nil, err
	}
	first, ok := toNumeric(args[0])
	if !ok {
		return value.Nil, bridge.NewHostError("-", "argument 0 is not a number: %s", value.Format(args[0], value.Readable))
	}
	if len(args) == 1 {
		return combine(numeric{}, first, func(_, b int32) int32 { return -b }, func(_, b float64) float64 { return -b }).toValue(), nil
	}
	acc := first
	for i, a := range args[1:] {
		n, ok := toNumeric(a)
		if !ok {
			return value.Nil, bridge.NewHostError("-", "argument %d is not a number: %s", i+1, value.Format(a, value.Readable))
		}
		acc = combine(acc, n, subI, subF)
	}
	return acc.toValue(), nil
}

func divide(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArityAtLeast("/", args, 1); err != nil {
		return value.Nil, err
	}
	first, ok := toNumeric(args[0])
	if !ok {
		return value.Nil, bridge.NewHostError("/", "argument 0 is not a number: %s", value.Format(args[0], value.Readable))
	}
	if len(args) == 1 {
		if first.asFloat() == 0 {
			return value.Nil, bridge.NewHostError("/", "division by zero")
		}
		return value.Float(1 / first.asFloat()), nil
	}
	acc := first
	for i, a := range args[1:] {
		n, ok := toNumeric(a)
		if !ok {
			return value.Nil, bridge.NewHostError("/", "argument %d is not a number: %s", i+1, value.Format(a, value.Readable))
		}
		if !acc.isFloat && !n.isFloat && n.i == 0 {
			return value.Nil, bridge.NewHostError("/", "division by zero")
		}
		if n.asFloat() == 0 {
			return value.Nil, bridge.NewHostError("/", "division by zero")
		}
		acc = combine(acc, n, func(a, b int32) int32 { return a / b }, divF)
	}
	return acc.toValue(), nil
}

func equalFn(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArityAtLeast("=", args, 1); err != nil {
		return value.Nil, err
	}
	for _, a := range args[1:] {
		if !value.Equal(args[0], a) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func notEqualFn(args []value.Value) (value.Value, error) {
	v, err := equalFn(args)
	if err != nil {
		return value.Nil, err
	}
	b, _ := v.AsBool()
	return value.Bool(!b), nil
}

func compareFn(name string, ok func(int) bool) bridge.Func {
	return func(args []value.Value) (value.Value, error) {
		if err := bridge.CheckArityAtLeast(name, args, 2); err != nil {
			return value.Nil, err
		}
		for i := 0; i+1 < len(args); i++ {
			if !ok(value.Compare(args[i], args[i+1])) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}
}

func typeFn(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArity("type", args, 1); err != nil {
		return value.Nil, err
	}
	return value.Keyword(args[0].Kind().String()), nil
}

func printFn(args []value.Value) (value.Value, error) {
	texts := make([]interface{}, len(args))
	for i, a := range args {
		texts[i] = value.Format(a, value.Display)
	}
	fmt.Println(texts...)
	return value.Nil, nil
}

func oddFn(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArity("odd?", args, 1); err != nil {
		return value.Nil, err
	}
	n, err := args[0].MustInt()
	if err != nil {
		return value.Nil, bridge.NewHostError("odd?", "%s", err)
	}
	return value.Bool(n%2 != 0), nil
}

func elementsOf(v value.Value) ([]value.Value, bool) {
	if items, ok := v.AsVector(); ok {
		return items, true
	}
	if items, ok := v.AsList(); ok {
		return items, true
	}
	return nil, false
}

func mapFn(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArity("map", args, 2); err != nil {
		return value.Nil, err
	}
	fn, err := args[0].MustCallable()
	if err != nil {
		return value.Nil, bridge.NewHostError("map", "%s", err)
	}
	items, ok := elementsOf(args[1])
	if !ok {
		return value.Nil, bridge.NewHostError("map", "second argument must be a vector or list, got %s", value.Format(args[1], value.Readable))
	}
	out := make([]value.Value, len(items))
	for i, it := range items {
		r, err := fn.Call([]value.Value{it})
		if err != nil {
			return value.Nil, err
		}
		out[i] = r
	}
	return value.List(out), nil
}

func filterFn(args []value.Value) (value.Value, error) {
	if err := bridge.CheckArity("filter", args, 2); err != nil {
		return value.Nil, err
	}
	pred, err := args[0].MustCallable()
	if err != nil {
		return value.Nil, bridge.NewHostError("filter", "%s", err)
	}
	items, ok := elementsOf(args[1])
	if !ok {
		return value.Nil, bridge.NewHostError("filter", "second argument must be a vector or list, got %s", value.Format(args[1], value.Readable))
	}
	var out []value.Value
	for _, it := range items {
		r, err := pred.Call([]value.Value{it})
		if err != nil {
			return value.Nil, err
		}
		keep, err := r.MustBool()
		if err != nil {
			return value.Nil, bridge.NewHostError("filter", "predicate must return a boolean: %s", err)
		}
		if keep {
			out = append(out, it)
		}
	}
	return value.List(out), nil
}
