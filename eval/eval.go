// Package eval implements the tree-walking evaluator: a
// pattern-directed reducer over value.Value against a scope.Scope.
package eval

import (
	"github.com/pkg/errors"

	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

// Eval reduces v against sc. Every recursive call wraps a failure with
// the formatted form being evaluated, so a returned error carries a
// breadcrumb from the outermost form down to the one that actually
// failed.
func Eval(v value.Value, sc *scope.Scope) (value.Value, error) {
	result, err := dispatch(v, sc)
	if err != nil {
		return value.Nil, errors.Wrapf(err, "Error on evaluating `%s`", value.Format(v, value.Readable))
	}
	return result, nil
}

func dispatch(v value.Value, sc *scope.Scope) (value.Value, error) {
	switch v.Kind() {
	case value.KindNil, value.KindBool, value.KindInt, value.KindFloat, value.KindChar,
		value.KindString, value.KindKeyword, value.KindTagged, value.KindCallable:
		return v, nil

	case value.KindQuoted:
		payload, _ := v.AsQuoted()
		return payload, nil

	case value.KindSymbol:
		name, _ := v.AsSymbol()
		return sc.Lookup(name)

	case value.KindVector:
		items, _ := v.AsVector()
		out := make([]value.Value, len(items))
		for i, item := range items {
			r, err := Eval(item, sc)
			if err != nil {
				return value.Nil, err
			}
			out[i] = r
		}
		return value.Vector(out), nil

	case value.KindSet:
		items, _ := v.AsSet()
		out := make([]value.Value, len(items))
		for i, item := range items {
			r, err := Eval(item, sc)
			if err != nil {
				return value.Nil, err
			}
			out[i] = r
		}
		return value.Set(out), nil

	case value.KindMap:
		entries, _ := v.AsMap()
		out := make([]value.MapEntry, len(entries))
		for i, e := range entries {
			k, err := Eval(e.Key, sc)
			if err != nil {
				return value.Nil, err
			}
			val, err := Eval(e.Value, sc)
			if err != nil {
				return value.Nil, err
			}
			out[i] = value.MapEntry{Key: k, Value: val}
		}
		return value.Map(out), nil

	case value.KindList:
		items, _ := v.AsList()
		return evalList(items, sc)

	default:
		return v, nil
	}
}

func evalList(items []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(items) == 0 {
		return value.List(nil), nil
	}

	head, tail := items[0], items[1:]

	if name, ok := head.AsSymbol(); ok {
		if handler, ok := specialForms[name]; ok {
			return handler(tail, sc)
		}
	}

	fn, err := Eval(head, sc)
	if err != nil {
		return value.Nil, err
	}
	callable, err := fn.MustCallable()
	if err != nil {
		return value.Nil, err
	}

	args := make([]value.Value, len(tail))
	for i, item := range tail {
		v, err := Eval(item, sc)
		if err != nil {
			return value.Nil, err
		}
		args[i] = v
	}

	return callable.Call(args)
}
