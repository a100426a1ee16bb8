package eval

import (
	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

// Overload is one (parameter-list, body) pair inside a Closure. An
// overload with Rest == "" takes no variadic tail.
type Overload struct {
	Mandatory []string
	Rest      string
	HasRest   bool
	Body      []value.Value
}

// Closure is the Callable a `fn`/`defn` form produces: a set of
// overloads tried in declaration order, closing over the scope active
// at definition time.
type Closure struct {
	Overloads []Overload
	Env       *scope.Scope
}

func (c *Closure) Describe() string { return "fn" }

// Call implements value.Callable by resolving the first overload whose
// arity matches len(args), binding parameters in a scope pushed on top
// of the closure's captured environment, then evaluating its body as a
// `do`.
func (c *Closure) Call(args []value.Value) (value.Value, error) {
	for _, ov := range c.Overloads {
		n := len(args)
		fixed := len(ov.Mandatory)

		switch {
		case !ov.HasRest && n == fixed:
			callScope := c.Env.Push()
			for i, name := range ov.Mandatory {
				callScope.Define(name, args[i])
			}
			return evalDo(ov.Body, callScope)

		case ov.HasRest && n >= fixed:
			callScope := c.Env.Push()
			for i, name := range ov.Mandatory {
				callScope.Define(name, args[i])
			}
			callScope.Define(ov.Rest, value.List(append([]value.Value{}, args[fixed:]...)))
			return evalDo(ov.Body, callScope)
		}
	}
	return value.Nil, &NoOverload{Arity: len(args)}
}

// parseParams validates a parameter Vector: Symbols before an optional
// single '&', then exactly one Symbol as the rest binding.
func parseParams(params value.Value) (mandatory []string, rest string, hasRest bool, err error) {
	items, ok := params.AsVector()
	if !ok {
		return nil, "", false, &BadParameters{
			Params: value.Format(params, value.Readable),
			Reason: "parameter list must be a vector",
		}
	}

	ampSeen := false
	for i, item := range items {
		sym, ok := item.AsSymbol()
		if !ok {
			return nil, "", false, &BadParameters{
				Params: value.Format(params, value.Readable),
				Reason: "every parameter must be a symbol",
			}
		}
		if sym == "&" {
			if ampSeen {
				return nil, "", false, &BadParameters{
					Params: value.Format(params, value.Readable),
					Reason: "at most one '&' is allowed",
				}
			}
			ampSeen = true
			if i != len(items)-2 {
				return nil, "", false, &BadParameters{
					Params: value.Format(params, value.Readable),
					Reason: "exactly one symbol must follow '&'",
				}
			}
			continue
		}
		if ampSeen {
			rest = sym
			hasRest = true
		} else {
			mandatory = append(mandatory, sym)
		}
	}
	return mandatory, rest, hasRest, nil
}

func buildOverload(paramsAndBody []value.Value) (Overload, error) {
	if len(paramsAndBody) == 0 {
		return Overload{}, &BadParameters{Params: "()", Reason: "missing parameter list"}
	}
	mandatory, rest, hasRest, err := parseParams(paramsAndBody[0])
	if err != nil {
		return Overload{}, err
	}
	return Overload{Mandatory: mandatory, Rest: rest, HasRest: hasRest, Body: paramsAndBody[1:]}, nil
}

// buildClosure implements the two accepted `fn` shapes: a single
// [params] body... short form, or one-or-more (params body...) list
// overloads.
func buildClosure(env *scope.Scope, tail []value.Value) (*Closure, error) {
	if len(tail) == 0 {
		return nil, &BadParameters{Params: "()", Reason: "fn requires a parameter list"}
	}

	if _, ok := tail[0].AsVector(); ok {
		ov, err := buildOverload(tail)
		if err != nil {
			return nil, err
		}
		return &Closure{Overloads: []Overload{ov}, Env: env}, nil
	}

	overloads := make([]Overload, 0, len(tail))
	for _, form := range tail {
		list, ok := form.AsList()
		if !ok {
			return nil, &BadParameters{
				Params: value.Format(form, value.Readable),
				Reason: "each overload must be a list of (params body...)",
			}
		}
		ov, err := buildOverload(list)
		if err != nil {
			return nil, err
		}
		overloads = append(overloads, ov)
	}
	return &Closure{Overloads: overloads, Env: env}, nil
}
