package eval

import (
	"fmt"

	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

// specialForm handles the raw, unevaluated tail of a special-form
// List against the current scope.
type specialForm func(tail []value.Value, sc *scope.Scope) (value.Value, error)

var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"quote": evalQuote,
		"do":    evalDoForm,
		"def":   evalDef,
		"let":   evalLet,
		"if":    evalIf,
		"cond":  evalCond,
		"fn":    evalFn,
		"defn":  evalDefn,
	}
}

func evalQuote(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail) != 1 {
		return value.Nil, fmt.Errorf("quote expects exactly 1 argument, got %d", len(tail))
	}
	return tail[0], nil
}

func evalDoForm(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	return evalDo(tail, sc)
}

// evalDo evaluates forms in order under sc, returning the last result
// or Nil if forms is empty. Used by the `do` special form, `let`
// bodies, and function invocation.
func evalDo(forms []value.Value, sc *scope.Scope) (value.Value, error) {
	result := value.Nil
	for _, f := range forms {
		v, err := Eval(f, sc)
		if err != nil {
			return value.Nil, err
		}
		result = v
	}
	return result, nil
}

func evalDef(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail) != 2 {
		return value.Nil, fmt.Errorf("def expects exactly 2 arguments, got %d", len(tail))
	}
	name, ok := tail[0].AsSymbol()
	if !ok {
		return value.Nil, fmt.Errorf("def's first argument must be a symbol, got %s", value.Format(tail[0], value.Readable))
	}
	v, err := Eval(tail[1], sc)
	if err != nil {
		return value.Nil, err
	}
	return sc.Define(name, v), nil
}

func evalLet(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail) < 1 {
		return value.Nil, fmt.Errorf("let requires a binding vector")
	}
	bindings, ok := tail[0].AsVector()
	if !ok {
		return value.Nil, fmt.Errorf("let's first argument must be a vector, got %s", value.Format(tail[0], value.Readable))
	}
	if len(bindings)%2 != 0 {
		return value.Nil, fmt.Errorf("let bindings must come in pairs, found %d", len(bindings))
	}

	letScope := sc.Push()
	for i := 0; i < len(bindings); i += 2 {
		name, ok := bindings[i].AsSymbol()
		if !ok {
			return value.Nil, fmt.Errorf("let binding name must be a symbol, got %s", value.Format(bindings[i], value.Readable))
		}
		v, err := Eval(bindings[i+1], letScope)
		if err != nil {
			return value.Nil, err
		}
		letScope.Define(name, v)
	}
	return evalDo(tail[1:], letScope)
}

func evalIf(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail) != 3 {
		return value.Nil, fmt.Errorf("if expects exactly 3 arguments (cond then else), got %d", len(tail))
	}
	cond, err := Eval(tail[0], sc)
	if err != nil {
		return value.Nil, err
	}
	b, err := cond.MustBool()
	if err != nil {
		return value.Nil, err
	}
	if b {
		return Eval(tail[1], sc)
	}
	return Eval(tail[2], sc)
}

var elseKeyword = value.Keyword("else")

func evalCond(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail)%2 != 0 {
		return value.Nil, fmt.Errorf("cond clauses must come in (test expr) pairs, found %d forms", len(tail))
	}
	for i := 0; i < len(tail); i += 2 {
		test := tail[i]
		if value.Equal(test, elseKeyword) {
			return Eval(tail[i+1], sc)
		}
		cond, err := Eval(test, sc)
		if err != nil {
			return value.Nil, err
		}
		b, err := cond.MustBool()
		if err != nil {
			return value.Nil, err
		}
		if b {
			return Eval(tail[i+1], sc)
		}
	}
	return value.Nil, nil
}

func evalFn(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	c, err := buildClosure(sc, tail)
	if err != nil {
		return value.Nil, err
	}
	return value.FromCallable(c), nil
}

func evalDefn(tail []value.Value, sc *scope.Scope) (value.Value, error) {
	if len(tail) < 1 {
		return value.Nil, fmt.Errorf("defn requires a name")
	}
	name, ok := tail[0].AsSymbol()
	if !ok {
		return value.Nil, fmt.Errorf("defn's first argument must be a symbol, got %s", value.Format(tail[0], value.Readable))
	}
	c, err := buildClosure(sc, tail[1:])
	if err != nil {
		return value.Nil, err
	}
	return sc.Define(name, value.FromCallable(c)), nil
}
