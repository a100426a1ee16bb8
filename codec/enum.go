package codec

import (
	"fmt"

	"github.com/volsungdenichor/edn/value"
)

// Enum is a bidirectional mapping between a comparable Go constant
// type and a Keyword Value, grounded on main.cpp's enum_codec<E>
// template.
type Enum[E comparable] struct {
	toKeyword map[E]string
	toValue   map[string]E
}

// NewEnum builds an Enum from (constant, keyword-name) pairs.
func NewEnum[E comparable](pairs ...struct {
	Value E
	Name  string
}) *Enum[E] {
	e := &Enum[E]{toKeyword: map[E]string{}, toValue: map[string]E{}}
	for _, p := range pairs {
		e.toKeyword[p.Value] = p.Name
		e.toValue[p.Name] = p.Value
	}
	return e
}

// Encode maps a Go constant to its Keyword Value.
func (e *Enum[E]) Encode(v E) (value.Value, error) {
	name, ok := e.toKeyword[v]
	if !ok {
		return value.Nil, fmt.Errorf("codec: unregistered enum value %v", v)
	}
	return value.Keyword(name), nil
}

// Decode maps a Keyword Value back to its Go constant.
func (e *Enum[E]) Decode(v value.Value) (E, error) {
	var zero E
	name, ok := v.AsKeyword()
	if !ok {
		return zero, fmt.Errorf("codec: expected a keyword, got %s", value.Format(v, value.Readable))
	}
	c, ok := e.toValue[name]
	if !ok {
		return zero, fmt.Errorf("codec: unknown enum keyword %q", name)
	}
	return c, nil
}
