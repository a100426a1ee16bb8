package bridge

import (
	"testing"

	"github.com/volsungdenichor/edn/value"
)

func TestNativeFnCallDelegatesAndWrapsError(t *testing.T) {
	fn := New("boom", func(args []value.Value) (value.Value, error) {
		return value.Nil, NewHostError("boom", "always fails")
	})
	_, err := fn.Call(nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := err.Error(), "boom: boom: always fails"; got != want {
		t.Errorf("Call error = %q, want %q", got, want)
	}
}

func TestNativeFnCallSuccess(t *testing.T) {
	fn := New("id", func(args []value.Value) (value.Value, error) {
		return args[0], nil
	})
	v, err := fn.Call([]value.Value{value.Int(7)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := v.AsInt(); n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
}

func TestAsValueProducesACallable(t *testing.T) {
	v := AsValue("noop", func(args []value.Value) (value.Value, error) { return value.Nil, nil })
	c, ok := v.AsCallable()
	if !ok {
		t.Fatal("expected a callable Value")
	}
	if c.Describe() != "native:noop" {
		t.Errorf("expected description 'native:noop', got %q", c.Describe())
	}
}

func TestCheckArity(t *testing.T) {
	if err := CheckArity("f", []value.Value{value.Int(1)}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckArity("f", nil, 1); err == nil {
		t.Error("expected an arity error")
	}
}

func TestCheckArityAtLeast(t *testing.T) {
	if err := CheckArityAtLeast("f", []value.Value{value.Int(1), value.Int(2)}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckArityAtLeast("f", nil, 1); err == nil {
		t.Error("expected an arity error")
	}
}
