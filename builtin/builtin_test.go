package builtin

import (
	"testing"

	"github.com/volsungdenichor/edn/bridge"
	"github.com/volsungdenichor/edn/scope"
	"github.com/volsungdenichor/edn/value"
)

func bridgeFunc(fn bridge.Func) value.Value { return bridge.AsValue("test-fn", fn) }

func call(t *testing.T, name string, args ...value.Value) (value.Value, error) {
	t.Helper()
	sc := Install(scope.New())
	fv, err := sc.Lookup(name)
	if err != nil {
		t.Fatalf("builtin %q not installed: %v", name, err)
	}
	fn, ok := fv.AsCallable()
	if !ok {
		t.Fatalf("builtin %q is not callable", name)
	}
	return fn.Call(args)
}

func mustOk(t *testing.T, v value.Value, err error) value.Value {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v
}

func mustCall(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	v, err := call(t, name, args...)
	return mustOk(t, v, err)
}

func TestArithmeticIntegerFold(t *testing.T) {
	v := mustCall(t, "+", value.Int(1), value.Int(2), value.Int(3))
	if n, _ := v.AsInt(); n != 6 {
		t.Errorf("+ = %d, want 6", n)
	}
}

func TestArithmeticPromotesToFloat(t *testing.T) {
	v := mustCall(t, "+", value.Int(1), value.Float(2.5))
	f, ok := v.AsFloat()
	if !ok || f != 3.5 {
		t.Errorf("+ = %v, want float 3.5", v)
	}
}

func TestArithmeticIdentityOnNoArgs(t *testing.T) {
	v := mustCall(t, "+")
	if n, _ := v.AsInt(); n != 0 {
		t.Errorf("(+ ) = %d, want 0", n)
	}
	v = mustCall(t, "*")
	if n, _ := v.AsInt(); n != 1 {
		t.Errorf("(*) = %d, want 1", n)
	}
}

func TestUnaryMinusNegates(t *testing.T) {
	v := mustCall(t, "-", value.Int(5))
	if n, _ := v.AsInt(); n != -5 {
		t.Errorf("(- 5) = %d, want -5", n)
	}
}

func TestUnaryDivideReciprocates(t *testing.T) {
	v := mustCall(t, "/", value.Float(2))
	if f, _ := v.AsFloat(); f != 0.5 {
		t.Errorf("(/ 2.0) = %v, want 0.5", f)
	}
}

func TestDivisionByZeroIsAHostError(t *testing.T) {
	_, err := call(t, "/", value.Int(1), value.Int(0))
	if err == nil {
		t.Fatal("expected a division-by-zero error")
	}
}

func TestComparisonChains(t *testing.T) {
	v := mustCall(t, "<", value.Int(1), value.Int(2), value.Int(3))
	if b, _ := v.AsBool(); !b {
		t.Error("(< 1 2 3) should be true")
	}
	v = mustCall(t, "<", value.Int(1), value.Int(3), value.Int(2))
	if b, _ := v.AsBool(); b {
		t.Error("(< 1 3 2) should be false")
	}
}

func TestEqualWorksAcrossKinds(t *testing.T) {
	v := mustCall(t, "=", value.String("a"), value.String("a"), value.String("a"))
	if b, _ := v.AsBool(); !b {
		t.Error("(= \"a\" \"a\" \"a\") should be true")
	}
	v = mustCall(t, "!=", value.Int(1), value.Int(2))
	if b, _ := v.AsBool(); !b {
		t.Error("(!= 1 2) should be true")
	}
}

func TestTypeFn(t *testing.T) {
	v := mustCall(t, "type", value.Int(1))
	if kw, _ := v.AsKeyword(); kw != "integer" {
		t.Errorf("(type 1) = %q, want :integer", kw)
	}
}

func TestOddFn(t *testing.T) {
	v := mustCall(t, "odd?", value.Int(3))
	if b, _ := v.AsBool(); !b {
		t.Error("(odd? 3) should be true")
	}
	v = mustCall(t, "odd?", value.Int(4))
	if b, _ := v.AsBool(); b {
		t.Error("(odd? 4) should be false")
	}
}

func TestMapFnAppliesOverEachElement(t *testing.T) {
	double := bridgeFunc(func(args []value.Value) (value.Value, error) {
		n, _ := args[0].AsInt()
		return value.Int(n * 2), nil
	})
	v := mustCall(t, "map", double, value.Vector([]value.Value{value.Int(1), value.Int(2), value.Int(3)}))
	items, _ := v.AsList()
	want := []int32{2, 4, 6}
	if len(items) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(items))
	}
	for i, it := range items {
		if n, _ := it.AsInt(); n != want[i] {
			t.Errorf("item %d = %d, want %d", i, n, want[i])
		}
	}
}

func TestFilterFnKeepsOnlyMatching(t *testing.T) {
	isOdd := bridgeFunc(func(args []value.Value) (value.Value, error) {
		n, _ := args[0].AsInt()
		return value.Bool(n%2 != 0), nil
	})
	v := mustCall(t, "filter", isOdd, value.Vector([]value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4)}))
	items, _ := v.AsList()
	if len(items) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(items), items)
	}
}
