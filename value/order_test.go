package value

import "testing"

func TestEqualAcrossKindsIsFalse(t *testing.T) {
	if Equal(Int(1), Float(1.0)) {
		t.Error("an Integer and a Float with the same magnitude must not compare equal")
	}
}

func TestFloatEqualityIsULPTolerant(t *testing.T) {
	a := Float(0.1 + 0.2)
	b := Float(0.3)
	if !Equal(a, b) {
		t.Errorf("expected %v to equal %v within ULP tolerance", a, b)
	}
}

func TestVectorAndListWithSameElementsAreNotEqual(t *testing.T) {
	v := Vector([]Value{Int(1), Int(2)})
	l := List([]Value{Int(1), Int(2)})
	if Equal(v, l) {
		t.Error("a vector and a list are different kinds and must not compare equal")
	}
}

func TestSetEqualityIgnoresInsertionOrder(t *testing.T) {
	a := Set([]Value{Int(1), Int(2), Int(3)})
	b := Set([]Value{Int(3), Int(2), Int(1)})
	if !Equal(a, b) {
		t.Error("sets built from the same elements in different order should be equal")
	}
}

func TestCompareIsAntisymmetric(t *testing.T) {
	pairs := []struct{ a, b Value }{
		{Int(1), Int(2)},
		{String("a"), String("b")},
		{Vector([]Value{Int(1)}), Vector([]Value{Int(1), Int(2)})},
		{Nil, Bool(false)},
	}
	for _, p := range pairs {
		c1 := Compare(p.a, p.b)
		c2 := Compare(p.b, p.a)
		if (c1 < 0) != (c2 > 0) || (c1 == 0) != (c2 == 0) {
			t.Errorf("Compare(%v, %v)=%d not antisymmetric with Compare(%v, %v)=%d", p.a, p.b, c1, p.b, p.a, c2)
		}
	}
}

func TestCompareOrdersDifferentKindsByDiscriminator(t *testing.T) {
	if !Less(Nil, Bool(true)) {
		t.Error("Nil should order before Bool per Kind declaration order")
	}
	if !Less(Bool(true), Int(0)) {
		t.Error("Bool should order before Int per Kind declaration order")
	}
}

func TestCallablesNeverEqual(t *testing.T) {
	c1 := FromCallable(nativeStub{})
	c2 := FromCallable(nativeStub{})
	if Equal(c1, c2) {
		t.Error("two Callables must never compare equal, even if identical")
	}
}

type nativeStub struct{}

func (nativeStub) Call(args []Value) (Value, error) { return Nil, nil }
func (nativeStub) Describe() string                 { return "stub" }
