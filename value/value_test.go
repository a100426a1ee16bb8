package value

import "testing"

func TestAccessorsRoundTripByKind(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"nil", Nil, KindNil},
		{"bool", Bool(true), KindBool},
		{"int", Int(42), KindInt},
		{"float", Float(3.5), KindFloat},
		{"char", Char('x'), KindChar},
		{"string", String("hi"), KindString},
		{"symbol", Symbol("foo"), KindSymbol},
		{"keyword", Keyword("foo"), KindKeyword},
		{"vector", Vector([]Value{Int(1)}), KindVector},
		{"list", List([]Value{Int(1)}), KindList},
		{"set", Set([]Value{Int(1)}), KindSet},
		{"map", Map([]MapEntry{{Key: Int(1), Value: Int(2)}}), KindMap},
		{"tagged", Tagged("inst", String("2024")), KindTagged},
		{"quoted", Quoted(Symbol("a")), KindQuoted},
	}
	for _, c := range cases {
		if c.v.Kind() != c.kind {
			t.Errorf("%s: expected kind %s, got %s", c.name, c.kind, c.v.Kind())
		}
	}
}

func TestSymbolAndKeywordPanicOnEmpty(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		f()
	}
	mustPanic("Symbol", func() { Symbol("") })
	mustPanic("Keyword", func() { Keyword("") })
}

func TestSetDeduplicatesByEquality(t *testing.T) {
	s := Set([]Value{Int(1), Int(2), Int(1), Int(2), Int(3)})
	items, _ := s.AsSet()
	if len(items) != 3 {
		t.Fatalf("expected 3 elements, got %d: %v", len(items), items)
	}
}

func TestMapLastWriteWins(t *testing.T) {
	m := Map([]MapEntry{
		{Key: Keyword("a"), Value: Int(1)},
		{Key: Keyword("a"), Value: Int(2)},
	})
	v, ok := m.MapGet(Keyword("a"))
	if !ok || v.Kind() != KindInt {
		t.Fatalf("expected a hit, got %v ok=%v", v, ok)
	}
	n, _ := v.AsInt()
	if n != 2 {
		t.Errorf("expected last-write-wins value 2, got %d", n)
	}
}

func TestMustAccessorsReportTypeMismatch(t *testing.T) {
	_, err := String("x").MustInt()
	if err == nil {
		t.Fatal("expected a TypeMismatch error")
	}
	var tm *TypeMismatch
	if _, ok := err.(*TypeMismatch); !ok {
		t.Errorf("expected *TypeMismatch, got %T", err)
	}
	_ = tm
}

func TestMapGetMissingKey(t *testing.T) {
	m := Map(nil)
	_, ok := m.MapGet(Keyword("missing"))
	if ok {
		t.Fatal("expected no hit on an empty map")
	}
}
