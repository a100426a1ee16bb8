package codec

import (
	"testing"

	"github.com/volsungdenichor/edn/value"
)

type suit int

const (
	clubs suit = iota
	hearts
)

var suitEnum = NewEnum(
	struct {
		Value suit
		Name  string
	}{clubs, "clubs"},
	struct {
		Value suit
		Name  string
	}{hearts, "hearts"},
)

func TestEnumEncodeDecodeRoundTrip(t *testing.T) {
	v, err := suitEnum.Encode(hearts)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if kw, _ := v.AsKeyword(); kw != "hearts" {
		t.Errorf("Encode(hearts) = %q, want :hearts", kw)
	}
	back, err := suitEnum.Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back != hearts {
		t.Errorf("Decode round trip = %v, want hearts", back)
	}
}

func TestEnumEncodeUnregisteredValueFails(t *testing.T) {
	_, err := suitEnum.Encode(suit(99))
	if err == nil {
		t.Fatal("expected an error for an unregistered enum value")
	}
}

func TestEnumDecodeNonKeywordFails(t *testing.T) {
	_, err := suitEnum.Decode(value.Int(1))
	if err == nil {
		t.Fatal("expected an error decoding a non-keyword value")
	}
}

func TestEnumDecodeUnknownKeywordFails(t *testing.T) {
	_, err := suitEnum.Decode(value.Keyword("spades"))
	if err == nil {
		t.Fatal("expected an error for an unknown keyword")
	}
}
