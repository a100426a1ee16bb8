// Package codec is the thin, out-of-core convenience layer that maps
// host record types onto value.Value: reflection-driven struct/enum
// codecs in the shape of a struct_codec/enum_codec template pair. It
// contains no hard design: it is reflection glue, not part of the
// core value model.
package codec

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/volsungdenichor/edn/value"
)

// Encode converts a Go value into a value.Value tree. Structs become
// Maps keyed by Keyword field names (kebab-cased, or the `edn:"..."`
// struct tag when present); slices and arrays become Vectors; maps
// become Maps; booleans, integers, floats and strings map onto the
// matching Value variant. Any other kind (chan, func, complex, ...)
// is an error.
func Encode(v interface{}) (value.Value, error) {
	return encode(reflect.ValueOf(v))
}

func encode(rv reflect.Value) (value.Value, error) {
	if !rv.IsValid() {
		return value.Nil, nil
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return value.Nil, nil
		}
		return encode(rv.Elem())

	case reflect.Bool:
		return value.Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int(int32(rv.Int())), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return value.Int(int32(rv.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return value.Float(rv.Float()), nil

	case reflect.String:
		return value.String(rv.String()), nil

	case reflect.Slice, reflect.Array:
		items := make([]value.Value, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			v, err := encode(rv.Index(i))
			if err != nil {
				return value.Nil, err
			}
			items[i] = v
		}
		return value.Vector(items), nil

	case reflect.Map:
		entries := make([]value.MapEntry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, err := encode(iter.Key())
			if err != nil {
				return value.Nil, err
			}
			val, err := encode(iter.Value())
			if err != nil {
				return value.Nil, err
			}
			entries = append(entries, value.MapEntry{Key: k, Value: val})
		}
		return value.Map(entries), nil

	case reflect.Struct:
		return encodeStruct(rv)

	default:
		return value.Nil, fmt.Errorf("codec: cannot encode kind %s", rv.Kind())
	}
}

func encodeStruct(rv reflect.Value) (value.Value, error) {
	t := rv.Type()
	entries := make([]value.MapEntry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" { // unexported
			continue
		}
		name := fieldName(field)
		if name == "-" {
			continue
		}
		v, err := encode(rv.Field(i))
		if err != nil {
			return value.Nil, fmt.Errorf("codec: encoding field %q: %w", field.Name, err)
		}
		entries = append(entries, value.MapEntry{Key: value.Keyword(name), Value: v})
	}
	return value.Map(entries), nil
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("edn"); ok && tag != "" {
		return tag
	}
	return toKebabCase(f.Name)
}

func toKebabCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}

// Decode converts a value.Value tree into a native Go representation
// (bool, int32, float64, string, []interface{}, map[string]interface{})
// and hands it to mapstructure to populate out, which must be a
// pointer.
func Decode(v value.Value, out interface{}) error {
	native, err := toGo(v)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "edn",
	})
	if err != nil {
		return err
	}
	return dec.Decode(native)
}

func toGo(v value.Value) (interface{}, error) {
	switch v.Kind() {
	case value.KindNil:
		return nil, nil
	case value.KindBool:
		b, _ := v.AsBool()
		return b, nil
	case value.KindInt:
		i, _ := v.AsInt()
		return i, nil
	case value.KindFloat:
		f, _ := v.AsFloat()
		return f, nil
	case value.KindChar:
		r, _ := v.AsChar()
		return string(r), nil
	case value.KindString:
		s, _ := v.AsString()
		return s, nil
	case value.KindSymbol:
		s, _ := v.AsSymbol()
		return s, nil
	case value.KindKeyword:
		s, _ := v.AsKeyword()
		return s, nil
	case value.KindVector, value.KindList, value.KindSet:
		var items []value.Value
		switch v.Kind() {
		case value.KindVector:
			items, _ = v.AsVector()
		case value.KindList:
			items, _ = v.AsList()
		case value.KindSet:
			items, _ = v.AsSet()
		}
		out := make([]interface{}, len(items))
		for i, it := range items {
			g, err := toGo(it)
			if err != nil {
				return nil, err
			}
			out[i] = g
		}
		return out, nil
	case value.KindMap:
		entries, _ := v.AsMap()
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			key, err := mapKeyString(e.Key)
			if err != nil {
				return nil, err
			}
			g, err := toGo(e.Value)
			if err != nil {
				return nil, err
			}
			out[key] = g
		}
		return out, nil
	case value.KindTagged, value.KindQuoted, value.KindCallable:
		return nil, fmt.Errorf("codec: cannot decode a %s value", v.Kind())
	default:
		return nil, fmt.Errorf("codec: unhandled kind %s", v.Kind())
	}
}

func mapKeyString(v value.Value) (string, error) {
	if k, ok := v.AsKeyword(); ok {
		return k, nil
	}
	if s, ok := v.AsString(); ok {
		return s, nil
	}
	if s, ok := v.AsSymbol(); ok {
		return s, nil
	}
	return "", fmt.Errorf("codec: map key %s is not a keyword/string/symbol", value.Format(v, value.Readable))
}
