package builtin

import "github.com/volsungdenichor/edn/value"

// numeric is a small internal helper for arithmetic promotion: integer
// with float promotes to float, otherwise the common type is kept.
type numeric struct {
	isFloat bool
	i       int32
	f       float64
}

func toNumeric(v value.Value) (numeric, bool) {
	if i, ok := v.AsInt(); ok {
		return numeric{i: i}, true
	}
	if f, ok := v.AsFloat(); ok {
		return numeric{isFloat: true, f: f}, true
	}
	return numeric{}, false
}

func (n numeric) asFloat() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n numeric) toValue() value.Value {
	if n.isFloat {
		return value.Float(n.f)
	}
	return value.Int(n.i)
}

func combine(a, b numeric, iop func(int32, int32) int32, fop func(float64, float64) float64) numeric {
	if a.isFloat || b.isFloat {
		return numeric{isFloat: true, f: fop(a.asFloat(), b.asFloat())}
	}
	return numeric{i: iop(a.i, b.i)}
}
