package attrs

// Kind identifies the dynamic kind of a Value.
//
// The zero Kind is KindInvalid so that a zero Value is distinguishable from
// any constructed one; consumers reject it rather than guessing a default.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value. Never produced by a constructor.
	KindInvalid Kind = iota

	// KindInt holds a signed 64-bit integer (int32 sources are widened).
	KindInt

	// KindBool holds a boolean.
	KindBool

	// KindDouble holds a 64-bit float (float32 sources are widened).
	KindDouble

	// KindString holds an arbitrary string.
	KindString

	// KindVectorDouble holds a sequence of 64-bit floats.
	KindVectorDouble
)

// String returns a short human-readable kind name for diagnostics.
// Complexity: O(1).
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindVectorDouble:
		return "vector<double>"
	default:
		return "invalid"
	}
}

// Value is an immutable tagged variant over the closed kind set.
// The zero Value has KindInvalid; obtain valid values via the constructors.
type Value struct {
	kind Kind
	i    int64
	b    bool
	f    float64
	s    string
	vec  []float64
}

// Int constructs a KindInt value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Int32 constructs a KindInt value from a 32-bit source.
func Int32(v int32) Value { return Int(int64(v)) }

// Bool constructs a KindBool value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Double constructs a KindDouble value.
func Double(v float64) Value { return Value{kind: KindDouble, f: v} }

// Float constructs a KindDouble value from a 32-bit source.
func Float(v float32) Value { return Double(float64(v)) }

// String constructs a KindString value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// VectorDouble constructs a KindVectorDouble value.
// The input slice is copied; later mutation of v does not affect the Value.
// Complexity: O(len(v)).
func VectorDouble(v []float64) Value {
	cp := make([]float64, len(v))
	copy(cp, v)

	return Value{kind: KindVectorDouble, vec: cp}
}

// VectorFloat constructs a KindVectorDouble value from 32-bit elements.
// Complexity: O(len(v)).
func VectorFloat(v []float32) Value {
	cp := make([]float64, len(v))
	for i, x := range v {
		cp[i] = float64(x)
	}

	return Value{kind: KindVectorDouble, vec: cp}
}

// Kind reports the dynamic kind of v.
// Complexity: O(1).
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer payload; ok is false on kind mismatch.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsBool returns the boolean payload; ok is false on kind mismatch.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsDouble returns the float payload; ok is false on kind mismatch.
func (v Value) AsDouble() (float64, bool) { return v.f, v.kind == KindDouble }

// AsString returns the string payload; ok is false on kind mismatch.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsVectorDouble returns a copy of the vector payload; ok is false on kind
// mismatch. The copy keeps the Value immutable.
// Complexity: O(len).
func (v Value) AsVectorDouble() ([]float64, bool) {
	if v.kind != KindVectorDouble {
		return nil, false
	}
	cp := make([]float64, len(v.vec))
	copy(cp, v.vec)

	return cp, true
}

// Equal reports whether a and b have the same kind and payload.
// Vector payloads compare element-wise. Complexity: O(len) for vectors, O(1) otherwise.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == b.i
	case KindBool:
		return a.b == b.b
	case KindDouble:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindVectorDouble:
		if len(a.vec) != len(b.vec) {
			return false
		}
		for i := range a.vec {
			if a.vec[i] != b.vec[i] {
				return false
			}
		}

		return true
	default:
		return true // two invalid values are equal
	}
}
