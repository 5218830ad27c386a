package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/netgraph/attrs"
)

// TestValue_ZeroIsInvalid verifies that the zero Value carries KindInvalid
// and matches no accessor.
func TestValue_ZeroIsInvalid(t *testing.T) {
	var v attrs.Value
	assert.Equal(t, attrs.KindInvalid, v.Kind(), "zero Value must be KindInvalid")

	_, ok := v.AsInt()
	assert.False(t, ok, "AsInt on invalid value")
	_, ok = v.AsString()
	assert.False(t, ok, "AsString on invalid value")
}

// TestValue_Constructors checks that each constructor tags the expected
// kind and that wide/narrow source widths collapse to the canonical kinds.
func TestValue_Constructors(t *testing.T) {
	cases := []struct {
		name string
		v    attrs.Value
		kind attrs.Kind
	}{
		{"Int", attrs.Int(42), attrs.KindInt},
		{"Int32", attrs.Int32(-7), attrs.KindInt},
		{"Bool", attrs.Bool(true), attrs.KindBool},
		{"Double", attrs.Double(2.5), attrs.KindDouble},
		{"Float", attrs.Float(1.5), attrs.KindDouble},
		{"String", attrs.String("x"), attrs.KindString},
		{"VectorDouble", attrs.VectorDouble([]float64{1, 2}), attrs.KindVectorDouble},
		{"VectorFloat", attrs.VectorFloat([]float32{1, 2}), attrs.KindVectorDouble},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.v.Kind())
		})
	}
}

// TestValue_Accessors verifies payload retrieval and kind-mismatch reporting.
func TestValue_Accessors(t *testing.T) {
	n, ok := attrs.Int(9).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(9), n)

	f, ok := attrs.Float(1.5).AsDouble()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f, "float32 1.5 widens exactly")

	_, ok = attrs.Int(9).AsBool()
	assert.False(t, ok, "kind mismatch must report false")
}

// TestValue_VectorIsolation checks that vector payloads are copied on
// construction and on access, so callers cannot alias internal state.
func TestValue_VectorIsolation(t *testing.T) {
	src := []float64{1, 2, 3}
	v := attrs.VectorDouble(src)
	src[0] = 99

	got, ok := v.AsVectorDouble()
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, got, "construction must copy")

	got[1] = 99
	again, _ := v.AsVectorDouble()
	assert.Equal(t, []float64{1, 2, 3}, again, "access must copy")
}

// TestEqual covers kind and payload comparison, including element-wise
// vector equality.
func TestEqual(t *testing.T) {
	assert.True(t, attrs.Equal(attrs.Int(1), attrs.Int(1)))
	assert.False(t, attrs.Equal(attrs.Int(1), attrs.Int(2)))
	assert.False(t, attrs.Equal(attrs.Int(1), attrs.Double(1)), "different kinds are never equal")
	assert.True(t, attrs.Equal(attrs.VectorDouble([]float64{1, 2}), attrs.VectorFloat([]float32{1, 2})))
	assert.False(t, attrs.Equal(attrs.VectorDouble([]float64{1, 2}), attrs.VectorDouble([]float64{1})))
	assert.True(t, attrs.Equal(attrs.Value{}, attrs.Value{}), "two zero values are equal")
}
