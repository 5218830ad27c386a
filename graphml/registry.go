// Type registry: the closed bidirectional mapping between attribute value
// kinds and GraphML attr.type strings, plus scalar and vector parse/format
// routines. The lookup tables are immutable package constants in effect —
// built once, read-only, safe for concurrent use.

package graphml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/netgraph/attrs"
)

// floatDigits is the rendering precision for doubles and vector elements.
// Values beyond 10 significant digits do not survive a round-trip.
const floatDigits = 10

// vectorSeparator joins vector elements on output; input splits on the
// comma alone, with surrounding whitespace trimmed per element.
const vectorSeparator = ", "

// attrTypeByKind maps each writable kind to its attr.type spelling.
var attrTypeByKind = map[attrs.Kind]string{
	attrs.KindInt:          "int",
	attrs.KindBool:         "boolean",
	attrs.KindDouble:       "double",
	attrs.KindString:       "string",
	attrs.KindVectorDouble: "vector_double",
}

// kindByAttrType maps every readable attr.type spelling to its canonical
// kind; both integer spellings collapse to KindInt, both float spellings to
// KindDouble, both vector spellings to KindVectorDouble.
var kindByAttrType = map[string]attrs.Kind{
	"int":           attrs.KindInt,
	"long":          attrs.KindInt,
	"boolean":       attrs.KindBool,
	"float":         attrs.KindDouble,
	"double":        attrs.KindDouble,
	"string":        attrs.KindString,
	"vector_float":  attrs.KindVectorDouble,
	"vector_double": attrs.KindVectorDouble,
}

// attrTypeFor returns the attr.type spelling for kind.
// Returns ErrUnsupportedType for kinds outside the writable set.
func attrTypeFor(kind attrs.Kind) (string, error) {
	if s, ok := attrTypeByKind[kind]; ok {
		return s, nil
	}

	return "", fmt.Errorf("%w: no attr.type for kind %s", ErrUnsupportedType, kind)
}

// kindFor resolves an attr.type spelling to its canonical kind.
// Returns ErrUnsupportedType for unknown spellings.
func kindFor(attrType string) (attrs.Kind, error) {
	if k, ok := kindByAttrType[attrType]; ok {
		return k, nil
	}

	return attrs.KindInvalid, fmt.Errorf("%w: attr.type %q", ErrUnsupportedType, attrType)
}

// parseValue converts data text into a value of the declared kind.
// Strings pass through unchanged; numeric and boolean text is trimmed
// first; vectors split on commas and parse each element as a double.
// Returns ErrParseValue when the text does not parse as kind.
func parseValue(kind attrs.Kind, text string) (attrs.Value, error) {
	switch kind {
	case attrs.KindInt:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return attrs.Value{}, fmt.Errorf("%w: %q as int", ErrParseValue, text)
		}

		return attrs.Int(n), nil

	case attrs.KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return attrs.Value{}, fmt.Errorf("%w: %q as boolean", ErrParseValue, text)
		}

		return attrs.Bool(b), nil

	case attrs.KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return attrs.Value{}, fmt.Errorf("%w: %q as double", ErrParseValue, text)
		}

		return attrs.Double(f), nil

	case attrs.KindString:
		return attrs.String(text), nil

	case attrs.KindVectorDouble:
		if strings.TrimSpace(text) == "" {
			return attrs.VectorDouble(nil), nil
		}
		parts := strings.Split(text, ",")
		vec := make([]float64, len(parts))
		for i, p := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return attrs.Value{}, fmt.Errorf("%w: vector element %q", ErrParseValue, p)
			}
			vec[i] = f
		}

		return attrs.VectorDouble(vec), nil

	default:
		return attrs.Value{}, fmt.Errorf("%w: kind %s", ErrUnsupportedType, kind)
	}
}

// formatValue renders v in its default textual form: integers in decimal,
// booleans as true/false, doubles with 10 significant digits, strings
// verbatim, vectors as a comma-and-space-joined list of doubles.
// Returns ErrUnsupportedType for the invalid kind.
func formatValue(v attrs.Value) (string, error) {
	switch v.Kind() {
	case attrs.KindInt:
		n, _ := v.AsInt()

		return strconv.FormatInt(n, 10), nil

	case attrs.KindBool:
		b, _ := v.AsBool()

		return strconv.FormatBool(b), nil

	case attrs.KindDouble:
		f, _ := v.AsDouble()

		return formatDouble(f), nil

	case attrs.KindString:
		s, _ := v.AsString()

		return s, nil

	case attrs.KindVectorDouble:
		vec, _ := v.AsVectorDouble()
		parts := make([]string, len(vec))
		for i, f := range vec {
			parts[i] = formatDouble(f)
		}

		return strings.Join(parts, vectorSeparator), nil

	default:
		return "", fmt.Errorf("%w: kind %s", ErrUnsupportedType, v.Kind())
	}
}

// formatDouble renders f with the documented lossy precision policy.
func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', floatDigits, 64)
}
