package transform

import (
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"xml-binder/primitive"
)

var (
	Bool     Transform = boolean{}
	Int32              = Integer(primitive.KindInt32)
	Int64              = Integer(primitive.KindInt64)
	Float32            = Float(primitive.KindFloat32)
	Float64            = Float(primitive.KindFloat64)
	DateTime Transform = dateTime{}
	ASCII    Transform = ascii{}
)

// DateTimeLayouts are tried in order when parsing date-time text.
var DateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

type boolean struct{}

func (boolean) Serialize(v any) (any, error) {
	rv, ok := deref(v)
	if !ok {
		return nil, nil
	}

	if rv.Kind() != reflect.Bool {
		return nil, valueError(v, "not a boolean")
	}

	if rv.Bool() {
		return "true", nil
	}

	return "false", nil
}

func (boolean) Deserialize(v any) (any, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}

	switch s {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return nil, valueError(v, "not a boolean literal")
	}
}

type integer struct {
	kind primitive.KindEnum
}

// Integer returns a transform for the signed integer kind. Values outside
// the range of the kind wrap modulo its width, in both directions.
func Integer(kind primitive.KindEnum) Transform {
	if !kind.IsSigned() {
		panic("integer transform requires a signed integer kind, got: " + kind.String())
	}

	return integer{kind: kind}
}

func (t integer) Serialize(v any) (any, error) {
	rv, ok := deref(v)
	if !ok {
		return nil, nil
	}

	if k := primitive.FromReflectType(rv.Type()); !k.IsInteger() && (k != primitive.KindValueEnum || !rv.CanInt()) {
		return nil, valueError(v, "not an integer")
	}

	out, err := primitive.Convert(rv, t.kind.Type(), primitive.CategoryAll)
	if err != nil {
		return nil, valueError(v, "%v", err)
	}

	return strconv.FormatInt(out.Int(), 10), nil
}

func (t integer) Deserialize(v any) (any, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}

	n, parsed := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)
	if !parsed {
		return nil, valueError(v, "not an integer literal")
	}

	low := int64(new(big.Int).And(n, maxUint64).Uint64()) //nolint:gosec // wrapping is intended

	out, err := primitive.Convert(reflect.ValueOf(low), t.kind.Type(), primitive.CategoryAll)
	if err != nil {
		return nil, valueError(v, "%v", err)
	}

	return out.Interface(), nil
}

type float struct {
	kind primitive.KindEnum
}

// Float returns a transform for the float kind.
func Float(kind primitive.KindEnum) Transform {
	if !kind.IsFloat() {
		panic("float transform requires a float kind, got: " + kind.String())
	}

	return float{kind: kind}
}

func (t float) Serialize(v any) (any, error) {
	rv, ok := deref(v)
	if !ok {
		return nil, nil
	}

	if !primitive.FromReflectType(rv.Type()).IsNumber() {
		return nil, valueError(v, "not a number")
	}

	out, err := primitive.Convert(rv, t.kind.Type(), primitive.CategoryAll)
	if err != nil {
		return nil, valueError(v, "%v", err)
	}

	return strconv.FormatFloat(out.Float(), 'g', -1, t.kind.Bits()), nil
}

func (t float) Deserialize(v any) (any, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}

	f, err := strconv.ParseFloat(s, t.kind.Bits())
	if err != nil {
		return nil, valueError(v, "not a float literal")
	}

	return reflect.ValueOf(f).Convert(t.kind.Type()).Interface(), nil
}

type dateTime struct{}

func (dateTime) Serialize(v any) (any, error) {
	rv, ok := deref(v)
	if !ok {
		return nil, nil
	}

	ts, isTime := rv.Interface().(time.Time)
	if !isTime {
		return nil, valueError(v, "not a time")
	}

	return ts.Format(time.RFC3339Nano), nil
}

func (dateTime) Deserialize(v any) (any, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}

	for _, layout := range DateTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return nil, valueError(v, "not an ISO-8601 date-time")
}

type ascii struct{}

func (ascii) Serialize(v any) (any, error) {
	rv, ok := deref(v)
	if !ok {
		return nil, nil
	}

	b, isBytes := rv.Interface().([]byte)
	if !isBytes {
		return nil, valueError(v, "not a byte slice")
	}

	if len(b) == 0 {
		return nil, nil
	}

	for _, c := range b {
		if c > unicode.MaxASCII {
			return nil, valueError(v, "non-ASCII byte 0x%02x", c)
		}
	}

	return string(b), nil
}

func (ascii) Deserialize(v any) (any, error) {
	s, ok, err := text(v)
	if !ok || err != nil {
		return nil, err
	}

	return []byte(s), nil
}

// deref unwraps pointers; ok is false for nil.
func deref(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}

		rv = rv.Elem()
	}

	return rv, true
}

// text unwraps XML text; ok is false for nil and the empty string, both of
// which deserialize to nil. Surrounding whitespace is ignored.
func text(v any) (string, bool, error) {
	rv, ok := deref(v)
	if !ok {
		return "", false, nil
	}

	if rv.Kind() != reflect.String {
		return "", false, valueError(v, "not text")
	}

	s := strings.TrimSpace(rv.String())

	return s, s != "", nil
}
