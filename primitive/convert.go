package primitive

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotConvertible = errors.New("value is not convertible")
	ErrInvalidEnum    = errors.New("value is not a valid enum member")
)

var validatorType = reflect.TypeFor[interface{ IsValid() bool }]()

// Convert converts src to the dst type when the kinds pair belongs to one of
// the allowed categories. Integer narrowing wraps modulo the target width.
// Enum results are checked against their IsValid method, when they have one.
func Convert(src reflect.Value, dst reflect.Type, allowed CategoryEnum) (reflect.Value, error) {
	if !src.IsValid() || dst == nil {
		return reflect.Value{}, fmt.Errorf("%w: missing value or target type", ErrNotConvertible)
	}

	if src.Type() == dst {
		return src, Validate(src)
	}

	srcKind := FromReflectType(src.Type())
	dstKind := FromReflectType(dst)

	if srcKind == 0 || dstKind == 0 || !allowed.Allows(ConversionPair{srcKind, dstKind}) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, src.Type(), dst)
	}

	if srcKind == KindValueEnum || dstKind == KindValueEnum {
		if (src.Kind() == reflect.Bool) != (dst.Kind() == reflect.Bool) {
			return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, src.Type(), dst)
		}
	}

	if !src.CanConvert(dst) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotConvertible, src.Type(), dst)
	}

	out := src.Convert(dst)

	return out, Validate(out)
}

// ConvertTo is Convert for plain values.
func ConvertTo[T any](v any, allowed CategoryEnum) (T, error) {
	var zero T

	out, err := Convert(reflect.ValueOf(v), reflect.TypeFor[T](), allowed)
	if err != nil {
		return zero, err
	}

	return out.Interface().(T), nil //nolint:forcetypeassert // Convert returns a value of type T
}

// Validate checks a value against its IsValid method. Zero values pass: they
// stand for an unset enum.
func Validate(v reflect.Value) error {
	if !v.IsValid() || !v.Type().Implements(validatorType) || v.IsZero() {
		return nil
	}

	if !v.Interface().(interface{ IsValid() bool }).IsValid() { //nolint:forcetypeassert // checked above
		return fmt.Errorf("%w: %v is not a valid value for %s", ErrInvalidEnum, v.Interface(), v.Type())
	}

	return nil
}
