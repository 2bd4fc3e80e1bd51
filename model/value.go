package model

import (
	"fmt"
	"reflect"

	"xml-binder/primitive"
)

var bytesType = reflect.TypeFor[[]byte]()

// assign stores v into dst, coercing it to the type of dst.
func assign(dst reflect.Value, v any) error {
	if v == nil {
		dst.SetZero()

		return nil
	}

	return assignValue(dst, reflect.ValueOf(v))
}

func assignValue(dst, src reflect.Value) error {
	for src.Kind() == reflect.Interface {
		if src.IsNil() {
			dst.SetZero()

			return nil
		}

		src = src.Elem()
	}

	dt := dst.Type()

	if src.Type().AssignableTo(dt) {
		if err := primitive.Validate(src); err != nil {
			return err
		}

		dst.Set(src)

		return nil
	}

	switch {
	case src.Kind() == reflect.Pointer:
		if src.IsNil() {
			dst.SetZero()

			return nil
		}

		return assignValue(dst, src.Elem())
	case dt.Kind() == reflect.Pointer:
		p := reflect.New(dt.Elem())
		if err := assignValue(p.Elem(), src); err != nil {
			return err
		}

		dst.Set(p)

		return nil
	case dt.Kind() == reflect.Slice && src.Kind() == reflect.Slice && dt != bytesType:
		out := reflect.MakeSlice(dt, src.Len(), src.Len())
		for i := range src.Len() {
			if err := assignValue(out.Index(i), src.Index(i)); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}

		dst.Set(out)

		return nil
	}

	out, err := primitive.Convert(src, dt, primitive.CategoryAll)
	if err != nil {
		return err
	}

	dst.Set(out)

	return nil
}

// isNull reports whether a field value stands for null. Nil pointers,
// interfaces, slices and maps are null; the zero value of other kinds is null
// only for optional fields.
func isNull(v reflect.Value, optional bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	default:
		return optional && v.IsZero()
	}
}

// plain returns the value held by a field with pointers dereferenced, or nil.
func plain(v reflect.Value) any {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil
	}

	return v.Interface()
}
