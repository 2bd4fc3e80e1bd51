package model

import (
	"errors"
	"reflect"
	"slices"

	"xml-binder/field"
	"xml-binder/primitive"
)

// Args are staged field values keyed by field name.
type Args map[string]any

// New builds a T, a model of f, from args.
func New[T any](f *Family, args Args) (*T, error) {
	m, ok := f.ModelFor(reflect.TypeFor[T]())
	if !ok {
		return nil, newError(ErrType, CodeNotAModel, nil, "%s is not a model of family %s", reflect.TypeFor[T](), f.name)
	}

	v, err := m.Construct(args)
	if err != nil {
		return nil, err
	}

	return v.(*T), nil //nolint:forcetypeassert // Construct returns a pointer to the model type
}

// Construct builds a model instance, returned as a pointer to the model
// struct. Each field takes its staged value, else its default, else nil when
// optional; a required field without a value fails with ErrMissingField. A nil
// staged for a required field counts as no value.
func (m *Model) Construct(args Args) (any, error) {
	var unknown []string

	for name := range args {
		if _, ok := m.byName[name]; !ok {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)

		e := m.fail(ErrUnknownField, CodeUnknownField, nil, nil, "unknown fields %v", unknown)
		e.Field = unknown[0]

		return nil, e
	}

	ptr := reflect.New(m.typ)
	rv := ptr.Elem()

	for _, fl := range m.fields {
		v, staged := args[fl.Name()]

		switch {
		case staged && (v != nil || fl.IsOptional()):
		case fl.HasDefault():
			v = fl.GetDefault()
			m.family.log().Verbose("%s.%s: using default %v", m.name, fl.Name(), v)
		case fl.IsOptional():
			v = nil
		default:
			return nil, m.fail(ErrMissingField, CodeMissingField, fl, nil, "required field has no value")
		}

		dst := rv.FieldByIndex(fl.Index())
		if err := assign(dst, v); err != nil {
			if errors.Is(err, primitive.ErrInvalidEnum) {
				return nil, m.fail(ErrValidation, CodeInvalidEnum, fl, err, "invalid value")
			}

			return nil, m.fail(ErrType, CodeWrongType, fl, err, "cannot store %T in %s", v, dst.Type())
		}

		if fl.Kind() == field.KindChild {
			continue
		}

		_, null, err := m.textOf(fl, dst)
		switch {
		case err != nil:
			return nil, err
		case null && fl.Kind() == field.KindText && !fl.IsOptional():
			return nil, m.fail(ErrMissingText, CodeMissingText, fl, nil, "required text is empty")
		}
	}

	return ptr.Interface(), nil
}
