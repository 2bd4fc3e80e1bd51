package model

import (
	"reflect"

	"github.com/beevik/etree"

	"xml-binder/field"
	"xml-binder/primitive"
)

// Dump serializes an instance of the model, given as a struct value or a
// pointer to one, into an element tree. The first dump seals the family.
func (m *Model) Dump(v any) (*etree.Element, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, m.fail(ErrType, CodeWrongType, nil, nil, "nil %T", v)
		}

		rv = rv.Elem()
	}

	if !rv.IsValid() || rv.Type() != m.typ {
		return nil, m.fail(ErrType, CodeWrongType, nil, nil, "expected %s, got %T", m.typ, v)
	}

	m.family.Seal()

	return m.dump(rv)
}

func (m *Model) dump(rv reflect.Value) (*etree.Element, error) {
	el := etree.NewElement(m.tag)

	for _, fl := range m.Attributes() {
		s, null, err := m.textOf(fl, rv.FieldByIndex(fl.Index()))
		if err != nil {
			return nil, err
		}

		if null {
			if fl.IsOptional() {
				continue
			}

			return nil, m.fail(ErrMissingField, CodeMissingField, fl, nil, "required attribute %s is null", fl.XMLName())
		}

		el.CreateAttr(fl.XMLName(), s)
	}

	if fl := m.TextField(); fl != nil {
		s, null, err := m.textOf(fl, rv.FieldByIndex(fl.Index()))
		if err != nil {
			return nil, err
		}

		switch {
		case !null:
			el.SetText(s)
		case !fl.IsOptional():
			return nil, m.fail(ErrMissingText, CodeMissingText, fl, nil, "required text is null")
		}
	}

	for _, fl := range m.Children() {
		fv := rv.FieldByIndex(fl.Index())
		if isNull(fv, fl.IsOptional()) {
			if fl.IsOptional() || fl.IsList() {
				continue
			}

			return nil, m.fail(ErrMissingField, CodeMissingField, fl, nil, "required child is null")
		}

		if fl.IsList() && fv.Kind() == reflect.Slice {
			for i := range fv.Len() {
				child, err := m.dumpChild(fl, fv.Index(i))
				if err != nil {
					return nil, err
				}

				el.AddChild(child)
			}

			continue
		}

		child, err := m.dumpChild(fl, fv)
		if err != nil {
			return nil, err
		}

		el.AddChild(child)
	}

	return el, nil
}

func (m *Model) dumpChild(fl *field.Field, v reflect.Value) (*etree.Element, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, m.fail(ErrType, CodeNotAModel, fl, nil, "nil element")
		}

		v = v.Elem()
	}

	cm, ok := m.family.ModelFor(v.Type())
	if !ok {
		return nil, m.fail(ErrType, CodeNotAModel, fl, nil, "%s is not a model of family %s", v.Type(), m.family.name)
	}

	return cm.dump(v)
}

// textOf returns the text form of an attribute or text field value; null is
// true when the field holds no value. Empty element text is null.
func (m *Model) textOf(fl *field.Field, fv reflect.Value) (string, bool, error) {
	if isNull(fv, fl.IsOptional()) {
		return "", true, nil
	}

	out, err := fl.Serialize(plain(fv))
	if err != nil {
		return "", false, m.fail(ErrTransform, CodeTransformFailed, fl, err, "cannot serialize")
	}

	out, err = fl.Validate(out)
	if err != nil {
		return "", false, m.fail(ErrValidation, CodePatternMismatch, fl, err, "invalid value")
	}

	if out == nil {
		return "", true, nil
	}

	sv := reflect.ValueOf(out)
	for sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return "", true, nil
		}

		sv = sv.Elem()
	}

	if sv.Kind() != reflect.String {
		if primitive.FromReflectType(sv.Type()) == primitive.KindValueEnum {
			return "", false, m.fail(ErrType, CodeNotText, fl, nil, "enum %s is not string-valued", sv.Type())
		}

		return "", false, m.fail(ErrType, CodeNotText, fl, nil, "value of type %s does not serialize to a string", sv.Type())
	}

	// An element cannot carry empty text apart from no text at all.
	if fl.Kind() == field.KindText && sv.String() == "" {
		return "", true, nil
	}

	return sv.String(), false, nil
}
