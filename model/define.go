package model

import (
	"errors"
	"reflect"
	"slices"
	"sync"

	"xml-binder/annotation"
	"xml-binder/field"
	"xml-binder/internal/match"
)

// Model is a model type: a Go struct type, its tag, and its ordered field
// declarations. A Model is immutable once defined.
type Model struct {
	family *Family
	name   string
	tag    string
	typ    reflect.Type
	fields []*field.Field
	byName map[string]*field.Field

	viewsOnce  sync.Once
	attributes []*field.Field
	children   []*field.Field
	text       *field.Field

	reachOnce sync.Once
	reachErr  error

	pending []binding
}

// binding is a field resolved by Define, frozen once the model registers.
type binding struct {
	fl  *field.Field
	ann *annotation.Annotation
	sf  reflect.StructField
}

// Define declares the model type T in family f under tag, or under the Go type
// name when tag is empty. Fields are bound to exported fields of T by name,
// ignoring case and separators ("sampleID" binds SampleID), unless they name
// their Go field with field.Bind.
func Define[T any](f *Family, tag string, fields ...*field.Field) (*Model, error) {
	return f.Define(reflect.TypeFor[T](), tag, fields...)
}

// MustDefine is Define for package initialization; it panics on error.
func MustDefine[T any](f *Family, tag string, fields ...*field.Field) *Model {
	m, err := Define[T](f, tag, fields...)
	if err != nil {
		panic(err)
	}

	return m
}

// Define is the non-generic form of Define.
func (f *Family) Define(t reflect.Type, tag string, fields ...*field.Field) (*Model, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, newError(ErrType, CodeWrongType, nil, "model type must be a struct, got %v", t)
	}

	if tag == "" {
		tag = t.Name()
	}

	m := &Model{
		family: f,
		name:   t.Name(),
		tag:    tag,
		typ:    t,
		fields: slices.Clone(fields),
		byName: make(map[string]*field.Field, len(fields)),
	}

	bound := make(map[string]string, len(fields))
	texts := 0

	for _, fl := range fields {
		if err := m.declare(fl, bound); err != nil {
			return nil, err
		}

		if fl.Kind() == field.KindText {
			texts++
		}
	}

	if texts > 1 {
		return nil, m.fail(ErrMultipleText, CodeMultipleText, nil, nil, "%d text fields declared, at most one is allowed", texts)
	}

	return f.register(m)
}

func (m *Model) declare(fl *field.Field, bound map[string]string) error {
	if fl == nil {
		return m.fail(ErrInvalidField, CodeInvalidField, nil, nil, "nil field declaration")
	}

	if fl.Kind() == 0 {
		return m.fail(ErrInvalidField, CodeInvalidField, fl, nil, "field has no kind, declare it with Attribute, Child or Text")
	}

	if err := fl.Err(); err != nil {
		return m.fail(ErrInvalidField, CodeInvalidField, fl, err, "invalid options")
	}

	if fl.Expr() == "" {
		return m.fail(ErrMissingAnnotation, CodeMissingAnnotation, fl, nil, "no type expression")
	}

	if _, dup := m.byName[fl.Name()]; dup || fl.Name() == "" {
		return m.fail(ErrInvalidField, CodeInvalidField, fl, nil, "field name %q is empty or declared twice", fl.Name())
	}

	declared, err := annotation.Parse(fl.Expr())
	if err != nil {
		return m.fail(ErrType, CodeInvalidAnnotation, fl, err, "bad type expression")
	}

	sf, err := m.goField(fl)
	if err != nil {
		return err
	}

	if other, taken := bound[sf.Name]; taken {
		return m.fail(ErrInvalidField, CodeUnboundField, fl, nil, "Go field %s is already bound to field %s", sf.Name, other)
	}

	derived, err := annotation.FromType(sf.Type)
	if err != nil {
		return m.fail(ErrType, CodeUnsupportedGoField, fl, err, "Go field %s cannot hold a value", sf.Name)
	}

	if declared.IsList() != derived.IsList() {
		return m.fail(ErrType, CodeShapeMismatch, fl, nil, "declared %s but Go field %s has type %s", declared, sf.Name, sf.Type)
	}

	if fl.Annotation() != nil {
		return m.fail(ErrInvalidField, CodeInvalidField, fl, field.ErrFrozen, "cannot bind")
	}

	m.pending = append(m.pending, binding{fl: fl, ann: declared.Bind(m.family.resolve), sf: sf})
	bound[sf.Name] = fl.Name()
	m.byName[fl.Name()] = fl

	return nil
}

// goField finds the exported struct field bound to fl.
func (m *Model) goField(fl *field.Field) (reflect.StructField, error) {
	if name := fl.BindName(); name != "" {
		sf, ok := m.typ.FieldByName(name)
		if !ok || !sf.IsExported() || len(sf.Index) != 1 {
			return sf, m.fail(ErrInvalidField, CodeUnboundField, fl, nil, "%s has no exported field %s", m.typ, name)
		}

		return sf, nil
	}

	if sf, ok := m.typ.FieldByName(match.ExportedIdent(fl.Name())); ok && sf.IsExported() && len(sf.Index) == 1 {
		return sf, nil
	}

	exported := make([]string, 0, m.typ.NumField())

	for i := range m.typ.NumField() {
		sf := m.typ.Field(i)
		if !sf.IsExported() {
			continue
		}

		if match.SameIdent(sf.Name, fl.Name()) {
			return sf, nil
		}

		exported = append(exported, sf.Name)
	}

	e := m.fail(ErrInvalidField, CodeUnboundField, fl, nil, "%s has no exported field matching %q", m.typ, fl.Name())
	e.Suggestions = match.Suggest(fl.Name(), exported, 3, 0.5)

	return reflect.StructField{}, e
}

// freeze binds every declared field to the model. Nothing is frozen when a
// declaration fails, so the same fields can be passed to a later Define.
func (m *Model) freeze() error {
	for _, b := range m.pending {
		if err := b.fl.Freeze(b.ann, b.sf); err != nil {
			return m.fail(ErrInvalidField, CodeInvalidField, b.fl, err, "cannot bind")
		}
	}

	m.pending = nil

	return nil
}

func (m *Model) Name() string { return m.name }
func (m *Model) Tag() string  { return m.tag }

// Type is the Go struct type of the model.
func (m *Model) Type() reflect.Type { return m.typ }

func (m *Model) Family() *Family { return m.family }

// Fields returns the field declarations in order.
func (m *Model) Fields() []*field.Field { return slices.Clone(m.fields) }

// Field returns the declaration named name.
func (m *Model) Field(name string) (*field.Field, bool) {
	fl, ok := m.byName[name]

	return fl, ok
}

func (m *Model) views() {
	m.viewsOnce.Do(func() {
		for _, fl := range m.fields {
			switch fl.Kind() {
			case field.KindAttribute:
				m.attributes = append(m.attributes, fl)
			case field.KindChild:
				m.children = append(m.children, fl)
			case field.KindText:
				m.text = fl
			}
		}
	})
}

// Attributes returns the attribute fields in declaration order.
func (m *Model) Attributes() []*field.Field {
	m.views()

	return m.attributes
}

// Children returns the child fields in declaration order.
func (m *Model) Children() []*field.Field {
	m.views()

	return m.children
}

// TextField returns the text field, or nil.
func (m *Model) TextField() *field.Field {
	m.views()

	return m.text
}

// slotsFor returns the child fields accepting an instance of t.
func (m *Model) slotsFor(t reflect.Type) []match.Slot {
	var slots []match.Slot

	for _, fl := range m.Children() {
		if fl.Annotation().ValidContent(t) {
			slots = append(slots, match.Slot{Name: fl.Name(), List: fl.IsList()})
		}
	}

	return slots
}

// reachable fails when a list field precedes another child field accepting
// the same model, leaving the later field unfillable. It is computed once, on
// the first load, when the family is complete.
func (m *Model) reachable() error {
	m.reachOnce.Do(func() {
		for _, target := range m.family.Models() {
			slots := m.slotsFor(target.typ)

			if bad := match.UnreachableSlots(slots); len(bad) > 0 {
				e := m.fail(ErrUnreachableField, CodeUnreachableField, m.byName[bad[0].Name], nil,
					"list field %s takes every <%s> ahead of field %s", bad[0].Name, target.tag, slots[len(slots)-1].Name)
				e.Tag = target.tag
				m.reachErr = e

				return
			}
		}
	})

	return m.reachErr
}

// IsDefinitionError reports whether err comes from a model definition.
func IsDefinitionError(err error) bool {
	for _, target := range []error{ErrMissingAnnotation, ErrInvalidField, ErrMultipleText, ErrTagCollision, ErrSealed} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
