package model

import (
	"reflect"
	"slices"

	"xml-binder/field"
	"xml-binder/internal/diagnostic"
	"xml-binder/internal/match"
)

// builtinNames are the scalar type names annotations may use without
// registration.
var builtinNames = []string{
	"str", "string", "int", "int32", "int64", "float", "float32", "float64",
	"bool", "bytes", "datetime", "Time", "any",
}

// Check reports configuration problems of the whole family: type names no
// model or enum resolves, child fields the codec can never fill, attribute and
// text fields declared with list or model types, and models without fields.
// It does not seal the family.
func (f *Family) Check() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	models := f.Models()
	known := f.knownNames()

	for _, m := range models {
		d.Merge(f.checkModel(m, models, known))
	}

	return d
}

func (f *Family) checkModel(m *Model, models []*Model, known []string) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if len(m.fields) == 0 {
		d.AddInfof(diagnostic.CodeEmptyModel, m.tag, "", "model %s declares no fields", m.name)
	}

	for _, fl := range m.fields {
		checkField(&d, f, m, fl, known)
	}

	for _, target := range models {
		slots := m.slotsFor(target.typ)

		for _, s := range match.UnreachableSlots(slots) {
			d.AddErrorf(diagnostic.CodeUnreachableField, m.tag, s.Name,
				"list field %s accepts <%s> ahead of field %s, which can never be filled", s.Name, target.tag, slots[len(slots)-1].Name)
		}
	}

	return d
}

func checkField(d *diagnostic.Diagnostics, f *Family, m *Model, fl *field.Field, known []string) {
	a := fl.Annotation()

	for _, name := range a.Names() {
		if slices.Contains(builtinNames, name) || f.resolve(name) != nil {
			continue
		}

		d.AddErrorf(diagnostic.CodeUnresolvedType, m.tag, fl.Name(), "type %s is not defined in family %s", name, f.name)
		d.Errors[len(d.Errors)-1].Suggestions = match.Suggest(name, known, 3, 0.5)
	}

	if fl.Kind() == field.KindChild {
		return
	}

	if a.IsList() {
		d.AddErrorf(diagnostic.CodeListAttribute, m.tag, fl.Name(), "%s field is declared as %s", fl.Kind(), a)
	}

	for _, name := range a.Names() {
		if _, ok := f.ModelFor(f.resolve(name)); ok {
			d.AddErrorf(diagnostic.CodeModelAttribute, m.tag, fl.Name(), "%s field holds model %s", fl.Kind(), name)
		}
	}

	if fl.IsOptional() && zeroIsNull(fl.GoType()) {
		d.AddWarningf(diagnostic.CodeShapeMismatch, m.tag, fl.Name(),
			"optional field is held by %s, its zero value is written as absent", fl.GoType())
	}
}

// zeroIsNull reports whether an optional field of type t loses its zero
// value on dump. An empty string is absent text.
func zeroIsNull(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.String:
		return false
	default:
		return true
	}
}

func (f *Family) knownNames() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := slices.Clone(builtinNames)
	for name := range f.names {
		names = append(names, name)
	}

	for name := range f.enums {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
