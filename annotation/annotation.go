package annotation

import (
	"reflect"
	"slices"
	"strings"
)

//go:generate go tool stringer -type=Form -output=form_string.go

// Form is the shape of an annotation.
type Form int

const (
	_ Form = iota

	FormNamed
	FormUnion
	FormList
)

// NoneName is the name of the null type. A union containing it is optional.
const NoneName = "None"

const bytesName = "bytes"

var bytesType = reflect.TypeFor[[]byte]()

// Annotation is the canonical, immutable form of a field type expression.
type Annotation struct {
	form     Form
	name     string
	goType   reflect.Type
	branches []*Annotation
	elem     *Annotation
}

// Named returns an unbound annotation for a concrete type name.
func Named(name string) *Annotation {
	return &Annotation{form: FormNamed, name: name}
}

// Of returns an annotation bound to a Go type.
func Of(t reflect.Type) *Annotation {
	return &Annotation{form: FormNamed, name: typeName(t), goType: t}
}

// None returns the null type.
func None() *Annotation {
	return Named(NoneName)
}

// List returns a list of elem.
func List(elem *Annotation) *Annotation {
	return &Annotation{form: FormList, elem: elem}
}

// Optional returns a union of a with None.
func Optional(a *Annotation) *Annotation {
	return Union(a, None())
}

// Union returns a union of the branches. Nested unions are flattened and
// duplicate branches dropped; a single remaining branch is returned as is.
func Union(branches ...*Annotation) *Annotation {
	var flat []*Annotation

	seen := map[string]bool{}

	var add func(b *Annotation)
	add = func(b *Annotation) {
		if b.form == FormUnion {
			for _, inner := range b.branches {
				add(inner)
			}

			return
		}

		key := b.String()
		if b.IsNone() {
			key = NoneName
		}

		if seen[key] {
			return
		}

		seen[key] = true
		flat = append(flat, b)
	}

	for _, b := range branches {
		add(b)
	}

	if len(flat) == 1 {
		return flat[0]
	}

	return &Annotation{form: FormUnion, branches: flat}
}

func (a *Annotation) Form() Form { return a.form }

// Name is the concrete type name of a named annotation, empty otherwise.
func (a *Annotation) Name() string { return a.name }

// GoType is the bound Go type of a named annotation, nil when unbound.
func (a *Annotation) GoType() reflect.Type { return a.goType }

// Branches returns a copy of the union branches.
func (a *Annotation) Branches() []*Annotation { return slices.Clone(a.branches) }

// Elem returns the element annotation of a list, looking through an optional
// wrapper. It is nil for non-list annotations.
func (a *Annotation) Elem() *Annotation {
	return a.NonNull().elem
}

// IsNone reports whether a is the null type.
func (a *Annotation) IsNone() bool {
	return a.form == FormNamed && (a.name == NoneName || a.name == "NoneType")
}

// IsOptional reports whether a is a union containing None.
func (a *Annotation) IsOptional() bool {
	if a.form != FormUnion {
		return false
	}

	return slices.ContainsFunc(a.branches, (*Annotation).IsNone)
}

// IsList reports whether a is list-shaped, directly or after stripping the
// optional wrapper.
func (a *Annotation) IsList() bool {
	return a.NonNull().form == FormList
}

// NonNull returns a without its None branch.
func (a *Annotation) NonNull() *Annotation {
	if a.form != FormUnion {
		return a
	}

	rest := make([]*Annotation, 0, len(a.branches))
	for _, b := range a.branches {
		if !b.IsNone() {
			rest = append(rest, b)
		}
	}

	switch len(rest) {
	case 0:
		return None()
	case 1:
		return rest[0]
	default:
		return &Annotation{form: FormUnion, branches: rest}
	}
}

// ValidType reports whether a itself accepts values of type t.
func (a *Annotation) ValidType(t reflect.Type) bool {
	switch a.form {
	case FormNamed:
		return a.matches(t)
	case FormUnion:
		for _, b := range a.branches {
			if b.ValidType(t) {
				return true
			}
		}
	}

	return false
}

// ValidTypeName is ValidType for a type known only by name.
func (a *Annotation) ValidTypeName(name string) bool {
	switch a.form {
	case FormNamed:
		return a.name == name
	case FormUnion:
		for _, b := range a.branches {
			if b.ValidTypeName(name) {
				return true
			}
		}
	}

	return false
}

// ValidSubtype reports whether a is a list, possibly optional, whose elements
// accept values of type t.
func (a *Annotation) ValidSubtype(t reflect.Type) bool {
	switch a.form {
	case FormList:
		return a.elem.ValidType(t)
	case FormUnion:
		for _, b := range a.branches {
			if b.ValidSubtype(t) {
				return true
			}
		}
	}

	return false
}

// ValidContent reports whether a value of type t can be stored in a field
// annotated with a, either directly or as a list element.
func (a *Annotation) ValidContent(t reflect.Type) bool {
	return a.ValidType(t) || (a.IsList() && a.ValidSubtype(t))
}

// Bind returns a copy of a where every unbound name known to resolve is bound
// to its Go type.
func (a *Annotation) Bind(resolve func(name string) reflect.Type) *Annotation {
	switch a.form {
	case FormNamed:
		if a.goType != nil || a.IsNone() {
			return a
		}

		if t := resolve(a.name); t != nil {
			return &Annotation{form: FormNamed, name: a.name, goType: t}
		}

		return a
	case FormUnion:
		branches := make([]*Annotation, len(a.branches))
		for i, b := range a.branches {
			branches[i] = b.Bind(resolve)
		}

		return &Annotation{form: FormUnion, branches: branches}
	case FormList:
		return List(a.elem.Bind(resolve))
	}

	return a
}

// Names returns every concrete type name referenced by a, None excluded.
func (a *Annotation) Names() []string {
	var names []string

	var walk func(b *Annotation)
	walk = func(b *Annotation) {
		switch b.form {
		case FormNamed:
			if !b.IsNone() && !slices.Contains(names, b.name) {
				names = append(names, b.name)
			}
		case FormUnion:
			for _, inner := range b.branches {
				walk(inner)
			}
		case FormList:
			walk(b.elem)
		}
	}
	walk(a)

	return names
}

// String renders the canonical expression.
func (a *Annotation) String() string {
	switch a.form {
	case FormNamed:
		return a.name
	case FormList:
		return "List[" + a.elem.String() + "]"
	case FormUnion:
		if a.IsOptional() {
			inner := a.NonNull()
			if inner.form != FormUnion {
				return "Optional[" + inner.String() + "]"
			}
		}

		parts := make([]string, len(a.branches))
		for i, b := range a.branches {
			parts[i] = b.String()
		}

		return "Union[" + strings.Join(parts, ", ") + "]"
	}

	return "<invalid>"
}

func (a *Annotation) matches(t reflect.Type) bool {
	if t == nil {
		return false
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if a.goType != nil && a.goType == t {
		return true
	}

	return a.name != "" && a.name == typeName(t)
}

func typeName(t reflect.Type) string {
	if t == bytesType {
		return bytesName
	}

	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
