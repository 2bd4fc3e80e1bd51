package field

import (
	"errors"
	"fmt"
	"reflect"

	"xml-binder/annotation"
	"xml-binder/transform"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tells where a field lives in the element.
type Kind int

const (
	_ Kind = iota

	KindAttribute
	KindChild
	KindText
)

var (
	ErrInvalidOption = errors.New("invalid field option")
	ErrFrozen        = errors.New("field is already bound to a model")
	ErrValidation    = errors.New("validation failed")
)

// ValidationError reports a value rejected by a field pattern.
type ValidationError struct {
	Field   string
	Pattern string
	Value   string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s: value %q does not match pattern %s", e.Field, e.Value, e.Pattern)
}

func (e *ValidationError) Unwrap() []error { return []error{ErrValidation, e.Err} }

// Field is the declaration of one model field.
type Field struct {
	name       string
	kind       Kind
	expr       string
	annotation *annotation.Annotation

	alias     string
	def       any
	hasDef    bool
	factory   func() any
	transform transform.Transform
	validator transform.Validator
	bind      string
	err       error

	index  []int
	goType reflect.Type
}

// Option configures a Field.
type Option func(*Field)

// Attribute declares an attribute field.
func Attribute(name, typeExpr string, opts ...Option) *Field {
	return newField(KindAttribute, name, typeExpr, opts)
}

// Child declares a child element field.
func Child(name, typeExpr string, opts ...Option) *Field {
	return newField(KindChild, name, typeExpr, opts)
}

// Text declares the text content field.
func Text(name, typeExpr string, opts ...Option) *Field {
	return newField(KindText, name, typeExpr, opts)
}

func newField(kind Kind, name, expr string, opts []Option) *Field {
	f := &Field{name: name, kind: kind, expr: expr}
	for _, opt := range opts {
		opt(f)
	}

	if f.alias != "" && kind != KindAttribute {
		f.fail(fmt.Errorf("%w: alias %q on %s field %s", ErrInvalidOption, f.alias, kind, name))
	}

	return f
}

// Default sets the value used when none is provided.
func Default(v any) Option {
	return func(f *Field) {
		f.def = v
		f.hasDef = true
	}
}

// DefaultFunc sets a factory producing the value used when none is provided.
func DefaultFunc(fn func() any) Option {
	return func(f *Field) {
		f.factory = fn
	}
}

// Alias sets the XML attribute name when it differs from the field name.
func Alias(name string) Option {
	return func(f *Field) {
		f.alias = name
	}
}

// WithTransform sets the transform of the text form.
func WithTransform(t transform.Transform) Option {
	return func(f *Field) {
		f.transform = t
	}
}

// Use sets a transform by its name in transform.Default.
func Use(name string) Option {
	return func(f *Field) {
		t, ok := transform.Default.Get(name)
		if !ok {
			f.fail(fmt.Errorf("%w: unknown transform %q", ErrInvalidOption, name))

			return
		}

		f.transform = t
	}
}

// Hooks builds the transform from a serialize and a deserialize function.
func Hooks(serialize, deserialize any) Option {
	return func(f *Field) {
		t, err := transform.Funcs(serialize, deserialize)
		if err != nil {
			f.fail(fmt.Errorf("%w: %w", ErrInvalidOption, err))

			return
		}

		f.transform = t
	}
}

// Pattern sets a regular expression the text form must match entirely.
func Pattern(expr string) Option {
	return func(f *Field) {
		p, err := transform.NewPattern(expr)
		if err != nil {
			f.fail(fmt.Errorf("%w: %w", ErrInvalidOption, err))

			return
		}

		f.validator = p
	}
}

// WithValidator sets a custom validator of the text form.
func WithValidator(v transform.Validator) Option {
	return func(f *Field) {
		f.validator = v
	}
}

// Bind names the Go struct field holding the value.
func Bind(goField string) Option {
	return func(f *Field) {
		f.bind = goField
	}
}

func (f *Field) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *Field) Name() string { return f.name }
func (f *Field) Kind() Kind   { return f.kind }

// Expr is the declared type expression.
func (f *Field) Expr() string { return f.expr }

// Annotation is the resolved type, nil until the field is frozen.
func (f *Field) Annotation() *annotation.Annotation { return f.annotation }

func (f *Field) Alias() string { return f.alias }

// XMLName is the name the field is written under.
func (f *Field) XMLName() string {
	if f.alias != "" {
		return f.alias
	}

	return f.name
}

// BindName is the explicit Go field name, empty when derived.
func (f *Field) BindName() string { return f.bind }

// Err reports an invalid option.
func (f *Field) Err() error { return f.err }

// Index is the struct field index of the bound Go field.
func (f *Field) Index() []int { return f.index }

// GoType is the type of the bound Go field.
func (f *Field) GoType() reflect.Type { return f.goType }

// IsOptional reports whether the field may be null.
func (f *Field) IsOptional() bool {
	return f.annotation != nil && f.annotation.IsOptional()
}

// IsList reports whether the field holds a list.
func (f *Field) IsList() bool {
	return f.annotation != nil && f.annotation.IsList()
}

// HasDefault reports whether a default or a default factory is set.
func (f *Field) HasDefault() bool {
	return f.hasDef || f.factory != nil
}

// GetDefault returns the default, the factory result, or nil.
func (f *Field) GetDefault() any {
	if f.hasDef {
		return f.def
	}

	if f.factory != nil {
		return f.factory()
	}

	return nil
}

// Serialize converts a value to its text form.
func (f *Field) Serialize(v any) (any, error) {
	if f.transform == nil {
		return v, nil
	}

	return f.transform.Serialize(v)
}

// Deserialize converts a text form to a value.
func (f *Field) Deserialize(v any) (any, error) {
	if f.transform == nil {
		return v, nil
	}

	return f.transform.Deserialize(v)
}

// Validate checks the text form of v against the pattern and returns v.
// Values that are not text pass unchecked.
func (f *Field) Validate(v any) (any, error) {
	if f.validator == nil {
		return v, nil
	}

	s, ok := transform.Text(v)
	if !ok {
		return v, nil
	}

	if err := f.validator.Validate(s); err != nil {
		return nil, &ValidationError{
			Field:   f.name,
			Pattern: fmt.Sprint(f.validator),
			Value:   s,
			Err:     err,
		}
	}

	return v, nil
}

// Freeze binds the field to its resolved annotation and Go struct field.
// A field belongs to a single model.
func (f *Field) Freeze(a *annotation.Annotation, sf reflect.StructField) error {
	if f.annotation != nil {
		return fmt.Errorf("%w: %s", ErrFrozen, f.name)
	}

	f.annotation = a
	f.index = sf.Index
	f.goType = sf.Type

	return nil
}
