package model

import (
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/beevik/etree"

	"xml-binder/internal/match"
	"xml-binder/primitive"
)

// Family is the registry of the models of one document family. It maps each
// tag to exactly one model.
//
// Models are defined during package initialization. The first dump or load
// seals the family: later definitions fail with ErrSealed.
type Family struct {
	name string

	mu     sync.RWMutex
	byTag  map[string][]*Model
	byType map[reflect.Type]*Model
	names  map[string]reflect.Type
	enums  map[string]reflect.Type
	order  []*Model
	sealed atomic.Bool

	logger Logger
}

// NewFamily creates an empty family.
func NewFamily(name string) *Family {
	return &Family{
		name:   name,
		byTag:  make(map[string][]*Model),
		byType: make(map[reflect.Type]*Model),
		names:  make(map[string]reflect.Type),
		enums:  make(map[string]reflect.Type),
		logger: nopLogger{},
	}
}

func (f *Family) Name() string { return f.name }

// SetLogger sets the logger receiving codec decisions; nil disables logging.
func (f *Family) SetLogger(l Logger) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if l == nil {
		l = nopLogger{}
	}

	f.logger = l
}

func (f *Family) log() Logger {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.logger
}

// Seal forbids further definitions.
func (f *Family) Seal() {
	if f.sealed.Load() {
		return
	}

	f.mu.Lock()
	f.sealed.Store(true)
	f.mu.Unlock()
}

func (f *Family) Sealed() bool { return f.sealed.Load() }

func (f *Family) register(m *Model) (*Model, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sealed.Load() {
		return nil, m.fail(ErrSealed, CodeSealed, nil, nil, "family %s is sealed, define models before the first dump or load", f.name)
	}

	if prev, ok := f.byType[m.typ]; ok && prev.tag != m.tag {
		return nil, m.fail(ErrTagCollision, CodeTagCollision, nil, nil, "type %s is already registered under tag <%s>", m.typ, prev.tag)
	}

	if t, ok := f.enums[m.name]; ok {
		return nil, m.fail(ErrTagCollision, CodeTagCollision, nil, nil, "name %s is already registered for enum %s", m.name, t)
	}

	existing := f.byTag[m.tag]
	if len(existing) > 0 && existing[0].typ != m.typ {
		e := m.fail(ErrTagCollision, CodeTagCollision, nil, nil, "tag <%s> is already registered for %s", m.tag, existing[0].typ)
		e.Tag = m.tag

		return nil, e
	}

	if err := m.freeze(); err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		prev := existing[0]

		// Same type under the same tag: the new definition replaces the old.
		existing[0] = m
		f.order[slices.Index(f.order, prev)] = m
		f.byType[m.typ] = m

		return m, nil
	}

	f.byTag[m.tag] = append(existing, m)
	f.byType[m.typ] = m
	f.names[m.name] = m.typ
	f.order = append(f.order, m)

	return m, nil
}

// RegisterEnum adds an enum type to the name table, so that annotations
// naming it resolve to t. The type must be a named primitive type.
func (f *Family) RegisterEnum(t reflect.Type) error {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return newError(ErrType, CodeWrongType, nil, "enum must be a named type, got %v", t)
	}

	if k := primitive.FromReflectType(t); k != primitive.KindStringEnum && k != primitive.KindValueEnum {
		return newError(ErrType, CodeWrongType, nil, "enum %s must have a primitive underlying type", t)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sealed.Load() {
		return newError(ErrSealed, CodeSealed, nil, "family %s is sealed", f.name)
	}

	if prev, ok := f.enums[t.Name()]; ok && prev != t {
		return newError(ErrTagCollision, CodeTagCollision, nil, "enum name %s is already registered for %s", t.Name(), prev)
	}

	if prev, ok := f.names[t.Name()]; ok {
		return newError(ErrTagCollision, CodeTagCollision, nil, "enum name %s is already used by model %s", t.Name(), prev)
	}

	f.enums[t.Name()] = t

	return nil
}

// RegisterEnum is Family.RegisterEnum for a type parameter.
func RegisterEnum[T any](f *Family) error {
	return f.RegisterEnum(reflect.TypeFor[T]())
}

// resolve returns the Go type registered under a model or enum name.
func (f *Family) resolve(name string) reflect.Type {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if t, ok := f.names[name]; ok {
		return t
	}

	return f.enums[name]
}

// Lookup returns the model registered for tag and seals the family.
func (f *Family) Lookup(tag string) (*Model, error) {
	f.Seal()

	f.mu.RLock()
	models := f.byTag[tag]
	f.mu.RUnlock()

	switch len(models) {
	case 0:
		e := newError(ErrUnknownTag, CodeUnknownTag, nil, "no model of family %s is registered for <%s>", f.name, tag)
		e.Tag = tag
		e.Suggestions = match.Suggest(tag, f.Tags(), 3, 0.5)

		return nil, e
	case 1:
		return models[0], nil
	default:
		e := newError(ErrAmbiguousTag, CodeAmbiguousTag, nil, "%d models of family %s are registered for <%s>", len(models), f.name, tag)
		e.Tag = tag

		return nil, e
	}
}

// ModelFor returns the model defined for t, which may be a pointer to the
// model struct.
func (f *Family) ModelFor(t reflect.Type) (*Model, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	m, ok := f.byType[t]

	return m, ok
}

// ModelOf returns the model of an instance.
func (f *Family) ModelOf(v any) (*Model, error) {
	if v == nil {
		return nil, newError(ErrType, CodeNotAModel, nil, "nil is not a model instance")
	}

	m, ok := f.ModelFor(reflect.TypeOf(v))
	if !ok {
		return nil, newError(ErrType, CodeNotAModel, nil, "%T is not a model of family %s", v, f.name)
	}

	return m, nil
}

// Models returns the models in definition order.
func (f *Family) Models() []*Model {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.order)
}

// Tags returns the registered tags, sorted.
func (f *Family) Tags() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	tags := make([]string, 0, len(f.byTag))
	for tag := range f.byTag {
		tags = append(tags, tag)
	}

	slices.Sort(tags)

	return tags
}

// Enums returns the registered enum types by name.
func (f *Family) Enums() map[string]reflect.Type {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]reflect.Type, len(f.enums))
	for name, t := range f.enums {
		out[name] = t
	}

	return out
}

// Dump serializes a model instance of the family.
func (f *Family) Dump(v any) (*etree.Element, error) {
	m, err := f.ModelOf(v)
	if err != nil {
		return nil, err
	}

	return m.Dump(v)
}

// Load builds an instance of the model registered for the element tag.
func (f *Family) Load(el *etree.Element) (any, error) {
	if el == nil {
		return nil, newError(ErrType, CodeWrongType, nil, "nil element")
	}

	m, err := f.Lookup(el.FullTag())
	if err != nil {
		return nil, err
	}

	return m.Load(el)
}

// Load builds a T from el, T being a model of f.
func Load[T any](f *Family, el *etree.Element) (*T, error) {
	m, ok := f.ModelFor(reflect.TypeFor[T]())
	if !ok {
		return nil, newError(ErrType, CodeNotAModel, nil, "%s is not a model of family %s", reflect.TypeFor[T](), f.name)
	}

	v, err := m.Load(el)
	if err != nil {
		return nil, err
	}

	return v.(*T), nil //nolint:forcetypeassert // models build pointers to their type
}
