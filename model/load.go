package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"xml-binder/field"
	"xml-binder/internal/match"
)

// Load builds an instance of the model from an element tree and returns a
// pointer to it. The first load seals the family.
func (m *Model) Load(el *etree.Element) (any, error) {
	if el == nil {
		return nil, m.fail(ErrType, CodeWrongType, nil, nil, "nil element")
	}

	m.family.Seal()

	if tag := el.FullTag(); tag != m.tag {
		e := m.fail(ErrTagMismatch, CodeTagMismatch, nil, nil, "expected <%s>, got <%s>", m.tag, tag)
		e.Tag = tag

		return nil, e
	}

	if err := m.reachable(); err != nil {
		return nil, err
	}

	args := Args{}

	for _, fl := range m.Attributes() {
		raw, ok := attrValue(el, fl.XMLName())
		if !ok {
			if fl.IsOptional() {
				continue
			}

			return nil, m.fail(ErrMissingAttribute, CodeMissingAttribute, fl, nil, "attribute %s is missing", fl.XMLName())
		}

		v, err := m.fromText(fl, raw)
		if err != nil {
			return nil, err
		}

		if v == nil && !fl.IsOptional() {
			return nil, m.fail(ErrMissingAttribute, CodeMissingAttribute, fl, nil, "attribute %s is blank", fl.XMLName())
		}

		args[fl.Name()] = v
	}

	if fl := m.TextField(); fl != nil {
		raw, ok := textContent(el)
		if !ok && !fl.IsOptional() {
			return nil, m.fail(ErrMissingText, CodeMissingText, fl, nil, "element has no text")
		}

		var in any
		if ok {
			in = raw
		}

		v, err := m.fromText(fl, in)
		if err != nil {
			return nil, err
		}

		if v == nil && !fl.IsOptional() {
			return nil, m.fail(ErrMissingText, CodeMissingText, fl, nil, "element text is blank")
		}

		args[fl.Name()] = v
	}

	for _, child := range el.ChildElements() {
		cm, err := m.family.Lookup(child.FullTag())
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", m.tag, err)
		}

		inst, err := cm.Load(child)
		if err != nil {
			return nil, fmt.Errorf("<%s>: %w", m.tag, err)
		}

		slot, err := m.route(cm, args)
		if err != nil {
			return nil, err
		}

		if slot.List {
			list, _ := args[slot.Name].([]any)
			args[slot.Name] = append(list, inst)

			continue
		}

		if _, occupied := args[slot.Name]; occupied {
			m.family.log().Verbose("%s.%s: <%s> replaces the previous value", m.name, slot.Name, cm.tag)
		}

		args[slot.Name] = inst
	}

	return m.Construct(args)
}

func (m *Model) fromText(fl *field.Field, raw any) (any, error) {
	v, err := fl.Deserialize(raw)
	if err != nil {
		return nil, m.fail(ErrTransform, CodeTransformFailed, fl, err, "cannot deserialize %q", raw)
	}

	v, err = fl.Validate(v)
	if err != nil {
		return nil, m.fail(ErrValidation, CodePatternMismatch, fl, err, "invalid value")
	}

	return v, nil
}

// route picks the child field receiving an instance of cm.
func (m *Model) route(cm *Model, args Args) (match.Slot, error) {
	slot, err := match.SelectSlot(m.slotsFor(cm.typ), func(name string) bool {
		_, ok := args[name]

		return ok
	})

	switch {
	case errors.Is(err, match.ErrUnreachableSlot):
		e := m.fail(ErrUnreachableField, CodeUnreachableField, nil, err, "<%s> cannot be routed", cm.tag)
		e.Tag = cm.tag

		return slot, e
	case errors.Is(err, match.ErrNoSlot):
		e := m.fail(ErrNoField, CodeNoField, nil, nil, "no free field accepts <%s>", cm.tag)
		e.Tag = cm.tag

		return slot, e
	case err != nil:
		return slot, err
	}

	m.family.log().Verbose("%s: <%s> routed to %s", m.name, cm.tag, slot.Name)

	return slot, nil
}

// attrValue looks an attribute up by its full key. An attribute without a
// prefix only matches an unprefixed key.
func attrValue(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.FullKey() == key {
			return a.Value, true
		}
	}

	return "", false
}

// textContent returns the character data preceding the first child element.
// Comments and processing instructions are skipped. ok is false when there
// is none.
func textContent(el *etree.Element) (string, bool) {
	var (
		b  strings.Builder
		ok bool
	)

	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
			ok = true
		case *etree.Element:
			return b.String(), ok
		}
	}

	return b.String(), ok
}
