package transform

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
)

// ErrMismatch is returned when a value does not match a pattern.
var ErrMismatch = errors.New("value does not match pattern")

// NCName approximates the XML non-colonized name production.
const NCName = `[\p{L}_][\p{L}\p{N}_.\-]*`

// Validator checks the serialized form of a field value.
type Validator interface {
	Validate(s string) error
}

// Pattern is a regular expression validator matching the whole value.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// NewPattern compiles expr anchored at both ends.
func NewPattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", expr, err)
	}

	return &Pattern{expr: expr, re: re}, nil
}

// MustPattern is NewPattern for patterns known to compile.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}

	return p
}

func (p *Pattern) Validate(s string) error {
	if !p.re.MatchString(s) {
		return fmt.Errorf("%w: %q does not match %s", ErrMismatch, s, p.expr)
	}

	return nil
}

func (p *Pattern) String() string { return p.expr }

// Text returns the string form of v for validation: strings and string
// enums, through any number of pointers. ok is false for nil and for values
// that are not text.
func Text(v any) (string, bool) {
	rv, ok := deref(v)
	if !ok || rv.Kind() != reflect.String {
		return "", false
	}

	return rv.String(), true
}
