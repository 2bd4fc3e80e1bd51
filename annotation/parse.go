package annotation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

var (
	ErrSyntax      = errors.New("invalid type expression")
	ErrUnsupported = errors.New("unsupported type form")
)

var timeType = reflect.TypeFor[time.Time]()

// Parse resolves a string type expression.
func Parse(expr string) (*Annotation, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}

	if strings.TrimSpace(expr) != expr {
		return nil, fmt.Errorf("%w: %q has surrounding whitespace", ErrSyntax, expr)
	}

	open := strings.IndexByte(expr, '[')
	if open < 0 {
		if !isIdent(expr) {
			return nil, fmt.Errorf("%w: %q is not an identifier", ErrSyntax, expr)
		}

		if expr == NoneName || expr == "NoneType" {
			return None(), nil
		}

		return Named(expr), nil
	}

	head := expr[:open]
	if !isIdent(head) {
		return nil, fmt.Errorf("%w: %q is not an identifier", ErrSyntax, head)
	}

	if closing(expr, open) != len(expr)-1 {
		return nil, fmt.Errorf("%w: %q has unbalanced brackets", ErrSyntax, expr)
	}

	inner := expr[open+1 : len(expr)-1]

	switch strings.ToLower(head) {
	case "optional":
		a, err := Parse(inner)
		if err != nil {
			return nil, err
		}

		return Optional(a), nil
	case "list":
		a, err := Parse(inner)
		if err != nil {
			return nil, err
		}

		return List(a), nil
	case "union":
		branches, err := parseBranches(inner)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", expr, err)
		}

		return Union(branches...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, expr)
	}
}

// MustParse is Parse for expressions known to be valid.
func MustParse(expr string) *Annotation {
	a, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return a
}

// FromType resolves a Go type. Pointers to structs are model references;
// other pointers are optional values. Slices are lists, except []byte which
// is a binary scalar.
func FromType(t reflect.Type) (*Annotation, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupported)
	}

	switch t.Kind() {
	case reflect.Pointer:
		inner, err := FromType(t.Elem())
		if err != nil {
			return nil, err
		}

		if t.Elem().Kind() == reflect.Struct && t.Elem() != timeType {
			return inner, nil
		}

		return Optional(inner), nil
	case reflect.Slice:
		if t == bytesType || t.Elem().Kind() == reflect.Uint8 {
			return Of(t), nil
		}

		inner, err := FromType(t.Elem())
		if err != nil {
			return nil, err
		}

		return List(inner), nil
	case reflect.Map, reflect.Chan, reflect.Func, reflect.Array,
		reflect.Complex64, reflect.Complex128, reflect.Uintptr, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, t)
	default:
		return Of(t), nil
	}
}

func parseBranches(s string) ([]*Annotation, error) {
	var (
		parts []string
		depth int
		start int
	)

	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	parts = append(parts, s[start:])

	branches := make([]*Annotation, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty union branch", ErrSyntax)
		}

		b, err := Parse(part)
		if err != nil {
			return nil, err
		}

		branches = append(branches, b)
	}

	return branches, nil
}

// closing returns the index of the bracket closing the one at open, or -1.
func closing(s string, open int) int {
	depth := 0

	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !isLetter(r) && !isDigit(r) && r != '_' {
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
