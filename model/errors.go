package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"xml-binder/field"
)

// Definition errors.
var (
	ErrMissingAnnotation = errors.New("field has no type annotation")
	ErrInvalidField      = errors.New("invalid field declaration")
	ErrMultipleText      = errors.New("model declares more than one text field")
	ErrTagCollision      = errors.New("tag is already registered")
	ErrSealed            = errors.New("family is sealed")
)

// Construction errors.
var (
	ErrMissingField = errors.New("required field has no value")
	ErrUnknownField = errors.New("unknown field")
)

// ErrValidation is matched by every pattern and enum validation failure.
var ErrValidation = field.ErrValidation

// Structural load errors.
var (
	ErrTagMismatch      = errors.New("element tag does not match model")
	ErrMissingAttribute = errors.New("required attribute is missing")
	ErrMissingText      = errors.New("required text is missing")
	ErrUnknownTag       = errors.New("no model registered for tag")
	ErrAmbiguousTag     = errors.New("several models registered for tag")
	ErrNoField          = errors.New("no field accepts child element")
	ErrUnreachableField = errors.New("child field can never be filled")
)

// Type errors.
var (
	ErrType      = errors.New("value has the wrong type")
	ErrTransform = errors.New("value transform failed")
)

// Error codes, stable across releases.
const (
	CodeMissingAnnotation  = "missing_annotation"
	CodeInvalidAnnotation  = "invalid_annotation"
	CodeInvalidField       = "invalid_field"
	CodeUnboundField       = "unbound_field"
	CodeMultipleText       = "multiple_text"
	CodeTagCollision       = "tag_collision"
	CodeSealed             = "sealed"
	CodeMissingField       = "missing_field"
	CodeUnknownField       = "unknown_field"
	CodePatternMismatch    = "pattern_mismatch"
	CodeInvalidEnum        = "invalid_enum"
	CodeTagMismatch        = "tag_mismatch"
	CodeMissingAttribute   = "missing_attribute"
	CodeMissingText        = "missing_text"
	CodeUnknownTag         = "unknown_tag"
	CodeAmbiguousTag       = "ambiguous_tag"
	CodeNoField            = "no_field"
	CodeUnreachableField   = "unreachable_field"
	CodeWrongType          = "wrong_type"
	CodeNotAModel          = "not_a_model"
	CodeNotText            = "not_text"
	CodeTransformFailed    = "transform_failed"
	CodeShapeMismatch      = "shape_mismatch"
	CodeUnsupportedGoField = "unsupported_go_field"
)

// Error is returned by every operation of the package. It wraps one of the
// sentinel errors above, and the underlying cause when there is one.
type Error struct {
	Code        string
	Model       string
	Field       string
	Tag         string
	Detail      string
	Suggestions []string
	Err         error
}

func (e *Error) Error() string {
	var parts []string
	if e.Model != "" {
		parts = append(parts, "model "+e.Model)
	}

	if e.Field != "" {
		parts = append(parts, "field "+e.Field)
	}

	msg := fmt.Sprintf("[%s] %s", e.Code, e.Detail)
	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = strconv.Quote(s)
		}

		msg += " (did you mean " + strings.Join(quoted, ", ") + "?)"
	}

	if len(parts) == 0 {
		return msg
	}

	return strings.Join(parts, " ") + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(sentinel error, code string, cause error, format string, args ...any) *Error {
	e := &Error{
		Code:   code,
		Detail: fmt.Sprintf(format, args...),
		Err:    sentinel,
	}

	if cause != nil {
		e.Detail += ": " + cause.Error()
		e.Err = fmt.Errorf("%w: %w", sentinel, cause)
	}

	return e
}

// fail builds an error about a field of m; f may be nil.
func (m *Model) fail(sentinel error, code string, f *field.Field, cause error, format string, args ...any) *Error {
	e := newError(sentinel, code, cause, format, args...)
	e.Model = m.name

	if f != nil {
		e.Field = f.Name()
	}

	return e
}
