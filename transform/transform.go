package transform

import (
	"errors"
	"fmt"
)

// ErrValue is returned when a value cannot be converted by a transform.
var ErrValue = errors.New("value cannot be transformed")

// Transform converts field values to their XML text form and back.
// Both directions map nil to nil.
type Transform interface {
	Serialize(v any) (any, error)
	Deserialize(v any) (any, error)
}

type hooks struct {
	serialize, deserialize *Hook
}

// Funcs builds a Transform from a pair of functions, see ParseHook for the
// supported signatures. A nil function passes values through unchanged.
func Funcs(serialize, deserialize any) (Transform, error) {
	var (
		t   hooks
		err error
	)

	if serialize != nil {
		if t.serialize, err = ParseHook(serialize); err != nil {
			return nil, fmt.Errorf("serialize hook: %w", err)
		}
	}

	if deserialize != nil {
		if t.deserialize, err = ParseHook(deserialize); err != nil {
			return nil, fmt.Errorf("deserialize hook: %w", err)
		}
	}

	return t, nil
}

// MustFuncs is Funcs for hooks known to be valid.
func MustFuncs(serialize, deserialize any) Transform {
	t, err := Funcs(serialize, deserialize)
	if err != nil {
		panic(err)
	}

	return t
}

func (t hooks) Serialize(v any) (any, error) {
	if t.serialize == nil {
		return v, nil
	}

	return t.serialize.Call(v)
}

func (t hooks) Deserialize(v any) (any, error) {
	if t.deserialize == nil {
		return v, nil
	}

	return t.deserialize.Call(v)
}

func valueError(v any, format string, args ...any) error {
	return fmt.Errorf("%w: %v (%T): %s", ErrValue, v, v, fmt.Sprintf(format, args...))
}
