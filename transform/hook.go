package transform

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"xml-binder/primitive"
)

var (
	ErrIsNotAHook         = errors.New("provided function is not a recognizable hook")
	ErrHookIsNotAFunction = errors.New("provided hook is not a function")
	ErrDoublePointer      = errors.New("hook function does not support double pointers")
)

// Hook is a single-argument function used as one direction of a Transform.
type Hook struct {
	In, Out      reflect.Type
	PackageAlias string
	Name         string
	HasErr       bool

	fn reflect.Value
}

// ParseHook inspects the provided function and returns a Hook if it is a
// valid hook function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, error)
func ParseHook(fn any) (*Hook, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrHookIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 || fnType.IsVariadic() {
		return nil, ErrIsNotAHook
	}

	in := fnType.In(0)
	if in.Kind() == reflect.Pointer && in.Elem().Kind() == reflect.Pointer {
		return nil, ErrDoublePointer
	}

	out := fnType.Out(0)
	if out.Kind() == reflect.Pointer && out.Elem().Kind() == reflect.Pointer {
		return nil, ErrDoublePointer
	}

	alias, name := funcName(fnVal)

	hook := &Hook{
		In:           in,
		Out:          out,
		PackageAlias: alias,
		Name:         name,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrIsNotAHook
	case 1:
		return hook, nil
	case 2:
		if !isError(fnType.Out(1)) {
			return nil, ErrIsNotAHook
		}

		hook.HasErr = true

		return hook, nil
	}
}

// Call invokes the hook. A nil argument is passed as the zero value when the
// parameter accepts nil, and short-circuits to nil otherwise.
func (h *Hook) Call(v any) (any, error) {
	var arg reflect.Value

	switch {
	case v == nil && isNilable(h.In):
		arg = reflect.Zero(h.In)
	case v == nil:
		return nil, nil
	default:
		arg = reflect.ValueOf(v)
		if !arg.Type().AssignableTo(h.In) {
			converted, err := primitive.Convert(arg, h.In, primitive.CategoryAll)
			if err != nil {
				return nil, fmt.Errorf("hook %s: %w", h, err)
			}

			arg = converted
		}
	}

	out := h.fn.Call([]reflect.Value{arg})
	if h.HasErr && !out[1].IsNil() {
		return nil, out[1].Interface().(error) //nolint:forcetypeassert // checked by ParseHook
	}

	if isNilable(h.Out) && out[0].IsNil() {
		return nil, nil
	}

	return out[0].Interface(), nil
}

func (h *Hook) String() string {
	if h.PackageAlias == "" {
		return h.Name
	}

	return h.PackageAlias + "." + h.Name
}

func isError(t reflect.Type) bool {
	return t.Implements(reflect.TypeFor[error]())
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// funcName splits the runtime name of fn into its package alias and the
// function name, e.g. "animl" and "parseCSV".
func funcName(fn reflect.Value) (string, string) {
	_, base := path.Split(runtime.FuncForPC(fn.Pointer()).Name())

	alias, name, _ := strings.Cut(base, ".")

	return alias, name
}
