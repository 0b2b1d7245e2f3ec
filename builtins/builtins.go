// Package builtins defines a default set of built-in functions.
package builtins

import (
	"context"
	"fmt"

	"github.com/quill-lang/quill/object"
)

func Len(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("len", 1, args); err != nil {
		return nil, err
	}
	switch arg := args[0].(type) {
	case *object.String:
		return arg.Len(), nil
	case object.Container:
		return arg.Len(), nil
	default:
		return nil, fmt.Errorf("type error: len() unsupported argument (%s given)", args[0].Type())
	}
}

func Sprintf(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("sprintf", 1, 64, args); err != nil {
		return nil, err
	}
	fs, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	fmtArgs := make([]interface{}, len(args)-1)
	for i, v := range args[1:] {
		fmtArgs[i] = object.PrintableValue(v)
	}
	return object.NewString(fmt.Sprintf(fs, fmtArgs...)), nil
}

// Error creates an error value without raising it.
func Error(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("error", 1, 64, args); err != nil {
		return nil, err
	}
	fs, err := object.AsString(args[0])
	if err != nil {
		return nil, err
	}
	fmtArgs := make([]interface{}, len(args)-1)
	for i, v := range args[1:] {
		fmtArgs[i] = v.Interface()
	}
	return object.NewError(fmt.Errorf(fs, fmtArgs...)), nil
}

func List(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("list", 0, 1, args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.NewList(nil), nil
	}
	enumerable, ok := args[0].(object.Enumerable)
	if !ok {
		return nil, fmt.Errorf("type error: list() expected an enumerable (%s given)", args[0].Type())
	}
	var items []object.Object
	enumerable.Enumerate(ctx, func(key, value object.Object) bool {
		items = append(items, value)
		return true
	})
	return object.NewList(items), nil
}

func Tuple(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("tuple", 0, 1, args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.NewEmptyTuple(), nil
	}
	enumerable, ok := args[0].(object.Enumerable)
	if !ok {
		return nil, fmt.Errorf("type error: tuple() expected an enumerable (%s given)", args[0].Type())
	}
	var items []object.Object
	enumerable.Enumerate(ctx, func(key, value object.Object) bool {
		items = append(items, value)
		return true
	})
	return object.NewTuple(items), nil
}

func String(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("string", 0, 1, args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return object.NewString(""), nil
	}
	switch arg := args[0].(type) {
	case *object.String:
		return object.NewString(arg.Value()), nil
	default:
		if s, ok := arg.(fmt.Stringer); ok {
			return object.NewString(s.String()), nil
		}
		return object.NewString(args[0].Inspect()), nil
	}
}

func Type(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("type", 1, args); err != nil {
		return nil, err
	}
	return object.NewString(string(args[0].Type())), nil
}

func Assert(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.RequireRange("assert", 1, 2, args); err != nil {
		return nil, err
	}
	if !args[0].IsTruthy() {
		if len(args) == 2 {
			if errObj, convErr := object.AsError(args[1]); convErr == nil {
				return nil, errObj.Value()
			}
			switch arg := args[1].(type) {
			case *object.String:
				return nil, fmt.Errorf("%s", arg.Value())
			default:
				return nil, fmt.Errorf("%s", args[1].Inspect())
			}
		}
		return nil, fmt.Errorf("assertion failed")
	}
	return object.Nil, nil
}

func Sorted(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("sorted", 1, args); err != nil {
		return nil, err
	}
	var items []object.Object
	switch arg := args[0].(type) {
	case *object.List:
		items = arg.Value()
	case *object.Tuple:
		items = arg.Value()
	case *object.String:
		items = arg.Runes()
	default:
		return nil, fmt.Errorf("type error: sorted() unsupported argument (%s given)", args[0].Type())
	}
	resultItems := make([]object.Object, len(items))
	copy(resultItems, items)
	if err := object.Sort(resultItems); err != nil {
		return nil, err
	}
	return object.NewList(resultItems), nil
}

func Reversed(ctx context.Context, args ...object.Object) (object.Object, error) {
	if err := object.Require("reversed", 1, args); err != nil {
		return nil, err
	}
	var items []object.Object
	switch arg := args[0].(type) {
	case *object.List:
		return arg.Reversed(), nil
	case *object.Tuple:
		items = arg.Value()
	case *object.String:
		items = arg.Runes()
	default:
		return nil, fmt.Errorf("type error: reversed() unsupported argument (%s given)", args[0].Type())
	}
	result := make([]object.Object, len(items))
	for i, item := range items {
		result[len(items)-1-i] = item
	}
	return object.NewList(result), nil
}

func Builtins() map[string]object.Object {
	return map[string]object.Object{
		"assert":   object.NewBuiltin("assert", Assert),
		"error":    object.NewBuiltin("error", Error),
		"len":      object.NewBuiltin("len", Len),
		"list":     object.NewBuiltin("list", List),
		"reversed": object.NewBuiltin("reversed", Reversed),
		"sorted":   object.NewBuiltin("sorted", Sorted),
		"sprintf":  object.NewBuiltin("sprintf", Sprintf),
		"string":   object.NewBuiltin("string", String),
		"tuple":    object.NewBuiltin("tuple", Tuple),
		"type":     object.NewBuiltin("type", Type),
	}
}

// Specs returns documentation metadata for the default builtins, sorted
// by name.
func Specs() []object.FuncSpec {
	return []object.FuncSpec{
		{
			Name:    "assert",
			Doc:     "Raise an error when a condition is falsy; the optional message may be a string or an error value",
			Args:    []string{"condition", "message"},
			Returns: "nil",
			Example: `assert((1, 2).size() == 2)`,
		},
		{
			Name:    "error",
			Doc:     "Create an error value from a format string",
			Args:    []string{"format", "args..."},
			Returns: "error",
			Example: `error("bad value: %d", 42)`,
		},
		{
			Name:    "len",
			Doc:     "The number of elements in a container or runes in a string",
			Args:    []string{"container"},
			Returns: "int",
			Example: `len((1, 2, 3))`,
		},
		{
			Name:    "list",
			Doc:     "Create a list from any enumerable, or an empty list",
			Args:    []string{"source"},
			Returns: "list",
			Example: `list((1, 2))`,
		},
		{
			Name:    "reversed",
			Doc:     "A new list with the elements in reverse order",
			Args:    []string{"source"},
			Returns: "list",
			Example: `reversed((1, 2, 3))`,
		},
		{
			Name:    "sorted",
			Doc:     "A new sorted list from a list, tuple, or string",
			Args:    []string{"source"},
			Returns: "list",
			Example: `sorted((3, 1, 2))`,
		},
		{
			Name:    "sprintf",
			Doc:     "Format values into a string",
			Args:    []string{"format", "args..."},
			Returns: "string",
			Example: `sprintf("%d-%d", 1, 2)`,
		},
		{
			Name:    "string",
			Doc:     "The string representation of a value, or an empty string",
			Args:    []string{"value"},
			Returns: "string",
			Example: `string(42)`,
		},
		{
			Name:    "tuple",
			Doc:     "Create a tuple from any enumerable, or the empty tuple",
			Args:    []string{"source"},
			Returns: "tuple",
			Example: `tuple([1, 2])`,
		},
		{
			Name:    "type",
			Doc:     "The type name of a value",
			Args:    []string{"value"},
			Returns: "string",
			Example: `type((1,))`,
		},
	}
}
