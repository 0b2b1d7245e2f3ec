package object

import (
	"fmt"
)

// Type assertion helpers used by builtins and registered methods.

func AsBool(obj Object) (bool, error) {
	b, ok := obj.(*Bool)
	if !ok {
		return false, newTypeErrorf("expected a bool (%s given)", obj.Type())
	}
	return b.value, nil
}

func AsString(obj Object) (string, error) {
	s, ok := obj.(*String)
	if !ok {
		return "", newTypeErrorf("expected a string (%s given)", obj.Type())
	}
	return s.value, nil
}

func AsInt(obj Object) (int64, error) {
	i, ok := obj.(*Int)
	if !ok {
		return 0, newTypeErrorf("expected an int (%s given)", obj.Type())
	}
	return i.value, nil
}

func AsFloat(obj Object) (float64, error) {
	switch obj := obj.(type) {
	case *Int:
		return float64(obj.value), nil
	case *Float:
		return obj.value, nil
	default:
		return 0.0, newTypeErrorf("expected a number (%s given)", obj.Type())
	}
}

func AsList(obj Object) (*List, error) {
	list, ok := obj.(*List)
	if !ok {
		return nil, newTypeErrorf("expected a list (%s given)", obj.Type())
	}
	return list, nil
}

func AsTuple(obj Object) (*Tuple, error) {
	tup, ok := obj.(*Tuple)
	if !ok {
		return nil, newTypeErrorf("expected a tuple (%s given)", obj.Type())
	}
	return tup, nil
}

// AsError returns the object as an *Error, or an error describing the
// type mismatch.
func AsError(obj Object) (*Error, error) {
	e, ok := obj.(*Error)
	if !ok {
		return nil, newTypeErrorf("expected an error (%s given)", obj.Type())
	}
	return e, nil
}

// FromGoValue converts a native Go value into the corresponding object.
// It is used at the embedding boundary, where host programs hand values to
// the runtime.
func FromGoValue(value interface{}) (Object, error) {
	switch value := value.(type) {
	case nil:
		return Nil, nil
	case bool:
		return NewBool(value), nil
	case int:
		return NewInt(int64(value)), nil
	case int32:
		return NewInt(int64(value)), nil
	case int64:
		return NewInt(value), nil
	case float32:
		return NewFloat(float64(value)), nil
	case float64:
		return NewFloat(value), nil
	case string:
		return NewString(value), nil
	case error:
		return NewError(value), nil
	case Object:
		return value, nil
	case []interface{}:
		items := make([]Object, 0, len(value))
		for _, v := range value {
			item, err := FromGoValue(v)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewList(items), nil
	default:
		return nil, newTypeErrorf("unsupported Go type: %v", fmt.Sprintf("%T", value))
	}
}
