// Package object provides the standard set of Quill object types.
//
// For external users of Quill, often an object.Object interface
// will be type asserted to a specific object type, such as *object.Tuple.
//
// For example:
//
//	switch obj := obj.(type) {
//	case *object.String:
//		// do something with obj.Value()
//	case *object.Tuple:
//		// do something with obj.Value()
//	}
//
// The Type() method of each object may also be used to get a string
// name of the object type, such as "string" or "tuple".
package object

import (
	"context"
	"fmt"

	"github.com/quill-lang/quill/op"
)

// Type of an object as a string.
type Type string

// Type constants
const (
	BOOL    Type = "bool"
	BUILTIN Type = "builtin"
	ERROR   Type = "error"
	FLOAT   Type = "float"
	INT     Type = "int"
	LIST    Type = "list"
	NIL     Type = "nil"
	STRING  Type = "string"
	TUPLE   Type = "tuple"
)

var (
	Nil   = &NilType{}
	True  = &Bool{value: true}
	False = &Bool{value: false}
)

// Object is the interface that all object types in Quill must implement.
type Object interface {
	// Type of the object.
	Type() Type

	// Inspect returns a string representation of the given object.
	Inspect() string

	// Interface converts the given object to a native Go value.
	Interface() interface{}

	// Returns true if the given object is equal to this object.
	Equals(other Object) bool

	// Attrs returns the attribute specifications for this object type.
	// Used for introspection, documentation, and tooling (autocomplete, etc.).
	// Returns nil for types with no attributes.
	Attrs() []AttrSpec

	// GetAttr returns the attribute with the given name from this object.
	GetAttr(name string) (Object, bool)

	// SetAttr sets the attribute with the given name on this object.
	SetAttr(name string, value Object) error

	// IsTruthy returns true if the object is considered "truthy".
	IsTruthy() bool

	// RunOperation runs an operation on this object with the given
	// right-hand side object.
	RunOperation(opType op.BinaryOpType, right Object) (Object, error)
}

// Slice is used to specify a range or slice of items in a container.
type Slice struct {
	Start Object
	Stop  Object
}

// Enumerable is an interface for types that can be iterated with a callback.
// The callback receives the key and value for each element. Return false to stop.
type Enumerable interface {
	Enumerate(ctx context.Context, fn func(key, value Object) bool)
}

type Container interface {
	Enumerable

	// GetItem implements the [key] operator for a container type.
	GetItem(key Object) (Object, *Error)

	// GetSlice implements the [start:stop] operator for a container type.
	GetSlice(s Slice) (Object, *Error)

	// SetItem implements the [key] = value operator for a container type.
	SetItem(key, value Object) *Error

	// DelItem implements the del [key] operator for a container type.
	DelItem(key Object) *Error

	// Contains returns true if the given item is found in this container.
	Contains(item Object) *Bool

	// Len returns the number of items in this container.
	Len() *Int
}

// Callable is an interface for objects that can be invoked as functions.
type Callable interface {
	// Call invokes the callable with the given arguments and returns the result.
	Call(ctx context.Context, args ...Object) (Object, error)
}

// Comparable is an interface used to compare two objects.
//
//	-1 if this < other
//	 0 if this == other
//	 1 if this > other
type Comparable interface {
	Compare(other Object) (int, error)
}

// Equals reports whether the two objects are equal. Equality is total:
// objects of unlike types are unequal rather than incomparable, which is
// what makes membership tests like tuple.contains total functions.
func Equals(a, b Object) bool {
	return a.Equals(b)
}

// PrintableValue returns a value that should be used when printing an object.
func PrintableValue(obj Object) interface{} {
	switch obj := obj.(type) {
	// Primitive types have their underlying Go value passed to fmt.Printf
	// so that Go's Printf-style formatting directives work as expected.
	case *String,
		*Int,
		*Float,
		*Error,
		*Bool:
		return obj.Interface()
	}
	// For everything else, convert the object to a string directly, relying
	// on the object type's String() or Inspect() methods. List and tuple
	// objects fall into this category on purpose, so that their print format
	// shows nesting the same way their literal syntax does.
	switch obj := obj.(type) {
	case fmt.Stringer:
		return obj.String()
	default:
		return obj.Inspect()
	}
}

// EvalErrorf returns a Quill Error object containing an eval error.
func EvalErrorf(format string, args ...interface{}) *Error {
	return NewError(newEvalErrorf(format, args...))
}

// ArgsErrorf returns a Quill Error object containing an arguments error.
func ArgsErrorf(format string, args ...interface{}) *Error {
	return NewError(newArgsErrorf(format, args...))
}

// TypeErrorf returns a Quill Error object containing a type error.
func TypeErrorf(format string, args ...interface{}) *Error {
	return NewError(newTypeErrorf(format, args...))
}

// ValueErrorf returns a Quill Error object containing a value error.
func ValueErrorf(format string, args ...interface{}) *Error {
	return NewError(newValueErrorf(format, args...))
}

// IndexErrorf returns a Quill Error object containing an index error.
func IndexErrorf(format string, args ...interface{}) *Error {
	return NewError(newIndexErrorf(format, args...))
}
