package object

import (
	"context"
	"fmt"

	"github.com/quill-lang/quill/op"
)

// Error wraps a Go error interface and implements Object.
type Error struct {
	*base
	err    error
	raised bool
}

func (e *Error) Type() Type {
	return ERROR
}

func (e *Error) Attrs() []AttrSpec {
	return []AttrSpec{
		{Name: "message", Doc: "The error message", Returns: "string"},
	}
}

func (e *Error) Inspect() string {
	return fmt.Sprintf("error(%q)", e.err.Error())
}

func (e *Error) String() string {
	return e.err.Error()
}

func (e *Error) Value() error {
	return e.err
}

func (e *Error) Interface() interface{} {
	return e.err
}

func (e *Error) Compare(other Object) (int, error) {
	otherErr, ok := other.(*Error)
	if !ok {
		return 0, TypeErrorf("unable to compare error and %s", other.Type())
	}
	thisMsg := e.Message().Value()
	otherMsg := otherErr.Message().Value()
	if thisMsg > otherMsg {
		return 1, nil
	}
	if thisMsg < otherMsg {
		return -1, nil
	}
	if e.raised && !otherErr.raised {
		return 1, nil
	}
	if !e.raised && otherErr.raised {
		return -1, nil
	}
	return 0, nil
}

func (e *Error) Equals(other Object) bool {
	otherError, ok := other.(*Error)
	if !ok {
		return false
	}
	return e.Message().Value() == otherError.Message().Value() &&
		e.raised == otherError.raised
}

func (e *Error) GetAttr(name string) (Object, bool) {
	switch name {
	case "message":
		return NewBuiltin("message", func(ctx context.Context, args ...Object) (Object, error) {
			return e.Message(), nil
		}), true
	default:
		return nil, false
	}
}

func (e *Error) Message() *String {
	return NewString(e.err.Error())
}

func (e *Error) WithRaised(value bool) *Error {
	e.raised = value
	return e
}

func (e *Error) IsRaised() bool {
	return e.raised
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, newTypeErrorf("unsupported operation for error: %v", opType)
}

func (e *Error) MarshalJSON() ([]byte, error) {
	return nil, TypeErrorf("unable to marshal error")
}

func Errorf(format string, a ...interface{}) *Error {
	var args []interface{}
	for _, arg := range a {
		if obj, ok := arg.(Object); ok {
			args = append(args, obj.Interface())
		} else {
			args = append(args, arg)
		}
	}
	return &Error{err: fmt.Errorf(format, args...), raised: true}
}

func NewError(err error) *Error {
	switch err := err.(type) {
	case *Error: // unwrap to get the inner error, to avoid unhelpful nesting
		return &Error{err: err.Unwrap(), raised: true}
	default:
		return &Error{err: err, raised: true}
	}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR
	}
	return false
}
