package object

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quill-lang/quill/op"
)

var stringMethods = NewMethodRegistry[*String]("string")

func init() {
	stringMethods.Define("compare").
		Doc("Compare to another string (-1, 0, or 1)").
		Arg("other").
		Returns("int").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			value, err := s.Compare(args[0])
			if err != nil {
				return nil, err
			}
			return NewInt(int64(value)), nil
		})

	stringMethods.Define("contains").
		Doc("Check if substring exists").
		Arg("substr").
		Returns("bool").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			substr, err := AsString(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(strings.Contains(s.value, substr)), nil
		})

	stringMethods.Define("has_prefix").
		Doc("Check if string starts with prefix").
		Arg("prefix").
		Returns("bool").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			prefix, err := AsString(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(strings.HasPrefix(s.value, prefix)), nil
		})

	stringMethods.Define("has_suffix").
		Doc("Check if string ends with suffix").
		Arg("suffix").
		Returns("bool").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			suffix, err := AsString(args[0])
			if err != nil {
				return nil, err
			}
			return NewBool(strings.HasSuffix(s.value, suffix)), nil
		})

	stringMethods.Define("split").
		Doc("Split by separator").
		Arg("sep").
		Returns("list").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			sep, err := AsString(args[0])
			if err != nil {
				return nil, err
			}
			return NewStringList(strings.Split(s.value, sep)), nil
		})

	stringMethods.Define("to_lower").
		Doc("Convert to lowercase").
		Returns("string").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			return NewString(strings.ToLower(s.value)), nil
		})

	stringMethods.Define("to_upper").
		Doc("Convert to uppercase").
		Returns("string").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			return NewString(strings.ToUpper(s.value)), nil
		})

	stringMethods.Define("trim_space").
		Doc("Trim whitespace from both ends").
		Returns("string").
		Impl(func(s *String, ctx context.Context, args ...Object) (Object, error) {
			return NewString(strings.TrimSpace(s.value)), nil
		})
}

type String struct {
	value string
}

func (s *String) Attrs() []AttrSpec {
	return stringMethods.Specs()
}

func (s *String) GetAttr(name string) (Object, bool) {
	return stringMethods.GetAttr(s, name)
}

func (s *String) SetAttr(name string, value Object) error {
	return TypeErrorf("string has no attribute %q", name)
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	return fmt.Sprintf("%q", s.value)
}

func (s *String) String() string {
	return s.value
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) Compare(other Object) (int, error) {
	otherStr, ok := other.(*String)
	if !ok {
		return 0, TypeErrorf("unable to compare string and %s", other.Type())
	}
	return strings.Compare(s.value, otherStr.value), nil
}

func (s *String) Equals(other Object) bool {
	otherStr, ok := other.(*String)
	if !ok {
		return false
	}
	return s.value == otherStr.value
}

func (s *String) IsTruthy() bool {
	return s.value != ""
}

// Runes returns the string as a list of single-rune strings.
func (s *String) Runes() []Object {
	runes := []rune(s.value)
	items := make([]Object, len(runes))
	for i, r := range runes {
		items[i] = NewString(string(r))
	}
	return items
}

func (s *String) Len() *Int {
	return NewInt(int64(len([]rune(s.value))))
}

func (s *String) Enumerate(ctx context.Context, fn func(key, value Object) bool) {
	for i, r := range []rune(s.value) {
		if !fn(NewInt(int64(i)), NewString(string(r))) {
			return
		}
	}
}

func (s *String) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	switch opType {
	case op.Add:
		otherStr, ok := right.(*String)
		if !ok {
			return nil, newTypeErrorf("unsupported operation for string: + on type %s",
				right.Type())
		}
		return NewString(s.value + otherStr.value), nil
	default:
		return nil, newTypeErrorf("unsupported operation for string: %v", opType)
	}
}

func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

func NewString(value string) *String {
	return &String{value: value}
}
