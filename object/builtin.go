package object

import (
	"context"
	"fmt"

	"github.com/quill-lang/quill/op"
)

var _ Callable = (*Builtin)(nil) // Ensure that *Builtin implements Callable

// BuiltinFunction holds the type of a built-in function.
type BuiltinFunction func(ctx context.Context, args ...Object) (Object, error)

// Builtin wraps func and implements Object interface.
type Builtin struct {
	// The function that this object wraps.
	fn BuiltinFunction

	// The name of the function.
	name string
}

func (b *Builtin) Attrs() []AttrSpec {
	return nil
}

func (b *Builtin) GetAttr(name string) (Object, bool) {
	switch name {
	case "__name__":
		return NewString(b.name), true
	}
	return nil, false
}

func (b *Builtin) SetAttr(name string, value Object) error {
	return TypeErrorf("builtin has no attribute %q", name)
}

func (b *Builtin) IsTruthy() bool {
	return true
}

func (b *Builtin) Type() Type {
	return BUILTIN
}

func (b *Builtin) Value() BuiltinFunction {
	return b.fn
}

func (b *Builtin) Interface() interface{} {
	return nil
}

func (b *Builtin) Call(ctx context.Context, args ...Object) (Object, error) {
	return b.fn(ctx, args...)
}

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("builtin(%s)", b.name)
}

func (b *Builtin) String() string {
	return b.Inspect()
}

func (b *Builtin) Name() string {
	return b.name
}

func (b *Builtin) Equals(other Object) bool {
	otherBuiltin, ok := other.(*Builtin)
	if !ok {
		return false
	}
	return b == otherBuiltin
}

func (b *Builtin) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, newTypeErrorf("unsupported operation for builtin: %v", opType)
}

func (b *Builtin) MarshalJSON() ([]byte, error) {
	return nil, TypeErrorf("unable to marshal builtin")
}

// NewBuiltin returns a new Builtin with the given name and function.
func NewBuiltin(name string, fn BuiltinFunction) *Builtin {
	return &Builtin{fn: fn, name: name}
}
