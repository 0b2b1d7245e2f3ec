package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepCopyScalars(t *testing.T) {
	one := NewInt(1)
	require.Same(t, one, DeepCopy(one))
	require.Same(t, True, DeepCopy(True))
	require.Same(t, Nil, DeepCopy(Nil))

	str := NewString("abc")
	require.Same(t, str, DeepCopy(str))
}

func TestDeepCopyList(t *testing.T) {
	inner := NewList([]Object{NewInt(1)})
	original := NewList([]Object{inner, NewString("x")})

	copied, ok := DeepCopy(original).(*List)
	require.True(t, ok)
	require.NotSame(t, original, copied)
	require.True(t, original.Equals(copied))

	// Mutating the copy's nested list must not leak into the original.
	copiedInner := copied.Value()[0].(*List)
	require.NotSame(t, inner, copiedInner)
	copiedInner.Append(NewInt(2))
	require.Equal(t, "[1]", inner.Inspect())
	require.Equal(t, "[1, 2]", copiedInner.Inspect())
}

func TestDeepCopyTuple(t *testing.T) {
	inner := NewList([]Object{NewInt(1)})
	original := NewTuple([]Object{inner, NewInt(2)})

	copied, ok := DeepCopy(original).(*Tuple)
	require.True(t, ok)
	require.NotSame(t, original, copied)
	require.True(t, original.Equals(copied))

	copiedInner := copied.Value()[0].(*List)
	require.NotSame(t, inner, copiedInner)
	copiedInner.Append(NewInt(3))
	require.Equal(t, "([1], 2)", original.Inspect())
	require.Equal(t, "([1, 3], 2)", copied.Inspect())
}
