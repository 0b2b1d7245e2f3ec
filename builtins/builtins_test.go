package builtins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/object"
)

func TestLen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		input    object.Object
		expected int64
	}{
		{object.NewString("hello"), 5},
		{object.NewList([]object.Object{object.NewInt(1)}), 1},
		{object.NewTuple([]object.Object{object.NewInt(1), object.NewInt(2)}), 2},
		{object.NewEmptyTuple(), 0},
	}
	for _, tc := range tests {
		result, err := Len(ctx, tc.input)
		require.Nil(t, err)
		require.Equal(t, object.NewInt(tc.expected), result)
	}

	_, err := Len(ctx, object.NewInt(1))
	require.NotNil(t, err)
	_, err = Len(ctx)
	require.NotNil(t, err)
	require.Equal(t, "args error: len() takes exactly 1 argument (0 given)", err.Error())
}

func TestListAndTupleConversions(t *testing.T) {
	ctx := context.Background()
	tup := object.NewTuple([]object.Object{object.NewInt(1), object.NewInt(2)})

	result, err := List(ctx, tup)
	require.Nil(t, err)
	require.Equal(t, "[1, 2]", result.Inspect())

	// Converting back round-trips the elements
	back, err := Tuple(ctx, result)
	require.Nil(t, err)
	require.True(t, back.Equals(tup))

	// The produced list is independent of the source tuple
	result.(*object.List).Append(object.NewInt(3))
	require.Equal(t, "(1, 2)", tup.Inspect())

	empty, err := Tuple(ctx)
	require.Nil(t, err)
	require.Equal(t, "(,)", empty.Inspect())

	_, err = Tuple(ctx, object.NewInt(5))
	require.NotNil(t, err)
	_, err = List(ctx, object.NewInt(5))
	require.NotNil(t, err)
}

func TestSorted(t *testing.T) {
	ctx := context.Background()

	tup := object.NewTuple([]object.Object{
		object.NewInt(1), object.NewInt(-1), object.NewInt(99), object.NewInt(42),
	})
	result, err := Sorted(ctx, tup)
	require.Nil(t, err)
	require.Equal(t, "[-1, 1, 42, 99]", result.Inspect())
	// sorted() never mutates its argument
	require.Equal(t, "(1, -1, 99, 42)", tup.Inspect())

	result, err = Sorted(ctx, object.NewString("cba"))
	require.Nil(t, err)
	require.Equal(t, `["a", "b", "c"]`, result.Inspect())

	mixed := object.NewList([]object.Object{object.NewInt(1), object.NewString("a")})
	_, err = Sorted(ctx, mixed)
	require.NotNil(t, err)

	_, err = Sorted(ctx, object.NewInt(3))
	require.NotNil(t, err)
}

func TestReversed(t *testing.T) {
	ctx := context.Background()

	tup := object.NewTuple([]object.Object{
		object.NewInt(1), object.NewInt(2), object.NewInt(3),
	})
	result, err := Reversed(ctx, tup)
	require.Nil(t, err)
	require.Equal(t, "[3, 2, 1]", result.Inspect())
	require.Equal(t, "(1, 2, 3)", tup.Inspect())

	list := object.NewList([]object.Object{object.NewInt(1), object.NewInt(2)})
	result, err = Reversed(ctx, list)
	require.Nil(t, err)
	require.Equal(t, "[2, 1]", result.Inspect())
	require.Equal(t, "[1, 2]", list.Inspect())

	result, err = Reversed(ctx, object.NewString("abc"))
	require.Nil(t, err)
	require.Equal(t, `["c", "b", "a"]`, result.Inspect())

	_, err = Reversed(ctx, object.NewInt(3))
	require.NotNil(t, err)
}

func TestTypeAndString(t *testing.T) {
	ctx := context.Background()

	result, err := Type(ctx, object.NewEmptyTuple())
	require.Nil(t, err)
	require.Equal(t, object.NewString("tuple"), result)

	result, err = String(ctx, object.NewTuple([]object.Object{object.NewInt(1)}))
	require.Nil(t, err)
	require.Equal(t, object.NewString("(1,)"), result)

	result, err = String(ctx)
	require.Nil(t, err)
	require.Equal(t, object.NewString(""), result)
}

func TestAssert(t *testing.T) {
	ctx := context.Background()

	result, err := Assert(ctx, object.True)
	require.Nil(t, err)
	require.Equal(t, object.Object(object.Nil), result)

	_, err = Assert(ctx, object.False)
	require.NotNil(t, err)
	require.Equal(t, "assertion failed", err.Error())

	_, err = Assert(ctx, object.False, object.NewString("nope"))
	require.NotNil(t, err)
	require.Equal(t, "nope", err.Error())

	// An error value as the message raises its wrapped error
	boom := object.Errorf("boom")
	_, err = Assert(ctx, object.False, boom)
	require.NotNil(t, err)
	require.Equal(t, "boom", err.Error())

	_, err = Assert(ctx)
	require.NotNil(t, err)
	require.Equal(t, "args error: assert() takes at least 1 argument (0 given)", err.Error())
}

func TestSpecs(t *testing.T) {
	specs := Specs()
	require.Len(t, specs, len(Builtins()))
	for i, spec := range specs {
		require.NotEmpty(t, spec.Doc, "spec: %s", spec.Name)
		require.NotEmpty(t, spec.Returns, "spec: %s", spec.Name)
		if i > 0 {
			require.Less(t, specs[i-1].Name, spec.Name)
		}
		_, ok := Builtins()[spec.Name]
		require.True(t, ok, "spec: %s", spec.Name)
	}
}

func TestErrorAndSprintf(t *testing.T) {
	ctx := context.Background()

	result, err := Error(ctx, object.NewString("bad value: %v"), object.NewInt(3))
	require.Nil(t, err)
	errObj, ok := result.(*object.Error)
	require.True(t, ok)
	require.Equal(t, "bad value: 3", errObj.Message().Value())

	result, err = Sprintf(ctx, object.NewString("%s=%v"),
		object.NewString("x"), object.NewTuple([]object.Object{object.NewInt(1)}))
	require.Nil(t, err)
	require.Equal(t, object.NewString("x=(1,)"), result)
}

func TestBuiltinsRegistry(t *testing.T) {
	reg := Builtins()
	for _, name := range []string{
		"assert", "error", "len", "list", "reversed",
		"sorted", "sprintf", "string", "tuple", "type",
	} {
		obj, ok := reg[name]
		require.True(t, ok, "missing builtin: %s", name)
		require.Equal(t, object.BUILTIN, obj.Type())
	}
}
