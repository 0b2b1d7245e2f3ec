package object

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListInsert(t *testing.T) {
	one := NewInt(1)
	two := NewInt(2)
	thr := NewInt(3)

	list := NewList([]Object{one})

	list.Insert(5, two)
	require.Equal(t, []Object{one, two}, list.Value())

	list.Insert(-10, thr)
	require.Equal(t, []Object{thr, one, two}, list.Value())

	list.Insert(1, two)
	require.Equal(t, []Object{thr, two, one, two}, list.Value())

	list.Insert(0, two)
	require.Equal(t, []Object{two, thr, two, one, two}, list.Value())
}

func TestListPop(t *testing.T) {
	zero := NewString("0")
	one := NewString("1")
	two := NewString("2")

	list := NewList([]Object{zero, one, two})

	val, err := list.Pop(1)
	require.Nil(t, err)
	require.Equal(t, one, val)

	val, err = list.Pop(1)
	require.Nil(t, err)
	require.Equal(t, two, val)

	_, err = list.Pop(1)
	require.NotNil(t, err)
	require.Equal(t, "index out of range: 1", err.Error())
}

func TestListIndexAndCount(t *testing.T) {
	list := NewList([]Object{NewInt(1), NewInt(2), NewInt(1)})
	require.Equal(t, int64(0), list.Index(NewInt(1)))
	require.Equal(t, int64(-1), list.Index(NewInt(3)))
	require.Equal(t, int64(2), list.Count(NewInt(1)))
	require.Equal(t, int64(0), list.Count(Nil))
}

func TestListGetSlice(t *testing.T) {
	list := NewList([]Object{NewInt(1), NewInt(2), NewInt(3)})

	result, err := list.GetSlice(Slice{Start: NewInt(1)})
	require.Nil(t, err)
	require.Equal(t, "[2, 3]", result.Inspect())

	result, err = list.GetSlice(Slice{Start: NewInt(-2), Stop: NewInt(3)})
	require.Nil(t, err)
	require.Equal(t, "[2, 3]", result.Inspect())

	_, err = list.GetSlice(Slice{Start: NewInt(2), Stop: NewInt(1)})
	require.NotNil(t, err)
}

func TestListDeepCopy(t *testing.T) {
	inner := NewList([]Object{NewInt(1)})
	list := NewList([]Object{inner, NewString("x")})

	cp := list.DeepCopy()
	require.True(t, cp.Equals(list))

	inner.Append(NewInt(2))
	require.Equal(t, "[[1, 2], \"x\"]", list.Inspect())
	require.Equal(t, "[[1], \"x\"]", cp.Inspect())
}

func TestListSortCopy(t *testing.T) {
	list := NewList([]Object{NewInt(3), NewInt(1), NewInt(2)})
	sorted, err := list.SortCopy()
	require.Nil(t, err)
	require.Equal(t, "[1, 2, 3]", sorted.Inspect())
	require.Equal(t, "[3, 1, 2]", list.Inspect())

	mixed := NewList([]Object{NewInt(1), NewString("a")})
	_, err = mixed.SortCopy()
	require.NotNil(t, err)
}

func TestListToTuple(t *testing.T) {
	list := NewList([]Object{NewInt(1), NewInt(2), NewInt(3)})
	tup := list.ToTuple()
	require.Equal(t, "(1, 2, 3)", tup.Inspect())

	// The tuple is independent of later list mutations
	list.Append(NewInt(4))
	require.Equal(t, "(1, 2, 3)", tup.Inspect())
}

func TestListEachMapFilter(t *testing.T) {
	ctx := context.Background()
	list := NewList([]Object{NewInt(1), NewInt(2), NewInt(3)})

	var seen []int64
	collect := NewBuiltin("collect", func(ctx context.Context, args ...Object) (Object, error) {
		seen = append(seen, args[0].(*Int).Value())
		return Nil, nil
	})
	result, err := list.Each(ctx, collect)
	require.Nil(t, err)
	require.Equal(t, Object(Nil), result)
	require.Equal(t, []int64{1, 2, 3}, seen)

	double := NewBuiltin("double", func(ctx context.Context, args ...Object) (Object, error) {
		return NewInt(args[0].(*Int).Value() * 2), nil
	})
	result, err = list.Map(ctx, double)
	require.Nil(t, err)
	require.Equal(t, "[2, 4, 6]", result.Inspect())

	odd := NewBuiltin("odd", func(ctx context.Context, args ...Object) (Object, error) {
		return NewBool(args[0].(*Int).Value()%2 == 1), nil
	})
	result, err = list.Filter(ctx, odd)
	require.Nil(t, err)
	require.Equal(t, "[1, 3]", result.Inspect())

	_, err = list.Map(ctx, NewInt(1))
	require.NotNil(t, err)
}

func TestListInspectRecursion(t *testing.T) {
	list := NewList(nil)
	list.Append(list)
	require.Equal(t, "[[...]]", list.Inspect())

	// A cycle through a nested tuple is detected too
	inner := NewList(nil)
	tup := NewTuple([]Object{inner})
	inner.Append(tup)
	require.Equal(t, "[([...],)]", inner.Inspect())
	require.Equal(t, "([(...)],)", tup.Inspect())

	// Repeated (acyclic) references are not mistaken for cycles
	shared := NewList([]Object{NewInt(1)})
	pair := NewList([]Object{shared, shared})
	require.Equal(t, "[[1], [1]]", pair.Inspect())
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		idx      int64
		size     int64
		expected int64
		fails    bool
	}{
		{0, 3, 0, false},
		{2, 3, 2, false},
		{3, 3, 0, true},
		{-1, 3, 2, false},
		{-3, 3, 0, false},
		{-4, 3, 0, true},
		{0, 0, 0, true},
	}
	for _, tc := range tests {
		result, err := ResolveIndex(tc.idx, tc.size)
		if tc.fails {
			require.NotNil(t, err, "idx: %d size: %d", tc.idx, tc.size)
		} else {
			require.Nil(t, err, "idx: %d size: %d", tc.idx, tc.size)
			require.Equal(t, tc.expected, result)
		}
	}
}
