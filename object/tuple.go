package object

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/quill-lang/quill/op"
)

var tupleMethods = NewMethodRegistry[*Tuple]("tuple")

func init() {
	tupleMethods.Define("contains").
		Doc("Check if a value is in the tuple").
		Arg("needle").
		Returns("bool").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.Contains(args[0]), nil
		})

	tupleMethods.Define("deep_copy").
		Doc("Create a recursive copy that shares no mutable state").
		Returns("tuple").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.DeepCopy(), nil
		})

	tupleMethods.Define("first").
		Doc("The first element, or nil if the tuple is empty").
		Returns("any").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.First(), nil
		})

	tupleMethods.Define("get").
		Doc("The element at an index, or a default when out of range").
		Arg("index").
		OptArg("default").
		Returns("any").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			index, err := AsInt(args[0])
			if err != nil {
				return nil, err
			}
			defaultValue := Object(Nil)
			if len(args) == 2 {
				defaultValue = args[1]
			}
			return tup.Get(index, defaultValue), nil
		})

	tupleMethods.Define("last").
		Doc("The last element, or nil if the tuple is empty").
		Returns("any").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.Last(), nil
		})

	tupleMethods.Define("size").
		Doc("The number of elements").
		Returns("int").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.Len(), nil
		})

	tupleMethods.Define("sort_copy").
		Doc("Create a sorted copy, leaving the tuple unchanged").
		Returns("tuple").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.SortCopy()
		})

	tupleMethods.Define("to_list").
		Doc("Create a mutable list with the same elements").
		Returns("list").
		Impl(func(tup *Tuple, ctx context.Context, args ...Object) (Object, error) {
			return tup.ToList(), nil
		})
}

// Tuple is an immutable, fixed-size, ordered sequence of objects. Unlike a
// list, a tuple never changes after construction: every operation that looks
// like a mutation instead returns a new tuple or a new list. That makes a
// tuple safe to share between concurrent readers without synchronization.
// Mutable containers nested inside a tuple's elements are not protected.
type Tuple struct {
	items []Object
}

func (tup *Tuple) Attrs() []AttrSpec {
	return tupleMethods.Specs()
}

func (tup *Tuple) GetAttr(name string) (Object, bool) {
	return tupleMethods.GetAttr(tup, name)
}

func (tup *Tuple) SetAttr(name string, value Object) error {
	return TypeErrorf("tuple has no attribute %q", name)
}

func (tup *Tuple) Type() Type {
	return TUPLE
}

// Value returns the underlying items. Callers must not modify the slice.
func (tup *Tuple) Value() []Object {
	return tup.items
}

// Inspect never writes to the receiver, so concurrent calls on a shared
// tuple are safe. Cycle detection state lives in a per-call visited set.
func (tup *Tuple) Inspect() string {
	return tup.inspect(nil)
}

func (tup *Tuple) inspect(visited map[Object]struct{}) string {
	if _, ok := visited[tup]; ok {
		return "(...)"
	}
	if visited == nil {
		visited = map[Object]struct{}{}
	}
	visited[tup] = struct{}{}
	defer delete(visited, tup)

	// The empty tuple is written "(,)" and a one-element tuple keeps a
	// trailing comma, so that the display is never mistaken for a
	// parenthesized value.
	switch len(tup.items) {
	case 0:
		return "(,)"
	case 1:
		return "(" + inspectItem(tup.items[0], visited) + ",)"
	}
	var out bytes.Buffer
	items := make([]string, 0, len(tup.items))
	for _, e := range tup.items {
		items = append(items, inspectItem(e, visited))
	}
	out.WriteString("(")
	out.WriteString(strings.Join(items, ", "))
	out.WriteString(")")
	return out.String()
}

func (tup *Tuple) String() string {
	return tup.Inspect()
}

func (tup *Tuple) Interface() interface{} {
	items := make([]interface{}, 0, len(tup.items))
	for _, item := range tup.items {
		items = append(items, item.Interface())
	}
	return items
}

// First returns the first element, or Nil if the tuple is empty. An empty
// tuple is not an error condition here, by design.
func (tup *Tuple) First() Object {
	if len(tup.items) == 0 {
		return Nil
	}
	return tup.items[0]
}

// Last returns the last element, or Nil if the tuple is empty.
func (tup *Tuple) Last() Object {
	if len(tup.items) == 0 {
		return Nil
	}
	return tup.items[len(tup.items)-1]
}

// Get returns the element at the given zero-based index, or defaultValue
// when the index is out of range. Negative indices are out of range: they
// do NOT wrap around from the end, so Get(-1, d) returns d, not the last
// element. This is a total function for any int64 index.
func (tup *Tuple) Get(index int64, defaultValue Object) Object {
	if index < 0 || index >= int64(len(tup.items)) {
		return defaultValue
	}
	return tup.items[index]
}

// DeepCopy returns a recursive copy of the tuple. Mutating any container
// reachable from the copy never affects the original and vice versa.
func (tup *Tuple) DeepCopy() *Tuple {
	return DeepCopy(tup).(*Tuple)
}

// SortCopy returns a new tuple with the same elements in ascending order.
// The sort is stable and the receiver is left untouched. An error is
// returned when two elements have no mutual ordering; an arbitrary order is
// never produced silently.
func (tup *Tuple) SortCopy() (*Tuple, error) {
	items := make([]Object, len(tup.items))
	copy(items, tup.items)
	if err := Sort(items); err != nil {
		return nil, err
	}
	return NewTuple(items), nil
}

// ToList returns a new independently-mutable list with the same elements in
// the same order. The element copy is shallow: nested containers are shared,
// mirroring ordinary assignment rather than DeepCopy.
func (tup *Tuple) ToList() *List {
	items := make([]Object, len(tup.items))
	copy(items, tup.items)
	return NewList(items)
}

func (tup *Tuple) Compare(other Object) (int, error) {
	otherTup, ok := other.(*Tuple)
	if !ok {
		return 0, TypeErrorf("unable to compare tuple and %s", other.Type())
	}
	if len(tup.items) > len(otherTup.items) {
		return 1, nil
	} else if len(tup.items) < len(otherTup.items) {
		return -1, nil
	}
	for i := 0; i < len(tup.items); i++ {
		comparable, ok := tup.items[i].(Comparable)
		if !ok {
			return 0, TypeErrorf("%s object is not comparable", tup.items[i].Type())
		}
		comp, err := comparable.Compare(otherTup.items[i])
		if err != nil {
			return 0, err
		}
		if comp != 0 {
			return comp, nil
		}
	}
	return 0, nil
}

// Equals reports structural equality: equal length and every position
// comparing equal, recursing through nested containers.
func (tup *Tuple) Equals(other Object) bool {
	otherTup, ok := other.(*Tuple)
	if !ok {
		return false
	}
	if len(tup.items) != len(otherTup.items) {
		return false
	}
	for i, v := range tup.items {
		if !Equals(v, otherTup.items[i]) {
			return false
		}
	}
	return true
}

func (tup *Tuple) IsTruthy() bool {
	return len(tup.items) > 0
}

// GetItem implements the [key] operator. Unlike the get method, the
// subscript operator resolves negative indices from the end and raises an
// index error when out of range, matching list subscripting.
func (tup *Tuple) GetItem(key Object) (Object, *Error) {
	indexObj, ok := key.(*Int)
	if !ok {
		return nil, TypeErrorf("tuple index must be an int (got %s)", key.Type())
	}
	idx, err := ResolveIndex(indexObj.value, int64(len(tup.items)))
	if err != nil {
		return nil, NewError(err)
	}
	return tup.items[idx], nil
}

// GetSlice implements the [start:stop] operator, producing a new tuple.
func (tup *Tuple) GetSlice(s Slice) (Object, *Error) {
	start, stop, err := ResolveIntSlice(s, int64(len(tup.items)))
	if err != nil {
		return nil, NewError(err)
	}
	items := tup.items[start:stop]
	itemsCopy := make([]Object, len(items))
	copy(itemsCopy, items)
	return NewTuple(itemsCopy), nil
}

// SetItem is unsupported: tuples are immutable.
func (tup *Tuple) SetItem(key, value Object) *Error {
	return TypeErrorf("tuple does not support item assignment")
}

// DelItem is unsupported: tuples are immutable.
func (tup *Tuple) DelItem(key Object) *Error {
	return TypeErrorf("tuple does not support item deletion")
}

// Contains returns true if the given item is found in this container.
// Equality is total, so a needle of any type is acceptable and membership
// testing never fails.
func (tup *Tuple) Contains(item Object) *Bool {
	for _, v := range tup.items {
		if Equals(v, item) {
			return True
		}
	}
	return False
}

// Len returns the number of items in this container.
func (tup *Tuple) Len() *Int {
	return NewInt(int64(len(tup.items)))
}

func (tup *Tuple) Size() int {
	return len(tup.items)
}

func (tup *Tuple) Enumerate(ctx context.Context, fn func(key, value Object) bool) {
	for i, item := range tup.items {
		if !fn(NewInt(int64(i)), item) {
			return
		}
	}
}

func (tup *Tuple) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	switch right := right.(type) {
	case *Tuple:
		return tup.runOperationTuple(opType, right)
	default:
		return nil, newTypeErrorf("unsupported operation for tuple: %v on type %s",
			opType, right.Type())
	}
}

func (tup *Tuple) runOperationTuple(opType op.BinaryOpType, right *Tuple) (Object, error) {
	switch opType {
	case op.Add:
		combined := make([]Object, len(tup.items)+len(right.items))
		copy(combined, tup.items)
		copy(combined[len(tup.items):], right.items)
		return NewTuple(combined), nil
	default:
		return nil, newTypeErrorf("unsupported operation for tuple: %v on type %s",
			opType, right.Type())
	}
}

func (tup *Tuple) MarshalJSON() ([]byte, error) {
	return json.Marshal(tup.items)
}

// NewTuple creates a tuple holding the given items. The tuple takes
// ownership of the slice: callers must not modify it afterwards.
func NewTuple(items []Object) *Tuple {
	return &Tuple{items: items}
}

// NewEmptyTuple returns the empty tuple, written (,).
func NewEmptyTuple() *Tuple {
	return &Tuple{}
}
