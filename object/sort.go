package object

import (
	"sort"
)

// Sort a slice of objects in place. The sort is stable: items that compare
// equal retain their relative input order. If the slice contains objects
// with no mutual ordering, an error is returned and the slice contents are
// unspecified; callers that guarantee the original stays untouched must
// sort a copy (see Tuple.SortCopy).
func Sort(items []Object) *Error {
	var sortErr *Error
	sort.SliceStable(items, func(a, b int) bool {
		if sortErr != nil {
			return false
		}
		itemA := items[a]
		itemB := items[b]
		compA, ok := itemA.(Comparable)
		if !ok {
			sortErr = TypeErrorf("sort encountered a non-comparable item (%s)", itemA.Type())
			return false
		}
		if _, ok := itemB.(Comparable); !ok {
			sortErr = TypeErrorf("sort encountered a non-comparable item (%s)", itemB.Type())
			return false
		}
		result, err := compA.Compare(itemB)
		if err != nil {
			sortErr = NewError(err)
			return false
		}
		return result < 0
	})
	return sortErr
}
