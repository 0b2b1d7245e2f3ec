package object

// DeepCopy returns a copy of the given object that shares no mutable state
// with the original. Containers are copied recursively. Scalar objects are
// immutable and are returned as-is, so copies stay cheap for the common case.
func DeepCopy(obj Object) Object {
	switch obj := obj.(type) {
	case *List:
		items := make([]Object, len(obj.items))
		for i, item := range obj.items {
			items[i] = DeepCopy(item)
		}
		return NewList(items)
	case *Tuple:
		items := make([]Object, len(obj.items))
		for i, item := range obj.items {
			items[i] = DeepCopy(item)
		}
		return NewTuple(items)
	default:
		return obj
	}
}
