package object

// AttrSpec describes an attribute available on an object.
// This provides metadata for introspection, documentation, and tooling.
type AttrSpec struct {
	// Name is the attribute name (e.g., "contains", "sort_copy").
	Name string

	// Doc is a short description of what the attribute does.
	Doc string

	// Args lists required parameter names (e.g., ["needle"]).
	// Empty for attributes that take no arguments.
	Args []string

	// OptArgs lists optional parameter names (e.g., ["default"]).
	OptArgs []string

	// Returns describes the return type (e.g., "list", "tuple", "bool").
	Returns string
}

// FuncSpec describes a builtin function.
// This provides metadata for introspection, documentation, and tooling.
type FuncSpec struct {
	// Name is the function name (e.g., "len", "sorted").
	Name string `json:"name"`

	// Doc is a short description of what the function does.
	Doc string `json:"doc,omitempty"`

	// Args lists parameter names (e.g., ["obj"] or ["items", "key"]).
	Args []string `json:"args,omitempty"`

	// Returns describes the return type (e.g., "int", "list").
	Returns string `json:"returns,omitempty"`

	// Example shows a short usage example (optional).
	Example string `json:"example,omitempty"`
}

// Introspectable is implemented by objects that can describe their attributes.
type Introspectable interface {
	// Attrs returns the attribute specifications for this object.
	Attrs() []AttrSpec
}

// AttrNames returns just the attribute names from a slice of AttrSpec.
// This is a convenience helper for common use cases.
func AttrNames(attrs []AttrSpec) []string {
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}

// FindAttr searches for an attribute by name in a slice of AttrSpec.
// Returns the AttrSpec and true if found, or zero value and false if not.
func FindAttr(attrs []AttrSpec, name string) (AttrSpec, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr, true
		}
	}
	return AttrSpec{}, false
}
