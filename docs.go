package quill

import (
	"sort"

	"github.com/quill-lang/quill/builtins"
	"github.com/quill-lang/quill/object"
)

// Version is the current Quill version.
const Version = "0.1.0"

// MethodDoc describes one method on a type, built from the method
// registry metadata.
type MethodDoc struct {
	Name    string   `json:"name"`
	Doc     string   `json:"doc,omitempty"`
	Args    []string `json:"args,omitempty"`
	OptArgs []string `json:"opt_args,omitempty"`
	Returns string   `json:"returns,omitempty"`
}

// TypeDoc describes a type and its methods.
type TypeDoc struct {
	Name    string      `json:"name"`
	Methods []MethodDoc `json:"methods,omitempty"`
}

// Docs returns documentation for the built-in types and their methods,
// sorted by type name. The method metadata comes from the same
// registries used for dispatch at runtime.
func Docs() []TypeDoc {
	examples := []object.Object{
		object.NewEmptyTuple(),
		object.NewList(nil),
		object.NewString(""),
		object.NewInt(0),
		object.NewFloat(0),
		object.True,
		object.Nil,
	}
	var docs []TypeDoc
	for _, example := range examples {
		doc := TypeDoc{Name: string(example.Type())}
		if in, ok := example.(object.Introspectable); ok {
			doc.Methods = methodDocs(in.Attrs())
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})
	return docs
}

// TypeDocFor returns the documentation for a single type by name.
func TypeDocFor(name string) (TypeDoc, bool) {
	for _, doc := range Docs() {
		if doc.Name == name {
			return doc, true
		}
	}
	return TypeDoc{}, false
}

func methodDocs(specs []object.AttrSpec) []MethodDoc {
	var docs []MethodDoc
	for _, spec := range specs {
		docs = append(docs, MethodDoc{
			Name:    spec.Name,
			Doc:     spec.Doc,
			Args:    spec.Args,
			OptArgs: spec.OptArgs,
			Returns: spec.Returns,
		})
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Name < docs[j].Name
	})
	return docs
}

// GlobalDocs returns documentation for the default global functions,
// sorted by name.
func GlobalDocs() []object.FuncSpec {
	return builtins.Specs()
}
