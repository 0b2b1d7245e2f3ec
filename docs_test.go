package quill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocs(t *testing.T) {
	docs := Docs()
	require.Len(t, docs, 7)

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}
	require.Equal(t, []string{
		"bool", "float", "int", "list", "nil", "string", "tuple",
	}, names)
}

func TestTypeDocForTuple(t *testing.T) {
	doc, ok := TypeDocFor("tuple")
	require.True(t, ok)
	require.Equal(t, "tuple", doc.Name)

	methods := make(map[string]MethodDoc, len(doc.Methods))
	for _, m := range doc.Methods {
		methods[m.Name] = m
	}
	for _, name := range []string{
		"contains", "deep_copy", "first", "get", "last", "size", "sort_copy", "to_list",
	} {
		require.Contains(t, methods, name)
	}

	get := methods["get"]
	require.Equal(t, []string{"index"}, get.Args)
	require.Equal(t, []string{"default"}, get.OptArgs)
	require.NotEmpty(t, get.Doc)
}

func TestTypeDocForUnknown(t *testing.T) {
	_, ok := TypeDocFor("wombat")
	require.False(t, ok)
}

func TestGlobalDocs(t *testing.T) {
	specs := GlobalDocs()
	require.Len(t, specs, len(DefaultGlobals()))

	byName := make(map[string]bool, len(specs))
	for i, spec := range specs {
		byName[spec.Name] = true
		require.NotEmpty(t, spec.Doc, "spec: %s", spec.Name)
		if i > 0 {
			require.Less(t, specs[i-1].Name, spec.Name)
		}
	}
	require.True(t, byName["len"])
	require.True(t, byName["sorted"])
}

func TestDocsTypesWithoutMethods(t *testing.T) {
	doc, ok := TypeDocFor("int")
	require.True(t, ok)
	require.Empty(t, doc.Methods)
}
