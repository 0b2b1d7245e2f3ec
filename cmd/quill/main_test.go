package main

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/errors"
	"github.com/quill-lang/quill/object"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootEvaluatesArgument(t *testing.T) {
	out, err := executeRoot(t, "(1, -1, 99, 42).sort_copy()")
	require.Nil(t, err)
	require.Equal(t, "(-1, 1, 42, 99)\n", out)
}

func TestRootEvaluatesCodeFlag(t *testing.T) {
	out, err := executeRoot(t, "-c", `(99, -1, 42).get(5, "abc")`)
	require.Nil(t, err)
	require.Equal(t, "\"abc\"\n", out)
}

func TestRootEvaluatesGlobals(t *testing.T) {
	out, err := executeRoot(t, "sorted((3, 1, 2))")
	require.Nil(t, err)
	require.Equal(t, "[1, 2, 3]\n", out)
}

func TestRootJSONOutput(t *testing.T) {
	out, err := executeRoot(t, "-o", "json", "(1, 2, 3).to_list()")
	require.Nil(t, err)
	require.Contains(t, out, `"type": "list"`)
	require.Contains(t, out, "1,")
}

func TestRootConflictingInputs(t *testing.T) {
	_, err := executeRoot(t, "-c", "(1,)", "(2,)")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "multiple input sources")
}

func TestRootNoInput(t *testing.T) {
	_, err := executeRoot(t)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "no expression provided")
}

func TestRootSyntaxError(t *testing.T) {
	_, err := executeRoot(t, "--no-color", "(1, 2")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unexpected end of input")
	// The source line and caret are included in the message
	require.Contains(t, err.Error(), "(1, 2")
	require.Contains(t, err.Error(), "^")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.Nil(t, err)
	require.Equal(t, "dev\n", out)
}

func TestVersionCommandJSON(t *testing.T) {
	out, err := executeRoot(t, "version", "-o", "json")
	require.Nil(t, err)
	require.Contains(t, out, `"version": "dev"`)
	require.Contains(t, out, `"commit"`)
}

func TestDocsCommand(t *testing.T) {
	out, err := executeRoot(t, "docs", "tuple", "--no-color")
	require.Nil(t, err)
	require.Contains(t, out, "tuple")
	require.Contains(t, out, "get(index, default?) -> any")
	require.Contains(t, out, "sort_copy()")
}

func TestDocsCommandJSON(t *testing.T) {
	out, err := executeRoot(t, "docs", "-o", "json")
	require.Nil(t, err)
	require.Contains(t, out, `"types"`)
	require.Contains(t, out, `"globals"`)
	require.Contains(t, out, `"name": "tuple"`)
	require.Contains(t, out, `"name": "sorted"`)
}

func TestDocsCommandGlobals(t *testing.T) {
	out, err := executeRoot(t, "docs", "--no-color")
	require.Nil(t, err)
	require.Contains(t, out, "globals")
	require.Contains(t, out, "sorted(source) -> list")
	require.Contains(t, out, "e.g. sorted((3, 1, 2))")
}

func TestRootJSONErrorValue(t *testing.T) {
	out, err := executeRoot(t, "-o", "json", `error("boom")`)
	require.Nil(t, err)
	require.Contains(t, out, `"type": "error"`)
	require.Contains(t, out, `"value": "boom"`)
}

func TestDocsCommandUnknownType(t *testing.T) {
	_, err := executeRoot(t, "docs", "wombat")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unknown type")
}

func TestRootNoDefaultGlobals(t *testing.T) {
	_, err := executeRoot(t, "--no-default-globals", "sorted((2, 1))")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "undefined function")
}

func TestPrintResultUnknownFormat(t *testing.T) {
	viper.Reset()
	viper.Set("output", "yaml")
	var out bytes.Buffer
	err := printResult(&out, object.NewInt(1))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "unknown output format")
}

func TestFormatEvalErrorJSON(t *testing.T) {
	viper.Reset()
	viper.Set("output", "json")
	var out bytes.Buffer
	loc := errors.SourceLocation{Line: 1, Column: 5, Source: "(1, @"}
	err := formatEvalError(&out, errors.SyntaxErrorf(loc, "unexpected token %q", "@"))
	require.NotNil(t, err)
	require.Contains(t, out.String(), `"error"`)
	require.Contains(t, out.String(), `"column": 5`)
}
