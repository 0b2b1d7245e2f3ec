package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/builtins"
	"github.com/quill-lang/quill/errors"
	"github.com/quill-lang/quill/object"
)

func evaluate(t *testing.T, input string) object.Object {
	t.Helper()
	result, err := Evaluate(context.Background(), input)
	require.Nil(t, err, "input: %s", input)
	return result
}

func TestEvaluateLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"0x2a", "42"},
		{"1.5", "1.5"},
		{"-1.5", "-1.5"},
		{`"hello"`, `"hello"`},
		{"true", "true"},
		{"false", "false"},
		{"nil", "nil"},
		{"[]", "[]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"[1, [2, 3]]", "[1, [2, 3]]"},
		{"(,)", "(,)"},
		{"(1,)", "(1,)"},
		{"(1, 2)", "(1, 2)"},
		{"(1, 2,)", "(1, 2)"},
		{`(1, "hello", [99, -1])`, `(1, "hello", [99, -1])`},
		{"((1, 2), (3,))", "((1, 2), (3,))"},
		// Parenthesized single values are grouping, not tuples
		{"(1)", "1"},
		{`("x")`, `"x"`},
	}
	for _, tc := range tests {
		result := evaluate(t, tc.input)
		require.Equal(t, tc.expected, result.Inspect(), "input: %s", tc.input)
	}
}

func TestEvaluateMethodCalls(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// The documented tuple scenarios
		{`(1, "hello", [99, -1]).contains("hello")`, "true"},
		{`("goodbye", 123).contains("hello")`, "false"},
		{"(99, -1, 42).first()", "99"},
		{"(,).first()", "nil"},
		{"(99, -1, 42).get(1)", "-1"},
		{"(99, -1, 42).get(-1)", "nil"},
		{`(99, -1, 42).get(5, "abc")`, `"abc"`},
		{"(99, -1, 42).last()", "42"},
		{"(,).last()", "nil"},
		{"(10, 20, 30, 40, 50).size()", "5"},
		{"(1, -1, 99, 42).sort_copy()", "(-1, 1, 42, 99)"},
		{"(1, 2, 3).to_list()", "[1, 2, 3]"},
		// Chained calls
		{"(1, -1, 99, 42).sort_copy().first()", "-1"},
		{"(1, 2, 3).to_list().to_tuple()", "(1, 2, 3)"},
		{"(1, [2, 3]).deep_copy()", "(1, [2, 3])"},
		// Other receivers
		{`"Hello".to_upper()`, `"HELLO"`},
		{"[3, 1, 2].sort_copy()", "[1, 2, 3]"},
		{"[1, 2].contains(2)", "true"},
	}
	for _, tc := range tests {
		result := evaluate(t, tc.input)
		require.Equal(t, tc.expected, result.Inspect(), "input: %s", tc.input)
	}
}

func TestEvaluateMethodErrors(t *testing.T) {
	_, err := Evaluate(context.Background(), "(1, 2).explode()")
	require.NotNil(t, err)
	var typeErr *errors.TypeError
	require.ErrorAs(t, err, &typeErr)

	_, err = Evaluate(context.Background(), `(1, "a").sort_copy()`)
	require.NotNil(t, err)

	_, err = Evaluate(context.Background(), "(1, 2, 3).get()")
	require.NotNil(t, err)
}

func TestEvaluateSyntaxErrors(t *testing.T) {
	tests := []string{
		"",
		"()",
		"(1, 2",
		"[1, 2",
		"1 2",
		"(1, 2).",
		"(1, 2).get(",
		"-",
		`-"x"`,
		"@",
		"(1,2).5()",
	}
	for _, input := range tests {
		_, err := Evaluate(context.Background(), input)
		require.NotNil(t, err, "input: %s", input)
		var syntaxErr *errors.SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "input: %s", input)
	}
}

func TestEvaluateSyntaxErrorLocation(t *testing.T) {
	_, err := Evaluate(context.Background(), "(1,\n @)", WithFilename("test.ql"))
	require.NotNil(t, err)
	var syntaxErr *errors.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	require.Equal(t, "test.ql", syntaxErr.Location.Filename)
	require.Equal(t, 2, syntaxErr.Location.Line)
	require.Equal(t, 2, syntaxErr.Location.Column)
}

func TestEvaluateGlobals(t *testing.T) {
	globals := builtins.Builtins()
	tests := []struct {
		input    string
		expected string
	}{
		{"len((1, 2, 3))", "3"},
		{`len("hello")`, "5"},
		{"type((1,))", `"tuple"`},
		{"sorted((3, 1, 2))", "[1, 2, 3]"},
		{"tuple([1, 2])", "(1, 2)"},
		{"list((1, 2))", "[1, 2]"},
		{`sprintf("%d-%d", 1, 2)`, `"1-2"`},
		{"reversed((1, 2, 3))", "[3, 2, 1]"},
	}
	for _, tc := range tests {
		result, err := Evaluate(context.Background(), tc.input, WithGlobals(globals))
		require.Nil(t, err, "input: %s", tc.input)
		require.Equal(t, tc.expected, result.Inspect(), "input: %s", tc.input)
	}

	// Unknown functions and bare identifiers are errors
	_, err := Evaluate(context.Background(), "frobnicate(1)", WithGlobals(globals))
	require.NotNil(t, err)

	_, err = Evaluate(context.Background(), "sorted", WithGlobals(globals))
	require.NotNil(t, err)
	var syntaxErr *errors.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestEvaluateDoesNotMutateReceivers(t *testing.T) {
	// sort_copy through the reader never mutates the receiver; evaluating
	// the same literal twice gives equal results regardless of ordering
	first := evaluate(t, "(3, 1, 2).sort_copy()")
	second := evaluate(t, "(3, 1, 2).sort_copy()")
	require.True(t, first.Equals(second))
	require.Equal(t, "(1, 2, 3)", first.Inspect())
}
