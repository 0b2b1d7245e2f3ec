// Package object re-exports error types from the errors package for convenience.
package object

import (
	"github.com/quill-lang/quill/errors"
)

// Re-export types from errors package for convenience
type (
	SourceLocation = errors.SourceLocation
	FatalError     = errors.FatalError
	EvalError      = errors.EvalError
	ArgsError      = errors.ArgsError
	TypeError      = errors.TypeError
	ValueError     = errors.ValueError
	IndexError     = errors.IndexError
	SyntaxError    = errors.SyntaxError
)

// Re-export functions for convenience
var (
	NewEvalError     = errors.NewEvalError
	NewArgsErrorType = errors.NewArgsError
	NewTypeError     = errors.NewTypeError
)

// Internal functions used by the wrapper functions in object.go
var (
	newEvalErrorf  = errors.EvalErrorf
	newArgsErrorf  = errors.ArgsErrorf
	newTypeErrorf  = errors.TypeErrorf
	newValueErrorf = errors.ValueErrorf
	newIndexErrorf = errors.IndexErrorf
)
