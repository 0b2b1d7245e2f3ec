// Package errors defines the error kinds raised by the Quill value core
// and the reader.
package errors

import (
	"fmt"
)

// SourceLocation represents a position in reader input.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source text
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FatalError is an interface for errors that may or may not be fatal.
type FatalError interface {
	Error() string
	IsFatal() bool
}

// EvalError is used to indicate an unrecoverable error that occurred
// during expression evaluation. All EvalErrors are considered fatal errors.
type EvalError struct {
	Err error
}

func (r *EvalError) Error() string {
	return r.Err.Error()
}

func (r *EvalError) Unwrap() error {
	return r.Err
}

func (r *EvalError) IsFatal() bool {
	return true
}

func NewEvalError(err error) *EvalError {
	return &EvalError{Err: err}
}

func EvalErrorf(format string, args ...any) *EvalError {
	return NewEvalError(fmt.Errorf(format, args...))
}

// ArgsError is used to indicate an error that occurred while processing
// function arguments. All ArgsErrors are considered fatal errors. This should
// be reserved for use in cases where a function call basically should not
// compile due to the number of arguments passed.
type ArgsError struct {
	Err error
}

func (a *ArgsError) Error() string {
	return a.Err.Error()
}

func (a *ArgsError) Unwrap() error {
	return a.Err
}

func (a *ArgsError) IsFatal() bool {
	return true
}

func NewArgsError(err error) *ArgsError {
	return &ArgsError{Err: err}
}

func ArgsErrorf(format string, args ...any) *ArgsError {
	return NewArgsError(fmt.Errorf(format, args...))
}

// TypeError is used to indicate an invalid type was supplied. This includes
// the not-comparable condition raised when sorting elements that have no
// mutual ordering.
type TypeError struct {
	Err error
}

func (t *TypeError) Error() string {
	return t.Err.Error()
}

func (t *TypeError) Unwrap() error {
	return t.Err
}

func (t *TypeError) IsFatal() bool {
	return false
}

func NewTypeError(err error) *TypeError {
	return &TypeError{Err: err}
}

func TypeErrorf(format string, args ...any) *TypeError {
	return NewTypeError(fmt.Errorf(format, args...))
}

// ValueError is used to indicate a value that is invalid for an operation
// even though its type is acceptable.
type ValueError struct {
	Err error
}

func (v *ValueError) Error() string {
	return v.Err.Error()
}

func (v *ValueError) Unwrap() error {
	return v.Err
}

func (v *ValueError) IsFatal() bool {
	return false
}

func NewValueError(err error) *ValueError {
	return &ValueError{Err: err}
}

func ValueErrorf(format string, args ...any) *ValueError {
	return NewValueError(fmt.Errorf(format, args...))
}

// IndexError is used to indicate a container subscript that is out of range.
// Note that the tuple get method never raises this: out-of-range access there
// degrades to the caller-supplied default instead.
type IndexError struct {
	Err error
}

func (i *IndexError) Error() string {
	return i.Err.Error()
}

func (i *IndexError) Unwrap() error {
	return i.Err
}

func (i *IndexError) IsFatal() bool {
	return false
}

func NewIndexError(err error) *IndexError {
	return &IndexError{Err: err}
}

func IndexErrorf(format string, args ...any) *IndexError {
	return NewIndexError(fmt.Errorf(format, args...))
}

// SyntaxError is raised by the reader when input text cannot be parsed.
type SyntaxError struct {
	Err      error
	Location SourceLocation
}

func (s *SyntaxError) Error() string {
	if s.Location.IsZero() {
		return s.Err.Error()
	}
	return fmt.Sprintf("%s (at %s)", s.Err.Error(), s.Location.String())
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}

func (s *SyntaxError) IsFatal() bool {
	return true
}

func NewSyntaxError(err error, loc SourceLocation) *SyntaxError {
	return &SyntaxError{Err: err, Location: loc}
}

func SyntaxErrorf(loc SourceLocation, format string, args ...any) *SyntaxError {
	return &SyntaxError{Err: fmt.Errorf(format, args...), Location: loc}
}
