// ==============================================================================================
// FILE: internal/diagnostics/errors.go
// ==============================================================================================
// PACKAGE: diagnostics
// PURPOSE: The two-layer error taxonomy the pipeline reports through:
//          CompilerError (Source/Lexical/Runtime/Multi) wrapping whatever
//          stage failed, and EvaluationError, a growable list of runtime
//          failure details. Every concrete type satisfies the standard
//          error interface so callers can use errors.Is/errors.As and
//          fmt.Errorf("...: %w", err) the same as with any other error.
// ==============================================================================================

package diagnostics

import (
	"fmt"
	"strings"
)

// CompilerError is the umbrella type for anything the pipeline can fail with.
type CompilerError interface {
	error
	compilerError()
}

// SourceError wraps a failure discovering or reading source files (walking,
// I/O, cache serialization).
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("source error: %s", e.Err)
	}
	return fmt.Sprintf("source error (%s): %s", e.Path, e.Err)
}
func (e *SourceError) Unwrap() error { return e.Err }
func (*SourceError) compilerError()  {}

// LexicalError carries a line and offending lexeme, per spec's requirement
// that user-visible failures include "[line N]" and the offending lexeme.
type LexicalError struct {
	Line   int
	Lexeme string
	Msg    string
}

func (e *LexicalError) Error() string {
	if e.Lexeme != "" {
		return fmt.Sprintf("[line %d] %s (near %q)", e.Line, e.Msg, e.Lexeme)
	}
	return fmt.Sprintf("[line %d] %s", e.Line, e.Msg)
}
func (*LexicalError) compilerError() {}

// RuntimeError wraps an EvaluationError produced by the interpreter.
type RuntimeError struct {
	Eval *EvaluationError
}

func (e *RuntimeError) Error() string { return e.Eval.Error() }
func (e *RuntimeError) Unwrap() error { return e.Eval }
func (*RuntimeError) compilerError()  {}

// MultiError folds any number of per-statement CompilerErrors produced while
// the parser or lexer accumulated and continued past individual failures.
type MultiError struct {
	Errors []CompilerError
}

func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s):", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %s", err.Error())
	}
	return b.String()
}
func (*MultiError) compilerError() {}

// NewMultiError folds a slice of CompilerErrors, returning nil if the slice
// is empty (the accumulator-seed convention spec.md calls "None").
func NewMultiError(errs []CompilerError) error {
	if len(errs) == 0 {
		return nil
	}
	return &MultiError{Errors: errs}
}

// EvaluationError is a growable list of runtime failure details, letting a
// single routine invocation accumulate more than one complaint (e.g. several
// mismatched object parameters) before reporting.
type EvaluationError struct {
	Details []string
}

// NewEvaluationError seeds an EvaluationError with one detail message.
func NewEvaluationError(detail string) *EvaluationError {
	return &EvaluationError{Details: []string{detail}}
}

func (e *EvaluationError) Add(detail string) *EvaluationError {
	e.Details = append(e.Details, detail)
	return e
}

func (e *EvaluationError) Concat(other *EvaluationError) *EvaluationError {
	if other == nil {
		return e
	}
	e.Details = append(e.Details, other.Details...)
	return e
}

// ConcatIf concats only when other is non-nil, mirroring the original's
// concat_if(Option<other>) convenience.
func (e *EvaluationError) ConcatIf(other *EvaluationError) *EvaluationError {
	if other == nil {
		return e
	}
	return e.Concat(other)
}

func (e *EvaluationError) ErrorCount() int { return len(e.Details) }

func (e *EvaluationError) Error() string {
	return strings.Join(e.Details, "; ")
}
