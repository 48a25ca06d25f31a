package errors

import (
	"fmt"
	"strings"
)

// ClassifiedError is a structured error with category, severity and
// context. Validation errors also carry the violated rules.
type ClassifiedError struct {
	category   Category
	severity   Severity
	message    string
	cause      error
	context    Context
	violations []string
}

// Error implements the standard error interface.
func (e *ClassifiedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s:%s] %s", e.category, e.severity, e.message)
	if len(e.violations) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.violations, ", "))
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// Unwrap supports errors.Is / errors.As chains.
func (e *ClassifiedError) Unwrap() error { return e.cause }

// Category returns the error category.
func (e *ClassifiedError) Category() Category { return e.category }

// Severity returns the error severity.
func (e *ClassifiedError) Severity() Severity { return e.severity }

// Message returns the error message without classification prefix.
func (e *ClassifiedError) Message() string { return e.message }

// Context returns the structured context map.
func (e *ClassifiedError) Context() Context { return e.context }

// Violations returns the violated validation rules, if any.
func (e *ClassifiedError) Violations() []string { return e.violations }

// Is matches two classified errors on category and message, so sentinel
// comparisons work through wrapping.
func (e *ClassifiedError) Is(target error) bool {
	other, ok := target.(*ClassifiedError)
	if !ok {
		return false
	}
	return e.category == other.category && e.message == other.message
}

// CategoryOf extracts the category from any error in the chain, or
// CategoryInternal when the error is unclassified.
func CategoryOf(err error) Category {
	var ce *ClassifiedError
	if As(err, &ce) {
		return ce.category
	}
	return CategoryInternal
}

// ViolationsOf extracts the validation violations from an error chain.
func ViolationsOf(err error) []string {
	var ce *ClassifiedError
	if As(err, &ce) {
		return ce.violations
	}
	return nil
}
