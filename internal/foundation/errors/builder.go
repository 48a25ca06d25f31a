package errors

import stderrors "errors"

// Builder provides a fluent API for creating ClassifiedError instances,
// keeping error construction consistent and discoverable.
type Builder struct {
	category   Category
	severity   Severity
	message    string
	cause      error
	context    Context
	violations []string
}

// New creates a Builder with the given category and message.
func New(category Category, message string) *Builder {
	return &Builder{
		category: category,
		severity: SeverityError,
		message:  message,
	}
}

// Wrap creates a Builder wrapping an existing error.
func Wrap(err error, category Category, message string) *Builder {
	return &Builder{
		category: category,
		severity: SeverityError,
		message:  message,
		cause:    err,
	}
}

// WithSeverity sets the error severity.
func (b *Builder) WithSeverity(s Severity) *Builder {
	b.severity = s
	return b
}

// Fatal sets the severity to fatal.
func (b *Builder) Fatal() *Builder { return b.WithSeverity(SeverityFatal) }

// Warning sets the severity to warning.
func (b *Builder) Warning() *Builder { return b.WithSeverity(SeverityWarning) }

// WithContext adds a context key-value pair.
func (b *Builder) WithContext(key string, value any) *Builder {
	b.context = b.context.Set(key, value)
	return b
}

// WithViolations attaches the violated validation rules.
func (b *Builder) WithViolations(rules []string) *Builder {
	b.violations = rules
	return b
}

// Build creates the final ClassifiedError.
func (b *Builder) Build() *ClassifiedError {
	return &ClassifiedError{
		category:   b.category,
		severity:   b.severity,
		message:    b.message,
		cause:      b.cause,
		context:    b.context,
		violations: b.violations,
	}
}

// Convenience constructors for the common patterns.

// ConfigError creates a fatal configuration error.
func ConfigError(message string) *Builder {
	return New(CategoryConfig, message).Fatal()
}

// ValidationError creates a validation error.
func ValidationError(message string) *Builder {
	return New(CategoryValidation, message)
}

// TemplateNotFound creates the unknown-template error.
func TemplateNotFound(id string) *ClassifiedError {
	return New(CategoryTemplate, "template not found").
		Fatal().
		WithContext("template_id", id).
		Build()
}

// Re-exports so callers don't need both this package and std errors.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain matching target's type.
func As(err error, target any) bool { return stderrors.As(err, target) }
