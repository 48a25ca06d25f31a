package errors

import "maps"

// Category represents the broad category of an error for classification
// and routing.
type Category string

const (
	// CategoryConfig covers user-facing configuration and input errors.
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryTemplate   Category = "template"
	CategoryNotFound   Category = "not_found"

	// CategoryFileSystem covers artifact emission and data loading.
	CategoryFileSystem Category = "filesystem"
	CategoryStorage    Category = "storage"
	CategoryPublish    Category = "publish"

	// CategoryInternal is for bugs: broken invariants in the engine.
	CategoryInternal Category = "internal"
)

// Severity indicates the impact level of an error.
type Severity string

const (
	SeverityFatal   Severity = "fatal"   // Stops execution completely
	SeverityError   Severity = "error"   // Fails the current operation
	SeverityWarning Severity = "warning" // Continues with degraded functionality
)

// Context provides structured key-value context for errors.
type Context map[string]any

// Set adds or updates a context value, allocating on first use.
func (c Context) Set(key string, value any) Context {
	if c == nil {
		c = make(Context)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c Context) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c[key]
	return v, ok
}

// Merge combines two contexts, with other taking precedence.
func (c Context) Merge(other Context) Context {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	out := make(Context, len(c)+len(other))
	maps.Copy(out, c)
	maps.Copy(out, other)
	return out
}
