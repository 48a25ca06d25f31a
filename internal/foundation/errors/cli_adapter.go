package errors

// Exit codes for the CLI layer. Validation failures get a distinct code
// so scripted callers can tell bad input from engine failure.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitConfig     = 2
	ExitValidation = 3
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CategoryOf(err) {
	case CategoryConfig, CategoryTemplate:
		return ExitConfig
	case CategoryValidation:
		return ExitValidation
	default:
		return ExitFailure
	}
}

// LogFields flattens an error into slog-ready key-value pairs.
func LogFields(err error) []any {
	var ce *ClassifiedError
	if !As(err, &ce) {
		return []any{"error", err}
	}
	fields := []any{
		"error", ce.Message(),
		"category", string(ce.Category()),
		"severity", string(ce.Severity()),
	}
	if len(ce.Violations()) > 0 {
		fields = append(fields, "violations", ce.Violations())
	}
	for k, v := range ce.Context() {
		fields = append(fields, k, v)
	}
	return fields
}
