package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyReason     = "reason"
	KeyCategory   = "category"
	KeyTemplate   = "template"
	KeyPages      = "pages"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Reason(r string) slog.Attr       { return slog.String(KeyReason, r) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Template(t string) slog.Attr     { return slog.String(KeyTemplate, t) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
