package metrics

import "time"

// ResultLabel enumerates run outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for generation runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for
// nil receivers when using the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(result ResultLabel)
	AddPagesGenerated(category string, n int)
	AddSitemapFilesWritten(n int)
	IncValidationFailure(template string)
	SetLastRunPages(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRunDuration(time.Duration) {}
func (NoopRecorder) IncRunOutcome(ResultLabel)        {}
func (NoopRecorder) AddPagesGenerated(string, int)    {}
func (NoopRecorder) AddSitemapFilesWritten(int)       {}
func (NoopRecorder) IncValidationFailure(string)      {}
func (NoopRecorder) SetLastRunPages(int)              {}
