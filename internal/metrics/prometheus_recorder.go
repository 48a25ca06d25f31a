package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	runDuration        prom.Histogram
	runOutcome         *prom.CounterVec
	pagesGenerated     *prom.CounterVec
	sitemapFiles       prom.Counter
	validationFailures *prom.CounterVec
	lastRunPages       prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "seogen",
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "seogen",
			Name:      "run_outcomes_total",
			Help:      "Generation run outcomes by final status",
		}, []string{"result"})
		pr.pagesGenerated = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "seogen",
			Name:      "pages_generated_total",
			Help:      "Pages generated per category",
		}, []string{"category"})
		pr.sitemapFiles = prom.NewCounter(prom.CounterOpts{
			Namespace: "seogen",
			Name:      "sitemap_files_written_total",
			Help:      "Sitemap files written across all runs",
		})
		pr.validationFailures = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "seogen",
			Name:      "validation_failures_total",
			Help:      "Page validation failures per template",
		}, []string{"template"})
		pr.lastRunPages = prom.NewGauge(prom.GaugeOpts{
			Namespace: "seogen",
			Name:      "last_run_pages",
			Help:      "Page count of the most recent generation run",
		})
		reg.MustRegister(pr.runDuration, pr.runOutcome, pr.pagesGenerated,
			pr.sitemapFiles, pr.validationFailures, pr.lastRunPages)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(result ResultLabel) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddPagesGenerated(category string, n int) {
	if p == nil || p.pagesGenerated == nil {
		return
	}
	p.pagesGenerated.WithLabelValues(category).Add(float64(n))
}

func (p *PrometheusRecorder) AddSitemapFilesWritten(n int) {
	if p == nil || p.sitemapFiles == nil {
		return
	}
	p.sitemapFiles.Add(float64(n))
}

func (p *PrometheusRecorder) IncValidationFailure(template string) {
	if p == nil || p.validationFailures == nil {
		return
	}
	p.validationFailures.WithLabelValues(template).Inc()
}

func (p *PrometheusRecorder) SetLastRunPages(n int) {
	if p == nil || p.lastRunPages == nil {
		return
	}
	p.lastRunPages.Set(float64(n))
}
