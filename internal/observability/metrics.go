package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pipeline run metrics
	activeRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "podcast_engine_active_runs",
		Help: "Number of pipeline runs currently in flight",
	})

	totalRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcast_engine_runs_total",
		Help: "Total number of pipeline runs by terminal status",
	}, []string{"status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "podcast_engine_run_duration_seconds",
		Help:    "End-to-end duration of pipeline runs in seconds",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
	})

	// Synthesis metrics
	synthesisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcast_engine_synthesis_requests_total",
		Help: "Total number of speech synthesis requests",
	}, []string{"status"})

	synthesisRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podcast_engine_synthesis_retries_total",
		Help: "Total number of synthesis retry attempts",
	})

	synthesisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "podcast_engine_synthesis_latency_seconds",
		Help:    "Speech synthesis latency per turn in seconds",
		Buckets: []float64{0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
	})

	// Segment metrics
	segmentsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podcast_engine_segments_total",
		Help: "Total number of audio segments persisted",
	})

	audioBytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "podcast_engine_audio_bytes_total",
		Help: "Total audio bytes written to the output directory",
	})

	// Error metrics
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcast_engine_errors_total",
		Help: "Total number of errors",
	}, []string{"type", "component"})

	// Circuit breaker metrics
	circuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "podcast_engine_circuit_breaker_state",
		Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
	}, []string{"service"})

	circuitBreakerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "podcast_engine_circuit_breaker_failures_total",
		Help: "Total circuit breaker failures",
	}, []string{"service"})
)

// RunMetrics tracks metrics for a single pipeline run
type RunMetrics struct {
	runID          string
	startTime      time.Time
	synthStartTime time.Time
	mu             sync.Mutex
}

// NewRunMetrics creates a new metrics tracker for a pipeline run
func NewRunMetrics(runID string) *RunMetrics {
	return &RunMetrics{
		runID:     runID,
		startTime: time.Now(),
	}
}

// RecordRunStart records the start of a pipeline run
func (m *RunMetrics) RecordRunStart() {
	activeRuns.Inc()
}

// RecordRunEnd records the end of a pipeline run with its terminal status
// ("success", "error" or "cancelled")
func (m *RunMetrics) RecordRunEnd(status string) {
	activeRuns.Dec()
	totalRuns.WithLabelValues(status).Inc()
	runDuration.Observe(time.Since(m.startTime).Seconds())
}

// RecordSynthesisStart records the start of a synthesis call
func (m *RunMetrics) RecordSynthesisStart() {
	m.mu.Lock()
	m.synthStartTime = time.Now()
	m.mu.Unlock()
}

// RecordSynthesisEnd records the end of a synthesis call
func (m *RunMetrics) RecordSynthesisEnd(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.synthStartTime.IsZero() {
		synthesisLatency.Observe(time.Since(m.synthStartTime).Seconds())
	}

	status := "success"
	if !success {
		status = "error"
	}
	synthesisRequests.WithLabelValues(status).Inc()
}

// IncrementSynthesisRetries records one retry attempt against the speech
// provider. Package-level because the retry loop runs below the per-run layer.
func IncrementSynthesisRetries() {
	synthesisRetries.Inc()
}

// RecordSegmentPersisted records a persisted segment and its size on disk
func (m *RunMetrics) RecordSegmentPersisted(bytes int64) {
	segmentsPersisted.Inc()
	audioBytesWritten.Add(float64(bytes))
}

// RecordError records an error
func (m *RunMetrics) RecordError(errorType, component string) {
	errorsTotal.WithLabelValues(errorType, component).Inc()
}

// UpdateCircuitBreakerState updates circuit breaker state metric
func UpdateCircuitBreakerState(service string, state int) {
	circuitBreakerState.WithLabelValues(service).Set(float64(state))
}

// IncrementCircuitBreakerFailures increments circuit breaker failure counter
func IncrementCircuitBreakerFailures(service string) {
	circuitBreakerFailures.WithLabelValues(service).Inc()
}
