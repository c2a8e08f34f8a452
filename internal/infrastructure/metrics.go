package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "dpwh_pipeline"

// PipelineMetrics collects per-process counters for Load and Generate runs.
// It uses a private registry so values can be dumped to a node_exporter
// textfile without a scrape endpoint.
type PipelineMetrics struct {
	registry *prometheus.Registry

	rowsRead      prometheus.Counter
	rowsRetained  prometheus.Counter
	rowsRejected  *prometheus.CounterVec
	loads         *prometheus.CounterVec
	generations   *prometheus.CounterVec
	reportRows    *prometheus.GaugeVec
	stageDuration *prometheus.HistogramVec
	lastSuccess   prometheus.Gauge
}

// NewPipelineMetrics creates and registers all pipeline collectors
func NewPipelineMetrics() *PipelineMetrics {
	m := &PipelineMetrics{
		registry: prometheus.NewRegistry(),
		rowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_read_total",
			Help:      "Data rows read from the input file",
		}),
		rowsRetained: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_retained_total",
			Help:      "Rows that passed cleaning and the funding-year filter",
		}),
		rowsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_rejected_total",
			Help:      "Rows dropped during cleaning, by reason",
		}, []string{"reason"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "loads_total",
			Help:      "Load operations, by outcome",
		}, []string{"outcome"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Generate operations, by outcome",
		}, []string{"outcome"}),
		reportRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "report_rows",
			Help:      "Rows in the most recently generated report",
		}, []string{"report"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"stage"}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful Generate",
		}),
	}

	m.registry.MustRegister(
		m.rowsRead,
		m.rowsRetained,
		m.rowsRejected,
		m.loads,
		m.generations,
		m.reportRows,
		m.stageDuration,
		m.lastSuccess,
	)
	return m
}

// Registry exposes the underlying registry for gathering in tests
func (m *PipelineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLoad records the row counters of one Load call
func (m *PipelineMetrics) RecordLoad(read, retained, parseRejected, validationRejected int, err error) {
	if err != nil {
		m.loads.WithLabelValues("error").Inc()
		return
	}
	m.loads.WithLabelValues("ok").Inc()
	m.rowsRead.Add(float64(read))
	m.rowsRetained.Add(float64(retained))
	m.rowsRejected.WithLabelValues("parse").Add(float64(parseRejected))
	m.rowsRejected.WithLabelValues("validation").Add(float64(validationRejected))
}

// RecordGenerate records the outcome and row counts of one Generate call
func (m *PipelineMetrics) RecordGenerate(rows map[string]int, err error) {
	if err != nil {
		m.generations.WithLabelValues("error").Inc()
		return
	}
	m.generations.WithLabelValues("ok").Inc()
	for report, n := range rows {
		m.reportRows.WithLabelValues(report).Set(float64(n))
	}
	m.lastSuccess.SetToCurrentTime()
}

// ObserveStage records how long a stage took
func (m *PipelineMetrics) ObserveStage(stage string, started time.Time) {
	m.stageDuration.WithLabelValues(stage).Observe(time.Since(started).Seconds())
}

// WriteTextfile writes the current metric values in Prometheus text format
func (m *PipelineMetrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create metrics directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
