package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated during a scan
type Metrics struct {
	ModulesProcessedTotal *prometheus.CounterVec
	ReportPathsTotal      *prometheus.CounterVec
	FilesAcceptedTotal    *prometheus.CounterVec
	FilesSkippedTotal     *prometheus.CounterVec
	GeneratedFilesIndexed prometheus.Gauge
}

// NewMetrics creates and registers all scan metrics. A nil registry leaves them unregistered.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		ModulesProcessedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dotnetscan_modules_processed_total",
				Help: "Total number of modules processed by the properties sensor",
			},
			[]string{"language"},
		),
		ReportPathsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dotnetscan_report_paths_total",
				Help: "Total number of external report paths collected",
			},
			[]string{"kind"},
		),
		FilesAcceptedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dotnetscan_files_accepted_total",
				Help: "Total number of source files accepted for analysis",
			},
			[]string{"language"},
		),
		FilesSkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dotnetscan_files_skipped_total",
				Help: "Total number of source files excluded from analysis",
			},
			[]string{"language", "reason"},
		),
		GeneratedFilesIndexed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dotnetscan_generated_files_indexed",
				Help: "Number of files known to be generated",
			},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.ModulesProcessedTotal,
			m.ReportPathsTotal,
			m.FilesAcceptedTotal,
			m.FilesSkippedTotal,
			m.GeneratedFilesIndexed,
		)
	}

	return m
}

// RecordReportPaths counts collected report paths of one kind (protobuf, roslyn)
func (m *Metrics) RecordReportPaths(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ReportPathsTotal.WithLabelValues(kind).Add(float64(n))
}

// RecordFile counts one filter decision
func (m *Metrics) RecordFile(language string, accepted bool, reason string) {
	if m == nil {
		return
	}
	if accepted {
		m.FilesAcceptedTotal.WithLabelValues(language).Inc()
		return
	}
	m.FilesSkippedTotal.WithLabelValues(language, reason).Inc()
}

// RecordModule counts one processed module
func (m *Metrics) RecordModule(language string) {
	if m == nil {
		return
	}
	m.ModulesProcessedTotal.WithLabelValues(language).Inc()
}
