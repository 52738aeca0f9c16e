package sensor

import (
	"context"

	"github.com/platinummonkey/dotnetscan/pkg/observability"
	"github.com/platinummonkey/dotnetscan/pkg/plugins"
	"github.com/platinummonkey/dotnetscan/pkg/reports"
)

// ReportPathSource exposes the report locations configured for a module
type ReportPathSource interface {
	ProtobufReportPaths() []string
	RoslynReportPaths() []string
}

// Descriptor describes a sensor to the scan
type Descriptor struct {
	Name string
	// Languages restricts the sensor to modules with sources in these languages; empty means any module
	Languages []string
}

// PropertiesSensor is a module-level step that forwards the module's report
// locations to the scan-wide sink.
type PropertiesSensor struct {
	configuration ReportPathSource
	sink          reports.Sink
	metadata      *plugins.Metadata
	metrics       *observability.Metrics
}

// NewPropertiesSensor creates the sensor of one module
func NewPropertiesSensor(configuration ReportPathSource, sink reports.Sink, metadata *plugins.Metadata) *PropertiesSensor {
	return &PropertiesSensor{
		configuration: configuration,
		sink:          sink,
		metadata:      metadata,
	}
}

// WithMetrics makes the sensor count collected paths
func (s *PropertiesSensor) WithMetrics(metrics *observability.Metrics) *PropertiesSensor {
	s.metrics = metrics
	return s
}

// Describe names the sensor after its language. It is not restricted to a
// language so that modules without sources of their own still report.
func (s *PropertiesSensor) Describe() Descriptor {
	return Descriptor{Name: s.metadata.LanguageName + " Properties"}
}

// Execute collects the module's protobuf directories and Roslyn reports
func (s *PropertiesSensor) Execute(ctx context.Context, module reports.Module) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	protobufPaths := s.configuration.ProtobufReportPaths()
	if len(protobufPaths) > 0 {
		s.sink.AddProtobufDirs(protobufPaths)
		s.metrics.RecordReportPaths("protobuf", len(protobufPaths))
	}

	roslynPaths := s.configuration.RoslynReportPaths()
	if len(roslynPaths) > 0 {
		roslynReports := make([]reports.RoslynReport, 0, len(roslynPaths))
		for _, path := range roslynPaths {
			roslynReports = append(roslynReports, reports.RoslynReport{Module: module, Path: path})
		}
		s.sink.AddRoslynReports(roslynReports)
		s.metrics.RecordReportPaths("roslyn", len(roslynReports))
	}

	s.metrics.RecordModule(s.metadata.LanguageKey)
	return nil
}
