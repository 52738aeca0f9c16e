// Package observability provides structured logging and Prometheus metrics for scans.
//
// # Logging
//
// Loggers are plain logrus loggers so every component can accept a logrus.FieldLogger:
//
//	logger := observability.NewLogger(observability.ParseLogLevel("debug"), os.Stderr)
//	logger.WithField("module", "App").Debug("Will ignore generated code")
//
// # Metrics
//
// Metrics are registered on an explicit registry:
//
//	registry := prometheus.NewRegistry()
//	metrics := observability.NewMetrics(registry)
//	metrics.RecordFile("cs", false, "generated")
//
// A nil *Metrics is valid and records nothing.
//
// # Panics
//
// RecoverPanic turns a panic in a deferred call site into a WARN entry:
//
//	defer observability.RecoverPanic(log, "generated file lookup")
//
// # Related Packages
//
//   - pkg/config: log level and metrics toggles
//   - pkg/scan: main producer of metrics
package observability
