// Package sensor contains the module-level steps run once per project module.
//
// PropertiesSensor reads the report locations configured for its module and
// forwards the non-empty ones to the scan-wide reports.Sink.
package sensor
