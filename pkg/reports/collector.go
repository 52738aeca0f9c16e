package reports

import (
	"sync"

	"github.com/google/uuid"
)

// Module identifies the project module an artifact was reported for
type Module struct {
	Key     string `json:"key" yaml:"key"`
	BaseDir string `json:"base_dir" yaml:"base_dir"`
}

// RoslynReport is the location of one Roslyn JSON report produced for a module
type RoslynReport struct {
	Module Module `json:"module" yaml:"module"`
	Path   string `json:"path" yaml:"path"`
}

// Sink receives report locations from module steps
type Sink interface {
	AddProtobufDirs(paths []string)
	AddRoslynReports(reports []RoslynReport)
}

// Collector accumulates report locations across all modules of one scan.
// Entries are only ever appended.
type Collector struct {
	scanID        string
	protobufDirs  []string
	roslynReports []RoslynReport
	mu            sync.RWMutex
}

// NewCollector creates an empty collector for a new scan
func NewCollector() *Collector {
	return NewCollectorWithID(uuid.NewString())
}

// NewCollectorWithID creates an empty collector for the given scan ID
func NewCollectorWithID(scanID string) *Collector {
	return &Collector{
		scanID:        scanID,
		protobufDirs:  []string{},
		roslynReports: []RoslynReport{},
	}
}

// ScanID returns the identifier of the scan this collector belongs to
func (c *Collector) ScanID() string {
	return c.scanID
}

// AddProtobufDirs appends protobuf report directories in order. Callers only pass
// non-empty batches; an empty batch changes nothing.
func (c *Collector) AddProtobufDirs(paths []string) {
	if len(paths) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.protobufDirs = append(c.protobufDirs, paths...)
}

// AddRoslynReports appends Roslyn reports in order. An empty batch changes nothing.
func (c *Collector) AddRoslynReports(reports []RoslynReport) {
	if len(reports) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.roslynReports = append(c.roslynReports, reports...)
}

// ProtobufDirs returns a copy of all protobuf report directories in insertion order
func (c *Collector) ProtobufDirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.protobufDirs))
	copy(out, c.protobufDirs)
	return out
}

// RoslynReports returns a copy of all Roslyn reports in insertion order
func (c *Collector) RoslynReports() []RoslynReport {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]RoslynReport, len(c.roslynReports))
	copy(out, c.roslynReports)
	return out
}
