package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/platinummonkey/dotnetscan/pkg/config"
	"github.com/platinummonkey/dotnetscan/pkg/filters"
	"github.com/platinummonkey/dotnetscan/pkg/generated"
	"github.com/platinummonkey/dotnetscan/pkg/inputfile"
	"github.com/platinummonkey/dotnetscan/pkg/observability"
	"github.com/platinummonkey/dotnetscan/pkg/plugins"
	"github.com/platinummonkey/dotnetscan/pkg/reports"
	"github.com/platinummonkey/dotnetscan/pkg/sensor"
)

// SkippedDirs are never descended into while indexing sources
var SkippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	".git":         true,
	".vs":          true,
	"node_modules": true,
}

// DefaultWorkers is the number of modules walked concurrently
const DefaultWorkers = 4

// File is an indexed source file
type File struct {
	Module string `json:"module" yaml:"module"`
	Path   string `json:"path" yaml:"path"`
	URI    string `json:"uri" yaml:"uri"`
}

// Result is the outcome of a scan
type Result struct {
	ScanID        string                 `json:"scan_id" yaml:"scan_id"`
	Project       string                 `json:"project" yaml:"project"`
	Language      string                 `json:"language" yaml:"language"`
	ProtobufDirs  []string               `json:"protobuf_dirs" yaml:"protobuf_dirs"`
	RoslynReports []reports.RoslynReport `json:"roslyn_reports" yaml:"roslyn_reports"`
	Files         []File                 `json:"files" yaml:"files"`
	Skipped       []File                 `json:"skipped" yaml:"skipped"`
}

// Scanner runs the module steps and the file indexing of one project
type Scanner struct {
	project  *config.Project
	metadata *plugins.Metadata
	index    *generated.Index
	log      logrus.FieldLogger
	metrics  *observability.Metrics
	workers  int
}

// Option configures a Scanner
type Option func(*Scanner)

// WithLogger sets the logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Scanner) { s.log = log }
}

// WithMetrics sets the metrics sink
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Scanner) { s.metrics = metrics }
}

// WithWorkers sets how many modules are walked at once
func WithWorkers(n int) Option {
	return func(s *Scanner) { s.workers = n }
}

// WithIndex supplies generated files known up front. The scanner adds the
// project's generated list to it and marks it built.
func WithIndex(index *generated.Index) Option {
	return func(s *Scanner) { s.index = index }
}

// New creates a scanner for project; metadata describes the project language
func New(project *config.Project, metadata *plugins.Metadata, opts ...Option) (*Scanner, error) {
	if project == nil {
		return nil, fmt.Errorf("project is required")
	}
	if metadata == nil {
		return nil, fmt.Errorf("language metadata is required")
	}
	if project.Language != metadata.LanguageKey {
		return nil, fmt.Errorf("project language %s does not match plugin language %s", project.Language, metadata.LanguageKey)
	}

	s := &Scanner{
		project:  project,
		metadata: metadata,
		workers:  DefaultWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.New()
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.index == nil {
		s.index = generated.NewIndex()
	}
	return s, nil
}

// Run collects the report locations of every module, builds the generated file
// index once, then indexes and filters each module's source files.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	collector := reports.NewCollector()
	log := s.log.WithFields(logrus.Fields{
		"scan_id": collector.ScanID(),
		"project": s.project.Key,
	})

	modules := s.project.EffectiveModules()
	for _, m := range modules {
		if err := s.collectModule(ctx, collector, m, log); err != nil {
			return nil, err
		}
	}

	s.buildIndex(log)

	result := &Result{
		ScanID:        collector.ScanID(),
		Project:       s.project.Key,
		Language:      s.metadata.LanguageKey,
		ProtobufDirs:  collector.ProtobufDirs(),
		RoslynReports: collector.RoslynReports(),
		Files:         []File{},
		Skipped:       []File{},
	}

	if err := s.indexModules(ctx, modules, result, log); err != nil {
		return nil, err
	}

	log.Infof("Scan finished: %d modules, %d files accepted, %d generated files skipped",
		len(modules), len(result.Files), len(result.Skipped))
	return result, nil
}

func (s *Scanner) collectModule(ctx context.Context, collector *reports.Collector, m config.Module, log logrus.FieldLogger) error {
	moduleLog := log.WithField("module", m.Key)
	moduleCfg := config.NewModuleConfiguration(m.Key, m.BaseDir, s.metadata.LanguageKey, s.project.ModuleSettings(m), moduleLog)

	step := sensor.NewPropertiesSensor(moduleCfg, collector, s.metadata).WithMetrics(s.metrics)
	moduleLog.Debugf("Running sensor: %s", step.Describe().Name)

	if err := step.Execute(ctx, reports.Module{Key: m.Key, BaseDir: m.BaseDir}); err != nil {
		return fmt.Errorf("module %s: %w", m.Key, err)
	}
	return nil
}

func (s *Scanner) buildIndex(log logrus.FieldLogger) {
	if list := s.project.GeneratedList; list != "" {
		n, err := s.index.LoadListFile(list, s.project.BaseDir)
		if err != nil {
			log.Warnf("Failed to load generated file list %s, generated files will not be excluded: %v", list, err)
		} else {
			log.Debugf("Loaded %d generated file entries from %s", n, list)
		}
	}

	s.index.MarkBuilt()
	if s.metrics != nil {
		s.metrics.GeneratedFilesIndexed.Set(float64(s.index.Len()))
	}
}

// walkModule lists the module's source files, in lexical order
func (s *Scanner) walkModule(ctx context.Context, m config.Module, suffixes []string, log logrus.FieldLogger) ([]*inputfile.InputFile, error) {
	var files []*inputfile.InputFile

	err := filepath.WalkDir(m.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			log.Warnf("Failed to walk %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != m.BaseDir && SkippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !plugins.MatchesSuffix(path, suffixes) {
			return nil
		}

		file, err := inputfile.New(m.BaseDir, path)
		if err != nil {
			log.Warnf("Ignoring %s: %v", path, err)
			return nil
		}
		files = append(files, file.WithLanguage(s.metadata.LanguageKey))
		return nil
	})

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warnf("Failed to index module sources: %v", err)
	}
	return files, nil
}

// indexModules walks the modules concurrently, then filters their files in
// module order so that a file shared by two modules goes to the first one.
func (s *Scanner) indexModules(ctx context.Context, modules []config.Module, result *Result, log logrus.FieldLogger) error {
	languages := make([]*config.LanguageConfiguration, len(modules))
	walked := make([][]*inputfile.InputFile, len(modules))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers)
	for i, m := range modules {
		languages[i] = config.NewLanguageConfiguration(s.metadata.LanguageKey, s.project.ModuleSettings(m))
		suffixes := languages[i].FileSuffixes(s.metadata.FileSuffixes)
		eg.Go(func() error {
			files, err := s.walkModule(egCtx, m, suffixes, log.WithField("module", m.Key))
			walked[i] = files
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for i, m := range modules {
		filter := filters.NewGeneratedFileFilter(s.index, languages[i], log.WithField("module", m.Key))
		for _, file := range walked[i] {
			if seen[file.URI()] {
				continue
			}
			seen[file.URI()] = true

			entry := File{Module: m.Key, Path: file.RelativePath(), URI: file.URI()}
			if filter.Accept(file) {
				result.Files = append(result.Files, entry)
				s.metrics.RecordFile(file.Language(), true, "")
			} else {
				result.Skipped = append(result.Skipped, entry)
				s.metrics.RecordFile(file.Language(), false, "generated")
			}
		}
	}
	return nil
}
