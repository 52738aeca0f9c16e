package config

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ModuleConfiguration exposes the report locations configured for one module
type ModuleConfiguration struct {
	moduleKey   string
	baseDir     string
	languageKey string
	settings    Settings
	log         logrus.FieldLogger
}

// NewModuleConfiguration creates the configuration of a module. Relative report
// paths are resolved against baseDir when it is set.
func NewModuleConfiguration(moduleKey, baseDir, languageKey string, settings Settings, log logrus.FieldLogger) *ModuleConfiguration {
	if log == nil {
		log = logrus.New()
	}
	return &ModuleConfiguration{
		moduleKey:   moduleKey,
		baseDir:     baseDir,
		languageKey: languageKey,
		settings:    settings,
		log:         log,
	}
}

// ModuleKey returns the key of the module
func (c *ModuleConfiguration) ModuleKey() string {
	return c.moduleKey
}

// BaseDir returns the module base directory
func (c *ModuleConfiguration) BaseDir() string {
	return c.baseDir
}

// ProtobufReportPaths returns the protobuf report directory (output-<lang>) inside
// each analyzer working directory of the module
func (c *ModuleConfiguration) ProtobufReportPaths() []string {
	property := AnalyzerWorkDirProperty(c.languageKey)
	workDirs := c.settings.GetStringArray(property)
	if len(workDirs) == 0 {
		c.log.Debugf("Project '%s': Property missing: '%s'. No protobuf files will be loaded for this project.", c.moduleKey, property)
		return nil
	}

	paths := make([]string, 0, len(workDirs))
	for _, dir := range workDirs {
		paths = append(paths, filepath.Join(c.resolve(dir), AnalyzerReportDir(c.languageKey)))
	}
	c.log.Debugf("Project '%s': The analyzer working directory is '%s'", c.moduleKey, strings.Join(paths, ", "))
	return paths
}

// RoslynReportPaths returns the Roslyn JSON report files of the module
func (c *ModuleConfiguration) RoslynReportPaths() []string {
	reports := c.settings.GetStringArray(RoslynReportPathsProperty(c.languageKey))
	if len(reports) == 0 {
		c.log.Debugf("Project '%s': No Roslyn issues reports have been found.", c.moduleKey)
		return nil
	}

	paths := make([]string, 0, len(reports))
	for _, report := range reports {
		paths = append(paths, c.resolve(report))
	}
	c.log.Debugf("Project '%s': The Roslyn JSON report path has '%s'", c.moduleKey, strings.Join(paths, ", "))
	return paths
}

func (c *ModuleConfiguration) resolve(path string) string {
	path = filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
	if filepath.IsAbs(path) || c.baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(c.baseDir, path)
}
