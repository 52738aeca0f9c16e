package filters

import (
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/dotnetscan/pkg/inputfile"
	"github.com/platinummonkey/dotnetscan/pkg/observability"
)

// GeneratedIndex answers whether a file was produced by a build step
type GeneratedIndex interface {
	IsGenerated(file *inputfile.InputFile) bool
}

// GeneratedCodeSetting exposes the analyze-generated-code switch
type GeneratedCodeSetting interface {
	AnalyzeGeneratedCode() bool
}

// FileFilter decides whether an indexed file is analyzed
type FileFilter interface {
	Accept(file *inputfile.InputFile) bool
}

// GeneratedFileFilter excludes generated files from analysis unless the
// configuration asks for generated code to be analyzed.
type GeneratedFileFilter struct {
	index                GeneratedIndex
	analyzeGeneratedCode bool
	log                  logrus.FieldLogger
}

// NewGeneratedFileFilter reads the setting once; it is not consulted again.
func NewGeneratedFileFilter(index GeneratedIndex, setting GeneratedCodeSetting, log logrus.FieldLogger) *GeneratedFileFilter {
	if log == nil {
		log = logrus.New()
	}

	analyze := setting != nil && setting.AnalyzeGeneratedCode()
	if analyze {
		log.Debug("Will analyze generated code")
	} else {
		log.Debug("Will ignore generated code")
	}

	return &GeneratedFileFilter{
		index:                index,
		analyzeGeneratedCode: analyze,
		log:                  log,
	}
}

// AnalyzeGeneratedCode reports whether the filter lets generated files through
func (f *GeneratedFileFilter) AnalyzeGeneratedCode() bool {
	return f.analyzeGeneratedCode
}

// Accept returns false for generated files, unless generated code is analyzed
func (f *GeneratedFileFilter) Accept(file *inputfile.InputFile) bool {
	if f.analyzeGeneratedCode {
		return true
	}

	if f.isGenerated(file) {
		f.log.Debugf("Skipping auto generated file: %s", file)
		return false
	}
	return true
}

// isGenerated treats a missing index or a failing lookup as "not generated"
func (f *GeneratedFileFilter) isGenerated(file *inputfile.InputFile) (generated bool) {
	if f.index == nil || file == nil {
		return false
	}

	defer observability.RecoverPanic(f.log.WithField("file", file.String()), "generated file lookup")

	return f.index.IsGenerated(file)
}
