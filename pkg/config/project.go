package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/dotnetscan/pkg/plugins"
)

// ErrNoProjectFile is returned when a directory holds no project file
var ErrNoProjectFile = errors.New("no project file found")

// ProjectFileNames are the names LoadProjectFromDir looks for, in order
var ProjectFileNames = []string{"dotnetscan.yaml", "dotnetscan.yml", ".dotnetscan.yaml", ".dotnetscan.yml"}

// Project describes a multi-module scan
type Project struct {
	Key           string   `yaml:"key"`
	Name          string   `yaml:"name,omitempty"`
	Language      string   `yaml:"language"`
	BaseDir       string   `yaml:"base_dir,omitempty"`
	GeneratedList string   `yaml:"generated_list,omitempty"`
	PluginDirs    []string `yaml:"plugin_dirs,omitempty"`
	Properties    Settings `yaml:"properties,omitempty"`
	Modules       []Module `yaml:"modules,omitempty"`
}

// Module is one analysis unit of a project
type Module struct {
	Key        string   `yaml:"key"`
	BaseDir    string   `yaml:"base_dir,omitempty"`
	Properties Settings `yaml:"properties,omitempty"`
}

// LoadProject loads a project file. Relative directories in it are resolved
// against the directory holding the file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}

	var project Project
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse project file %s: %w", path, err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}
	project.resolvePaths(dir)

	return &project, nil
}

// LoadProjectFromDir searches dir for one of ProjectFileNames
func LoadProjectFromDir(dir string) (*Project, error) {
	for _, name := range ProjectFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadProject(path)
		}
	}
	return nil, fmt.Errorf("%w in %s", ErrNoProjectFile, dir)
}

// SaveProject writes a project file
func SaveProject(project *Project, path string) error {
	data, err := yaml.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (p *Project) resolvePaths(dir string) {
	p.BaseDir = resolveDir(dir, p.BaseDir)
	if p.GeneratedList != "" {
		p.GeneratedList = resolveDir(p.BaseDir, p.GeneratedList)
	}
	for i, d := range p.PluginDirs {
		p.PluginDirs[i] = resolveDir(dir, d)
	}
	for i := range p.Modules {
		p.Modules[i].BaseDir = resolveDir(p.BaseDir, p.Modules[i].BaseDir)
	}
}

func resolveDir(root, dir string) string {
	if dir == "" {
		return root
	}
	dir = filepath.FromSlash(dir)
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

// Validate checks the project against the known languages
func (p *Project) Validate(registry *plugins.Registry) error {
	if p.Key == "" {
		return fmt.Errorf("project key is required")
	}
	if p.Language == "" {
		return fmt.Errorf("project language is required")
	}
	if registry != nil && !registry.Has(p.Language) {
		return fmt.Errorf("%w: %s", plugins.ErrUnknownLanguage, p.Language)
	}

	seen := make(map[string]bool, len(p.Modules))
	for i, m := range p.Modules {
		if m.Key == "" {
			return fmt.Errorf("module %d: key is required", i)
		}
		if seen[m.Key] {
			return fmt.Errorf("duplicate module key: %s", m.Key)
		}
		seen[m.Key] = true
	}

	return nil
}

// EffectiveModules returns the project modules, or the project root as a single
// module when none are declared
func (p *Project) EffectiveModules() []Module {
	if len(p.Modules) > 0 {
		return p.Modules
	}
	return []Module{{Key: p.Key, BaseDir: p.BaseDir}}
}

// ModuleSettings returns the module properties layered over the project properties
func (p *Project) ModuleSettings(m Module) Settings {
	return m.Properties.With(p.Properties)
}

// SetProperty sets a project level property
func (p *Project) SetProperty(key, value string) {
	if p.Properties == nil {
		p.Properties = make(Settings)
	}
	p.Properties[key] = value
}
