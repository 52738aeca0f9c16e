package plugins

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Loader discovers language metadata in plugin directories and registers it
type Loader struct {
	pluginDirs []string
	registry   *Registry
	log        logrus.FieldLogger
}

// NewLoader creates a new metadata loader
func NewLoader(dirs []string, registry *Registry, log logrus.FieldLogger) *Loader {
	if log == nil {
		log = logrus.New()
	}
	if registry == nil {
		registry = NewRegistry()
	}

	return &Loader{
		pluginDirs: dirs,
		registry:   registry,
		log:        log,
	}
}

// Registry returns the registry the loader fills
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Discover scans plugin directories and registers every valid language.yaml it finds.
// Broken plugin directories are logged and skipped.
func (l *Loader) Discover(ctx context.Context) ([]*Metadata, error) {
	var found []*Metadata

	for _, dir := range l.pluginDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			l.log.Debugf("Plugin directory does not exist: %s", dir)
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			l.log.Warnf("Failed to read plugin directory %s: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return found, err
			}
			if !entry.IsDir() {
				continue
			}

			pluginDir := filepath.Join(dir, entry.Name())
			metadata, err := l.Load(pluginDir)
			if err != nil {
				l.log.Warnf("Failed to load plugin from %s: %v", pluginDir, err)
				continue
			}

			found = append(found, metadata)
		}
	}

	return found, nil
}

// Load registers the language metadata found in a single plugin directory
func (l *Loader) Load(pluginDir string) (*Metadata, error) {
	metadata, err := LoadMetadataFromDir(pluginDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}

	if err := l.registry.Register(metadata); err != nil {
		return nil, err
	}

	l.log.Infof("Loaded language: %s (%s)", metadata.LanguageName, metadata.LanguageKey)
	return metadata, nil
}

// GetDefaultPluginDirectories returns the default plugin search directories
func GetDefaultPluginDirectories() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}

	return []string{
		filepath.Join(homeDir, ".dotnetscan", "plugins"),
		"./plugins",
	}
}
