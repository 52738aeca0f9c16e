package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// MetadataFileName is the file the loader looks for in each plugin directory
const MetadataFileName = "language.yaml"

var languageKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// LoadMetadata loads and parses language metadata from a file
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata Metadata
	if err := yaml.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return &metadata, nil
}

// LoadMetadataFromDir loads language metadata from a directory (looks for language.yaml)
func LoadMetadataFromDir(dir string) (*Metadata, error) {
	return LoadMetadata(filepath.Join(dir, MetadataFileName))
}

// SaveMetadata saves language metadata to a file
func SaveMetadata(metadata *Metadata, path string) error {
	data, err := yaml.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}

// ValidateMetadata performs basic validation on language metadata
func ValidateMetadata(metadata *Metadata) []ValidationError {
	var errors []ValidationError

	if metadata.PluginKey == "" {
		errors = append(errors, ValidationError{
			Field:   "plugin_key",
			Message: "Plugin key is required",
		})
	}

	if metadata.LanguageKey == "" {
		errors = append(errors, ValidationError{
			Field:   "language_key",
			Message: "Language key is required",
		})
	} else if !languageKeyRegex.MatchString(metadata.LanguageKey) {
		errors = append(errors, ValidationError{
			Field:   "language_key",
			Message: fmt.Sprintf("Invalid language key: %s (lowercase letters and digits only)", metadata.LanguageKey),
		})
	}

	if metadata.LanguageName == "" {
		errors = append(errors, ValidationError{
			Field:   "language_name",
			Message: "Language name is required",
		})
	}

	if len(metadata.FileSuffixes) == 0 {
		errors = append(errors, ValidationError{
			Field:   "file_suffixes",
			Message: "At least one file suffix is required",
		})
	}

	return errors
}
