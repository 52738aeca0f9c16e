package plugins

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnknownLanguage is returned when no metadata is registered for a language key
var ErrUnknownLanguage = errors.New("unknown language")

// Metadata describes the language a plugin analyzes
type Metadata struct {
	PluginKey    string   `yaml:"plugin_key"`    // e.g. "csharp"
	LanguageKey  string   `yaml:"language_key"`  // property namespace, e.g. "cs"
	LanguageName string   `yaml:"language_name"` // display name, e.g. "C#"
	FileSuffixes []string `yaml:"file_suffixes"` // default suffixes, e.g. [".cs"]
}

// Matches reports whether path ends with one of the metadata's file suffixes
func (m *Metadata) Matches(path string) bool {
	return MatchesSuffix(path, m.FileSuffixes)
}

// MatchesSuffix reports whether path ends with one of suffixes, ignoring case
func MatchesSuffix(path string, suffixes []string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, suffix := range suffixes {
		s := strings.ToLower(strings.TrimSpace(suffix))
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// ValidationError represents a metadata validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// CSharp is the built-in metadata of the C# plugin
	CSharp = Metadata{
		PluginKey:    "csharp",
		LanguageKey:  "cs",
		LanguageName: "C#",
		FileSuffixes: []string{".cs", ".razor"},
	}

	// VisualBasic is the built-in metadata of the VB.NET plugin
	VisualBasic = Metadata{
		PluginKey:    "vbnet",
		LanguageKey:  "vbnet",
		LanguageName: "VB.NET",
		FileSuffixes: []string{".vb"},
	}
)
