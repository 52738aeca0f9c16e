package plugins

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps language keys to plugin metadata
type Registry struct {
	languages map[string]*Metadata
	mu        sync.RWMutex
}

// NewRegistry creates a registry holding the built-in C# and VB.NET metadata
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	csharp := CSharp
	vbnet := VisualBasic
	r.languages[csharp.LanguageKey] = &csharp
	r.languages[vbnet.LanguageKey] = &vbnet
	return r
}

// NewEmptyRegistry creates a registry without built-ins
func NewEmptyRegistry() *Registry {
	return &Registry{languages: make(map[string]*Metadata)}
}

// Register adds metadata to the registry
func (r *Registry) Register(metadata *Metadata) error {
	if metadata == nil {
		return fmt.Errorf("cannot register nil metadata")
	}
	if errs := ValidateMetadata(metadata); len(errs) > 0 {
		return fmt.Errorf("metadata validation failed: %v", errs)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.languages[metadata.LanguageKey]; exists {
		return fmt.Errorf("language already registered: %s", metadata.LanguageKey)
	}

	r.languages[metadata.LanguageKey] = metadata
	return nil
}

// Get retrieves metadata by language key
func (r *Registry) Get(languageKey string) (*Metadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	metadata, exists := r.languages[languageKey]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, languageKey)
	}

	return metadata, nil
}

// Has checks if a language is registered
func (r *Registry) Has(languageKey string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.languages[languageKey]
	return exists
}

// List returns all registered metadata sorted by language key
func (r *Registry) List() []*Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Metadata, 0, len(r.languages))
	for _, metadata := range r.languages {
		result = append(result, metadata)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].LanguageKey < result[j].LanguageKey
	})
	return result
}

// Count returns the number of registered languages
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.languages)
}
