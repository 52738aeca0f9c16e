package generated

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/platinummonkey/dotnetscan/pkg/inputfile"
)

// Index knows which files of the project were produced by a build step. It is
// filled once per scan and then queried read-only.
type Index struct {
	uris  map[string]struct{}
	built bool
	mu    sync.RWMutex
}

// NewIndex creates an empty, unbuilt index
func NewIndex() *Index {
	return &Index{uris: make(map[string]struct{})}
}

// Add marks a file as generated
func (i *Index) Add(file *inputfile.InputFile) {
	if file == nil {
		return
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.uris[file.URI()] = struct{}{}
}

// AddPath marks the file at path (relative to baseDir) as generated
func (i *Index) AddPath(baseDir, path string) error {
	file, err := inputfile.New(baseDir, path)
	if err != nil {
		return err
	}
	i.Add(file)
	return nil
}

// MarkBuilt signals that every generated file has been added
func (i *Index) MarkBuilt() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.built = true
}

// Built reports whether MarkBuilt was called
func (i *Index) Built() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.built
}

// IsGenerated reports whether file is known to be generated. Files are never
// reported generated before the index is built.
func (i *Index) IsGenerated(file *inputfile.InputFile) bool {
	if i == nil || file == nil {
		return false
	}

	i.mu.RLock()
	defer i.mu.RUnlock()
	if !i.built {
		return false
	}
	_, ok := i.uris[file.URI()]
	return ok
}

// Len returns the number of generated files known
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.uris)
}

// LoadList reads newline separated paths of generated files. Blank lines and lines
// starting with # are ignored; relative paths are resolved against baseDir.
func (i *Index) LoadList(r io.Reader, baseDir string) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	line := 0
	for scanner.Scan() {
		line++
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}
		if err := i.AddPath(baseDir, entry); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read generated file list: %w", err)
	}
	return count, nil
}

// LoadListFile is LoadList over the file at path
func (i *Index) LoadListFile(path, baseDir string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open generated file list: %w", err)
	}
	defer f.Close()

	return i.LoadList(f, baseDir)
}
