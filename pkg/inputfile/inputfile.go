package inputfile

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// CaseInsensitive reports whether file identities ignore case. It defaults to the
// behaviour of the host file system and may be overridden in tests.
var CaseInsensitive = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// InputFile is a source file known to the scan. Two InputFiles denote the same file
// when their URIs are equal.
type InputFile struct {
	path     string
	absPath  string
	relPath  string
	uri      string
	language string
}

// New resolves path against baseDir (when path is relative) and builds its identity.
func New(baseDir, path string) (*InputFile, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty file path")
	}

	abs, err := resolve(baseDir, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	rel := abs
	if baseDir != "" {
		if baseAbs, err := filepath.Abs(baseDir); err == nil {
			if r, err := filepath.Rel(baseAbs, abs); err == nil && !strings.HasPrefix(r, "..") {
				rel = r
			}
		}
	}

	return &InputFile{
		path:    path,
		absPath: abs,
		relPath: filepath.ToSlash(rel),
		uri:     ToURI(abs),
	}, nil
}

// MustNew is New for fixed paths; it panics on error.
func MustNew(baseDir, path string) *InputFile {
	f, err := New(baseDir, path)
	if err != nil {
		panic(err)
	}
	return f
}

// WithLanguage returns a copy of the file tagged with a language key.
func (f *InputFile) WithLanguage(language string) *InputFile {
	c := *f
	c.language = language
	return &c
}

// URI is the canonical identity of the file.
func (f *InputFile) URI() string { return f.uri }

// AbsolutePath is the cleaned absolute path.
func (f *InputFile) AbsolutePath() string { return f.absPath }

// RelativePath is the slash separated path relative to the base directory, or the
// absolute path when the file lives outside it.
func (f *InputFile) RelativePath() string { return f.relPath }

// Language is the language key assigned by the indexer, empty if unknown.
func (f *InputFile) Language() string { return f.language }

// String returns the path as it was given.
func (f *InputFile) String() string { return f.path }

// Same reports whether both files share an identity.
func (f *InputFile) Same(other *InputFile) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.uri == other.uri
}

// ToURI converts an absolute path into a file URI. Backslashes are treated as
// separators so that paths produced on Windows agents map to the same identity.
func ToURI(absPath string) string {
	p := strings.ReplaceAll(absPath, `\`, "/")
	p = filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	if !strings.HasPrefix(p, "/") {
		// drive letter paths such as c:/src
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}
	s := u.String()
	if CaseInsensitive {
		s = strings.ToLower(s)
	}
	return s
}

func resolve(baseDir, path string) (string, error) {
	p := strings.ReplaceAll(path, `\`, string(filepath.Separator))
	if isDrivePath(path) {
		return filepath.Clean(p), nil
	}
	if !filepath.IsAbs(p) && baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	return filepath.Abs(p)
}

// isDrivePath reports whether path starts with a windows drive letter (c:\ or c:/).
func isDrivePath(path string) bool {
	if len(path) < 3 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z' && (path[2] == '\\' || path[2] == '/')
}
