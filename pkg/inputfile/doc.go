// Package inputfile defines the identity of source files handled by a scan.
//
// A file is identified by a file:// URI derived from its cleaned absolute path.
// Separator style, "." and ".." segments and, on case-insensitive platforms, letter
// case are normalized there, so consumers compare URIs instead of raw paths.
package inputfile
