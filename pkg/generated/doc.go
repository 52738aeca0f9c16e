// Package generated holds the project-wide index of machine-generated source files.
//
// The index is populated from the compiler's file metadata by an upstream step (or
// from a plain list of paths), sealed with MarkBuilt, and then queried by the
// generated-file filter. Membership uses inputfile URIs.
package generated
