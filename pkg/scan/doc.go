// Package scan drives a whole-project scan.
//
// A scan runs in two phases. First every module's properties sensor runs and
// forwards the module's protobuf report directories and Roslyn JSON reports
// to a single collector. Then the generated file index is built once and the
// source files of each module are walked, matched against the language's file
// suffixes and passed through the generated file filter.
//
// Files reachable from more than one module are reported once, under the
// first module that reaches them.
package scan
