// Package cli implements the dotnetscan command line.
//
// Commands:
//
//	dotnetscan scan [--format yaml|json] [--generated-list FILE] [--analyze-generated-code] [project]
//	dotnetscan validate [--plugin-dir DIR] [project]
//	dotnetscan languages [--plugin-dir DIR]
//
// The scan command loads dotnetscan.yaml, runs the module steps, filters
// generated sources and prints the collected report locations and indexed files.
package cli
