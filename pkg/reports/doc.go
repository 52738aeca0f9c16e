// Package reports accumulates the locations of external compiler reports found while
// scanning a multi-module project.
//
// The scan orchestrator owns one Collector per scan and hands it to every module
// step through the Sink interface. Each step appends the protobuf report directories
// and Roslyn report files configured for its module; after all modules ran the
// orchestrator reads the accumulated sequences once.
//
//	collector := reports.NewCollector()
//	collector.AddProtobufDirs([]string{"obj/.sonar/output-cs"})
//	collector.AddRoslynReports([]reports.RoslynReport{{Module: mod, Path: "roslyn.json"}})
//	dirs := collector.ProtobufDirs()
//
// Sequences keep insertion order and duplicates. Accessors return copies.
package reports
