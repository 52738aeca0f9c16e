// Package filters decides which indexed source files take part in analysis.
//
// GeneratedFileFilter depends on two narrow capabilities: a GeneratedIndex that
// answers membership queries and a GeneratedCodeSetting read once at construction.
// When generated code is analyzed every file is accepted; otherwise files the index
// reports as generated are skipped with a debug trace. Lookup failures and an
// unbuilt index count as "not generated", so coverage is never reduced by a fault.
//
//	filter := filters.NewGeneratedFileFilter(index, languageConfig, logger)
//	if filter.Accept(file) {
//		// analyze
//	}
package filters
