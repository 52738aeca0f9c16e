package config

// Property keys are namespaced by the language key (cs, vbnet).

// AnalyzerWorkDirProperty lists the analyzer working directories of a module
func AnalyzerWorkDirProperty(languageKey string) string {
	return "sonar." + languageKey + ".analyzer.projectOutPaths"
}

// RoslynReportPathsProperty lists the Roslyn JSON reports of a module
func RoslynReportPathsProperty(languageKey string) string {
	return "sonar." + languageKey + ".roslyn.reportFilePaths"
}

// AnalyzeGeneratedCodeProperty turns the generated file filter off when true
func AnalyzeGeneratedCodeProperty(languageKey string) string {
	return "sonar." + languageKey + ".analyzeGeneratedCode"
}

// AnalyzeRazorCodeProperty toggles analysis of Razor files
func AnalyzeRazorCodeProperty(languageKey string) string {
	return "sonar." + languageKey + ".analyzeRazorCode"
}

// FileSuffixesProperty overrides the language's file suffixes
func FileSuffixesProperty(languageKey string) string {
	return "sonar." + languageKey + ".file.suffixes"
}

// AnalyzerReportDir is the protobuf output directory inside an analyzer working directory
func AnalyzerReportDir(languageKey string) string {
	return "output-" + languageKey
}
