// Package config provides the analysis configuration surface of a scan.
//
// # Project file
//
// A scan is described by dotnetscan.yaml:
//
//	key: shop
//	language: cs
//	generated_list: generated.txt
//	properties:
//	  sonar.cs.analyzeGeneratedCode: false
//	modules:
//	  - key: Shop.Web
//	    base_dir: Web
//	    properties:
//	      sonar.cs.analyzer.projectOutPaths: obj/.sonar
//	      sonar.cs.roslyn.reportFilePaths: [obj/roslyn.json]
//
// Module properties override project properties. Relative directories resolve
// against the project file's directory, report paths against the module base dir.
//
// # Environment
//
//	DOTNETSCAN_LOG_LEVEL="info"  # debug, info, warn, error
//	DOTNETSCAN_LOG_FORMAT="text" # text, json
//	DOTNETSCAN_METRICS_ENABLED="false"
//	DOTNETSCAN_ANALYZE_GENERATED_CODE=""  # overrides sonar.<lang>.analyzeGeneratedCode
//
// # Related Packages
//
//   - pkg/sensor: reads ModuleConfiguration
//   - pkg/filters: reads LanguageConfiguration
package config
