// Package plugins describes the languages a scan can analyze.
//
// # Overview
//
// Each language plugin is described by Metadata: the plugin key, the language key
// used as property namespace ("cs" in sonar.cs.analyzeGeneratedCode), the display
// name and the default file suffixes. C# and VB.NET are built in; more languages
// can be dropped into a plugin directory as language.yaml:
//
//	plugin_key: fsharp
//	language_key: fs
//	language_name: F#
//	file_suffixes: [".fs", ".fsx"]
//
// # Usage Example
//
//	registry := plugins.NewRegistry()
//	loader := plugins.NewLoader(plugins.GetDefaultPluginDirectories(), registry, logger)
//	if _, err := loader.Discover(ctx); err != nil {
//		return err
//	}
//	metadata, err := registry.Get("cs")
//
// # Related Packages
//
//   - pkg/config: property keys derived from the language key
//   - pkg/sensor: names the properties sensor after the language
package plugins
