package config

// LanguageConfiguration exposes the language-level analysis switches
type LanguageConfiguration struct {
	languageKey string
	settings    Settings
}

// NewLanguageConfiguration creates the configuration of a language
func NewLanguageConfiguration(languageKey string, settings Settings) *LanguageConfiguration {
	return &LanguageConfiguration{languageKey: languageKey, settings: settings}
}

// LanguageKey returns the language key
func (c *LanguageConfiguration) LanguageKey() string {
	return c.languageKey
}

// AnalyzeGeneratedCode defaults to false
func (c *LanguageConfiguration) AnalyzeGeneratedCode() bool {
	return c.settings.BoolOrDefault(AnalyzeGeneratedCodeProperty(c.languageKey), false)
}

// AnalyzeRazorCode defaults to true
func (c *LanguageConfiguration) AnalyzeRazorCode() bool {
	return c.settings.BoolOrDefault(AnalyzeRazorCodeProperty(c.languageKey), true)
}

// FileSuffixes returns the configured suffixes, or defaults when none are set.
// Razor suffixes are dropped when Razor analysis is off.
func (c *LanguageConfiguration) FileSuffixes(defaults []string) []string {
	suffixes := c.settings.GetStringArray(FileSuffixesProperty(c.languageKey))
	if len(suffixes) == 0 {
		suffixes = defaults
	}
	if c.AnalyzeRazorCode() {
		return suffixes
	}

	out := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if s == ".razor" || s == ".cshtml" {
			continue
		}
		out = append(out, s)
	}
	return out
}
