package plugins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), MetadataFileName)
	metadata := &Metadata{
		PluginKey:    "fsharp",
		LanguageKey:  "fs",
		LanguageName: "F#",
		FileSuffixes: []string{".fs", ".fsx"},
	}

	require.NoError(t, SaveMetadata(metadata, path))

	loaded, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, metadata, loaded)
}

func TestLoadMetadata_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMetadata(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read metadata")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("file_suffixes: {not: [a list"), 0644))
	_, err = LoadMetadata(bad)
	assert.ErrorContains(t, err, "failed to parse metadata")
}

func TestLoadMetadataFromDir(t *testing.T) {
	dir := t.TempDir()
	content := `plugin_key: csharp
language_key: cs
language_name: "C#"
file_suffixes:
  - .cs
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, MetadataFileName), []byte(content), 0644))

	metadata, err := LoadMetadataFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "cs", metadata.LanguageKey)
	assert.Equal(t, "C#", metadata.LanguageName)
	assert.Equal(t, []string{".cs"}, metadata.FileSuffixes)
}

func TestValidateMetadata(t *testing.T) {
	t.Run("built-ins are valid", func(t *testing.T) {
		assert.Empty(t, ValidateMetadata(&CSharp))
		assert.Empty(t, ValidateMetadata(&VisualBasic))
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := ValidateMetadata(&Metadata{})
		fields := make([]string, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, e.Field)
		}
		assert.ElementsMatch(t, []string{"plugin_key", "language_key", "language_name", "file_suffixes"}, fields)
	})

	t.Run("invalid language key", func(t *testing.T) {
		m := CSharp
		m.LanguageKey = "C#"
		errs := ValidateMetadata(&m)
		require.Len(t, errs, 1)
		assert.Equal(t, "language_key", errs[0].Field)
		assert.Contains(t, errs[0].Error(), "Invalid language key")
	})
}

func TestMetadata_Matches(t *testing.T) {
	assert.True(t, CSharp.Matches("src/Program.cs"))
	assert.True(t, CSharp.Matches(`src\Views\Index.RAZOR`))
	assert.False(t, CSharp.Matches("src/Program.vb"))
	assert.False(t, CSharp.Matches("src/cs"))
	assert.True(t, VisualBasic.Matches("Module1.vb"))
}

func TestMatchesSuffix(t *testing.T) {
	assert.True(t, MatchesSuffix("a.cshtml", []string{"cshtml"}))
	assert.False(t, MatchesSuffix("a.cs", []string{"", "  "}))
	assert.False(t, MatchesSuffix("a.cs", nil))
}
