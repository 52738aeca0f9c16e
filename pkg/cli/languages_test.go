package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/dotnetscan/pkg/plugins"
)

func TestLanguages_BuiltIns(t *testing.T) {
	clearEnv(t)

	code, stdout, stderr := runCLI(t, "languages")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "KEY")
	assert.Contains(t, stdout, "cs       C#         .cs,.razor")
	assert.Contains(t, stdout, "vbnet    VB.NET     .vb")
}

func TestLanguages_PluginDir(t *testing.T) {
	clearEnv(t)
	root := t.TempDir()
	pluginDir := filepath.Join(root, "fsharp")
	require.NoError(t, os.MkdirAll(pluginDir, 0755))
	require.NoError(t, plugins.SaveMetadata(&plugins.Metadata{
		PluginKey:    "fsharp",
		LanguageKey:  "fs",
		LanguageName: "F#",
		FileSuffixes: []string{".fs"},
	}, filepath.Join(pluginDir, plugins.MetadataFileName)))

	code, stdout, stderr := runCLI(t, "languages", "--plugin-dir", root)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "fs       F#         .fs")
}
