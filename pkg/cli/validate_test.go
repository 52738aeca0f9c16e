package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "validate", dir)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "Project 'shop' (cs) is valid: 1 module(s)")
	assert.Contains(t, stdout, "  Shop.Web\n")
	assert.Contains(t, stdout, "protobuf: "+filepath.Join(dir, "Web", "obj", ".sonar", "output-cs"))
	assert.Contains(t, stdout, "roslyn:   "+filepath.Join(dir, "Web", "obj", "roslyn.json"))
}

func TestValidate_MissingProperties(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dotnetscan.yaml"), []byte("key: app\nlanguage: vbnet\n"), 0644))

	code, stdout, stderr := runCLI(t, "validate", dir)
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "Project 'app' (vbnet) is valid: 1 module(s)")
	assert.Contains(t, stdout, "protobuf: (none)")
	assert.Contains(t, stdout, "roslyn:   (none)")
}

func TestValidate_DuplicateModule(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	project := "key: app\nlanguage: cs\nmodules:\n  - key: A\n  - key: A\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dotnetscan.yaml"), []byte(project), 0644))

	code, _, stderr := runCLI(t, "validate", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "duplicate module key: A")
}
