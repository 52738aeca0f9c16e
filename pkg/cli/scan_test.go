package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/dotnetscan/pkg/scan"
)

const projectFile = `key: shop
language: cs
generated_list: generated.txt
modules:
  - key: Shop.Web
    base_dir: Web
    properties:
      sonar.cs.analyzer.projectOutPaths: obj/.sonar
      sonar.cs.roslyn.reportFilePaths: obj/roslyn.json
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"dotnetscan.yaml":       projectFile,
		"generated.txt":         "Web/Order.g.cs\n",
		"Web/Program.cs":        "class Program {}",
		"Web/Order.g.cs":        "// <auto-generated/>",
		"Web/obj/roslyn.json":   "{}",
		"other/alt-list.txt":    "Web/Program.cs\n",
		"Web/obj/Debug/Info.cs": "",
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), append([]string{"dotnetscan"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestScan_JSON(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "scan", "--format", "json", dir)
	require.Equal(t, 0, code, stderr)

	var result scan.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))

	assert.Equal(t, "shop", result.Project)
	assert.Equal(t, []string{filepath.Join(dir, "Web", "obj", ".sonar", "output-cs")}, result.ProtobufDirs)
	require.Len(t, result.RoslynReports, 1)
	assert.Equal(t, filepath.Join(dir, "Web", "obj", "roslyn.json"), result.RoslynReports[0].Path)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "Program.cs", result.Files[0].Path)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Order.g.cs", result.Skipped[0].Path)
}

func TestScan_YAMLFromProjectFile(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "scan", filepath.Join(dir, "dotnetscan.yaml"))
	require.Equal(t, 0, code, stderr)

	var result scan.Result
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.Files, 1)
	assert.NotEmpty(t, result.ScanID)
}

func TestScan_AnalyzeGeneratedCodeFlag(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "scan", "--format", "json", "--analyze-generated-code", "--log-level", "debug", dir)
	require.Equal(t, 0, code, stderr)

	var result scan.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Len(t, result.Files, 2)
	assert.Empty(t, result.Skipped)
	assert.Contains(t, stderr, "Will analyze generated code")
}

func TestScan_AnalyzeGeneratedCodeEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOTNETSCAN_ANALYZE_GENERATED_CODE", "true")
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "scan", "--format", "json", dir)
	require.Equal(t, 0, code, stderr)

	var result scan.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Empty(t, result.Skipped)
}

func TestScan_GeneratedListOverride(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)

	code, stdout, stderr := runCLI(t, "scan", "--format", "json",
		"--generated-list", filepath.Join(dir, "other", "alt-list.txt"), dir)
	require.Equal(t, 0, code, stderr)

	var result scan.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "Program.cs", result.Skipped[0].Path)
}

func TestScan_MetricsOut(t *testing.T) {
	clearEnv(t)
	dir := writeFixture(t)
	metricsPath := filepath.Join(t.TempDir(), "metrics.prom")

	code, _, stderr := runCLI(t, "scan", "--metrics-out", metricsPath, dir)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dotnetscan_files_skipped_total")
}

func TestScan_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing project", func(t *testing.T) {
		code, _, stderr := runCLI(t, "scan", filepath.Join(t.TempDir(), "nope"))
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "failed to open project")
	})

	t.Run("directory without project file", func(t *testing.T) {
		code, _, stderr := runCLI(t, "scan", t.TempDir())
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "no project file found")
	})

	t.Run("unknown language", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dotnetscan.yaml"), []byte("key: p\nlanguage: cobol\n"), 0644))
		code, _, stderr := runCLI(t, "scan", dir)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unknown language")
	})

	t.Run("bad format", func(t *testing.T) {
		code, _, stderr := runCLI(t, "scan", "--format", "xml", writeFixture(t))
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unsupported format")
	})
}
