package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexaview/hexaview/internal/adapters/inbound/cli"
	"github.com/hexaview/hexaview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyFixture copies a testdata project into a temp dir so commands that
// write history never touch the checked-in fixtures.
func copyFixture(t *testing.T, name string) string {
	t.Helper()
	dir := t.TempDir()
	src := filepath.Join("../../../../testdata/ts-hexagonal", name)
	require.NoError(t, os.CopyFS(dir, os.DirFS(src)))
	return dir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hexaview")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	dir := copyFixture(t, "violations")

	out, err := runCommand(t, "analyze", dir, "--json")
	require.NoError(t, err)

	var report domain.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 7, report.Metrics.TotalModules)
	assert.Equal(t, 1, report.Metrics.TotalViolations)
	assert.Equal(t, 95, report.Metrics.ArchitectureScore)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "domain-cannot-import-infrastructure", report.Violations[0].Rule)
}

func TestAnalyzeCommand_Terminal(t *testing.T) {
	dir := copyFixture(t, "violations")

	out, err := runCommand(t, "analyze", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "95 / 100")
	assert.Contains(t, out, "domain-cannot-import-infrastructure")
}

func TestAnalyzeCommand_SavesHistory(t *testing.T) {
	dir := copyFixture(t, "clean")

	_, err := runCommand(t, "analyze", dir)
	require.NoError(t, err)

	out, err := runCommand(t, "analyze", dir, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "score 100")
}

func TestValidateCommand_FailsOnViolations(t *testing.T) {
	dir := copyFixture(t, "violations")

	_, err := runCommand(t, "validate", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 layering violation(s)")
}

func TestValidateCommand_PassesCleanProject(t *testing.T) {
	dir := copyFixture(t, "clean")

	_, err := runCommand(t, "validate", dir)
	require.NoError(t, err)
}

// Warning-severity violations pass by default and fail under --strict.
func TestValidateCommand_Strict(t *testing.T) {
	dir := copyFixture(t, "violations")
	cfg := `
rules:
  - layer: domain
    forbidden: [infrastructure]
    severity: warning
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hexaview.yaml"), []byte(cfg), 0644))

	_, err := runCommand(t, "validate", dir)
	require.NoError(t, err)

	_, err = runCommand(t, "validate", dir, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 layering violation(s)")
}

func TestDiagramCommand_Stdout(t *testing.T) {
	dir := copyFixture(t, "violations")

	out, err := runCommand(t, "diagram", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "flowchart TD")
	assert.Contains(t, out, "domain -.->|1| infrastructure")
}

func TestDiagramCommand_OutputFile(t *testing.T) {
	dir := copyFixture(t, "clean")
	target := filepath.Join(t.TempDir(), "arch.mmd")

	out, err := runCommand(t, "diagram", dir, "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "flowchart TD")
}

func TestUnknownCommandErrors(t *testing.T) {
	_, err := runCommand(t, "bogus")
	require.Error(t, err)
}
