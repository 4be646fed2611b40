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
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GRIDSHEET_CONFIG", "")

	var out bytes.Buffer
	cmd := NewRootCommand(context.Background())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestColumnsTable(t *testing.T) {
	out, err := execute(t, "columns")
	require.NoError(t, err)
	for _, want := range []string{"Job Request", "jobRequest", "288", "36", "Est. Value"} {
		assert.Contains(t, out, want)
	}
}

func TestColumnsJSONUsesConfiguredScale(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("pixels_per_cell = 16\n"), 0o644))

	out, err := execute(t, "columns", "--json", "--config", cfg)
	require.NoError(t, err)

	var infos []columnInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 10)
	assert.Equal(t, columnInfo{Index: 1, Key: "jobRequest", Title: "Job Request", Width: 288, Cells: 18}, infos[1])
	assert.Equal(t, 3, infos[0].Cells)
}

func TestLogsPrintsTail(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "gridsheet.log")
	require.NoError(t, os.WriteFile(logFile, []byte("one\ntwo\nthree\n"), 0o644))
	cfg := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_file = \""+logFile+"\"\n"), 0o644))

	out, err := execute(t, "logs", "-n", "2", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "two\nthree\n", out)
}

func TestLogsMissingFileIsQuiet(t *testing.T) {
	out, err := execute(t, "logs")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gridsheet dev")
	assert.Contains(t, out, "Commit:")

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "gridsheet dev")
}

func TestRejectsStrayArguments(t *testing.T) {
	_, err := execute(t, "columns", "extra")
	assert.Error(t, err)
}
