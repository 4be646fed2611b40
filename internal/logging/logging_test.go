package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToNonTerminalStderr(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "debug", Format: "json", Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("component", "ui").Debug("navigated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "navigated", line["msg"])
	assert.Equal(t, "ui", line["component"])
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Options{Level: "chatty", Stderr: &buf})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewAppendsToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "gridsheet.log")
	var buf bytes.Buffer

	logger, closer, err := New(Options{Format: "text", File: path, Stderr: &buf})
	require.NoError(t, err)
	logger.WithField("column", "Status").Info("column resized")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "column resized")
	assert.Contains(t, string(data), "column=Status")
	assert.Contains(t, buf.String(), "column resized")
}

func TestNewReportsUnwritableLogDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, _, err := New(Options{File: filepath.Join(blocker, "x.log"), Stderr: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create log dir")
}

type countingHook struct{ n int }

func (h *countingHook) Levels() []logrus.Level { return logrus.AllLevels }
func (h *countingHook) Fire(*logrus.Entry) error {
	h.n++
	return nil
}

func TestNewInstallsHooks(t *testing.T) {
	hook := &countingHook{}
	logger, closer, err := New(Options{Stderr: &bytes.Buffer{}, Hooks: []logrus.Hook{hook}})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("one")
	logger.Warn("two")
	assert.Equal(t, 2, hook.n)
}
