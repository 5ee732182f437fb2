package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	origLogger, origLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func sqliteEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "holistiq.db"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "holistiq dev\n", out)
}

func TestExportCommand_JSONToFile(t *testing.T) {
	dir := sqliteEnv(t)
	path := filepath.Join(dir, "out.json")

	out, err := runCLI(t, "export", "--format", "json", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported to "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap map[string]any
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Contains(t, snap, "export_date")
	assert.Contains(t, snap, "bmi_records")
}

func TestExportCommand_YAMLToStdout(t *testing.T) {
	sqliteEnv(t)

	out, err := runCLI(t, "export", "-f", "yaml", "-o", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "export_date:"), out)
}

func TestExportCommand_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		sqliteEnv(t)
		_, err := runCLI(t, "export", "-f", "csv", "-o", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported export format")
	})

	t.Run("no store", func(t *testing.T) {
		sqliteEnv(t)
		t.Setenv("STORE_DRIVER", "none")
		_, err := runCLI(t, "export", "-o", "-")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database not available")
	})

	t.Run("bad config", func(t *testing.T) {
		sqliteEnv(t)
		t.Setenv("LOG_LEVEL", "chatty")
		_, err := runCLI(t, "export")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})
}
