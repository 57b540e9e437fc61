package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFilterWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &errorFilterWriter{&buf}

	n, err := w.Write([]byte("loaded 7 programs\n"))
	require.NoError(t, err)
	assert.Equal(t, len("loaded 7 programs\n"), n)
	assert.Empty(t, buf.String())

	_, err = w.Write([]byte("Failed to fetch OpenDay.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "Failed to fetch OpenDay.json\n", buf.String())
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(Config{Log: LogConfig{Level: "error"}}, "[test] ", &buf)
	logger.Println("reloaded")
	assert.Empty(t, buf.String())
	logger.Println("error: boom")
	assert.Contains(t, buf.String(), "[test] ")

	buf.Reset()
	logger = newLogger(Config{Log: LogConfig{Level: "info"}}, "", &buf)
	logger.Println("reloaded")
	assert.Contains(t, buf.String(), "reloaded")

	assert.True(t, isDebug(Config{Log: LogConfig{Level: " DEBUG "}}))
	assert.False(t, isDebug(Config{Log: LogConfig{Level: "info"}}))
}

func TestResolvePathRelativeToBase(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "srv", "openday")
	assert.Equal(t, filepath.Join(base, "logs"), resolvePathRelativeToBase(base, "./logs"))
	assert.Equal(t, filepath.Join(base, "logs"), resolvePathRelativeToBase(base, "logs"))

	abs := filepath.Join(string(filepath.Separator), "var", "log")
	assert.Equal(t, abs, resolvePathRelativeToBase(base, abs))
}

func TestSetupFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	f := setupFileLogger(dir)
	require.NotNil(t, f)
	defer f.Close()

	assert.Equal(t, filepath.Join(dir, "openday.log"), f.Name())
	_, err := os.Stat(f.Name())
	assert.NoError(t, err)
}
