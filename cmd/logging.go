package cmd

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// isDebug reports whether verbose logging was requested.
func isDebug(cfg Config) bool {
	return strings.EqualFold(strings.TrimSpace(cfg.Log.Level), "debug")
}

// newLogger returns a logger for headless commands. At error level only
// lines that look like errors are written.
func newLogger(cfg Config, prefix string, w io.Writer) *log.Logger {
	if strings.EqualFold(strings.TrimSpace(cfg.Log.Level), "error") {
		w = &errorFilterWriter{w}
	}
	return log.New(w, prefix, log.LstdFlags)
}

// newTUILogger keeps the terminal clean while the TUI owns it: everything
// goes to the log file, errors are still echoed to stderr.
func newTUILogger(cfg Config, prefix string) (*log.Logger, *os.File) {
	logFile := setupFileLogger(cfg.Log.Dir)
	if logFile == nil {
		return log.New(&errorFilterWriter{os.Stderr}, prefix, log.LstdFlags), nil
	}
	return log.New(io.MultiWriter(logFile, &errorFilterWriter{os.Stderr}), prefix, log.LstdFlags), logFile
}

// setupFileLogger creates a log file for TUI mode
func setupFileLogger(dir string) *os.File {
	if dir == "" {
		dir = "logs"
	}
	logDir := resolvePathRelativeToBase(getWorkingDir(), dir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		// If we can't create logs directory, we'll fall back to stderr
		return nil
	}

	logPath := filepath.Join(logDir, "openday.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return logFile
}

type errorFilterWriter struct {
	writer io.Writer
}

func (w *errorFilterWriter) Write(p []byte) (n int, err error) {
	lc := strings.ToLower(string(p))
	if strings.Contains(lc, "error") ||
		strings.Contains(lc, "failed") ||
		strings.Contains(lc, "could not") ||
		strings.Contains(lc, "panic") {
		return w.writer.Write(p)
	}
	return len(p), nil
}

// getExecutableDir returns the directory of the running executable.
// Falls back to current directory on error.
func getExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// getWorkingDir returns the current working directory.
// Falls back to executable directory if os.Getwd fails.
func getWorkingDir() string {
	if wd, err := os.Getwd(); err == nil && wd != "" {
		return wd
	}
	return getExecutableDir()
}

// resolvePathRelativeToBase resolves a possibly relative path against a base directory.
// Absolute paths are returned unchanged.
func resolvePathRelativeToBase(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	p = strings.TrimPrefix(p, "./")
	return filepath.Join(base, p)
}
