package n2t

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureFile swaps *target for a pipe while fn runs and returns what was written
func captureFile(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	require.NoError(t, err)

	*target = w

	outChan := make(chan string)
	go func() {
		out, _ := io.ReadAll(r)
		outChan <- string(out)
	}()

	defer func() { *target = old }()
	fn()

	w.Close()
	return <-outChan
}

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stdout, fn)
}

// CaptureStderr captures stderr during function execution
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stderr, fn)
}

// CaptureAll captures stdout and stderr during function execution
func CaptureAll(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()
	stderr = CaptureStderr(t, func() {
		stdout = CaptureOutput(t, fn)
	})
	return stdout, stderr
}

// writeFile creates name under dir with content and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// writeSimulator creates an executable shell script standing in for the
// Hardware Simulator
func writeSimulator(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script simulators need a unix shell")
	}
	path := filepath.Join(dir, "HardwareSimulator.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

// skipIfRoot skips permission tests that root would bypass
func skipIfRoot(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
}

// openStore opens a store at a fresh path inside a temp dir
func openStore(t *testing.T, content string) *Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if content != "" {
		writeFile(t, dir, ConfigFileName, content)
	}
	store, err := Open(path)
	require.NoError(t, err)
	return store
}
