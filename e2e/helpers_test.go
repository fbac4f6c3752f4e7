// helpers_test.go provides test utilities for E2E tests.
//
// Available helper functions:
//   - runCommand(): Execute n2tstatus with arguments and capture output
//   - assertExitCode(): Verify command exit codes
//   - assertContains(): Check output contains expected text
//   - assertNotContains(): Check output does not contain text
//   - newWorkspace(): Create a config path and project directory for one test
package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

var (
	// Cache the binary path to avoid rebuilding for every test
	cachedBinary   string
	cachedBinaryMu sync.Mutex
)

// buildBinary builds the n2tstatus binary for testing, caching the result
func buildBinary(t *testing.T) string {
	t.Helper()

	cachedBinaryMu.Lock()
	defer cachedBinaryMu.Unlock()

	if cachedBinary != "" {
		if _, err := os.Stat(cachedBinary); err == nil {
			return cachedBinary
		}
		cachedBinary = ""
	}

	projectRoot := getProjectRoot(t)
	testdataDir := filepath.Join(projectRoot, "e2e", "testdata")
	binary := filepath.Join(testdataDir, "n2tstatus-test")
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}

	if err := os.MkdirAll(testdataDir, 0755); err != nil {
		t.Fatalf("Failed to create testdata directory: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", binary, filepath.Join(projectRoot, "cmd", "n2tstatus"))
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build binary: %v\nOutput: %s", err, output)
	}

	cachedBinary = binary
	return binary
}

// commandResult holds the output and exit code of a command
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// runCommand runs n2tstatus with the given arguments and returns the result
func runCommand(t *testing.T, args ...string) commandResult {
	t.Helper()
	return runCommandIn(t, "", args...)
}

// runCommandIn runs n2tstatus from dir (the test's working directory when empty)
func runCommandIn(t *testing.T, dir string, args ...string) commandResult {
	t.Helper()
	return runCommandEnv(t, dir, nil, args...)
}

// runCommandEnv runs n2tstatus from dir with extra environment variables
func runCommandEnv(t *testing.T, dir string, env []string, args ...string) commandResult {
	t.Helper()

	binary := buildBinary(t)
	cmd := exec.Command(binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// Set a minimal, predictable environment for testing
	cmd.Env = []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + t.TempDir(),
		"NO_COLOR=1",
	}
	cmd.Env = append(cmd.Env, env...)

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("Failed to run command: %v", err)
	}

	return commandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// getProjectRoot returns the project root directory
func getProjectRoot(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Go up one level from e2e/ to get project root
	return filepath.Dir(filepath.Dir(filename))
}

// workspace is an isolated configuration file and assignment directory
type workspace struct {
	Config  string // --config path, not created yet
	Project string // directory holding the .tst files
}

// newWorkspace creates an empty project directory containing files
func newWorkspace(t *testing.T, files ...string) workspace {
	t.Helper()

	root := t.TempDir()
	ws := workspace{
		Config:  filepath.Join(root, ".n2trc"),
		Project: filepath.Join(root, "project"),
	}
	if err := os.Mkdir(ws.Project, 0755); err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(ws.Project, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return ws
}

// writeSimulator creates a shell script standing in for the Hardware Simulator
func writeSimulator(t *testing.T, dir, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script simulators need a unix shell")
	}
	path := filepath.Join(dir, "HardwareSimulator.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// assertContains checks if the output contains all expected strings
func assertContains(t *testing.T, output string, expected ...string) {
	t.Helper()

	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			t.Errorf("Output missing expected string: %q\nFull output:\n%s", exp, output)
		}
	}
}

// assertNotContains checks if the output does not contain any of the strings
func assertNotContains(t *testing.T, output string, notExpected ...string) {
	t.Helper()

	for _, notExp := range notExpected {
		if strings.Contains(output, notExp) {
			t.Errorf("Output contains unexpected string: %q\nFull output:\n%s", notExp, output)
		}
	}
}

// assertExitCode checks if the exit code matches the expected value
func assertExitCode(t *testing.T, result commandResult, expected int) {
	t.Helper()

	if result.ExitCode != expected {
		t.Errorf("Expected exit code %d, got %d\nStdout: %s\nStderr: %s",
			expected, result.ExitCode, result.Stdout, result.Stderr)
	}
}
