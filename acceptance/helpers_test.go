package acceptance_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runDslint executes the dslint binary and returns stdout, stderr, and exit code.
func runDslint(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(dslintBinary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run dslint: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), exitCode
}

// runDslintExpect runs dslint and fails the test unless it exits with want.
func runDslintExpect(t *testing.T, want int, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runDslint(t, dir, args...)
	if exitCode != want {
		t.Fatalf("expected exit %d, got %d\nargs: %v\nstdout: %s\nstderr: %s", want, exitCode, args, stdout, stderr)
	}
	return stdout
}

// initProject creates a temp dir and writes the default configuration.
func initProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runDslintExpect(t, 0, dir, "init")
	return dir
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// readFile reads a file's content.
func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	return string(content)
}

// checkReport mirrors the JSON written by dslint check --json.
type checkReport struct {
	Files []struct {
		Path     string    `json:"path"`
		Valid    bool      `json:"valid"`
		Score    int       `json:"score"`
		Errors   []finding `json:"errors"`
		Warnings []finding `json:"warnings"`
	} `json:"files"`
	Summary struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
		Files    int `json:"files"`
	} `json:"summary"`
}

type finding struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Fix      string `json:"fix"`
}

// decodeJSON parses stdout into v.
func decodeJSON(t *testing.T, stdout string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(stdout), v); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, stdout)
	}
}
