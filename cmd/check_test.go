package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mockCheckRunner is a test double for CheckRunner.
type mockCheckRunner struct {
	result  *CheckResult
	err     error
	called  bool
	targets []string
}

func (m *mockCheckRunner) Check(ctx context.Context, targets []string) (*CheckResult, error) {
	m.called = true
	m.targets = targets
	return m.result, m.err
}

// checkJSONOutput is a test-only type for parsing JSON output from dslint check --json.
type checkJSONOutput struct {
	Files []struct {
		Path     string    `json:"path"`
		Valid    bool      `json:"valid"`
		Score    int       `json:"score"`
		Errors   []Finding `json:"errors"`
		Warnings []Finding `json:"warnings"`
	} `json:"files"`
	Summary struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
		Files    int `json:"files"`
	} `json:"summary"`
}

var (
	variantError = Finding{
		Rule:     "button-variant",
		Severity: SeverityError,
		Message:  "Invalid variant. Must be one of: solid, soft, outline, ghost",
		Path:     "src/Save.tsx",
	}
	themeWarning = Finding{
		Rule:     "app",
		Severity: SeverityWarning,
		Message:  "Missing Theme wrapper",
		Path:     "src/Save.tsx",
		Fix:      "Wrap your app with <Theme> component",
	}
)

func runCheckCmd(t *testing.T, runner CheckRunner, args ...string) (string, error) {
	t.Helper()
	cmd := NewCheckCmd(runner)
	cmd.SetArgs(args)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return buf.String(), err
}

func TestCheckCmd_RegisteredWithRoot(t *testing.T) {
	found := false
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "check" {
			found = true
			break
		}
	}
	if !found {
		t.Error("check command not registered with root")
	}
}

func TestCheckCmd_NoFindings(t *testing.T) {
	runner := &mockCheckRunner{
		result: &CheckResult{Files: []FileResult{{Path: "src/Ok.tsx", Valid: true, Score: 100}}},
	}

	out, err := runCheckCmd(t, runner)

	if err != nil {
		t.Fatalf("expected no error for clean check, got %v", err)
	}
	if out != "0 error(s), 0 warning(s), score 100\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCheckCmd_PassesTargets(t *testing.T) {
	runner := &mockCheckRunner{result: &CheckResult{}}

	if _, err := runCheckCmd(t, runner, "a.tsx", "b.tsx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a.tsx", "b.tsx"}, runner.targets); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckCmd_ErrorsFailRun(t *testing.T) {
	runner := &mockCheckRunner{
		result: &CheckResult{Files: []FileResult{{
			Path:     "src/Save.tsx",
			Score:    87,
			Errors:   []Finding{variantError},
			Warnings: []Finding{themeWarning},
		}}},
	}

	out, err := runCheckCmd(t, runner)

	var fde *FindingsDetectedError
	if !errors.As(err, &fde) {
		t.Fatalf("expected FindingsDetectedError, got %v", err)
	}
	if fde.Errors != 1 || fde.Warnings != 1 {
		t.Errorf("counts = %d/%d, want 1/1", fde.Errors, fde.Warnings)
	}
	if ExitCodeFromError(err) != 2 {
		t.Errorf("exit code = %d, want 2", ExitCodeFromError(err))
	}

	wantLines := []string{
		"src/Save.tsx [error] button-variant: Invalid variant. Must be one of: solid, soft, outline, ghost",
		"src/Save.tsx [warning] app: Missing Theme wrapper",
		"1 error(s), 1 warning(s), score 87",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestCheckCmd_WarningPolicy(t *testing.T) {
	withWarning := func(policy CheckPolicy) *CheckResult {
		return &CheckResult{
			Files:  []FileResult{{Path: "src/Save.tsx", Valid: true, Score: 97, Warnings: []Finding{themeWarning}}},
			Policy: policy,
		}
	}

	tests := []struct {
		name    string
		args    []string
		policy  CheckPolicy
		wantErr bool
	}{
		{name: "warnings pass by default", wantErr: false},
		{name: "strict flag", args: []string{"--strict"}, wantErr: true},
		{name: "config fail_on_warnings", policy: CheckPolicy{FailOnWarnings: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCheckCmd(t, &mockCheckRunner{result: withWarning(tt.policy)}, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckCmd_MinScore(t *testing.T) {
	result := func(policy CheckPolicy) *CheckResult {
		return &CheckResult{
			Files: []FileResult{
				{Path: "a.tsx", Valid: true, Score: 97, Warnings: []Finding{themeWarning}},
				{Path: "b.tsx", Valid: true, Score: 100},
			},
			Policy: policy,
		}
	}

	tests := []struct {
		name      string
		args      []string
		policy    CheckPolicy
		wantBelow int
	}{
		{name: "no minimum", wantBelow: 0},
		{name: "flag above score", args: []string{"--min-score", "98"}, wantBelow: 1},
		{name: "flag at score", args: []string{"--min-score", "97"}, wantBelow: 0},
		{name: "config minimum", policy: CheckPolicy{MinScore: 100}, wantBelow: 1},
		{name: "flag overrides config", args: []string{"--min-score", "0"}, policy: CheckPolicy{MinScore: 100}, wantBelow: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCheckCmd(t, &mockCheckRunner{result: result(tt.policy)}, tt.args...)
			if tt.wantBelow == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var fde *FindingsDetectedError
			if !errors.As(err, &fde) {
				t.Fatalf("expected FindingsDetectedError, got %v", err)
			}
			if fde.BelowScore != tt.wantBelow {
				t.Errorf("BelowScore = %d, want %d", fde.BelowScore, tt.wantBelow)
			}
		})
	}
}

func TestCheckCmd_MinScoreOutOfRange(t *testing.T) {
	runner := &mockCheckRunner{result: &CheckResult{}}

	_, err := runCheckCmd(t, runner, "--min-score", "101")

	if err == nil {
		t.Fatal("expected error for out-of-range --min-score")
	}
	if runner.called {
		t.Error("runner should not be called with an invalid flag")
	}
}

func TestCheckCmd_RunnerError(t *testing.T) {
	runErr := errors.New("reading src/Save.tsx: permission denied")
	runner := &mockCheckRunner{err: runErr}

	_, err := runCheckCmd(t, runner)

	if !errors.Is(err, runErr) {
		t.Fatalf("expected runner error, got %v", err)
	}
	if ExitCodeFromError(err) != 1 {
		t.Errorf("exit code = %d, want 1", ExitCodeFromError(err))
	}
}

func TestCheckCmd_JSON(t *testing.T) {
	runner := &mockCheckRunner{
		result: &CheckResult{Files: []FileResult{
			{Path: "src/Save.tsx", Score: 87, Errors: []Finding{variantError}, Warnings: []Finding{themeWarning}},
			{Path: "src/Ok.tsx", Valid: true, Score: 100},
		}},
	}

	out, err := runCheckCmd(t, runner, "--json")

	var fde *FindingsDetectedError
	if !errors.As(err, &fde) {
		t.Fatalf("expected FindingsDetectedError, got %v", err)
	}

	var got checkJSONOutput
	if jsonErr := json.Unmarshal([]byte(out), &got); jsonErr != nil {
		t.Fatalf("invalid JSON: %v\n%s", jsonErr, out)
	}
	if got.Summary.Errors != 1 || got.Summary.Warnings != 1 || got.Summary.Files != 2 {
		t.Errorf("summary = %+v", got.Summary)
	}
	if diff := cmp.Diff([]Finding{variantError}, got.Files[0].Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if got.Files[1].Errors == nil || got.Files[1].Warnings == nil {
		t.Error("empty finding lists should encode as [] not null")
	}
	if !strings.Contains(out, `"errors":[]`) {
		t.Errorf("expected empty errors array in output: %s", out)
	}
}

func TestCheckCmd_ConfigFormatJSON(t *testing.T) {
	runner := &mockCheckRunner{result: &CheckResult{Policy: CheckPolicy{JSON: true}}}

	out, err := runCheckCmd(t, runner)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("expected JSON output, got %q", out)
	}
}
