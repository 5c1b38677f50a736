package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// FileResult is the validation outcome of one file.
type FileResult struct {
	Path     string    `json:"path"`
	Valid    bool      `json:"valid"`
	Score    int       `json:"score"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
}

// CheckPolicy carries the project settings that decide whether a run fails.
type CheckPolicy struct {
	FailOnWarnings bool
	MinScore       int
	JSON           bool
}

// CheckResult holds every file result from a check run.
type CheckResult struct {
	Files  []FileResult
	Policy CheckPolicy
}

// CheckRunner defines the interface for validating files.
type CheckRunner interface {
	Check(ctx context.Context, targets []string) (*CheckResult, error)
}

// checkJSONResponse is the JSON output structure for the check command.
type checkJSONResponse struct {
	Files   []FileResult   `json:"files"`
	Summary findingSummary `json:"summary"`
}

// checkOptions holds the flag overrides of one check invocation.
type checkOptions struct {
	json     bool
	strict   bool
	minScore *int
}

// resolve merges flag overrides over the project policy.
func (o checkOptions) resolve(p CheckPolicy) CheckPolicy {
	p.JSON = p.JSON || o.json
	p.FailOnWarnings = p.FailOnWarnings || o.strict
	if o.minScore != nil {
		p.MinScore = *o.minScore
	}
	return p
}

// totals sums errors and warnings and finds the lowest score.
func totals(files []FileResult) (errCount, warnCount, lowest int) {
	lowest = 100
	for _, f := range files {
		errCount += len(f.Errors)
		warnCount += len(f.Warnings)
		lowest = min(lowest, f.Score)
	}
	return
}

// formatCheckJSON writes file results as JSON to w.
func formatCheckJSON(w io.Writer, files []FileResult, errCount, warnCount int) {
	out := checkJSONResponse{Files: make([]FileResult, len(files))}
	for i, f := range files {
		f.Errors = emptyIfNil(f.Errors)
		f.Warnings = emptyIfNil(f.Warnings)
		out.Files[i] = f
	}
	out.Summary = findingSummary{Errors: errCount, Warnings: warnCount, Files: len(files)}
	writeJSON(w, out)
}

// formatCheckHuman writes file results as human-readable text to w.
func formatCheckHuman(w io.Writer, files []FileResult, errCount, warnCount, lowest int) {
	for _, f := range files {
		writeFindingLines(w, f.Errors)
		writeFindingLines(w, f.Warnings)
	}
	if errCount > 0 || warnCount > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s), score %d\n", errCount, warnCount, lowest)
}

// runCheckAndReport runs the checker and formats results as JSON or
// human-readable text. It returns a FindingsDetectedError when the results
// fail the resolved policy.
func runCheckAndReport(cmd *cobra.Command, runner CheckRunner, targets []string, opts checkOptions) error {
	result, err := runner.Check(cmd.Context(), targets)
	if err != nil {
		return err
	}
	policy := opts.resolve(result.Policy)

	errCount, warnCount, lowest := totals(result.Files)
	if policy.JSON {
		formatCheckJSON(cmd.OutOrStdout(), result.Files, errCount, warnCount)
	} else {
		formatCheckHuman(cmd.OutOrStdout(), result.Files, errCount, warnCount, lowest)
	}

	below := 0
	for _, f := range result.Files {
		if f.Score < policy.MinScore {
			below++
		}
	}

	if errCount > 0 || below > 0 || (policy.FailOnWarnings && warnCount > 0) {
		return &FindingsDetectedError{
			Errors:     errCount,
			Warnings:   warnCount,
			BelowScore: below,
			MinScore:   policy.MinScore,
		}
	}
	return nil
}

// NewCheckCmd creates the check command with the given runner.
func NewCheckCmd(runner CheckRunner) *cobra.Command {
	var (
		jsonFlag bool
		strict   bool
		minScore int
	)

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate component props and accessibility of markup files",
		Long: "Validate every named file, or the configured include patterns when no " +
			"file is given. Each file is scored from 100 down.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := checkOptions{json: jsonFlag || GetJSON(), strict: strict}
			if cmd.Flags().Changed("min-score") {
				if minScore < 0 || minScore > 100 {
					return fmt.Errorf("--min-score must be between 0 and 100, got %d", minScore)
				}
				opts.minScore = &minScore
			}
			return runCheckAndReport(cmd, runner, args, opts)
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any warning is reported")
	cmd.Flags().IntVar(&minScore, "min-score", 0, "Fail when a file scores below this value")

	return cmd
}
