package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ScanFile holds the accessibility findings of one file.
type ScanFile struct {
	Path   string    `json:"path"`
	Issues []Finding `json:"issues"`
}

// ScanResult holds every file from a scan run.
type ScanResult struct {
	Files  []ScanFile
	Policy CheckPolicy
}

// ScanRunner defines the interface for scanning files for accessibility
// omissions.
type ScanRunner interface {
	Scan(ctx context.Context, targets []string) (*ScanResult, error)
}

// scanJSONResponse is the JSON output structure for the scan command.
type scanJSONResponse struct {
	Files   []ScanFile     `json:"files"`
	Summary findingSummary `json:"summary"`
}

func formatScanJSON(w io.Writer, files []ScanFile, errCount, warnCount int) {
	out := scanJSONResponse{Files: make([]ScanFile, len(files))}
	for i, f := range files {
		f.Issues = emptyIfNil(f.Issues)
		out.Files[i] = f
	}
	out.Summary = findingSummary{Errors: errCount, Warnings: warnCount, Files: len(files)}
	writeJSON(w, out)
}

func formatScanHuman(w io.Writer, files []ScanFile, errCount, warnCount int) {
	for _, f := range files {
		writeFindingLines(w, f.Issues)
	}
	if errCount > 0 || warnCount > 0 {
		fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n", errCount, warnCount)
	}
}

// NewScanCmd creates the scan command with the given runner.
func NewScanCmd(runner ScanRunner) *cobra.Command {
	var (
		jsonFlag bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:          "scan [files...]",
		Short:        "Scan markup files for accessibility omissions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Scan(cmd.Context(), args)
			if err != nil {
				return err
			}
			policy := checkOptions{json: jsonFlag || GetJSON(), strict: strict}.resolve(result.Policy)

			var errCount, warnCount int
			for _, f := range result.Files {
				e, w := countBySeverity(f.Issues)
				errCount += e
				warnCount += w
			}

			if policy.JSON {
				formatScanJSON(cmd.OutOrStdout(), result.Files, errCount, warnCount)
			} else {
				formatScanHuman(cmd.OutOrStdout(), result.Files, errCount, warnCount)
			}

			if errCount > 0 || (policy.FailOnWarnings && warnCount > 0) {
				return &FindingsDetectedError{Errors: errCount, Warnings: warnCount}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any warning is reported")

	return cmd
}
