package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eykd/dslint-go/internal/domain"
)

// Severity represents the severity level of a finding.
type Severity string

const (
	// SeverityError represents an error-level finding.
	SeverityError Severity = "error"
	// SeverityWarning represents a warning-level finding.
	SeverityWarning Severity = "warning"
)

// Finding is one reported problem in a file or prop set.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Path     string   `json:"path"`
	Fix      string   `json:"fix,omitempty"`
}

// findingSummary is the trailing summary object of JSON reports.
type findingSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Files    int `json:"files"`
}

// writeJSON encodes v as JSON to w, handling I/O errors at the boundary.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// writeFindingLines writes one line per finding.
func writeFindingLines(w io.Writer, findings []Finding) {
	for _, f := range findings {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", f.Path, f.Severity, f.Rule, f.Message)
	}
}

// issueSeverity maps an accessibility level onto a report severity.
func issueSeverity(level domain.FindingSeverity) Severity {
	if level == domain.SeverityError {
		return SeverityError
	}
	return SeverityWarning
}

// countBySeverity counts errors and warnings in a slice of findings.
func countBySeverity(findings []Finding) (errCount, warnCount int) {
	for _, f := range findings {
		if f.Severity == SeverityError {
			errCount++
		} else {
			warnCount++
		}
	}
	return
}

// emptyIfNil keeps JSON arrays from encoding as null.
func emptyIfNil(findings []Finding) []Finding {
	if findings == nil {
		return []Finding{}
	}
	return findings
}
