package domain

// Score penalties. They are fixed policy.
const (
	MaxScore       = 100
	ErrorPenalty   = 10
	WarningPenalty = 3
)

// ValidationSummary aggregates the findings of one validation call.
// Errors holds prop violations; Warnings holds every accessibility issue,
// whatever its level.
type ValidationSummary struct {
	Valid    bool                 `json:"valid"`
	Errors   []ValidationError    `json:"errors"`
	Warnings []AccessibilityIssue `json:"warnings"`
	Score    int                  `json:"score"`
}

// NewValidationSummary derives Valid and Score from the given findings.
func NewValidationSummary(errs []ValidationError, issues []AccessibilityIssue) ValidationSummary {
	if errs == nil {
		errs = []ValidationError{}
	}
	if issues == nil {
		issues = []AccessibilityIssue{}
	}
	s := ValidationSummary{Errors: errs, Warnings: issues}
	s.Valid = s.ErrorCount() == 0
	s.Score = Score(s.ErrorCount(), s.WarningCount())
	return s
}

// ErrorCount counts prop errors plus error-level accessibility issues.
func (s ValidationSummary) ErrorCount() int {
	n := len(s.Errors)
	for _, w := range s.Warnings {
		if w.Level == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount counts warning-level accessibility issues.
func (s ValidationSummary) WarningCount() int {
	n := 0
	for _, w := range s.Warnings {
		if w.Level != SeverityError {
			n++
		}
	}
	return n
}

// Score returns 100 minus the weighted penalties, floored at zero.
func Score(errorCount, warningCount int) int {
	return max(0, MaxScore-ErrorPenalty*errorCount-WarningPenalty*warningCount)
}
