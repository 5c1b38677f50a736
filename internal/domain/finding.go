package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that must be resolved.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates a finding that should be reviewed.
	SeverityWarning FindingSeverity = "warning"
)

// Accessibility elements reported by the markup scan.
const (
	ElementTextField   = "TextField"
	ElementIconButton  = "IconButton"
	ElementApp         = "App"
	ElementInteractive = "Interactive Elements"
)

// AccessibilityIssue is one heuristic finding from scanning markup text.
type AccessibilityIssue struct {
	Level   FindingSeverity `json:"level"`
	Element string          `json:"element"`
	Issue   string          `json:"issue"`
	Fix     string          `json:"fix"`
}

// ValidationError reports a prop value outside its permitted set.
type ValidationError struct {
	Component string `json:"component"`
	Prop      string `json:"prop"`
	Value     string `json:"value"`
	Message   string `json:"message"`
}

// NewValidationError builds the error for prop on component whose value is
// not a member of set.
func NewValidationError(component ComponentKind, prop, value string, set EnumSet) ValidationError {
	return ValidationError{
		Component: string(component),
		Prop:      prop,
		Value:     value,
		Message:   "Invalid " + prop + ". Must be one of: " + set.String(),
	}
}
