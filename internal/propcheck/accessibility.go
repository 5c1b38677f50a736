package propcheck

import (
	"strings"

	"github.com/eykd/dslint-go/internal/domain"
)

// Markers searched for in markup text.
const (
	markerTextInput  = "TextField.Root"
	markerLabel      = "Label"
	markerIconButton = "IconButton"
	markerAriaLabel  = "aria-label"
	markerTheme      = "<Theme"
	markerFocus      = "focus"
)

// ScanAccessibility flags likely accessibility omissions in markup. The
// checks are plain substring tests over the raw text: a Label anywhere in
// the text satisfies the label check for every input.
func ScanAccessibility(markup string) []domain.AccessibilityIssue {
	issues := []domain.AccessibilityIssue{}

	if strings.Contains(markup, markerTextInput) && !strings.Contains(markup, markerLabel) {
		issues = append(issues, domain.AccessibilityIssue{
			Level:   domain.SeverityError,
			Element: domain.ElementTextField,
			Issue:   "Text input missing associated label",
			Fix:     `Wrap input with <Label htmlFor="id"><Text>Label</Text></Label>`,
		})
	}

	if strings.Contains(markup, markerIconButton) && !strings.Contains(markup, markerAriaLabel) {
		issues = append(issues, domain.AccessibilityIssue{
			Level:   domain.SeverityWarning,
			Element: domain.ElementIconButton,
			Issue:   "Icon-only button may need aria-label for screen readers",
			Fix:     `Add aria-label="description" to IconButton`,
		})
	}

	if !strings.Contains(markup, markerTheme) {
		issues = append(issues, domain.AccessibilityIssue{
			Level:   domain.SeverityError,
			Element: domain.ElementApp,
			Issue:   "App not wrapped in Theme component",
			Fix:     "Wrap root component: <Theme><App /></Theme>",
		})
	}

	if !strings.Contains(markup, markerFocus) {
		issues = append(issues, domain.AccessibilityIssue{
			Level:   domain.SeverityWarning,
			Element: domain.ElementInteractive,
			Issue:   "Remember that focus states are built-in",
			Fix:     "Do not override focus styles - Radix handles this",
		})
	}

	return issues
}
