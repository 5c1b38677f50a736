package propcheck

import (
	"strings"

	"github.com/eykd/dslint-go/internal/domain"
)

// ValidateComponent runs the prop validator of every component kind whose
// name occurs in markup, then the accessibility scan, and scores the result.
// Detection is by substring, so "TextField" also selects the Text validator.
func ValidateComponent(markup string, props domain.PropBag) domain.ValidationSummary {
	var errs []domain.ValidationError
	for _, kind := range domain.ComponentKinds() {
		if strings.Contains(markup, string(kind)) {
			errs = append(errs, validateKind(kind, props)...)
		}
	}
	return domain.NewValidationSummary(errs, ScanAccessibility(markup))
}
