package propcheck

import (
	"github.com/eykd/dslint-go/internal/domain"
)

// ValidateButtonProps checks variant, size and color.
func ValidateButtonProps(props domain.PropBag) []domain.ValidationError {
	return validateKind(domain.ComponentButton, props)
}

// ValidateTextProps checks size, weight and color.
func ValidateTextProps(props domain.PropBag) []domain.ValidationError {
	return validateKind(domain.ComponentText, props)
}

// ValidateFlexProps checks direction, gap, align and justify.
func ValidateFlexProps(props domain.PropBag) []domain.ValidationError {
	return validateKind(domain.ComponentFlex, props)
}

// ValidateGridProps checks gap. Grid columns are not constrained.
func ValidateGridProps(props domain.PropBag) []domain.ValidationError {
	return validateKind(domain.ComponentGrid, props)
}

// Validate dispatches to the validator for kind. An empty or unrecognized
// kind matches no validator and yields no errors.
func Validate(kind string, props domain.PropBag) []domain.ValidationError {
	return validateKind(domain.ComponentKind(kind), props)
}

// validateKind walks the rules of kind in declared order and reports every
// present value that is not a member of its set. Non-string values never
// match.
func validateKind(kind domain.ComponentKind, props domain.PropBag) []domain.ValidationError {
	errs := []domain.ValidationError{}
	for _, rule := range domain.PropRules(kind) {
		v, ok := props.Lookup(rule.Prop)
		if !ok {
			continue
		}
		if s, isText := v.Text(); isText && rule.Set.Contains(s) {
			continue
		}
		errs = append(errs, domain.NewValidationError(kind, rule.Prop, v.String(), rule.Set))
	}
	return errs
}
