// Package propcheck validates component props against the design-system
// vocabulary and scans markup for likely accessibility omissions. Every
// function in this package is pure and safe for concurrent use.
package propcheck

import (
	"errors"
	"fmt"

	"github.com/eykd/dslint-go/internal/domain"
)

// ErrUnknownEnumSet is returned when a membership check names no known set.
var ErrUnknownEnumSet = errors.New("unknown enumeration set")

// IsValidButtonVariant reports whether v is a Button variant.
func IsValidButtonVariant(v string) bool { return domain.ButtonVariants.Contains(v) }

// IsValidSize reports whether v is a control size step.
func IsValidSize(v string) bool { return domain.Sizes.Contains(v) }

// IsValidSpacing reports whether v is a spacing scale step.
func IsValidSpacing(v string) bool { return domain.Spacing.Contains(v) }

// IsValidFlexDirection reports whether v is a Flex direction.
func IsValidFlexDirection(v string) bool { return domain.FlexDirections.Contains(v) }

// IsValidFlexAlign reports whether v is a Flex align value.
func IsValidFlexAlign(v string) bool { return domain.FlexAligns.Contains(v) }

// IsValidFlexJustify reports whether v is a Flex justify value.
func IsValidFlexJustify(v string) bool { return domain.FlexJustifies.Contains(v) }

// IsValidTextWeight reports whether v is a Text weight.
func IsValidTextWeight(v string) bool { return domain.TextWeights.Contains(v) }

// IsValidTextSize reports whether v is a typography size step.
func IsValidTextSize(v string) bool { return domain.TextSizes.Contains(v) }

// IsValidColor reports whether v is an accent color name.
func IsValidColor(v string) bool { return domain.Colors.Contains(v) }

// CheckMembership tests value against the set called setName.
func CheckMembership(setName, value string) (bool, error) {
	set, ok := domain.LookupEnumSet(setName)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownEnumSet, setName)
	}
	return set.Contains(value), nil
}
