// Package domain holds the design-system vocabulary and the value types
// produced by prop and accessibility validation.
package domain

import (
	"slices"
	"strings"
)

// Enumeration set names.
const (
	SetButtonVariant = "button-variant"
	SetSize          = "size"
	SetSpacing       = "spacing"
	SetFlexDirection = "flex-direction"
	SetFlexAlign     = "flex-align"
	SetFlexJustify   = "flex-justify"
	SetTextWeight    = "text-weight"
	SetTextSize      = "text-size"
	SetColor         = "color"
)

// EnumSet is a named, ordered collection of the tokens permitted for one
// property. Sets are built once at package initialization and never change.
type EnumSet struct {
	name   string
	values []string
}

func newEnumSet(name string, values ...string) EnumSet {
	if len(values) == 0 {
		panic("domain: enumeration set " + name + " must not be empty")
	}
	return EnumSet{name: name, values: values}
}

// Name returns the set's identifier, e.g. "button-variant".
func (s EnumSet) Name() string { return s.name }

// Values returns a copy of the permitted tokens in declared order.
func (s EnumSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Len returns the number of permitted tokens.
func (s EnumSet) Len() int { return len(s.values) }

// Contains reports whether value is an exact, case-sensitive member of the set.
func (s EnumSet) Contains(value string) bool {
	return slices.Contains(s.values, value)
}

// String joins the tokens with ", " in declared order.
func (s EnumSet) String() string {
	return strings.Join(s.values, ", ")
}

var (
	// ButtonVariants lists the Button variant tokens.
	ButtonVariants = newEnumSet(SetButtonVariant, "solid", "soft", "outline", "ghost")
	// Sizes lists the control size steps.
	Sizes = newEnumSet(SetSize, "1", "2", "3", "4")
	// Spacing lists the spacing scale used by gap props.
	Spacing = newEnumSet(SetSpacing, "1", "2", "3", "4", "5", "6", "7", "8", "9")
	// FlexDirections lists the Flex direction tokens.
	FlexDirections = newEnumSet(SetFlexDirection, "row", "column")
	// FlexAligns lists the Flex align tokens.
	FlexAligns = newEnumSet(SetFlexAlign, "start", "center", "end", "baseline", "stretch")
	// FlexJustifies lists the Flex justify tokens.
	FlexJustifies = newEnumSet(SetFlexJustify, "start", "center", "end", "between", "around")
	// TextWeights lists the Text weight tokens.
	TextWeights = newEnumSet(SetTextWeight, "light", "normal", "medium", "bold")
	// TextSizes lists the typography size steps.
	TextSizes = newEnumSet(SetTextSize, "1", "2", "3", "4", "5", "6", "7", "8", "9")
	// Colors lists the accent color names.
	Colors = newEnumSet(SetColor,
		"gray", "blue", "red", "orange", "green", "teal", "cyan", "purple",
		"pink", "jade", "indigo", "violet", "brown", "bronze", "gold", "amber",
		"lime", "mint", "olive", "sage", "sand", "slate", "sky", "mauve",
		"plum", "ruby", "crimson", "tomato", "yellow", "grass", "iris", "accent",
	)
)

// EnumSets returns every enumeration set in a stable order.
func EnumSets() []EnumSet {
	return []EnumSet{
		ButtonVariants,
		Sizes,
		Spacing,
		FlexDirections,
		FlexAligns,
		FlexJustifies,
		TextWeights,
		TextSizes,
		Colors,
	}
}

// LookupEnumSet returns the set with the given name.
func LookupEnumSet(name string) (EnumSet, bool) {
	for _, s := range EnumSets() {
		if s.name == name {
			return s, true
		}
	}
	return EnumSet{}, false
}
