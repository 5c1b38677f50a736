package domain

// ComponentKind names a design-system component whose props can be validated.
type ComponentKind string

const (
	ComponentButton ComponentKind = "Button"
	ComponentText   ComponentKind = "Text"
	ComponentFlex   ComponentKind = "Flex"
	ComponentGrid   ComponentKind = "Grid"
)

// ComponentKinds returns the supported kinds in detection order.
func ComponentKinds() []ComponentKind {
	return []ComponentKind{ComponentButton, ComponentText, ComponentFlex, ComponentGrid}
}

// PropRule binds one component property to the set its values must belong to.
type PropRule struct {
	Prop string
	Set  EnumSet
}

// PropRules returns the checked properties of kind in check order.
// Unknown kinds have no rules.
func PropRules(kind ComponentKind) []PropRule {
	switch kind {
	case ComponentButton:
		return []PropRule{
			{Prop: "variant", Set: ButtonVariants},
			{Prop: "size", Set: Sizes},
			{Prop: "color", Set: Colors},
		}
	case ComponentText:
		return []PropRule{
			{Prop: "size", Set: TextSizes},
			{Prop: "weight", Set: TextWeights},
			{Prop: "color", Set: Colors},
		}
	case ComponentFlex:
		return []PropRule{
			{Prop: "direction", Set: FlexDirections},
			{Prop: "gap", Set: Spacing},
			{Prop: "align", Set: FlexAligns},
			{Prop: "justify", Set: FlexJustifies},
		}
	case ComponentGrid:
		return []PropRule{
			{Prop: "gap", Set: Spacing},
		}
	}
	return nil
}
