package domain

// CommonMistake is a catalog entry describing a frequent misuse of the
// component library.
type CommonMistake struct {
	Pattern string `json:"pattern"`
	Message string `json:"message"`
	Fix     string `json:"fix"`
}

// CommonMistakes returns the reference catalog in display order.
func CommonMistakes() []CommonMistake {
	return []CommonMistake{
		{
			Pattern: "No Theme wrapper",
			Message: "App must be wrapped in <Theme> component",
			Fix:     "Wrap root component with <Theme><YourApp /></Theme>",
		},
		{
			Pattern: "Using div instead of Flex for layout",
			Message: "Use Flex component for 1D layouts instead of div with CSS",
			Fix:     `<Flex direction="column" gap="2"><Item /><Item /></Flex>`,
		},
		{
			Pattern: "Using margin for spacing between items",
			Message: "Use gap prop on Flex/Grid instead of margin on children",
			Fix:     `<Flex gap="4"><Item /><Item /></Flex>`,
		},
		{
			Pattern: "Invalid color value",
			Message: "Color must be one of the predefined values",
			Fix:     "Use: " + joinFirst(Colors, 5) + ", etc.",
		},
		{
			Pattern: "Form input without label",
			Message: "Always provide <Label> for form inputs",
			Fix:     "<Label><Text>Field</Text><TextField.Root /></Label>",
		},
		{
			Pattern: "Icon button without aria-label",
			Message: "Icon-only buttons must have aria-label for accessibility",
			Fix:     `<IconButton aria-label="Close"><Cross /></IconButton>`,
		},
		{
			Pattern: "Using color alone for status",
			Message: "Use color + badge/text for accessible status indication",
			Fix:     `<Badge color="green">Active</Badge>`,
		},
		{
			Pattern: "Hardcoded pixel values",
			Message: "Use spacing scale (1-9) instead of hardcoded px",
			Fix:     `<Box p="4"> instead of <Box style={{padding: "16px"}}>`,
		},
	}
}

func joinFirst(s EnumSet, n int) string {
	vals := s.values
	if n < len(vals) {
		vals = vals[:n]
	}
	return EnumSet{values: vals}.String()
}
