package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/dslint-go/internal/domain"
)

// NewMistakesCmd creates the mistakes command, which prints the catalog of
// common component misuses.
func NewMistakesCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:          "mistakes",
		Short:        "Show common component mistakes and their fixes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := domain.CommonMistakes()
			w := cmd.OutOrStdout()
			if jsonFlag || GetJSON() {
				writeJSON(w, catalog)
				return nil
			}
			for i, m := range catalog {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s\n  %s\n  fix: %s\n", m.Pattern, m.Message, m.Fix)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")

	return cmd
}
