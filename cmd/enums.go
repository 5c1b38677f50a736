package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/dslint-go/internal/domain"
	"github.com/eykd/dslint-go/internal/propcheck"
)

// EnumSetInfo is the JSON form of an enumeration set.
type EnumSetInfo struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// MembershipResult is the JSON form of a membership check.
type MembershipResult struct {
	Set   string `json:"set"`
	Value string `json:"value"`
	Valid bool   `json:"valid"`
}

func enumSetInfo(s domain.EnumSet) EnumSetInfo {
	return EnumSetInfo{Name: s.Name(), Values: s.Values()}
}

// NewEnumsCmd creates the enums command, which lists the permitted tokens.
func NewEnumsCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:          "enums [name]",
		Short:        "List permitted prop values",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON := jsonFlag || GetJSON()
			w := cmd.OutOrStdout()

			if len(args) == 1 {
				set, ok := domain.LookupEnumSet(args[0])
				if !ok {
					return fmt.Errorf("%w: %q", propcheck.ErrUnknownEnumSet, args[0])
				}
				if asJSON {
					writeJSON(w, enumSetInfo(set))
					return nil
				}
				for _, v := range set.Values() {
					fmt.Fprintln(w, v)
				}
				return nil
			}

			sets := domain.EnumSets()
			if asJSON {
				out := make([]EnumSetInfo, len(sets))
				for i, s := range sets {
					out[i] = enumSetInfo(s)
				}
				writeJSON(w, out)
				return nil
			}
			for _, s := range sets {
				fmt.Fprintf(w, "%s: %s\n", s.Name(), s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.AddCommand(newEnumsCheckCmd())

	return cmd
}

func newEnumsCheckCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:          "check <name> <value>",
		Short:        "Check whether a value belongs to an enumeration set",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			ok, err := propcheck.CheckMembership(name, value)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonFlag || GetJSON() {
				writeJSON(w, MembershipResult{Set: name, Value: value, Valid: ok})
			} else if ok {
				fmt.Fprintln(w, "valid")
			} else {
				fmt.Fprintln(w, "invalid")
			}

			if !ok {
				return &NotMemberError{Set: name, Value: value}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")

	return cmd
}
