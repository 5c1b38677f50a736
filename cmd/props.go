package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eykd/dslint-go/internal/domain"
	"github.com/eykd/dslint-go/internal/propcheck"
	"github.com/eykd/dslint-go/internal/propfile"
	"github.com/eykd/dslint-go/internal/ruleid"
)

// PropsResult is the outcome of validating one component's props.
type PropsResult struct {
	Component string    `json:"component"`
	Valid     bool      `json:"valid"`
	Errors    []Finding `json:"errors"`
}

// validationFindings converts prop violations into report findings located
// at path.
func validationFindings(path string, errs []domain.ValidationError) []Finding {
	out := make([]Finding, 0, len(errs))
	for _, e := range errs {
		out = append(out, Finding{
			Rule:     ruleid.FromProp(e.Component, e.Prop),
			Severity: SeverityError,
			Message:  e.Message,
			Path:     path,
		})
	}
	return out
}

// loadPropBag reads props from an optional YAML file and overlays the
// key=value assignments.
func loadPropBag(from string, assignments []string) (domain.PropBag, error) {
	bag := domain.PropBag{}
	if from != "" {
		data, err := os.ReadFile(from)
		if err != nil {
			return nil, &ContextError{Op: "read", Path: from, Err: err}
		}
		fileBag, err := propfile.ParseProps(string(data))
		if err != nil {
			return nil, &ContextError{Op: "parse", Path: from, Err: err}
		}
		maps.Copy(bag, fileBag)
	}
	assigned, err := propfile.ParseAssignments(assignments)
	if err != nil {
		return nil, err
	}
	maps.Copy(bag, assigned)
	return bag, nil
}

// NewPropsCmd creates the props command, which validates prop values given
// on the command line.
func NewPropsCmd() *cobra.Command {
	var (
		jsonFlag bool
		from     string
	)

	cmd := &cobra.Command{
		Use:   "props <Component> [key=value...]",
		Short: "Validate prop values for a component",
		Long: "Validate prop values for Button, Text, Flex or Grid. Values come from " +
			"key=value arguments, optionally layered over a YAML file given with --from.",
		Example:      "  dslint props Button variant=solid size=2 color=blue",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			component := args[0]
			bag, err := loadPropBag(from, args[1:])
			if err != nil {
				return err
			}

			if !slices.Contains(domain.ComponentKinds(), domain.ComponentKind(component)) {
				Logger().Warn("component has no prop rules", zap.String("component", component))
			}
			Logger().Debug("validating props", zap.String("component", component), zap.Strings("props", bag.Keys()))

			errs := propcheck.Validate(component, bag)
			result := PropsResult{
				Component: component,
				Valid:     len(errs) == 0,
				Errors:    validationFindings(component, errs),
			}

			w := cmd.OutOrStdout()
			if jsonFlag || GetJSON() {
				writeJSON(w, result)
			} else if result.Valid {
				fmt.Fprintf(w, "%s: ok\n", component)
			} else {
				writeFindingLines(w, result.Errors)
				fmt.Fprintf(w, "\n%d error(s)\n", len(result.Errors))
			}

			if !result.Valid {
				return &FindingsDetectedError{Errors: len(result.Errors)}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&from, "from", "", "Read props from a YAML `file` before applying arguments")

	return cmd
}
