package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// InitResult reports what init did.
type InitResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

// InitRunner defines the interface for writing the default configuration.
type InitRunner interface {
	Init(ctx context.Context, force bool) (*InitResult, error)
}

// NewInitCmd creates the init command with the given runner.
func NewInitCmd(runner InitRunner) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a default .dslint.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runner.Init(cmd.Context(), force)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case GetJSON():
				writeJSON(w, result)
			case result.Created:
				fmt.Fprintf(w, "Wrote %s\n", result.Path)
			default:
				fmt.Fprintf(w, "Config already exists at %s\n", result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}
