package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// FindingsDetectedError is returned when a command reports findings that
// fail the run.
type FindingsDetectedError struct {
	Errors   int
	Warnings int
	// BelowScore counts files scoring under the required minimum.
	BelowScore int
	MinScore   int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	msg := fmt.Sprintf("found %d errors, %d warnings", e.Errors, e.Warnings)
	if e.BelowScore > 0 {
		msg += fmt.Sprintf(", %d file(s) below score %d", e.BelowScore, e.MinScore)
	}
	return msg
}

// ExitCode returns the exit code for findings (always 2).
func (e *FindingsDetectedError) ExitCode() int {
	return 2
}

// NotMemberError is returned by enums check when the value is rejected.
type NotMemberError struct {
	Set   string
	Value string
}

// Error implements the error interface.
func (e *NotMemberError) Error() string {
	return fmt.Sprintf("%q is not a valid %s value", e.Value, e.Set)
}

// ExitCode returns the exit code for a rejected value (always 2).
func (e *NotMemberError) ExitCode() int {
	return 2
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// FormatError formats an error with the "dslint: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("dslint: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code.
func RunCLI(cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return 0
}
