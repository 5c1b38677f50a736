// Package cmd contains the CLI commands for the dslint application.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

// jsonOutput holds the global --json flag state.
var jsonOutput bool

// logger is replaced by the root command before any subcommand runs.
var logger = zap.NewNop()

func init() {
	rootCmd = BuildCommandTree(newWorkspace(os.Getwd))
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// GetJSON reports whether the global --json flag was given.
func GetJSON() bool {
	return jsonOutput
}

// Logger returns the logger configured for the running command.
func Logger() *zap.Logger {
	return logger
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dslint",
		Short: "Check design-system component props and markup accessibility",
		Long: "dslint validates design-system component props against the permitted " +
			"tokens and scans markup for common accessibility omissions.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// newLogger builds a console logger writing to stderr. Debug output is
// enabled only in verbose mode.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// BuildCommandTree creates the root command with every subcommand wired to
// ws. Commands that need no project state run directly against the
// validator.
func BuildCommandTree(ws *workspace) *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(
		NewCheckCmd(&checkAdapter{ws: ws}),
		NewScanCmd(&scanAdapter{ws: ws}),
		NewPropsCmd(),
		NewEnumsCmd(),
		NewMistakesCmd(),
		NewInitCmd(&initAdapter{ws: ws}),
	)
	return root
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
// This enables graceful shutdown via context cancellation (e.g., on SIGINT).
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
