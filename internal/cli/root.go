// Package cli holds the cobra command tree of the transduce binary.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/transduce/errors"
)

// New returns the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transduce [sub-command]",
		Short: "Fold number streams through composable transducer stages",
		Long: `transduce pulls integers from a source, passes them through a chain of
  map, filter and remove stages and reduces what survives with sum, count
  or collect. Settings come from flags, TRANSDUCE_* environment variables,
  a .env file and config.yml, in that order of precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cmd.SetFlagErrorFunc(flagError)

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newStagesCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if appErr, ok := errors.AsAppError(err); ok && appErr.ExitCode != 0 {
		return appErr.ExitCode
	}
	return errors.ExitFailure
}

// PrintError writes err the way the binary reports failures.
func PrintError(w io.Writer, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		fmt.Fprintf(w, "Error: %s (%s)\n", appErr.Message, appErr.Code)
		if appErr.Cause != nil {
			fmt.Fprintf(w, "  cause: %v\n", appErr.Cause)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func flagError(cmd *cobra.Command, err error) error {
	return errors.InvalidInput("", err.Error()).WithCause(err)
}
