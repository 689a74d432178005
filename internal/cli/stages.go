package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/transduce/runner"
)

func newStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the stages and reducers a run can use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Stages:")
			for _, name := range runner.StageNames() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintf(w, "Reducers: %s\n", strings.Join(runner.Reducers(), ", "))
			return nil
		},
		DisableAutoGenTag: true,
	}
}
