package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/transduce/errors"
	"github.com/kbukum/transduce/version"
)

const (
	FlagFormat          = "format"
	FlagFormatShortHand = "f"
)

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of transduce",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString(FlagFormat)
			if err != nil {
				return err
			}
			info := version.Get()
			switch format {
			case OutputJSON:
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			case OutputText:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.Long())
				return err
			default:
				return errors.InvalidInput(FlagFormat, "must be text or json")
			}
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	cmd.Flags().StringP(FlagFormat, FlagFormatShortHand, OutputText, "output format: text or json")
	return cmd
}
