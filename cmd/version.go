package cmd

import (
	"fmt"

	"github.com/CooperTran2196/scenetree/internal/output"
	"github.com/CooperTran2196/scenetree/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output.IsStructured(a.format) {
				return a.printer(out).Print(version.Get())
			}
			fmt.Fprintln(out, version.Get().String())
			return nil
		},
	}
}
