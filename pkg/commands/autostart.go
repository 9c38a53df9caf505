package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/runner/autostart"
)

func addAutostart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Open ackgate at login. Existing entries are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a := autostart.Autostart{Out: cmd.OutOrStdout()}
			return a.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
