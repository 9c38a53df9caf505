package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/commands/options"
	"tableflip.dev/ackgate/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the records and where they are stored.",
		Example: `
ackgate info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			s := info.Info{
				Settings:    e.settings,
				Persistence: e.persistence,
				Out:         oo.Writer(),
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
