package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/commands/options"
	"tableflip.dev/ackgate/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether today is confirmed and the ritual progress.",
		Example: `
ackgate status
ackgate status --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			s := status.Status{
				Service: e.svc,
				JSON:    oo.JSON,
				Out:     oo.Writer(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
