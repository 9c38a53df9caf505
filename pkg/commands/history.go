package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/commands/options"
	"tableflip.dev/ackgate/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	ho := &options.HistoryOptions{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List confirmed days from the last 30 days.",
		Example: `
ackgate history
ackgate history -n 3
ackgate history --within 2w --json
ackgate history --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			h := history.History{
				Service:  e.svc,
				Limit:    ho.Limit,
				Within:   ho.Within,
				Calendar: ho.Calendar,
				JSON:     oo.JSON,
				Out:      oo.Writer(),
			}
			return oo.HandleError(h.Do(cmd.Context()))
		},
	}
	options.AddHistoryArgs(cmd, ho)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
