package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/ackgate/pkg/commands/options"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ackgate",
		Short: base.Wrap80("Read the daily contract, commit to one action, then tick off the ritual."),
		Long: base.Wrap80(`Without a subcommand ackgate opens the gate: scroll the contract to the end, ` +
			`wait for the dwell timer, confirm and name today's action. Once confirmed the same ` +
			`window shows the ritual checklist for the rest of the day.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, false)
		},
	}

	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addStatus(topLevel)
	addCheck(topLevel)
	addHistory(topLevel)
	addRead(topLevel)
	addConfig(topLevel)
	addInfo(topLevel)
	addAutostart(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
