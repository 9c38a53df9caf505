package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var ephemeral bool
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the gate, or the ritual view once today is confirmed",
		Example: `
ackgate ui
ackgate ui --ephemeral
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, ephemeral)
		},
	}
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "Keep records in memory for this run only.")

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, ephemeral bool) error {
	cmd.SilenceUsage = true
	e, err := open(cmd, openOptions{ephemeral: ephemeral, interactive: true})
	if err != nil {
		return err
	}
	defer e.Close()
	u := ui.UI{
		Service:   e.svc,
		Log:       e.log,
		Autostart: e.settings.Autostart && !ephemeral,
	}
	return u.Do(cmd.Context())
}
