package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/commands/options"
	"tableflip.dev/ackgate/pkg/record"
	"tableflip.dev/ackgate/pkg/runner/settings"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the contract text and confirmation phrase.",
		Long: `The contract text lives with the records, not in .ackgate.yaml.

Fields: ` + strings.Join(record.ConfigFields(), ", "),
	}

	addConfigShow(cmd)
	addConfigSet(cmd)
	addConfigReset(cmd)
	addConfigEdit(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigShow(parent *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current contract fields.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()
			s := settings.Show{Service: e.svc, JSON: oo.JSON, Out: oo.Writer()}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)
	parent.AddCommand(cmd)
}

func addConfigSet(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Overwrite one contract field.",
		Example: `
ackgate config set name "Ada Lovelace"
ackgate config set phrase "I begin now."
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: record.ConfigFields(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return err
			}
			defer e.Close()
			s := settings.Set{Service: e.svc, Field: args[0], Value: args[1], Out: cmd.OutOrStdout()}
			return s.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}

func addConfigReset(parent *cobra.Command) {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the built-in contract.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return err
			}
			defer e.Close()
			r := settings.Reset{Service: e.svc, Yes: yes, Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	parent.AddCommand(cmd)
}

func addConfigEdit(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit every contract field in a form.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{interactive: true})
			if err != nil {
				return err
			}
			defer e.Close()
			ed := settings.Edit{Service: e.svc, Out: cmd.OutOrStdout()}
			return ed.Do(cmd.Context())
		},
	}
	parent.AddCommand(cmd)
}
