package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/runner/read"
)

func addRead(topLevel *cobra.Command) {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Print today's contract without opening the gate.",
		Example: `
ackgate read
ackgate read --markdown > contract.md
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return err
			}
			defer e.Close()
			r := read.Read{
				Service:  e.svc,
				Markdown: markdown,
				Out:      cmd.OutOrStdout(),
			}
			return r.Do(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print the markdown source.")

	topLevel.AddCommand(cmd)
}
