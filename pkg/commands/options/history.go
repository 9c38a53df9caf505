package options

import (
	"github.com/spf13/cobra"
)

// HistoryOptions
type HistoryOptions struct {
	Limit    int
	Within   string
	Calendar bool
}

func AddHistoryArgs(cmd *cobra.Command, o *HistoryOptions) {
	cmd.Flags().IntVarP(&o.Limit, "number", "n", 7,
		"Number of most recent days to show.")
	cmd.Flags().StringVar(&o.Within, "within", "",
		`Only days inside a window, example: --within=2w. Overrides --number.`)
	cmd.Flags().BoolVar(&o.Calendar, "calendar", false,
		"Show this month with confirmed days highlighted.")
}
