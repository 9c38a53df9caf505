package commands

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/ackgate/pkg/commands/options"
	"tableflip.dev/ackgate/pkg/ritual"
	"tableflip.dev/ackgate/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	var off bool
	cmd := &cobra.Command{
		Use:   "check [item]",
		Short: "Tick a ritual item for today. Needs today's confirmation.",
		Example: `
ackgate check gym
ackgate check gym --off
ackgate check
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := open(cmd, openOptions{})
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.Close()

			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				if id, err = pickItem(e.svc.Tracker.Items()); err != nil {
					return oo.HandleError(err)
				}
			}
			c := check.Check{
				Service: e.svc,
				ID:      id,
				Off:     off,
				JSON:    oo.JSON,
				Out:     oo.Writer(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "Clear the item instead of ticking it.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func pickItem(items []ritual.Item) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .ID | cyan }} {{ .Label }}",
		Inactive: "   {{ .ID | cyan }} {{ .Label }}",
		Selected: "➜  {{ .ID | green }}",
	}

	searcher := func(input string, index int) bool {
		item := items[index]
		name := strings.Replace(strings.ToLower(item.ID+item.Label), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Ritual item",
		Items:     items,
		Templates: templates,
		Size:      len(items),
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return items[i].ID, nil
}
