package cli

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

// New builds the memowidget command tree. Without a subcommand it runs the
// terminal widget.
func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "memowidget",
		Short: "Mirror one Memos note as a rotating checklist.",
		Long: `memowidget shows one line of a Memos note at a time, rotating through the
open tasks. Open the list to toggle, add or delete items; every change is
written back to the note right away.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, ro)
		},
	}
	cmd.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "Config file (default: ./config, . or ~/.memowidget)")

	addCommands(cmd, ro)
	return cmd
}

func addCommands(topLevel *cobra.Command, ro *rootOptions) {
	addRun(topLevel, ro)
	addServe(topLevel, ro)
	addShow(topLevel, ro)
	addToggle(topLevel, ro)
	addAdd(topLevel, ro)
	addDelete(topLevel, ro)
	addOpen(topLevel, ro)
	addConfig(topLevel)
}
