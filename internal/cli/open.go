package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"memos-widget/pkg/browser"
)

func addOpen(topLevel *cobra.Command, ro *rootOptions) {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the note in the Memos web UI.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			a, err := newApp(ro.configPath, true)
			if err != nil {
				return err
			}
			if printOnly {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), a.memoURL())
				return err
			}
			_, err = browser.New().Open(a.memoURL())
			return err
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "Print the URL instead of opening it.")

	topLevel.AddCommand(cmd)
}
