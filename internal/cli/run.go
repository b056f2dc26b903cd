package cli

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"memos-widget/internal/tui"
	"memos-widget/pkg/browser"
)

func addRun(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the terminal widget (default).",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWidget(cmd, ro)
		},
	}
	topLevel.AddCommand(cmd)
}

func runWidget(cmd *cobra.Command, ro *rootOptions) error {
	cmd.SilenceUsage = true

	a, err := newApp(ro.configPath, true)
	if err != nil {
		return err
	}
	a.cfg.Watch(a.settings.Store)

	return tui.Run(tui.Options{
		UseCase:  a.uc,
		Settings: a.settings,
		Logger:   a.l,
		MemoURL:  a.memoURL(),
		Open:     browser.New().Open,
		Copy:     clipboard.WriteAll,
	})
}
