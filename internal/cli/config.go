package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"memos-widget/config"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the widget configuration.",
	}

	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write a config file with every default.",
		Example: `
memowidget config init
memowidget config init ./config/config.yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				dir, err := config.AppDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.yaml")
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
				return err
			}
			if err := config.WriteDefaults(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.AddCommand(initCmd)
	topLevel.AddCommand(cmd)
}
