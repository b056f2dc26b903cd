package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"memos-widget/internal/checklist"
)

type editResult struct {
	Applied       bool   `json:"applied"`
	DocumentIndex int    `json:"document_index"`
	Pushed        bool   `json:"pushed"`
	Panel         string `json:"panel"`
}

type editFunc func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)

func addToggle(topLevel *cobra.Command, ro *rootOptions) {
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "toggle ROW",
		Short: "Flip the checked state of a list row.",
		Example: `
memowidget show
memowidget toggle 2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRowArg(args[0])
			if err != nil {
				return err
			}
			return runEdit(cmd, ro, oo, "toggled", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
				return uc.Toggle(ctx, row)
			})
		},
	}
	addOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addAdd(topLevel *cobra.Command, ro *rootOptions) {
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add TEXT...",
		Short: "Append an unchecked task.",
		Example: `
memowidget add Buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := strings.Join(args, " ")
			return runEdit(cmd, ro, oo, "added", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
				return uc.Add(ctx, body)
			})
		},
	}
	addOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command, ro *rootOptions) {
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete ROW",
		Aliases: []string{"rm"},
		Short:   "Remove a list row from the note.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseRowArg(args[0])
			if err != nil {
				return err
			}
			return runEdit(cmd, ro, oo, "deleted", func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
				return uc.Delete(ctx, row)
			})
		},
	}
	addOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func runEdit(cmd *cobra.Command, ro *rootOptions, oo *OutputOptions, verb string, fn editFunc) error {
	cmd.SilenceUsage = true
	w := cmd.OutOrStdout()

	a, err := newApp(ro.configPath, true)
	if err != nil {
		return oo.HandleError(w, err)
	}

	out, err := a.edit(cmd.Context(), fn)
	if err != nil {
		return oo.HandleError(w, err)
	}

	res := editResult{
		Applied:       out.Applied,
		DocumentIndex: out.DocumentIndex,
		Pushed:        out.Pushed,
		Panel:         a.uc.CurrentPanelLine(),
	}
	if oo.JSON {
		return oo.printJSON(w, res)
	}
	printEdit(w, verb, res)
	return nil
}

func printEdit(w io.Writer, verb string, res editResult) {
	if !res.Applied {
		_, _ = color.New(color.Faint).Fprintln(w, "nothing to do")
		return
	}
	_, _ = color.New(color.FgGreen).Fprintf(w, "%s line %d\n", verb, res.DocumentIndex)
	_, _ = fmt.Fprintln(w, res.Panel)
}

func parseRowArg(s string) (int, error) {
	row, err := strconv.Atoi(s)
	if err != nil || row < 0 {
		return 0, fmt.Errorf("row must be a non-negative integer, got %q", s)
	}
	return row, nil
}
