package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"memos-widget/internal/checklist"
)

type showResult struct {
	Panel string    `json:"panel"`
	Rows  []showRow `json:"rows"`
	Stats showStats `json:"stats"`
}

type showRow struct {
	Row     int    `json:"row"`
	Text    string `json:"text"`
	Kind    string `json:"kind"`
	Checked bool   `json:"checked"`
}

type showStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

func addShow(topLevel *cobra.Command, ro *rootOptions) {
	oo := &OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the panel line and the list rows.",
		Example: `
memowidget show
memowidget show --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			w := cmd.OutOrStdout()

			a, err := newApp(ro.configPath, true)
			if err != nil {
				return oo.HandleError(w, err)
			}
			if err := a.load(cmd.Context()); err != nil {
				return oo.HandleError(w, err)
			}

			res := newShowResult(a.uc.CurrentPanelLine(), a.uc.PopupRows())
			if oo.JSON {
				return oo.printJSON(w, res)
			}
			printShow(w, res)
			return nil
		},
	}
	addOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func newShowResult(panel string, popup checklist.PopupOutput) showResult {
	res := showResult{
		Panel: panel,
		Rows:  make([]showRow, len(popup.Rows)),
		Stats: showStats{
			Total:     popup.Stats.Total,
			Completed: popup.Stats.Completed,
			Pending:   popup.Stats.Pending,
		},
	}
	for i, r := range popup.Rows {
		res.Rows[i] = showRow{Row: i, Text: r.Text, Kind: r.Kind.String(), Checked: r.Checked}
	}
	return res
}

func printShow(w io.Writer, res showResult) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	done := color.New(color.FgGreen, color.Faint)

	_, _ = bold.Fprintln(w, res.Panel)
	_, _ = faint.Fprintf(w, "%d tasks, %d pending, %d done\n\n", res.Stats.Total, res.Stats.Pending, res.Stats.Completed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Row"), bold.Sprint(""), bold.Sprint("Text"))
	for _, r := range res.Rows {
		mark := "·"
		switch {
		case r.Kind != checklist.KindTask.String():
		case r.Checked:
			mark = "☑"
		default:
			mark = "☐"
		}
		text := r.Text
		if r.Checked {
			text = done.Sprint(text)
		}
		tbl.AddRow(r.Row, mark, text)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
