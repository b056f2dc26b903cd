package main

import (
	"fmt"
	"os"

	"memos-widget/internal/cli"
)

// @title       Memos Checklist Widget API
// @description Mirrors one Memos note as a checklist: rotating panel line, popup rows, toggle, add and delete.
// @version     1
// @host        localhost:8765
// @schemes     http
func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "memowidget:", err)
		os.Exit(1)
	}
}
