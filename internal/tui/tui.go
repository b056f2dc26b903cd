package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"memos-widget/internal/checklist"
	"memos-widget/pkg/log"
)

// Options wires the widget to the checklist core and the desktop.
type Options struct {
	UseCase  checklist.UseCase
	Settings checklist.Settings
	Logger   log.Logger
	MemoURL  string

	// Open launches a URL; Copy writes to the clipboard. Either may be nil.
	Open func(url string) (string, error)
	Copy func(text string) error
}

// Run starts the widget and blocks until the user quits. The program's update
// loop is the only goroutine that touches the use case.
func Run(opts Options) error {
	_, err := tea.NewProgram(newModel(opts), tea.WithAltScreen()).Run()
	return err
}
