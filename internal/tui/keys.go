package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Popup   key.Binding
	Close   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Open    key.Binding
	Copy    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Popup:   key.NewBinding(key.WithKeys("p", "tab"), key.WithHelp("p", "list")),
		Close:   key.NewBinding(key.WithKeys("esc", "p", "tab"), key.WithHelp("esc", "close")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "space", "x", "enter"), key.WithHelp("space", "toggle")),
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete:  key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open memo")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) panelHelp() []key.Binding {
	return []key.Binding{k.Popup, k.Refresh, k.Open, k.Copy, k.Quit}
}

func (k keyMap) popupHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Delete, k.Copy, k.Close}
}

func (k keyMap) addHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
