package tui

import (
	"fmt"
	"strings"

	"memos-widget/internal/checklist"
)

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("memo"))
	b.WriteString(" ")
	b.WriteString(panelStyle.Render(m.panel))
	b.WriteString("\n")

	switch m.mode {
	case modePopup, modeAdd:
		b.WriteString(m.popupView())
		b.WriteString("\n")
	}

	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(mutedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	switch m.mode {
	case modeAdd:
		b.WriteString(m.help.ShortHelpView(m.keys.addHelp()))
	case modePopup:
		b.WriteString(m.help.ShortHelpView(m.keys.popupHelp()))
	default:
		b.WriteString(m.help.ShortHelpView(m.keys.panelHelp()))
	}
	return b.String()
}

func (m model) popupView() string {
	var b strings.Builder

	st := m.popup.Stats
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d tasks · %d pending · %d done", st.Total, st.Pending, st.Completed)))
	b.WriteString("\n")

	if len(m.popup.Rows) == 0 {
		b.WriteString(mutedStyle.Render("nothing to show"))
	}
	for i, row := range m.popup.Rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(i, row))
	}

	if m.mode == modeAdd {
		b.WriteString("\n")
		b.WriteString(m.input.View())
	}
	return boxStyle.Render(b.String())
}

func (m model) renderRow(i int, row checklist.Row) string {
	mark := "· "
	if row.Kind == checklist.KindTask {
		mark = checklist.GlyphUnchecked
		if row.Checked {
			mark = checklist.GlyphChecked
		}
	}

	text := mark + row.Text
	switch {
	case i == m.cursor && m.mode == modePopup:
		return selectedStyle.Render("> " + text)
	case row.Checked:
		return "  " + doneStyle.Render(text)
	default:
		return "  " + text
	}
}
