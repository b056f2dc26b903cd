package usecase

import (
	"context"

	"memos-widget/internal/checklist"
)

// Rotate advances the panel cursor to the next visible line. Policies are
// re-read first so a config change shows up on the next tick.
func (uc *implUseCase) Rotate(ctx context.Context) string {
	uc.rebuild()
	uc.cursor.Advance(uc.panel)
	return uc.CurrentPanelLine()
}

// CurrentPanelLine is the single place that decides the panel text: the body
// under the cursor, the all-hidden text when the document has lines but none
// is visible, or "" before the first document arrives.
func (uc *implUseCase) CurrentPanelLine() string {
	if uc.doc == nil {
		return ""
	}
	idx := uc.cursor.Current()
	if idx == checklist.NoIndex {
		return uc.settings.AllHiddenText()
	}
	line, err := uc.doc.Line(idx)
	if err != nil {
		return uc.settings.AllHiddenText()
	}
	return line.Body()
}

// PopupRows lists the popup projection in order.
func (uc *implUseCase) PopupRows() checklist.PopupOutput {
	out := checklist.PopupOutput{Rows: make([]checklist.Row, 0, uc.popup.Len())}
	if uc.doc == nil {
		return out
	}
	for _, idx := range uc.popup.Indices() {
		line, err := uc.doc.Line(idx)
		if err != nil {
			continue
		}
		out.Rows = append(out.Rows, checklist.Row{
			Text:          line.Body(),
			Kind:          line.Kind(),
			Checked:       line.Checked(),
			DocumentIndex: idx,
		})
	}
	out.Stats = uc.doc.Stats()
	return out
}

// OpenPopup pulls before listing so the popup shows the freshest data available.
// A failed pull is not an error here: the popup shows what is already loaded.
func (uc *implUseCase) OpenPopup(ctx context.Context) checklist.PopupOutput {
	if _, err := uc.Pull(ctx); err != nil {
		uc.l.Warnf(ctx, "checklist.usecase.OpenPopup: showing previous data: %v", err)
	}
	return uc.PopupRows()
}
