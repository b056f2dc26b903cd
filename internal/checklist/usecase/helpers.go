package usecase

import (
	"memos-widget/internal/checklist"
)

// rebuild recomputes both projections from the current document and policies.
func (uc *implUseCase) rebuild() {
	uc.panel = checklist.Rebuild(uc.doc, uc.panelPolicy())
	uc.popup = checklist.Rebuild(uc.doc, uc.popupPolicy())
}

// replace installs a freshly pulled document and rebinds the cursor.
func (uc *implUseCase) replace(doc *checklist.Document) {
	uc.doc = doc
	uc.afterMutation()
}

// afterMutation keeps projections and cursor in step with the document.
func (uc *implUseCase) afterMutation() {
	uc.rebuild()
	uc.cursor.Reset(uc.panel)
}

func (uc *implUseCase) panelPolicy() checklist.ViewPolicy {
	return checklist.ViewPolicy{HideCompleted: uc.settings.HideCompletedInPanel()}
}

func (uc *implUseCase) popupPolicy() checklist.ViewPolicy {
	return checklist.ViewPolicy{HideCompleted: uc.settings.HideCompletedInPopup()}
}
