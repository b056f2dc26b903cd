package usecase

import (
	"context"
	"strings"

	"memos-widget/internal/checklist"
)

// Toggle flips the checked state of the line behind a popup row.
func (uc *implUseCase) Toggle(ctx context.Context, viewRow int) (checklist.EditOutput, error) {
	idx, err := uc.resolvePopupRow(ctx, viewRow)
	if err != nil {
		return checklist.EditOutput{}, err
	}

	line, err := uc.doc.Line(idx)
	if err != nil {
		return checklist.EditOutput{}, err
	}
	if err := uc.doc.SetChecked(idx, !line.Checked()); err != nil {
		return checklist.EditOutput{}, err
	}
	uc.afterMutation()

	return checklist.EditOutput{
		Applied:       true,
		DocumentIndex: idx,
		Pushed:        uc.pushBestEffort(ctx),
	}, nil
}

// Add appends an unchecked task. Blank input is a no-op. Line breaks inside
// body are folded to spaces so one add produces exactly one line.
func (uc *implUseCase) Add(ctx context.Context, body string) (checklist.EditOutput, error) {
	if strings.TrimSpace(body) == "" {
		return checklist.EditOutput{DocumentIndex: checklist.NoIndex}, nil
	}
	if uc.doc == nil {
		return checklist.EditOutput{}, checklist.ErrNoDocument
	}

	uc.doc.InsertAtEnd(singleLine(body))
	uc.afterMutation()

	return checklist.EditOutput{
		Applied:       true,
		DocumentIndex: uc.doc.Len() - 1,
		Pushed:        uc.pushBestEffort(ctx),
	}, nil
}

// Delete removes the line behind a popup row.
func (uc *implUseCase) Delete(ctx context.Context, viewRow int) (checklist.EditOutput, error) {
	idx, err := uc.resolvePopupRow(ctx, viewRow)
	if err != nil {
		return checklist.EditOutput{}, err
	}
	if err := uc.doc.RemoveAt(idx); err != nil {
		return checklist.EditOutput{}, err
	}
	uc.afterMutation()

	return checklist.EditOutput{
		Applied:       true,
		DocumentIndex: idx,
		Pushed:        uc.pushBestEffort(ctx),
	}, nil
}

func (uc *implUseCase) resolvePopupRow(ctx context.Context, viewRow int) (int, error) {
	if uc.doc == nil {
		return 0, checklist.ErrNoDocument
	}
	idx, err := uc.popup.Resolve(viewRow)
	if err != nil {
		uc.l.Errorf(ctx, "checklist.usecase: stale popup row: %v", err)
		return 0, err
	}
	return idx, nil
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
