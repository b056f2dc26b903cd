package usecase

import (
	"memos-widget/internal/checklist"
	"memos-widget/internal/checklist/repository"
	pkgLog "memos-widget/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    repository.RemoteStore
	cache    repository.BlobCache
	settings checklist.Settings

	state  checklist.SyncState
	doc    *checklist.Document
	panel  *checklist.Projection
	popup  *checklist.Projection
	cursor *checklist.RotationCursor
}

// New creates the checklist UseCase. cache may be nil.
func New(
	l pkgLog.Logger,
	store repository.RemoteStore,
	cache repository.BlobCache,
	settings checklist.Settings,
) *implUseCase {
	uc := &implUseCase{
		l:        l,
		store:    store,
		cache:    cache,
		settings: settings,
		state:    checklist.StateIdle,
		cursor:   checklist.NewRotationCursor(),
	}
	uc.rebuild()
	return uc
}
