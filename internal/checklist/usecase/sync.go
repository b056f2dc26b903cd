package usecase

import (
	"context"
	"errors"
	"fmt"

	"memos-widget/internal/checklist"
)

var errEmptyContent = errors.New("empty memo content")

// Pull fetches the remote blob. An empty or failed fetch keeps the current
// document. With no document yet, the cached blob seeds one.
func (uc *implUseCase) Pull(ctx context.Context) (checklist.PullOutput, error) {
	if uc.state == checklist.StateFetching {
		return checklist.PullOutput{Lines: uc.docLen()}, nil
	}
	uc.state = checklist.StateFetching
	defer func() { uc.state = checklist.StateIdle }()

	text, err := uc.store.FetchText(ctx)
	if err != nil || text == "" {
		if err == nil {
			err = errEmptyContent
		}
		uc.l.Warnf(ctx, "checklist.usecase.Pull: keeping previous document: %v", err)

		out := checklist.PullOutput{Lines: uc.docLen()}
		if uc.doc == nil {
			out = uc.seedFromCache(ctx)
		}
		return out, fmt.Errorf("%w: %v", checklist.ErrRemoteUnavailable, err)
	}

	changed := uc.doc == nil || uc.doc.Serialize() != text
	uc.replace(checklist.Parse(text))
	uc.saveCache(ctx, text)

	if changed {
		uc.l.Infof(ctx, "checklist.usecase.Pull: document replaced, %d lines", uc.doc.Len())
	}
	return checklist.PullOutput{Changed: changed, Lines: uc.doc.Len()}, nil
}

// Push sends the serialized document to the remote store.
func (uc *implUseCase) Push(ctx context.Context) error {
	if uc.doc == nil {
		return checklist.ErrNoDocument
	}
	blob := uc.doc.Serialize()
	if err := uc.store.ReplaceText(ctx, blob); err != nil {
		uc.l.Warnf(ctx, "checklist.usecase.Push: remote rejected update: %v", err)
		return fmt.Errorf("%w: %v", checklist.ErrRemoteUnavailable, err)
	}
	uc.saveCache(ctx, blob)
	return nil
}

// State reports whether a pull is in flight.
func (uc *implUseCase) State() checklist.SyncState {
	return uc.state
}

// pushBestEffort absorbs push failures; the next pull reconciles.
func (uc *implUseCase) pushBestEffort(ctx context.Context) bool {
	return uc.Push(ctx) == nil
}

func (uc *implUseCase) seedFromCache(ctx context.Context) checklist.PullOutput {
	if uc.cache == nil {
		return checklist.PullOutput{}
	}
	blob, err := uc.cache.Load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "checklist.usecase.Pull: cache load failed: %v", err)
		return checklist.PullOutput{}
	}
	if blob == "" {
		return checklist.PullOutput{}
	}
	uc.replace(checklist.Parse(blob))
	uc.l.Infof(ctx, "checklist.usecase.Pull: seeded %d lines from cache", uc.doc.Len())
	return checklist.PullOutput{Changed: true, Lines: uc.doc.Len(), FromCache: true}
}

func (uc *implUseCase) saveCache(ctx context.Context, blob string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Save(ctx, blob); err != nil {
		uc.l.Warnf(ctx, "checklist.usecase: cache save failed: %v", err)
	}
}

func (uc *implUseCase) docLen() int {
	if uc.doc == nil {
		return 0
	}
	return uc.doc.Len()
}
