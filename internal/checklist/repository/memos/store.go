package memos

import (
	"context"
	"fmt"

	"memos-widget/internal/checklist/repository"
	pkgLog "memos-widget/pkg/log"
)

type implRepository struct {
	client *Client
	memoID string
	l      pkgLog.Logger
}

// New creates a RemoteStore bound to one memo.
func New(client *Client, memoID string, l pkgLog.Logger) repository.RemoteStore {
	return &implRepository{
		client: client,
		memoID: memoID,
		l:      l,
	}
}

func (r *implRepository) FetchText(ctx context.Context) (string, error) {
	memo, err := r.client.GetMemo(ctx, r.memoID)
	if err != nil {
		r.l.Warnf(ctx, "memos repository: failed to get memo %s: %v", r.memoID, err)
		return "", err
	}
	return memo.Content, nil
}

func (r *implRepository) ReplaceText(ctx context.Context, blob string) error {
	_, err := r.client.UpdateMemo(ctx, r.memoID, UpdateMemoRequest{
		Content:    blob,
		UpdateMask: "content",
	})
	if err != nil {
		r.l.Warnf(ctx, "memos repository: failed to update memo %s: %v", r.memoID, err)
		return fmt.Errorf("replace memo %s: %w", r.memoID, err)
	}
	return nil
}
