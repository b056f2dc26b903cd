package repository

import "context"

// RemoteStore is the remote note holding the checklist. Every write replaces the
// whole note body.
type RemoteStore interface {
	// FetchText returns the note body. An empty body is treated as a failure by callers.
	FetchText(ctx context.Context) (string, error)
	// ReplaceText overwrites the note body.
	ReplaceText(ctx context.Context, blob string) error
}

// BlobCache keeps the last blob known to be stored remotely.
type BlobCache interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, blob string) error
}
