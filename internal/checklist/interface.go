package checklist

import (
	"context"
	"time"
)

// UseCase is the checklist synchronization core. It is not safe for concurrent
// use: every call must come from the one goroutine that owns it.
type UseCase interface {
	// Pull fetches the memo and replaces the document on success. On failure the
	// previous document is kept and ErrRemoteUnavailable is returned.
	Pull(ctx context.Context) (PullOutput, error)

	// Push sends the serialized document to the remote store.
	Push(ctx context.Context) error

	// Toggle flips the checked state of the popup row and pushes.
	Toggle(ctx context.Context, viewRow int) (EditOutput, error)

	// Add appends an unchecked task and pushes. Blank bodies are ignored.
	Add(ctx context.Context, body string) (EditOutput, error)

	// Delete removes the line behind the popup row and pushes.
	Delete(ctx context.Context, viewRow int) (EditOutput, error)

	// Rotate advances the panel cursor and returns the new panel text.
	Rotate(ctx context.Context) string

	// CurrentPanelLine returns the text the panel should show.
	CurrentPanelLine() string

	// PopupRows returns the rows of the popup view.
	PopupRows() PopupOutput

	// OpenPopup pulls first, then returns the popup rows.
	OpenPopup(ctx context.Context) PopupOutput

	// State reports whether a pull is in flight.
	State() SyncState
}

// Settings is the read-only configuration the core consumes.
type Settings interface {
	HideCompletedInPanel() bool
	HideCompletedInPopup() bool
	RotationInterval() time.Duration
	FetchInterval() time.Duration
	AllHiddenText() string
}

// SyncState is the RemoteSync state.
type SyncState int

const (
	StateIdle SyncState = iota
	StateFetching
)

func (s SyncState) String() string {
	if s == StateFetching {
		return "fetching"
	}
	return "idle"
}

// PullOutput describes the result of a pull.
type PullOutput struct {
	Changed   bool // document content differs from the previous one
	Lines     int  // document length after the pull
	FromCache bool // document was seeded from the local cache
}

// EditOutput describes the result of an edit.
type EditOutput struct {
	Applied       bool // document was mutated
	DocumentIndex int  // index the edit touched
	Pushed        bool // remote store accepted the new blob
}

// PopupOutput is what a popup renderer needs.
type PopupOutput struct {
	Rows  []Row
	Stats ChecklistStats
}
