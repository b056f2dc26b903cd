package checklist

import "errors"

// Domain-specific errors for the checklist package.
var (
	// ErrIndexOutOfRange is returned when a document index or view row does not
	// address an existing entry. It signals a stale projection.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrRemoteUnavailable is returned when the remote store gave an empty or failed answer.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	// ErrNoDocument is returned by edits issued before any successful pull.
	ErrNoDocument = errors.New("no document loaded")
)
