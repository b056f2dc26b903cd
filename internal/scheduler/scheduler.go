package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"memos-widget/internal/checklist"
	pkgLog "memos-widget/pkg/log"
)

// ErrStopped is returned by Do once Run has exited.
var ErrStopped = errors.New("scheduler stopped")

// Func is a unit of work executed on the loop goroutine with exclusive access
// to the use case.
type Func func(ctx context.Context, uc checklist.UseCase) error

type command struct {
	ctx  context.Context
	fn   Func
	done chan error
}

// Loop owns the checklist use case. Every timer tick and every submitted
// command runs on the single goroutine inside Run, one at a time. A slow
// network call therefore delays everything queued behind it.
type Loop struct {
	l        pkgLog.Logger
	uc       checklist.UseCase
	settings checklist.Settings

	cmds    chan command
	pullReq chan struct{}
	stopped chan struct{}
}

// New creates a Loop. Call Run to start it.
func New(l pkgLog.Logger, uc checklist.UseCase, settings checklist.Settings) *Loop {
	return &Loop{
		l:        l,
		uc:       uc,
		settings: settings,
		cmds:     make(chan command),
		pullReq:  make(chan struct{}, 1),
		stopped:  make(chan struct{}),
	}
}

// Run pulls once, then serves the rotation tick, the fetch tick, pull requests
// and submitted commands until ctx is done. Both timers are re-armed after
// each fire with the interval configured at that moment.
func (lp *Loop) Run(ctx context.Context) error {
	defer close(lp.stopped)

	lp.pull(ctx, "startup")

	rotate := time.NewTimer(lp.settings.RotationInterval())
	defer rotate.Stop()
	fetch := time.NewTimer(lp.settings.FetchInterval())
	defer fetch.Stop()

	for {
		select {
		case <-ctx.Done():
			lp.l.Info(ctx, "scheduler: stopping")
			return nil

		case <-rotate.C:
			text := lp.uc.Rotate(ctx)
			lp.l.Debugf(ctx, "scheduler: panel shows %q", text)
			rotate.Reset(lp.settings.RotationInterval())

		case <-fetch.C:
			lp.pull(ctx, "timer")
			fetch.Reset(lp.settings.FetchInterval())

		case <-lp.pullReq:
			lp.pull(ctx, "request")

		case cmd := <-lp.cmds:
			cmd.done <- cmd.fn(cmd.ctx, lp.uc)
		}
	}
}

// Do runs fn on the loop goroutine and waits for its result.
func (lp *Loop) Do(ctx context.Context, fn Func) error {
	cmd := command{
		ctx:  pkgLog.WithTraceID(ctx, uuid.NewString()),
		fn:   fn,
		done: make(chan error, 1),
	}

	select {
	case lp.cmds <- cmd:
	case <-lp.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Edit runs an editing operation like Do and, once its push went through,
// queues a pull so the view reflects what the server stored.
func (lp *Loop) Edit(ctx context.Context, fn func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)) (checklist.EditOutput, error) {
	var out checklist.EditOutput
	err := lp.Do(ctx, func(ctx context.Context, uc checklist.UseCase) error {
		var err error
		out, err = fn(ctx, uc)
		return err
	})
	if err == nil && out.Pushed {
		lp.RequestPull()
	}
	return out, err
}

// RequestPull asks for a pull at the next opportunity. Requests made while one
// is already pending are coalesced.
func (lp *Loop) RequestPull() {
	select {
	case lp.pullReq <- struct{}{}:
	default:
	}
}

func (lp *Loop) pull(ctx context.Context, reason string) {
	ctx = pkgLog.WithTraceID(ctx, uuid.NewString())
	out, err := lp.uc.Pull(ctx)
	if err != nil {
		lp.l.Warnf(ctx, "scheduler: %s pull failed, keeping current document: %v", reason, err)
		return
	}
	lp.l.Debugf(ctx, "scheduler: %s pull ok, %d lines, changed=%v", reason, out.Lines, out.Changed)
}
