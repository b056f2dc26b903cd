package scheduler_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"memos-widget/internal/checklist"
	"memos-widget/internal/scheduler"
	pkgLog "memos-widget/pkg/log"
)

// fakeUseCase counts calls; it is only touched from the loop goroutine except
// for the guarded counters read by the test.
type fakeUseCase struct {
	mu      sync.Mutex
	pulls   int
	rotates int
}

func (f *fakeUseCase) Pull(ctx context.Context) (checklist.PullOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls++
	return checklist.PullOutput{Lines: 1}, nil
}
func (f *fakeUseCase) Push(ctx context.Context) error { return nil }
func (f *fakeUseCase) Toggle(ctx context.Context, viewRow int) (checklist.EditOutput, error) {
	return checklist.EditOutput{Applied: true, DocumentIndex: viewRow, Pushed: true}, nil
}
func (f *fakeUseCase) Add(ctx context.Context, body string) (checklist.EditOutput, error) {
	return checklist.EditOutput{}, nil
}
func (f *fakeUseCase) Delete(ctx context.Context, viewRow int) (checklist.EditOutput, error) {
	return checklist.EditOutput{}, nil
}
func (f *fakeUseCase) Rotate(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rotates++
	return "line"
}
func (f *fakeUseCase) CurrentPanelLine() string         { return "line" }
func (f *fakeUseCase) PopupRows() checklist.PopupOutput { return checklist.PopupOutput{} }
func (f *fakeUseCase) OpenPopup(ctx context.Context) checklist.PopupOutput {
	return checklist.PopupOutput{}
}
func (f *fakeUseCase) State() checklist.SyncState { return checklist.StateIdle }

func (f *fakeUseCase) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pulls, f.rotates
}

type fastSettings struct{}

func (fastSettings) HideCompletedInPanel() bool      { return false }
func (fastSettings) HideCompletedInPopup() bool      { return false }
func (fastSettings) RotationInterval() time.Duration { return 5 * time.Millisecond }
func (fastSettings) FetchInterval() time.Duration    { return time.Hour }
func (fastSettings) AllHiddenText() string           { return "" }

func startLoop(t *testing.T, uc checklist.UseCase) (*scheduler.Loop, context.CancelFunc, chan struct{}) {
	t.Helper()
	lp := scheduler.New(pkgLog.NewNop(), uc, fastSettings{})
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	go func() {
		lp.Run(ctx)
		close(exited)
	}()
	return lp, cancel, exited
}

func TestLoop(t *testing.T) {
	t.Run("Startup Pull And Rotation", func(t *testing.T) {
		uc := &fakeUseCase{}
		_, cancel, exited := startLoop(t, uc)
		defer func() { cancel(); <-exited }()

		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			pulls, rotates := uc.counts()
			if pulls >= 1 && rotates >= 2 {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		pulls, rotates := uc.counts()
		t.Errorf("expected startup pull and rotation ticks, got pulls=%d rotates=%d", pulls, rotates)
	})

	t.Run("Do Runs On Loop", func(t *testing.T) {
		uc := &fakeUseCase{}
		lp, cancel, exited := startLoop(t, uc)
		defer func() { cancel(); <-exited }()

		var got checklist.EditOutput
		err := lp.Do(context.Background(), func(ctx context.Context, uc checklist.UseCase) error {
			var err error
			got, err = uc.Toggle(ctx, 4)
			return err
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DocumentIndex != 4 {
			t.Errorf("unexpected output %+v", got)
		}

		want := errors.New("boom")
		if err := lp.Do(context.Background(), func(context.Context, checklist.UseCase) error { return want }); !errors.Is(err, want) {
			t.Errorf("expected fn error to propagate, got %v", err)
		}
	})

	t.Run("RequestPull", func(t *testing.T) {
		uc := &fakeUseCase{}
		lp, cancel, exited := startLoop(t, uc)
		defer func() { cancel(); <-exited }()

		// Wait for the startup pull, then request another.
		lp.Do(context.Background(), func(context.Context, checklist.UseCase) error { return nil })
		lp.RequestPull()
		lp.RequestPull()

		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if pulls, _ := uc.counts(); pulls >= 2 {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		t.Errorf("requested pull never ran")
	})

	t.Run("Edit Refreshes After Push", func(t *testing.T) {
		uc := &fakeUseCase{}
		lp, cancel, exited := startLoop(t, uc)
		defer func() { cancel(); <-exited }()

		out, err := lp.Edit(context.Background(), func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error) {
			return uc.Toggle(ctx, 0)
		})
		if err != nil || !out.Pushed {
			t.Fatalf("unexpected result %+v, %v", out, err)
		}

		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if pulls, _ := uc.counts(); pulls >= 2 {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		t.Errorf("expected a refresh pull after a pushed edit")
	})

	t.Run("Do After Stop", func(t *testing.T) {
		lp, cancel, exited := startLoop(t, &fakeUseCase{})
		cancel()
		<-exited
		err := lp.Do(context.Background(), func(context.Context, checklist.UseCase) error { return nil })
		if !errors.Is(err, scheduler.ErrStopped) {
			t.Errorf("expected ErrStopped, got %v", err)
		}
	})
}
