package usecase_test

import (
	"context"
	"testing"
)

func TestRotate(t *testing.T) {
	ctx := context.Background()

	t.Run("Scenario Hide Completed", func(t *testing.T) {
		_, uc := newLoaded(t, scenarioBlob, &mockSettings{hidePanel: true})
		if got := uc.CurrentPanelLine(); got != "Buy milk" {
			t.Errorf("expected Buy milk after pull, got %q", got)
		}
		for i := 0; i < 4; i++ {
			if got := uc.Rotate(ctx); got != "Buy milk" {
				t.Errorf("tick %d: expected Buy milk, got %q", i, got)
			}
		}
	})

	t.Run("Shows Every Line", func(t *testing.T) {
		_, uc := newLoaded(t, scenarioBlob, &mockSettings{})
		want := []string{"Pay rent", "Walk dog", "Buy milk"}
		for i, w := range want {
			if got := uc.Rotate(ctx); got != w {
				t.Errorf("tick %d: expected %q, got %q", i, w, got)
			}
		}
	})

	t.Run("All Hidden", func(t *testing.T) {
		_, uc := newLoaded(t, "☑ a\n- [X] b", &mockSettings{hidePanel: true})
		if got := uc.CurrentPanelLine(); got != "All tasks completed!" {
			t.Errorf("unexpected panel text after pull %q", got)
		}
		if got := uc.Rotate(ctx); got != "All tasks completed!" {
			t.Errorf("unexpected panel text after tick %q", got)
		}
	})

	t.Run("Settings Change Applies On Tick", func(t *testing.T) {
		settings := &mockSettings{}
		_, uc := newLoaded(t, "☐ a\n☑ b\n☐ c", settings)
		settings.hidePanel = true
		if got := uc.Rotate(ctx); got != "c" {
			t.Errorf("expected hidden line skipped, got %q", got)
		}
	})
}

func TestPanelAndPopupDisagree(t *testing.T) {
	_, uc := newLoaded(t, scenarioBlob, &mockSettings{hidePanel: true, hidePopup: false})
	if rows := uc.PopupRows().Rows; len(rows) != 3 {
		t.Errorf("popup should show all rows, got %d", len(rows))
	}
	if got := uc.CurrentPanelLine(); got != "Buy milk" {
		t.Errorf("unexpected panel line %q", got)
	}
}
