package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"memos-widget/internal/checklist"
	checklistHTTP "memos-widget/internal/checklist/delivery/http"
	"memos-widget/internal/checklist/usecase"
	"memos-widget/internal/scheduler"
	pkgLog "memos-widget/pkg/log"
	"memos-widget/pkg/response"
)

type memStore struct {
	text     string
	fetchErr error
	pushes   []string
}

func (m *memStore) FetchText(ctx context.Context) (string, error) {
	if m.fetchErr != nil {
		return "", m.fetchErr
	}
	return m.text, nil
}

func (m *memStore) ReplaceText(ctx context.Context, blob string) error {
	m.pushes = append(m.pushes, blob)
	m.text = blob
	return nil
}

type staticSettings struct{}

func (staticSettings) HideCompletedInPanel() bool      { return true }
func (staticSettings) HideCompletedInPopup() bool      { return false }
func (staticSettings) RotationInterval() time.Duration { return time.Second }
func (staticSettings) FetchInterval() time.Duration    { return time.Minute }
func (staticSettings) AllHiddenText() string           { return "All tasks completed!" }

// inlineExecutor runs work on the calling goroutine; tests issue one request
// at a time so ownership still holds.
type inlineExecutor struct {
	uc      checklist.UseCase
	stopped bool
	pulls   int
}

func (e *inlineExecutor) Do(ctx context.Context, fn scheduler.Func) error {
	if e.stopped {
		return scheduler.ErrStopped
	}
	return fn(ctx, e.uc)
}

func (e *inlineExecutor) Edit(ctx context.Context, fn func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)) (checklist.EditOutput, error) {
	out, err := fn(ctx, e.uc)
	if err == nil && out.Pushed {
		e.pulls++
	}
	return out, err
}

func setup(t *testing.T, text string, pull bool) (*gin.Engine, *memStore, *inlineExecutor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memStore{text: text}
	uc := usecase.New(pkgLog.NewNop(), store, nil, staticSettings{})
	if pull {
		if _, err := uc.Pull(context.Background()); err != nil {
			t.Fatalf("initial pull: %v", err)
		}
	}
	exec := &inlineExecutor{uc: uc}

	r := gin.New()
	checklistHTTP.RegisterRoutes(r.Group("/api/v1/checklist"), checklistHTTP.New(pkgLog.NewNop(), exec))
	return r, store, exec
}

func do(r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]any)
	return w, data
}

const blob = "- [ ] Buy milk\n☑ Pay rent\n- [x] Walk dog"

func TestPanel(t *testing.T) {
	t.Run("Shows First Visible Body", func(t *testing.T) {
		r, _, _ := setup(t, blob, true)
		w, data := do(r, http.MethodGet, "/api/v1/checklist/panel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if data["text"] != "Buy milk" || data["state"] != "idle" {
			t.Errorf("unexpected panel %v", data)
		}
	})

	t.Run("All Hidden", func(t *testing.T) {
		r, _, _ := setup(t, "☑ done", true)
		_, data := do(r, http.MethodGet, "/api/v1/checklist/panel", "")
		if data["text"] != "All tasks completed!" {
			t.Errorf("unexpected panel %v", data)
		}
	})

	t.Run("Scheduler Stopped", func(t *testing.T) {
		r, _, exec := setup(t, blob, true)
		exec.stopped = true
		w, _ := do(r, http.MethodGet, "/api/v1/checklist/panel", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestPopup(t *testing.T) {
	r, store, _ := setup(t, blob, true)

	_, data := do(r, http.MethodGet, "/api/v1/checklist/popup", "")
	rows, _ := data["rows"].([]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %v", data)
	}
	stats, _ := data["stats"].(map[string]any)
	if stats["completed"] != float64(2) || stats["pending"] != float64(1) {
		t.Errorf("unexpected stats %v", stats)
	}

	store.text = "☐ fresh"
	_, data = do(r, http.MethodGet, "/api/v1/checklist/popup?refresh=true", "")
	rows, _ = data["rows"].([]any)
	if len(rows) != 1 {
		t.Fatalf("refresh should pull first, got %v", data)
	}
	first, _ := rows[0].(map[string]any)
	if first["text"] != "fresh" || first["kind"] != "task" {
		t.Errorf("unexpected row %v", first)
	}
}

func TestEdits(t *testing.T) {
	t.Run("Toggle", func(t *testing.T) {
		r, store, exec := setup(t, blob, true)
		w, data := do(r, http.MethodPost, "/api/v1/checklist/items/0/toggle", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if data["applied"] != true || data["pushed"] != true {
			t.Errorf("unexpected edit %v", data)
		}
		if got := store.pushes[0]; got != "☑ Buy milk\n☑ Pay rent\n- [x] Walk dog" {
			t.Errorf("unexpected pushed blob %q", got)
		}
		if data["panel"] != "All tasks completed!" {
			t.Errorf("panel should reflect the edit, got %v", data["panel"])
		}
		if exec.pulls != 1 {
			t.Errorf("expected a refresh after push")
		}
	})

	t.Run("Toggle Out Of Range", func(t *testing.T) {
		r, store, _ := setup(t, blob, true)
		w, _ := do(r, http.MethodPost, "/api/v1/checklist/items/9/toggle", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if len(store.pushes) != 0 {
			t.Errorf("nothing should be pushed")
		}
	})

	t.Run("Bad Row", func(t *testing.T) {
		r, _, _ := setup(t, blob, true)
		w, _ := do(r, http.MethodDelete, "/api/v1/checklist/items/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Add", func(t *testing.T) {
		r, store, _ := setup(t, blob, true)
		_, data := do(r, http.MethodPost, "/api/v1/checklist/items", `{"body":"Call mom"}`)
		if data["document_index"] != float64(3) {
			t.Errorf("unexpected edit %v", data)
		}
		if !strings.HasSuffix(store.text, "\n☐ Call mom") {
			t.Errorf("unexpected remote text %q", store.text)
		}
	})

	t.Run("Add Blank", func(t *testing.T) {
		r, store, _ := setup(t, blob, true)
		w, data := do(r, http.MethodPost, "/api/v1/checklist/items", `{"body":"   "}`)
		if w.Code != http.StatusOK || data["applied"] != false {
			t.Errorf("blank add should be a no-op, got %d %v", w.Code, data)
		}
		if len(store.pushes) != 0 {
			t.Errorf("nothing should be pushed")
		}
	})

	t.Run("Add Before First Pull", func(t *testing.T) {
		r, _, _ := setup(t, blob, false)
		w, _ := do(r, http.MethodPost, "/api/v1/checklist/items", `{"body":"x"}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		r, store, _ := setup(t, blob, true)
		do(r, http.MethodDelete, "/api/v1/checklist/items/1", "")
		if store.text != "- [ ] Buy milk\n- [x] Walk dog" {
			t.Errorf("unexpected remote text %q", store.text)
		}
	})
}

func TestSync(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, _, _ := setup(t, blob, false)
		w, data := do(r, http.MethodPost, "/api/v1/checklist/sync", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if data["lines"] != float64(3) || data["changed"] != true {
			t.Errorf("unexpected sync %v", data)
		}
	})

	t.Run("Remote Down", func(t *testing.T) {
		r, store, _ := setup(t, blob, true)
		store.fetchErr = errors.New("dial tcp: refused")
		w, _ := do(r, http.MethodPost, "/api/v1/checklist/sync", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
		_, data := do(r, http.MethodGet, "/api/v1/checklist/panel", "")
		if data["text"] != "Buy milk" {
			t.Errorf("failed pull must keep the document, got %v", data)
		}
	})

	t.Run("Push Without Document", func(t *testing.T) {
		r, _, _ := setup(t, blob, false)
		w, _ := do(r, http.MethodPost, "/api/v1/checklist/push", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}
