package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// memosServer fakes the single-memo slice of the Memos API.
type memosServer struct {
	mu      sync.Mutex
	content string
	patches int
}

func (s *memosServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.URL.Path != "/api/v1/memos/1" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
	case http.MethodPatch:
		var body struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.content = body.Content
		s.patches++
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"name": "memos/1", "content": s.content})
}

func (s *memosServer) text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

func setup(t *testing.T) (*memosServer, *httptest.Server, string) {
	t.Helper()
	ms := &memosServer{content: "- [ ] Buy milk\n☑ Pay rent\n- [x] Walk dog"}
	srv := httptest.NewServer(ms)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := strings.Join([]string{
		"memos:",
		"  url: " + srv.URL + "/",
		"  memo_id: \"1\"",
		"  timeout: 2s",
		"widget:",
		"  hide_completed_in_panel: true",
		"  hide_completed_in_popup: false",
		"logger:",
		"  file: " + filepath.Join(dir, "widget.log"),
		"cache:",
		"  enabled: true",
		"  dir: " + filepath.Join(dir, "cache"),
	}, "\n")
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return ms, srv, path
}

func execute(args ...string) (string, error) {
	cmd := New()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestShow(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		_, _, cfg := setup(t)
		out, err := execute("--config", cfg, "show", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var res showResult
		if err := json.Unmarshal([]byte(out), &res); err != nil {
			t.Fatalf("bad json %q: %v", out, err)
		}
		if res.Panel != "Buy milk" || len(res.Rows) != 3 || res.Stats.Pending != 1 {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("Table", func(t *testing.T) {
		_, _, cfg := setup(t)
		out, err := execute("--config", cfg, "show")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Buy milk", "Pay rent", "Walk dog", "3 tasks, 1 pending, 2 done"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("Offline Uses Cache", func(t *testing.T) {
		_, srv, cfg := setup(t)
		if _, err := execute("--config", cfg, "show"); err != nil {
			t.Fatalf("warm up: %v", err)
		}
		srv.Close()

		out, err := execute("--config", cfg, "show", "--json")
		if err != nil {
			t.Fatalf("cached show should succeed: %v", err)
		}
		if !strings.Contains(out, `"panel":"Buy milk"`) {
			t.Errorf("unexpected output %s", out)
		}
	})
}

func TestEdits(t *testing.T) {
	t.Run("Toggle", func(t *testing.T) {
		ms, _, cfg := setup(t)
		out, err := execute("--config", cfg, "toggle", "0", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ms.text() != "☑ Buy milk\n☑ Pay rent\n- [x] Walk dog" {
			t.Errorf("unexpected memo %q", ms.text())
		}
		var res editResult
		json.Unmarshal([]byte(out), &res)
		if !res.Applied || !res.Pushed || res.Panel != "All tasks completed!" {
			t.Errorf("unexpected result %+v", res)
		}
	})

	t.Run("Add", func(t *testing.T) {
		ms, _, cfg := setup(t)
		if _, err := execute("--config", cfg, "add", "Call", "mom"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(ms.text(), "\n☐ Call mom") {
			t.Errorf("unexpected memo %q", ms.text())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		ms, _, cfg := setup(t)
		if _, err := execute("--config", cfg, "delete", "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ms.text() != "- [ ] Buy milk\n- [x] Walk dog" {
			t.Errorf("unexpected memo %q", ms.text())
		}
	})

	t.Run("Row Out Of Range", func(t *testing.T) {
		ms, _, cfg := setup(t)
		if _, err := execute("--config", cfg, "toggle", "9"); err == nil {
			t.Errorf("expected an error")
		}
		if ms.patches != 0 {
			t.Errorf("nothing should be written")
		}
	})

	t.Run("Row Out Of Range JSON", func(t *testing.T) {
		_, _, cfg := setup(t)
		out, err := execute("--config", cfg, "toggle", "9", "--json")
		if err != nil {
			t.Fatalf("--json reports errors on stdout, got %v", err)
		}
		if !strings.Contains(out, `"error"`) {
			t.Errorf("expected an error object, got %s", out)
		}
	})

	t.Run("Bad Row", func(t *testing.T) {
		_, _, cfg := setup(t)
		if _, err := execute("--config", cfg, "delete", "first"); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestOpenPrint(t *testing.T) {
	_, srv, cfg := setup(t)
	out, err := execute("--config", cfg, "open", "--print")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != srv.URL+"/m/1" {
		t.Errorf("unexpected url %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := execute("config", "init", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := execute("config", "init", path); err == nil {
		t.Errorf("second init must refuse to overwrite")
	}
}
