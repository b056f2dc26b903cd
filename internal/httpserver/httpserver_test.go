package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"memos-widget/pkg/log"
)

type stubChecklist struct{}

func (stubChecklist) Panel(c *gin.Context)  { c.String(http.StatusOK, "panel") }
func (stubChecklist) Popup(c *gin.Context)  {}
func (stubChecklist) Add(c *gin.Context)    {}
func (stubChecklist) Toggle(c *gin.Context) {}
func (stubChecklist) Delete(c *gin.Context) {}
func (stubChecklist) Sync(c *gin.Context)   {}
func (stubChecklist) Push(c *gin.Context)   {}

type stubWebhook struct{ hits int }

func (s *stubWebhook) HandleMemosWebhook(c *gin.Context) {
	s.hits++
	c.Status(http.StatusOK)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"Valid", Config{Port: 8765, Mode: gin.TestMode, ChecklistHandler: stubChecklist{}}, false},
		{"Missing Port", Config{Mode: gin.TestMode, ChecklistHandler: stubChecklist{}}, true},
		{"Missing Mode", Config{Port: 8765, ChecklistHandler: stubChecklist{}}, true},
		{"Missing Handler", Config{Port: 8765, Mode: gin.TestMode}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	wh := &stubWebhook{}
	srv, err := New(log.NewNop(), Config{
		Port:             8765,
		Mode:             gin.TestMode,
		ChecklistHandler: stubChecklist{},
		WebhookHandler:   wh,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := srv.Handler()

	cases := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/v1/checklist/panel", http.StatusOK},
		{http.MethodPost, "/webhook/memos", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.code {
				t.Errorf("expected %d, got %d", tc.code, w.Code)
			}
			if w.Header().Get(RequestIDHeader) == "" {
				t.Errorf("missing %s header", RequestIDHeader)
			}
		})
	}

	if wh.hits != 1 {
		t.Errorf("expected webhook handler to be hit once, got %d", wh.hits)
	}
}
