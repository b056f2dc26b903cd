package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	checklistHTTP "memos-widget/internal/checklist/delivery/http"
	"memos-widget/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Checklist domain
	checklistHandler checklistHTTP.Handler

	// Memos webhook sync
	webhookHandler interface {
		HandleMemosWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Checklist domain
	ChecklistHandler checklistHTTP.Handler

	// Memos webhook sync, optional
	WebhookHandler interface {
		HandleMemosWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		host:             cfg.Host,
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		checklistHandler: cfg.ChecklistHandler,
		webhookHandler:   cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.checklistHandler == nil {
		return errors.New("checklist handler is required")
	}
	return nil
}
