package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"memos-widget/internal/checklist"
	"memos-widget/internal/scheduler"
	"memos-widget/pkg/log"
)

// Handler is the public interface for the checklist HTTP delivery layer.
type Handler interface {
	Panel(c *gin.Context)
	Popup(c *gin.Context)
	Add(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
	Sync(c *gin.Context)
	Push(c *gin.Context)
}

// Executor runs work against the use case on its owning goroutine.
type Executor interface {
	Do(ctx context.Context, fn scheduler.Func) error
	Edit(ctx context.Context, fn func(ctx context.Context, uc checklist.UseCase) (checklist.EditOutput, error)) (checklist.EditOutput, error)
}

type handler struct {
	l    log.Logger
	exec Executor
}

// New creates a new HTTP handler for the checklist domain.
func New(l log.Logger, exec Executor) Handler {
	return &handler{
		l:    l,
		exec: exec,
	}
}
