package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"memos-widget/pkg/log"
)

// RequestIDHeader echoes the per-request trace id back to the client.
const RequestIDHeader = "X-Request-ID"

// requestLogger tags every request context with a trace id and logs the
// outcome once the handler returns.
func (srv HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx := log.WithTraceID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()

		srv.l.Debugf(ctx, "%s %s -> %d in %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
