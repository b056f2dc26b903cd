package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// Handler returns the fully routed engine.
func (srv *HTTPServer) Handler() http.Handler {
	srv.mapHandlers()
	return srv.gin
}

// Run serves until ctx is done, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", srv.host, srv.port)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.l.Info(shutdownCtx, "HTTP server shutting down")
	return server.Shutdown(shutdownCtx)
}
