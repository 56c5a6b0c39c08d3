package httphandler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const timeoutBody = `{"kind":"timeout","message":"request timed out"}`

// An HTTPServer serves the router until it is closed. Handlers that run
// longer than the request timeout answer 503 with timeoutBody.
type HTTPServer struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewHTTPServer binds addr right away, so a busy port fails at startup
// and ":0" gets a concrete port before Run.
func NewHTTPServer(
	addr string, handler http.Handler, requestTimeout time.Duration,
) (HTTPServer, error) {
	const op = "NewHTTPServer"

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return HTTPServer{}, fmt.Errorf("%s: %w", op, err)
	}

	if requestTimeout > 0 {
		handler = http.TimeoutHandler(handler, requestTimeout, timeoutBody)
	}
	s := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return HTTPServer{httpServer: s, listener: ln}, nil
}

// Addr is the bound address.
func (s HTTPServer) Addr() string {
	return s.listener.Addr().String()
}

// Run blocks while serving. stopFn is called when serving ends, including
// after Close.
func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()

	log.Info("listening", "addr", s.Addr())
	err := s.httpServer.Serve(s.listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("unexpected servers shutdown", "err", err)
	}
}

// Close waits for in-flight requests until ctx is done.
func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	// Shutdown skips a listener that Serve never took over.
	_ = s.listener.Close()
	log.Info("http server is closed")
}
