package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server hosts the diagnosis endpoints over h2c so HTTP/2 clients work
// without TLS termination in front.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

func New(port string, handler http.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:    port,
			Handler: h2c.NewHandler(handler, &http2.Server{}),
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Printf("diagnosis service listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Printf("diagnosis service shutting down")
	return s.httpServer.Shutdown(ctx)
}
