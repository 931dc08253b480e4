package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrAlreadyStarted = errors.New("server already started")

type Server struct {
	port       int
	httpServer *http.Server
	listener   net.Listener
	serveErr   chan error

	mu      sync.Mutex
	started bool
}

func NewServer(port int, handler http.Handler) *Server {
	return &Server{
		port: port,
		httpServer: &http.Server{
			Addr:    ":" + strconv.Itoa(port),
			Handler: handler,
		},
		serveErr: make(chan error, 1),
	}
}

// Start binds the listening socket and serves in the background. The
// "running" log line is only written once the bind has succeeded.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return errors.Wrapf(err, "failed to bind port %d", s.port)
	}
	s.listener = listener
	s.started = true

	log.Info().Int("port", s.port).Msgf("App running on PORT: %d", s.port)

	go func() {
		// service connections
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("listen")
			s.serveErr <- err
		}
		close(s.serveErr)
	}()
	return nil
}

func (s *Server) Port() int {
	return s.port
}

// Addr is the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Errors yields an error if serving stops for any reason other than Shutdown.
// It is closed once the serve loop returns.
func (s *Server) Errors() <-chan error {
	return s.serveErr
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if !started {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server shutdown")
	}
	return nil
}
