package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	address string
	server  *http.Server

	logger *logger.Logger
}

func NewServer(handler http.Handler, address string, log *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, ErrNoHandler
	}
	if address == "" {
		return nil, ErrNoAddress
	}
	if log == nil {
		log = logger.Nop()
	}

	log.Info().Str("address", address).Msg("creating new server...")

	return &httpServer{
		address: address,
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: log,
	}, nil
}

func (s *httpServer) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *httpServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListen, s.address, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
		serveErr <- s.server.Serve(listener)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrServe, err)
	case <-ctx.Done():
	}

	if err = s.shutdown(); err != nil {
		return err
	}
	<-serveErr

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *httpServer) Shutdown() {
	if err := s.shutdown(); err != nil {
		s.logger.Err(err).Msg("HTTP server Shutdown")
	}
}

func (s *httpServer) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrShutdownHTTP, err)
	}
	return nil
}
