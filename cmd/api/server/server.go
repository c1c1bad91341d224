package server

import (
	"fmt"

	"go.uber.org/zap"

	"tcp-user-service/internal/adapter/tcp/router"
	"tcp-user-service/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	TCP    *TCPServer
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, rt *router.Router) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		TCP:    SetupTCP(rt, ":"+cfg.App.Port, cfg.App.ReadBufferSize, l),
	}
}

// Start binds the listening port and runs the accept loop.
func (s *Server) Start() error {
	if err := s.TCP.Listen(); err != nil {
		return fmt.Errorf("failed to start TCP server: %w", err)
	}

	s.Logger.Info("TCP server running",
		zap.String("address", s.TCP.Addr()),
		zap.Int("read_buffer_size", s.Config.App.ReadBufferSize),
	)
	return s.TCP.Serve()
}

// Stop closes the listening socket, unblocking Start.
func (s *Server) Stop() error {
	return s.TCP.Close()
}
