package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tcp-user-service/internal/adapter/tcp/protocol"
	"tcp-user-service/internal/adapter/tcp/router"
	apperrors "tcp-user-service/pkg/errors"
	"tcp-user-service/pkg/logger"
)

// TCPServer accepts raw TCP connections and services each one with a
// single read, a dispatch, and a single write. Connections are serviced
// on their own goroutine; handlers share no in-process mutable state, so
// no locking is needed.
type TCPServer struct {
	addr    string
	bufSize int
	router  *router.Router
	log     *zap.Logger
	lis     net.Listener
}

// SetupTCP creates the TCP server for the given address and read buffer size.
func SetupTCP(rt *router.Router, addr string, bufSize int, l *zap.Logger) *TCPServer {
	return &TCPServer{
		addr:    addr,
		bufSize: bufSize,
		router:  rt,
		log:     l,
	}
}

// Listen binds the listening socket. Bind failure is fatal to startup.
func (s *TCPServer) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.lis = lis
	return nil
}

// Addr returns the bound address. Only valid after Listen.
func (s *TCPServer) Addr() string {
	if s.lis == nil {
		return s.addr
	}
	return s.lis.Addr().String()
}

// Serve runs the accept loop until the listener is closed. An accept
// failure on a single connection is logged and never stops the loop.
func (s *TCPServer) Serve() error {
	for {
		conn, err := s.lis.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Error("accept failed", zap.Error(apperrors.NewTransportError("accept", err)))
			continue
		}
		go s.handleConn(conn)
	}
}

// Close shuts the listener down, unblocking Serve.
func (s *TCPServer) Close() error {
	if s.lis == nil {
		return nil
	}
	return s.lis.Close()
}

// handleConn services one connection: one fixed-size read, one dispatch,
// one write, then close. A read failure abandons the connection with
// nothing written. Requests larger than the read buffer are truncated
// and fail downstream parsing; that is an accepted limitation.
func (s *TCPServer) handleConn(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			s.log.Warn("failed to close connection", zap.Error(err))
		}
	}()

	requestID := uuid.NewString()
	log := s.log.With(
		zap.String("request_id", requestID),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)

	buf := make([]byte, s.bufSize)
	n, err := conn.Read(buf)
	if err != nil {
		log.Error("failed to read request", zap.Error(apperrors.NewTransportError("read", err)))
		return
	}

	raw := protocol.DecodeLossy(buf[:n])
	ctx := context.WithValue(context.Background(), logger.RequestIDKey, requestID)

	statusLine, body := s.router.Dispatch(ctx, raw)

	if err := protocol.WriteResponse(conn, statusLine, body); err != nil {
		log.Error("failed to write response", zap.Error(err))
		return
	}

	log.Debug("request served", zap.String("request_line", raw[:min(len(raw), 64)]))
}
