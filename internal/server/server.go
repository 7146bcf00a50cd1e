// Package server exposes a window over a unix-socket control protocol.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/models"
)

// Server answers newline-delimited JSON requests. Every request runs on
// the event loop that owns the window.
type Server struct {
	socketPath string
	listener   net.Listener
	loop       *eventloop.Loop
	startTime  time.Time

	mu           sync.Mutex
	conns        map[net.Conn]struct{}
	shuttingDown bool
	wg           sync.WaitGroup
}

// New creates a server for the window owned by loop
func New(socketPath string, loop *eventloop.Loop) *Server {
	return &Server{
		socketPath: socketPath,
		loop:       loop,
		conns:      make(map[net.Conn]struct{}),
	}
}

// SocketPath returns the path the server listens on
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start begins listening for connections
func (s *Server) Start() error {
	// Remove a stale socket left by a previous run
	if err := os.Remove(s.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove stale socket: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket: %w", err)
	}
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.listener = listener
	s.startTime = time.Now()

	logging.Info().Str("socket", s.socketPath).Msg("control server listening")

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Serve starts the server and blocks until ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Close()
}

// Close stops accepting, closes open connections and removes the socket
func (s *Server) Close() error {
	s.mu.Lock()
	if s.shuttingDown {
		s.mu.Unlock()
		return nil
	}
	s.shuttingDown = true
	for c := range s.conns {
		c.Close()
	}
	s.mu.Unlock()

	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	s.wg.Wait()
	os.Remove(s.socketPath)

	logging.Info().Str("socket", s.socketPath).Msg("control server stopped")
	return err
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			done := s.shuttingDown
			s.mu.Unlock()
			if done {
				return
			}
			logging.Error().Err(err).Msg("accept failed")
			continue
		}

		s.mu.Lock()
		if s.shuttingDown {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection serves requests until the client disconnects
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			resp := s.handleLine(line)
			data, merr := json.Marshal(resp)
			if merr != nil {
				logging.Error().Err(merr).Msg("failed to marshal response")
				return
			}
			if _, werr := conn.Write(append(data, '\n')); werr != nil {
				logging.Debug().Err(werr).Msg("failed to send response")
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				logging.Debug().Err(err).Msg("connection read failed")
			}
			return
		}
	}
}

func (s *Server) handleLine(line []byte) *models.MessageEnvelope {
	var env models.MessageEnvelope
	if err := json.Unmarshal(line, &env); err != nil {
		return models.NewErrorResponse("", models.CodeParseError, fmt.Sprintf("invalid request: %v", err))
	}
	if env.Type != "request" || env.Request == nil {
		return models.NewErrorResponse("", models.CodeParseError, "expected request envelope")
	}

	req := env.Request
	start := time.Now()
	resp := s.handleRequest(context.Background(), req)

	ev := logging.Debug().
		Str("id", req.ID).
		Str("method", req.Method).
		Dur("took", time.Since(start))
	if resp.Response.IsError() {
		ev = ev.Str("error", resp.Response.GetError())
	}
	ev.Msg("request handled")

	return resp
}
