package tcp

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/inflow-http/inflow/http/status"
)

type onConnection func(net.Conn)

// Server owns the accept loop: one goroutine per connection, all of them
// tracked so that Stop can tear the whole thing down.
type Server struct {
	sock    net.Listener
	onConn  onConnection
	mu      sync.Mutex
	conns   map[net.Conn]struct{}
	closing atomic.Bool
}

func NewServer(sock net.Listener, onConn onConnection) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		conns:  map[net.Conn]struct{}{},
	}
}

func (s *Server) Start() error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			if s.closing.Load() {
				return status.ErrShutdown
			}

			return err
		}

		s.track(conn)
		wg.Add(1)
		go s.connHandler(wg, conn)
	}
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn) {
	s.onConn(conn)
	s.untrack(conn)
	wg.Done()
}

func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
}

func (s *Server) stopListener() error {
	s.closing.Store(true)

	return s.sock.Close()
}

// Stop shuts the listener and ALL the live connections down.
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops the listener, leaving the live connections free to
// end their lives peacefully.
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}
