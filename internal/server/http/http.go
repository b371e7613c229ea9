package http

import (
	"net"
	"time"

	"github.com/inflow-http/inflow/config"
	"github.com/inflow-http/inflow/http"
	"github.com/inflow-http/inflow/http/status"
	"github.com/indigo-web/utils/strcomp"
)

// Server drives request cycles over accepted connections: parse, hand off
// to the handler, write the response, repeat while keep-alive allows. The
// request and response instances are owned by the connection's goroutine
// for its whole lifetime.
type Server struct {
	handler http.Handler
	cfg     *config.Config
}

func NewServer(handler http.Handler, cfg *config.Config) *Server {
	return &Server{
		handler: handler,
		cfg:     cfg,
	}
}

// Serve runs cycles until the connection is done, then closes it.
func (s *Server) Serve(conn net.Conn, request *http.Request, response *http.Response) {
	for s.cycle(conn, request, response) {
	}

	_ = conn.Close()
}

func (s *Server) cycle(conn net.Conn, request *http.Request, response *http.Response) bool {
	if timeout := s.cfg.NET.ReadTimeout; timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return false
		}
	}

	switch err := request.From(conn); {
	case err == nil:
	case status.IsProtocolViolation(err):
		// best effort: the peer may already be gone
		_ = s.write(conn, response.Clear().Code(status.BadRequest).String(err.Error()))
		return false
	default:
		// an orderly close or a transport failure; nothing to write back
		return false
	}

	s.handler(request, response)

	if err := s.write(conn, response); err != nil {
		return false
	}

	alive := keepAlive(request)
	request.Clear()
	response.Clear()

	return alive
}

func keepAlive(request *http.Request) bool {
	connection := request.Header("connection")

	if request.Proto() == "HTTP/1.0" {
		return strcomp.EqualFold(connection, "keep-alive")
	}

	return !strcomp.EqualFold(connection, "close")
}
