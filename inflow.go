// Package inflow is a compact HTTP/1.x server engine focused on the
// ingestion path: a streaming, allocation-frugal request parser feeding
// user-supplied handlers over keep-alive connections.
package inflow

import (
	"net"
	"sync"

	"github.com/inflow-http/inflow/config"
	"github.com/inflow-http/inflow/http"
	httpserver "github.com/inflow-http/inflow/internal/server/http"
	"github.com/inflow-http/inflow/internal/server/tcp"
	"github.com/indigo-web/utils/pool"
)

// session is a request/response pair bound to one connection at a time.
// Pooled across connections so that short-lived peers don't cost a fresh
// scratch buffer each.
type session struct {
	request  *http.Request
	response *http.Response
}

// App glues the pieces together: listener, accept loop, session pool and
// the per-connection request cycle.
type App struct {
	addr    string
	cfg     *config.Config
	handler http.Handler
	server  *tcp.Server

	mu       sync.Mutex
	sessions *pool.ObjectPool[*session]
}

func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
	}
}

// Tune replaces the default settings.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// OnRequest sets the handler invoked for every parsed request.
func (a *App) OnRequest(handler http.Handler) *App {
	a.handler = handler
	return a
}

// Serve listens on the configured address and accepts connections until
// stopped.
func (a *App) Serve() error {
	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	return a.ServeOn(sock)
}

// ServeOn accepts connections off an existing listener.
func (a *App) ServeOn(sock net.Listener) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	if a.handler == nil {
		a.handler = func(request *http.Request, response *http.Response) {}
	}

	a.sessions = pool.NewObjectPool[*session](a.cfg.HTTP.SessionPoolSize)
	server := httpserver.NewServer(a.handler, a.cfg)
	a.server = tcp.NewServer(sock, func(conn net.Conn) {
		sess := a.acquire()
		server.Serve(conn, sess.request, sess.response)
		a.release(sess)
	})

	return a.server.Start()
}

// Stop closes the listener and all the live connections.
func (a *App) Stop() error {
	return a.server.Stop()
}

// GracefulStop closes the listener, leaving live connections to finish.
func (a *App) GracefulStop() error {
	return a.server.GracefulShutdown()
}

// acquire hands out a clean session, reusing a pooled one when possible.
func (a *App) acquire() *session {
	a.mu.Lock()
	sess := a.sessions.Acquire()
	a.mu.Unlock()

	if sess == nil {
		return &session{
			request:  http.NewRequest(a.cfg),
			response: http.NewResponse(),
		}
	}

	sess.request.Renew()
	sess.response.Clear()

	return sess
}

func (a *App) release(sess *session) {
	a.mu.Lock()
	a.sessions.Release(sess)
	a.mu.Unlock()
}
