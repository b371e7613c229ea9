package inflow

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/inflow-http/inflow/http"
	"github.com/inflow-http/inflow/http/status"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	sock, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	app := New(sock.Addr().String()).
		OnRequest(func(request *http.Request, response *http.Response) {
			response.
				Header("X-Served-Path", request.Path()).
				String("Hello World")
		})

	done := make(chan error)
	go func() {
		done <- app.ServeOn(sock)
	}()

	conn, err := net.Dial("tcp", sock.Addr().String())
	require.NoError(t, err)

	const expect = "HTTP/1.1 200 OK\r\n" +
		"x-served-path: /first\r\n" +
		"Content-Length: 11\r\n\r\n" +
		"Hello World"

	// two cycles over the same connection
	for i := 0; i < 2; i++ {
		_, err = conn.Write([]byte("GET /first HTTP/1.1\r\nHost: h\r\n\r\n"))
		require.NoError(t, err, i)

		buff := make([]byte, len(expect))
		_, err = io.ReadFull(conn, buff)
		require.NoError(t, err, i)
		require.Equal(t, expect, string(buff), i)
	}

	require.NoError(t, conn.Close())
	require.NoError(t, app.Stop())

	select {
	case err = <-done:
		require.ErrorIs(t, err, status.ErrShutdown)
	case <-time.After(5 * time.Second):
		t.Fatal("the server did not stop")
	}
}
