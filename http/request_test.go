package http

import (
	"strings"
	"testing"

	"github.com/inflow-http/inflow/config"
	"github.com/inflow-http/inflow/http/status"
	"github.com/stretchr/testify/require"
)

func TestRequest(t *testing.T) {
	cfg := config.Default()

	t.Run("accessors", func(t *testing.T) {
		request := NewRequest(cfg)
		raw := "POST /x HTTP/1.1\r\nHost: h\r\nContent-Length: 5\r\n\r\nhello"
		require.NoError(t, request.From(strings.NewReader(raw)))

		require.Equal(t, "POST", request.Method())
		require.Equal(t, "/x", request.Path())
		require.Equal(t, "HTTP/1.1", request.Proto())
		require.Equal(t, "h", request.Header("Host"))
		require.Equal(t, "hello", string(request.Body()))
	})

	t.Run("reuse matches a fresh instance", func(t *testing.T) {
		second := "GET /other HTTP/1.1\r\nX-Foo: a\r\nX-Foo: b\r\n\r\n"

		reused := NewRequest(cfg)
		require.NoError(t, reused.From(strings.NewReader("GET /first HTTP/1.1\r\nHost: h\r\n\r\n")))
		reused.Clear()
		require.NoError(t, reused.From(strings.NewReader(second)))

		fresh := NewRequest(cfg)
		require.NoError(t, fresh.From(strings.NewReader(second)))

		require.Equal(t, fresh.Method(), reused.Method())
		require.Equal(t, fresh.Path(), reused.Path())
		require.Equal(t, fresh.Proto(), reused.Proto())
		require.Equal(t, []string{"a", "b"}, reused.Headers().Values("x-foo"))
		require.False(t, reused.Headers().Has("host"))
	})

	t.Run("errors demand a clear", func(t *testing.T) {
		request := NewRequest(cfg)
		raw := "GET / HTTP/1.1\r\nbroken\r\n\r\n"
		require.ErrorIs(t, request.From(strings.NewReader(raw)), status.ErrBadHeader)
		require.ErrorIs(t, request.From(strings.NewReader(raw)), status.ErrUncleanReuse)

		request.Clear()
		require.NoError(t, request.From(strings.NewReader("GET / HTTP/1.1\r\n\r\n")))
	})

	t.Run("json body", func(t *testing.T) {
		request := NewRequest(cfg)
		raw := "POST / HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 14\r\n\r\n{\"name\":\"Bob\"}"
		require.NoError(t, request.From(strings.NewReader(raw)))

		var model struct {
			Name string `json:"name"`
		}
		require.NoError(t, request.JSON(&model))
		require.Equal(t, "Bob", model.Name)
	})

	t.Run("json demands a json content-type", func(t *testing.T) {
		request := NewRequest(cfg)
		raw := "POST / HTTP/1.1\r\nContent-Type: text/plain\r\nContent-Length: 2\r\n\r\n{}"
		require.NoError(t, request.From(strings.NewReader(raw)))

		var model any
		require.ErrorIs(t, request.JSON(&model), status.ErrUnsupportedMediaType)
	})
}

func TestResponse(t *testing.T) {
	response := NewResponse().
		Code(status.NotFound).
		Header("X-Reason", "missing").
		String("nope")

	require.Equal(t, status.NotFound, response.Status())
	require.Equal(t, "missing", response.Headers().Value("x-reason"))
	require.Equal(t, "nope", response.ContentString())

	response.Clear()
	require.Equal(t, status.OK, response.Status())
	require.Zero(t, response.Headers().Len())
	require.Empty(t, response.Content())
}
