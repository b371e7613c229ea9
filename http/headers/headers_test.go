package headers

import (
	"testing"

	"github.com/inflow-http/inflow/http/status"
	"github.com/stretchr/testify/require"
)

func TestHeaders(t *testing.T) {
	t.Run("normalization", func(t *testing.T) {
		h := New().Add("  X-Custom ", "  value  ")
		value, found := h.Get("x-custom")
		require.True(t, found)
		require.Equal(t, "value", value)
		require.Equal(t, []Pair{{"x-custom", "value"}}, h.Unwrap())
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		h := New().Add("Host", "localhost")
		require.Equal(t, "localhost", h.Value("HOST"))
		require.True(t, h.Has("hOsT"))
	})

	t.Run("duplicates keep insertion order", func(t *testing.T) {
		h := New().
			Add("X-Foo", "first").
			Add("Accept", "*/*").
			Add("x-foo", "second")

		require.Equal(t, []string{"first", "second"}, h.Values("X-Foo"))
		require.Equal(t, "first", h.Value("x-foo"))
		require.Equal(t, []string{"x-foo", "accept"}, h.Keys())
	})

	t.Run("clear retains nothing but capacity", func(t *testing.T) {
		h := New().Add("Hello", "World")
		h.Clear()
		require.Zero(t, h.Len())
		require.False(t, h.Has("hello"))

		h.Add("Other", "pair")
		require.Equal(t, "pair", h.Value("other"))
	})

	t.Run("iter", func(t *testing.T) {
		h := New().Add("A", "1").Add("B", "2")
		var pairs []Pair
		for key, value := range h.Iter() {
			pairs = append(pairs, Pair{key, value})
		}
		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, pairs)
	})
}

func TestContentLength(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		length, has, err := New().ContentLength()
		require.NoError(t, err)
		require.False(t, has)
		require.Zero(t, length)
	})

	t.Run("valid", func(t *testing.T) {
		length, has, err := New().Add("Content-Length", "13").ContentLength()
		require.NoError(t, err)
		require.True(t, has)
		require.Equal(t, 13, length)
	})

	t.Run("zero", func(t *testing.T) {
		length, has, err := New().Add("Content-Length", "0").ContentLength()
		require.NoError(t, err)
		require.True(t, has)
		require.Zero(t, length)
	})

	t.Run("malformed literals", func(t *testing.T) {
		for _, literal := range []string{"12a", "-5", "0x10", "", "9999999999999999999999"} {
			_, _, err := New().Add("Content-Length", literal).ContentLength()
			require.ErrorIs(t, err, status.ErrInvalidContentLength, literal)
		}
	})
}

func TestIsChunked(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		require.True(t, New().Add("Transfer-Encoding", "chunked").IsChunked())
	})

	t.Run("case and token list", func(t *testing.T) {
		require.True(t, New().Add("Transfer-Encoding", "gzip, Chunked").IsChunked())
		require.True(t, New().Add("transfer-encoding", " CHUNKED ").IsChunked())
	})

	t.Run("negative", func(t *testing.T) {
		require.False(t, New().IsChunked())
		require.False(t, New().Add("Transfer-Encoding", "gzip").IsChunked())
		require.False(t, New().Add("Transfer-Encoding", "chunkedish").IsChunked())
	})
}
