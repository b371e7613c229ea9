package http

import (
	"io"
	"strings"

	"github.com/inflow-http/inflow/config"
	"github.com/inflow-http/inflow/http/headers"
	"github.com/inflow-http/inflow/http/status"
	"github.com/inflow-http/inflow/internal/parser/http1"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Handler is invoked by the connection loop after every successfully parsed
// request. It fills the response in place; its failure is the caller's
// business and never touches parser state.
type Handler func(request *Request, response *Response)

// Request wraps a single reusable message. One instance serves a whole
// keep-alive connection: parse, hand off to the handler, Clear, repeat. It
// is owned by exactly one goroutine and needs no locking.
type Request struct {
	msg *http1.Message
}

func NewRequest(cfg *config.Config) *Request {
	return &Request{
		msg: http1.NewMessage(cfg.NET.ReadBufferSize),
	}
}

// From parses one full request off src, startline through body. It returns
// the first error encountered; after an error the instance must be Cleared
// before the next attempt.
func (r *Request) From(src io.Reader) error {
	return r.msg.Parse(src)
}

// Clear resets the parsed state for the next cycle on the same connection.
// All allocations, the scratch buffer included, are retained.
func (r *Request) Clear() {
	r.msg.Reset()
}

// Renew prepares the instance for a different connection: same as Clear,
// plus dropping any bytes left over from the previous peer.
func (r *Request) Renew() {
	r.msg.Discard()
}

// Method returns the request method verbatim. The returned string, like all
// the accessors below, is a view valid until the next Clear or From call.
func (r *Request) Method() string {
	return uf.B2S(r.msg.Method)
}

// Path returns the request target.
func (r *Request) Path() string {
	return uf.B2S(r.msg.Path)
}

// Proto returns the protocol version, e.g. "HTTP/1.1".
func (r *Request) Proto() string {
	return uf.B2S(r.msg.Proto)
}

// Headers exposes the request's header store.
func (r *Request) Headers() *headers.Headers {
	return r.msg.Headers
}

// Header returns the first value of the header, or an empty string.
func (r *Request) Header(key string) string {
	return r.msg.Headers.Value(key)
}

// Body returns the materialized body. Empty for bodyless requests.
func (r *Request) Body() []byte {
	return r.msg.Body
}

// JSON unmarshals the body into the model. The Content-Type, if present,
// must be a JSON one.
func (r *Request) JSON(model any) error {
	if contentType := r.Header("content-type"); len(contentType) > 0 &&
		!strings.HasPrefix(contentType, "application/json") {
		return status.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(r.msg.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}
