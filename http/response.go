package http

import (
	"github.com/inflow-http/inflow/http/headers"
	"github.com/inflow-http/inflow/http/status"
	"github.com/indigo-web/utils/uf"
)

// Response is the outgoing message the handler fills in. Like the request it
// is reused across the cycles of a connection.
type Response struct {
	code    status.Code
	headers *headers.Headers
	content []byte
}

func NewResponse() *Response {
	return &Response{
		code:    status.OK,
		headers: headers.New(),
	}
}

// Code sets the response status code.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// Header adds a response header. Content-Length is framed by the serializer
// and must not be set here.
func (r *Response) Header(key, value string) *Response {
	r.headers.Add(key, value)
	return r
}

// Bytes sets the response payload.
func (r *Response) Bytes(content []byte) *Response {
	r.content = append(r.content[:0], content...)
	return r
}

// String sets the response payload.
func (r *Response) String(content string) *Response {
	r.content = append(r.content[:0], content...)
	return r
}

// Status returns the chosen status code.
func (r *Response) Status() status.Code {
	return r.code
}

// Headers exposes the response's header store.
func (r *Response) Headers() *headers.Headers {
	return r.headers
}

// Content returns the payload as set so far.
func (r *Response) Content() []byte {
	return r.content
}

// ContentString returns the payload as a string view.
func (r *Response) ContentString() string {
	return uf.B2S(r.content)
}

// Clear brings the response back to its default state, retaining the
// allocations.
func (r *Response) Clear() *Response {
	r.code = status.OK
	r.headers.Clear()
	r.content = r.content[:0]
	return r
}
