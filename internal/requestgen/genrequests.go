package requestgen

import (
	"github.com/dchest/uniuri"
	"github.com/inflow-http/inflow/http/headers"
)

// Headers produces n-1 random header pairs plus a Host one.
func Headers(n int) *headers.Headers {
	hdrs := headers.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add(uniuri.NewLen(16), uniuri.NewLen(32))
	}

	return hdrs.Add("Host", "localhost")
}

// HeadersBlock renders the store as wire-format field lines.
func HeadersBlock(hdrs *headers.Headers) (buff []byte) {
	for _, pair := range hdrs.Unwrap() {
		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}

	return buff
}

// Generate assembles a whole GET request around the given path and headers.
func Generate(path string, hdrs *headers.Headers) (request []byte) {
	request = append(request, "GET "+path+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
