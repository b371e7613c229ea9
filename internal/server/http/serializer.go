package http

import (
	"net"
	"strconv"

	"github.com/inflow-http/inflow/http"
	"github.com/inflow-http/inflow/http/status"
	"github.com/valyala/bytebufferpool"
)

const crlf = "\r\n"

// write serializes the response into a pooled buffer and pushes it out in a
// single Write call. Content-Length framing is appended here; the handler's
// own headers go out as stored, lowercase names included.
func (s *Server) write(conn net.Conn, response *http.Response) error {
	buff := bytebufferpool.Get()
	defer bytebufferpool.Put(buff)

	_, _ = buff.WriteString("HTTP/1.1 ")
	_, _ = buff.WriteString(strconv.Itoa(int(response.Status())))
	_ = buff.WriteByte(' ')
	_, _ = buff.WriteString(status.Text(response.Status()))
	_, _ = buff.WriteString(crlf)

	for key, value := range response.Headers().Iter() {
		_, _ = buff.WriteString(key)
		_, _ = buff.WriteString(": ")
		_, _ = buff.WriteString(value)
		_, _ = buff.WriteString(crlf)
	}

	_, _ = buff.WriteString("Content-Length: ")
	_, _ = buff.WriteString(strconv.Itoa(len(response.Content())))
	_, _ = buff.WriteString(crlf)
	_, _ = buff.WriteString(crlf)
	_, _ = buff.Write(response.Content())

	_, err := conn.Write(buff.B)

	return err
}
