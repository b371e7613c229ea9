package http1

import (
	"io"

	"github.com/inflow-http/inflow/http/headers"
	"github.com/inflow-http/inflow/http/status"
	"github.com/inflow-http/inflow/internal/buffer"
)

// Message is the mutable parse state of one request cycle. It owns every
// allocation it needs: the scratch read buffer, the startline fields, the
// header scratches, the header store and the body buffer. All of them
// survive Reset, which is what makes keep-alive connections allocation-free
// after the first request.
//
// A message belongs to exactly one connection goroutine for the whole
// duration of a parse. That ownership discipline is the only synchronization
// it ever needs.
type Message struct {
	Method  []byte
	Path    []byte
	Proto   []byte
	Headers *headers.Headers
	Body    []byte

	buff   buffer.Buffer
	key    []byte
	value  []byte
	state  state
	skipLF bool
}

// NewMessage returns a fresh message whose reads are batched by a scratch
// buffer of the given capacity.
func NewMessage(buffSize int) *Message {
	return &Message{
		Headers: headers.New(),
		buff:    buffer.New(buffSize),
		state:   eMethod,
	}
}

// Parse reads one full request off src: startline, headers and the body as
// framed by Content-Length or chunked transfer encoding. The message must be
// freshly constructed or Reset since the previous cycle; after an error the
// state is partially populated and stays unusable until Reset.
func (m *Message) Parse(src io.Reader) error {
	if m.state == eDone || m.state == eDead {
		return status.ErrUncleanReuse
	}

	if err := m.parseHead(src); err != nil {
		m.state = eDead
		return err
	}

	if err := m.readBody(src); err != nil {
		m.state = eDead
		return err
	}

	m.state = eDone
	return nil
}

// Reset clears the parsed state for the next cycle on the same connection,
// keeping all the allocations. Unconsumed bytes stay in the scratch buffer:
// they already belong to a pipelined follow-up request.
func (m *Message) Reset() {
	m.Method = m.Method[:0]
	m.Path = m.Path[:0]
	m.Proto = m.Proto[:0]
	m.Headers.Clear()
	m.Body = m.Body[:0]
	m.key = m.key[:0]
	m.value = m.value[:0]
	m.skipLF = false
	m.state = eMethod
}

// Discard is Reset plus dropping the unconsumed window. Used when the
// message is re-attached to a different connection.
func (m *Message) Discard() {
	m.Reset()
	m.buff.Reset()
}

func (m *Message) parseHead(src io.Reader) error {
	for {
		window := m.buff.Window()
		if len(window) == 0 {
			if err := m.buff.Fill(src); err != nil {
				return err
			}

			window = m.buff.Window()
		}

		consumed, done, err := m.scan(window)
		m.buff.Consume(consumed)
		if err != nil || done {
			return err
		}
	}
}

// scan advances the head state machine over the window in place, reporting
// how many bytes it interpreted and whether the blank line terminating the
// head section was reached. Bytes past the blank line are left for the body
// strategies.
func (m *Message) scan(window []byte) (consumed int, done bool, err error) {
	for i, char := range window {
		if m.skipLF {
			if char != '\n' {
				return i, false, status.ErrBadRequest
			}

			m.skipLF = false
			if m.state == eHeadEnd {
				return i + 1, true, nil
			}

			continue
		}

		switch m.state {
		case eMethod:
			if char == ' ' {
				m.state = ePath
				continue
			}

			m.Method = append(m.Method, char)
		case ePath:
			if char == ' ' {
				m.state = eProto
				continue
			}

			m.Path = append(m.Path, char)
		case eProto:
			if char == '\r' {
				m.skipLF = true
				m.state = eHeaderKey
				continue
			}

			m.Proto = append(m.Proto, char)
		case eHeaderKey:
			switch char {
			case '\r':
				m.skipLF = true
				if len(m.key) == 0 {
					m.state = eHeadEnd
					continue
				}

				// a field line with a name but no colon
				return i, false, status.ErrBadHeader
			case ':':
				m.state = eHeaderValue
			default:
				m.key = append(m.key, char)
			}
		case eHeaderValue:
			if char != '\r' {
				m.value = append(m.value, char)
				continue
			}

			m.skipLF = true
			if len(m.key) == 0 || len(m.value) == 0 {
				return i, false, status.ErrBadHeader
			}

			m.Headers.Add(string(m.key), string(m.value))
			m.key = m.key[:0]
			m.value = m.value[:0]
			m.state = eHeaderKey
		}
	}

	return len(window), false, nil
}
