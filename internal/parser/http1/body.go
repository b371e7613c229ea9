package http1

import (
	"io"
	"math"

	"github.com/inflow-http/inflow/http/status"
)

// readBody materializes the body according to the framing the headers
// promise. Runs once, right after the head section completes; body bytes
// which arrived bundled with the head are still sitting in the window.
func (m *Message) readBody(src io.Reader) error {
	length, has, err := m.Headers.ContentLength()
	if err != nil {
		return err
	}

	if has {
		return m.readSized(src, length)
	}

	if m.Headers.IsChunked() {
		return m.readChunked(src)
	}

	// neither a length nor chunked: the body is empty
	return nil
}

// readSized appends exactly n bytes to the body, draining the window first
// and refilling the scratch buffer as needed. The body buffer is grown once,
// up front. Bytes past n stay in the window: they belong to the next
// request.
func (m *Message) readSized(src io.Reader, n int) error {
	if free := cap(m.Body) - len(m.Body); free < n {
		grown := make([]byte, len(m.Body), len(m.Body)+n)
		copy(grown, m.Body)
		m.Body = grown
	}

	for n > 0 {
		window := m.buff.Window()
		if len(window) == 0 {
			if err := m.buff.Fill(src); err != nil {
				return err
			}

			window = m.buff.Window()
		}

		if len(window) > n {
			window = window[:n]
		}

		m.Body = append(m.Body, window...)
		m.buff.Consume(len(window))
		n -= len(window)
	}

	return nil
}

// readChunked decodes `size CRLF payload CRLF` blocks until the zero-sized
// terminal one. Chunk sizes are hexadecimal. No trailer support: the last
// chunk is followed by a single CRLF.
func (m *Message) readChunked(src io.Reader) error {
	for {
		size, err := m.chunkSize(src)
		if err != nil {
			return err
		}

		if size == 0 {
			return m.expectCRLF(src)
		}

		if err = m.readSized(src, size); err != nil {
			return err
		}

		if err = m.expectCRLF(src); err != nil {
			return err
		}
	}
}

// chunkSize accumulates the chunk-size line up to its CRLF and parses it.
func (m *Message) chunkSize(src io.Reader) (size int, err error) {
	digits := 0

	for {
		char, err := m.next(src)
		if err != nil {
			return 0, err
		}

		if char == '\r' {
			break
		}

		value, ok := unhex(char)
		if !ok || size > math.MaxInt>>4 {
			return 0, status.ErrBadChunk
		}

		size = size<<4 | int(value)
		digits++
	}

	if digits == 0 {
		return 0, status.ErrBadChunk
	}

	if err = m.expectLF(src); err != nil {
		return 0, err
	}

	return size, nil
}

func (m *Message) expectCRLF(src io.Reader) error {
	char, err := m.next(src)
	if err != nil {
		return err
	}

	if char != '\r' {
		return status.ErrBadChunk
	}

	return m.expectLF(src)
}

func (m *Message) expectLF(src io.Reader) error {
	char, err := m.next(src)
	if err != nil {
		return err
	}

	if char != '\n' {
		return status.ErrBadChunk
	}

	return nil
}

// next yields a single byte off the window, refilling it when exhausted.
func (m *Message) next(src io.Reader) (byte, error) {
	window := m.buff.Window()
	if len(window) == 0 {
		if err := m.buff.Fill(src); err != nil {
			return 0, err
		}

		window = m.buff.Window()
	}

	m.buff.Consume(1)
	return window[0], nil
}
