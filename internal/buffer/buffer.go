package buffer

import (
	"io"

	"github.com/inflow-http/inflow/http/status"
)

// Buffer batches connection reads for one message. Its backing array is
// allocated lazily on the first fill and is never reallocated afterwards:
// parsing advances by consuming the pending window, and a new read is issued
// only once the window is empty.
type Buffer struct {
	mem     []byte
	size    int
	valid   int
	pending int
}

// New returns a buffer of the given capacity. The capacity bounds every
// single read issued against the source.
func New(size int) Buffer {
	return Buffer{size: size}
}

// Window returns the bytes which were already read off the source but not
// interpreted yet. The window is mem[valid-pending:valid], so consuming
// never moves any data around.
func (b *Buffer) Window() []byte {
	return b.mem[b.valid-b.pending : b.valid]
}

// Consume marks the first n bytes of the window as interpreted.
func (b *Buffer) Consume(n int) {
	b.pending -= n
}

// Pending returns the length of the unconsumed window.
func (b *Buffer) Pending() int {
	return b.pending
}

// Fill issues exactly one read into the whole backing array, replacing the
// window with whatever the read returned. The window must be fully consumed
// beforehand. Only the first n bytes of the array are ever exposed after a
// read of n bytes, no matter what the previous fills left behind.
//
// A read of zero bytes means the peer shut the connection down, which is
// reported as status.ErrConnectionClosed. Transport errors are passed
// through untouched.
func (b *Buffer) Fill(src io.Reader) error {
	if b.mem == nil {
		b.mem = make([]byte, b.size)
	}

	n, err := src.Read(b.mem)
	b.valid, b.pending = n, n

	if n > 0 {
		return nil
	}

	if err == nil || err == io.EOF {
		return status.ErrConnectionClosed
	}

	return err
}

// Reset drops the window. Used when the buffer is re-attached to another
// connection; within a single connection leftover bytes are kept, as they
// may already belong to a pipelined follow-up request.
func (b *Buffer) Reset() {
	b.valid, b.pending = 0, 0
}
