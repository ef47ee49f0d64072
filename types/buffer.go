package types

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const BufferSize = 1024

// ReceiveBuffer stages the bytes of a single read. It is owned by the
// accept loop and reused for every read on every connection.
type ReceiveBuffer struct {
	data []byte
	n    int

	// rendered characters, at most two bytes of utf-8 per input byte
	out []byte
}

func NewReceiveBuffer() *ReceiveBuffer {
	return &ReceiveBuffer{
		data: make([]byte, BufferSize),
		out:  make([]byte, 0, 2*BufferSize),
	}
}

// Fill empties the buffer and performs exactly one Read into its full capacity.
// A reader reporting a count outside the buffer gets ErrBadCount and nothing is kept.
func (b *ReceiveBuffer) Fill(r io.Reader) (int, error) {
	b.n = 0
	n, err := r.Read(b.data)
	if n < 0 || n > len(b.data) {
		b.Clear()
		return 0, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	b.n = n
	return n, err
}

// Drain writes every unread byte to w as its own character and clears the buffer.
// Bytes are widened one by one, no multi-byte sequence is ever decoded.
func (b *ReceiveBuffer) Drain(w io.Writer) error {
	b.out = b.out[:0]
	for _, c := range b.unread() {
		b.out = utf8.AppendRune(b.out, rune(c))
	}
	b.Clear()

	if len(b.out) == 0 {
		return nil
	}
	_, err := w.Write(b.out)
	return err
}

// Clear zeroes the whole backing array, a Read may scribble past the count it returns.
func (b *ReceiveBuffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.n = 0
}

func (b *ReceiveBuffer) unread() []byte {
	return b.data[:b.n]
}
