// Package textring implements a fixed-capacity circular byte buffer used to
// accumulate UTF-8 text without allocating on the write path.
//
// Writes never fail: once more bytes than the capacity have been written since
// the last Clear, the newest bytes overwrite the oldest. Reading the content back
// (Bytes, Extract) rotates the storage so the oldest surviving byte comes first
// and skips any continuation bytes left at the front by an overwrite, so the
// result starts at a code point boundary.
package textring

import "slices"

// Buffer is a circular text buffer. It is not safe for concurrent use.
type Buffer struct {
	buf     []byte
	start   int // oldest byte
	end     int // next write position
	size    int // bytes held, never more than len(buf)
	wrapped bool
}

// New returns an empty buffer with the given capacity in bytes.
// It panics when capacity is less than 1.
func New(capacity int) *Buffer {
	if capacity < 1 {
		panic("textring: capacity must be at least 1")
	}
	return &Buffer{buf: make([]byte, capacity)}
}

func (b *Buffer) Cap() int { return len(b.buf) }

// Len is the number of bytes held, including any partial code point at the
// front that Bytes would skip.
func (b *Buffer) Len() int { return b.size }

// SpaceRemaining is how many bytes can be written before the oldest content
// starts being overwritten.
func (b *Buffer) SpaceRemaining() int { return len(b.buf) - b.size }

// IsEmpty reports whether nothing has been written since the last Clear.
func (b *Buffer) IsEmpty() bool { return b.size == 0 }

// IsWrapped reports whether content has been overwritten since the last Clear.
func (b *Buffer) IsWrapped() bool { return b.wrapped }

// Clear zeroes the storage and resets the buffer to empty.
func (b *Buffer) Clear() {
	clear(b.buf)
	b.start, b.end, b.size = 0, 0, 0
	b.wrapped = false
}

// Write appends p. It always returns len(p), nil.
func (b *Buffer) Write(p []byte) (int, error) { return write(b, p), nil }

// WriteString appends s. It always returns len(s), nil.
func (b *Buffer) WriteString(s string) (int, error) { return write(b, s), nil }

// WriteByte appends c. It always returns nil.
func (b *Buffer) WriteByte(c byte) error {
	b.buf[b.end] = c
	b.commit(1)
	return nil
}

func write[T ~string | ~[]byte](b *Buffer, p T) int {
	n := len(p)
	c := len(b.buf)
	if n > c {
		// Only the last c bytes of p can survive this call; move the cursor
		// to where they start as if the rest had been written and overwritten.
		skip := n - c
		b.end = (b.end + skip) % c
		b.wrapped = true
		p = p[skip:]
	}
	for len(p) > 0 {
		k := copy(b.buf[b.end:], p)
		p = p[k:]
		b.commit(k)
	}
	return n
}

// commit accounts for k bytes just copied at end; k never crosses the end of storage.
func (b *Buffer) commit(k int) {
	c := len(b.buf)
	b.end += k
	if b.end == c {
		b.end = 0
	}
	b.size += k
	if b.size > c {
		b.size = c
		b.wrapped = true
	}
	if b.size == c {
		b.start = b.end
	}
}

// rotate lays the content out contiguously from index 0, oldest byte first.
// Three in-place reversals perform the left rotation without allocating.
func (b *Buffer) rotate() {
	if b.start == 0 {
		return
	}
	slices.Reverse(b.buf[:b.start])
	slices.Reverse(b.buf[b.start:])
	slices.Reverse(b.buf)
	b.start = 0
	b.end = b.size % len(b.buf)
}

// Bytes returns the buffered text in chronological order, starting at the
// first UTF-8 leading byte. The slice aliases the storage and is valid until
// the next write or Clear. Bytes does not consume the content.
func (b *Buffer) Bytes() []byte {
	b.rotate()
	data := b.buf[:b.size]
	for i, c := range data {
		if isLeadingByte(c) {
			return data[i:]
		}
	}
	return nil
}

// Extract is Bytes copied into a string.
func (b *Buffer) Extract() string { return string(b.Bytes()) }

func isLeadingByte(c byte) bool {
	return c&0x80 == 0x00 || // 0xxxxxxx
		c&0xE0 == 0xC0 || // 110xxxxx
		c&0xF0 == 0xE0 || // 1110xxxx
		c&0xF8 == 0xF0 // 11110xxx
}
