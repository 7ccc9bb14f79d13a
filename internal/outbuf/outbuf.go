// Package outbuf is the append-only byte builder the value walker renders
// into (spec §4.9, §5): Clear empties it without releasing storage,
// Free releases it.
package outbuf

// Buffer is an append-only byte builder with no fixed capacity.
type Buffer struct {
	data []byte
}

// New allocates an empty Buffer.
func New() *Buffer { return &Buffer{} }

// WriteString appends s.
func (b *Buffer) WriteString(s string) { b.data = append(b.data, s...) }

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) { b.data = append(b.data, c) }

// Bytes returns the buffer's current contents as a UTF-8 byte slice; the
// slice aliases the buffer's storage and must not be retained across a
// subsequent Clear or write.
func (b *Buffer) Bytes() []byte { return b.data }

// String returns the buffer's current contents as a string.
func (b *Buffer) String() string { return string(b.data) }

// Clear empties the buffer without releasing its backing storage, so the
// next render can reuse the allocation (spec §4.9). Two consecutive Clear
// calls are idempotent: the buffer is empty either way (spec §8).
func (b *Buffer) Clear() { b.data = b.data[:0] }

// Free releases the buffer's backing storage.
func (b *Buffer) Free() { b.data = nil }
