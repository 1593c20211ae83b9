// Package utf8chunk re-assembles valid UTF-8 text from arbitrarily split
// byte chunks. Multi-byte characters (CJK, emoji, ...) torn at a chunk
// boundary are buffered until the rest of the encoding arrives.
package utf8chunk

import (
	"bytes"
	"unicode/utf8"
)

// Chunker is an incremental UTF-8 decoder that buffers incomplete
// multi-byte sequences between calls. At most 3 bytes are ever held:
// the longest incomplete prefix of a 4-byte encoding.
//
// The zero value is ready to use. A Chunker must not be shared between
// goroutines without external synchronization.
type Chunker struct {
	buf []byte
}

// New returns a Chunker with an empty buffer.
func New() *Chunker {
	return &Chunker{}
}

// Push processes an incoming chunk and returns any complete UTF-8 text.
//
// The boolean is false when nothing can be emitted yet, i.e. every input
// byte is buffered as part of an incomplete sequence (or the chunk was
// empty). When it is true the returned string is non-empty.
//
// Bytes that can never become valid UTF-8 (a bad leading byte, or a
// sequence that is complete yet still invalid) are dropped silently;
// decoding continues at the next byte that arrives.
func (c *Chunker) Push(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}

	// Fast path: nothing pending and the chunk is already valid.
	if len(c.buf) == 0 && utf8.Valid(data) {
		return string(data), true
	}

	c.buf = append(c.buf, data...)

	valid := validPrefixLen(c.buf)
	if valid == len(c.buf) {
		out := string(c.buf)
		c.buf = c.buf[:0]
		return out, true
	}

	keep := incompleteSeqLen(c.buf[valid:])

	var out string
	if valid > 0 {
		out = string(c.buf[:valid])
	}
	if keep > 0 {
		// Retain only the incomplete tail for the next Push.
		copy(c.buf, c.buf[len(c.buf)-keep:])
		c.buf = c.buf[:keep]
	} else {
		c.buf = c.buf[:0]
	}
	return out, valid > 0
}

// Flush drains the buffer with lossy conversion and resets the Chunker.
//
// Call it once the stream is finished: an incomplete sequence still in
// the buffer is replaced by U+FFFD. Returns false if nothing was buffered.
func (c *Chunker) Flush() (string, bool) {
	if len(c.buf) == 0 {
		return "", false
	}
	out := string(bytes.ToValidUTF8(c.buf, []byte("\uFFFD")))
	c.buf = c.buf[:0]
	return out, true
}

// IsEmpty reports whether no bytes are buffered.
func (c *Chunker) IsEmpty() bool {
	return len(c.buf) == 0
}

// BufferedLen returns the number of bytes currently buffered.
func (c *Chunker) BufferedLen() int {
	return len(c.buf)
}
