// Package textstream bridges the utf8chunk core to Go's io and
// golang.org/x/text plumbing: filters over io.Reader and io.Writer plus a
// transform.Transformer, all guaranteeing that every emitted slice of
// bytes is valid UTF-8 on its own.
package textstream

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/rawbytedev/utf8chunk"
)

var ErrBufTooSmall = errors.New("textstream: destination buffer smaller than utf8.UTFMax")

const readChunkSize = 4096

// Reader filters an io.Reader so that every Read returns whole runes.
// Multi-byte characters torn across reads of the source are held back
// until complete; a malformed tail at end of stream is replaced with
// U+FFFD.
type Reader struct {
	src     io.Reader
	ck      utf8chunk.Chunker
	out     []byte // decoded text not yet handed to the caller
	scratch []byte
	err     error
}

// NewReader returns a Reader filtering src.
func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:     src,
		scratch: make([]byte, readChunkSize),
	}
}

// Read fills p with decoded text, never splitting a rune across calls.
// The destination must be at least utf8.UTFMax bytes so one whole rune
// always fits. The source error (io.EOF included) is surfaced only
// after all decoded text has been delivered.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) < utf8.UTFMax {
		return 0, ErrBufTooSmall
	}
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		n, err := r.src.Read(r.scratch)
		if n > 0 {
			if s, ok := r.ck.Push(r.scratch[:n]); ok {
				r.out = append(r.out, s...)
			}
		}
		if err != nil {
			r.err = err
			if s, ok := r.ck.Flush(); ok {
				r.out = append(r.out, s...)
			}
		}
	}
	n := copyRunes(p, r.out)
	r.out = r.out[n:]
	return n, nil
}

// copyRunes copies src into dst without tearing a rune at the dst
// boundary and returns the number of bytes copied.
func copyRunes(dst, src []byte) int {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
		for n > 0 && !utf8.RuneStart(src[n]) {
			n--
		}
	}
	copy(dst, src[:n])
	return n
}
