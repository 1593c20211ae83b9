package textstream

import (
	"io"

	"github.com/rawbytedev/utf8chunk"
)

// Writer filters an io.Writer so the destination only ever sees valid
// UTF-8: bytes of an incomplete multi-byte character dangle in the
// chunker until a later Write completes them.
type Writer struct {
	dst io.Writer
	ck  utf8chunk.Chunker
}

// NewWriter returns a Writer forwarding completed text to dst.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{dst: dst}
}

// Write pushes p through the chunker and forwards whatever decoded
// cleanly. It reports all of p as written even while a tail is held
// back; the tail reaches dst once completed or on Close.
func (w *Writer) Write(p []byte) (int, error) {
	if s, ok := w.ck.Push(p); ok {
		if _, err := io.WriteString(w.dst, s); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Close drains any held-back bytes lossily (incomplete characters
// become U+FFFD) and closes the destination if it is an io.Closer.
func (w *Writer) Close() error {
	if s, ok := w.ck.Flush(); ok {
		if _, err := io.WriteString(w.dst, s); err != nil {
			return err
		}
	}
	if c, ok := w.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
