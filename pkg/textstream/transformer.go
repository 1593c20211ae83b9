package textstream

import (
	"golang.org/x/text/transform"

	"github.com/rawbytedev/utf8chunk"
)

// Transformer adapts the chunker to the x/text transform interface, so
// it composes with transform.NewReader, transform.NewWriter and
// transform.Chain. Incomplete sequences ride across Transform calls
// inside the chunker; atEOF triggers the lossy flush.
type Transformer struct {
	ck  utf8chunk.Chunker
	out []byte // produced but not yet copied into a dst
}

var _ transform.Transformer = (*Transformer)(nil)

// NewTransformer returns a Transformer in its initial state.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform implements transform.Transformer. src is always consumed in
// full; output that does not fit dst is carried to the next call and
// signalled with transform.ErrShortDst.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// deliver carry-over from an earlier short dst first
	if len(t.out) > 0 {
		nDst = copyRunes(dst, t.out)
		t.out = t.out[nDst:]
		if len(t.out) > 0 {
			return nDst, 0, transform.ErrShortDst
		}
	}

	if s, ok := t.ck.Push(src); ok {
		t.out = append(t.out, s...)
	}
	nSrc = len(src)
	if atEOF {
		if s, ok := t.ck.Flush(); ok {
			t.out = append(t.out, s...)
		}
	}

	n := copyRunes(dst[nDst:], t.out)
	nDst += n
	t.out = t.out[n:]
	if len(t.out) > 0 {
		err = transform.ErrShortDst
	}
	return nDst, nSrc, err
}

// Reset implements transform.Resetter.
func (t *Transformer) Reset() {
	t.ck = utf8chunk.Chunker{}
	t.out = nil
}
