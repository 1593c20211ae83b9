package utf8chunk

import "unicode/utf8"

// classify leading bytes
func seqLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// SeqLen returns the encoding length a UTF-8 leading byte declares
// (1-4), or 0 for a byte that cannot start a sequence.
func SeqLen(b byte) int {
	return seqLen(b)
}

// validPrefixLen returns the length of the longest prefix of p that is
// valid UTF-8, stopping at the first invalid or truncated byte.
func validPrefixLen(p []byte) int {
	n := 0
	for n < len(p) {
		if p[n] < utf8.RuneSelf {
			n++
			continue
		}
		_, size := utf8.DecodeRune(p[n:])
		if size == 1 {
			// RuneError of size 1: invalid or cut off right here.
			return n
		}
		n += size
	}
	return n
}

// incompleteSeqLen reports how many trailing bytes of p form an
// incomplete multi-byte sequence worth keeping, or 0 if the tail is
// complete, ends in ASCII, or is unrecoverably malformed.
//
// Only the last 4 bytes matter: a keepable tail is a leading byte plus
// at most two continuation bytes, so anything older is already decided.
func incompleteSeqLen(p []byte) int {
	n := len(p)
	if n == 0 {
		return 0
	}
	check := min(n, utf8.UTFMax)

	// Walk backward from the end to the most recent non-continuation byte.
	for i := 0; i < check; i++ {
		b := p[n-1-i]
		if b&0xC0 == 0x80 {
			// continuation byte, keep scanning
			continue
		}
		if b&0x80 == 0 {
			// ASCII: either the tail ends cleanly (i == 0) or the
			// continuation bytes behind it can never attach to anything.
			return 0
		}
		need := seqLen(b)
		avail := i + 1
		if need > 0 && avail < need {
			return avail
		}
		// Invalid leading byte, or long enough to be complete while the
		// overall validation still failed: nothing more can fix it.
		return 0
	}

	// Pure continuation bytes with no leading byte in the window.
	// Unreachable for well-formed streams; keep up to 3 so later input
	// still has a chance to resolve it.
	return min(check, 3)
}

// IncompleteSuffix returns the number of trailing bytes of p that form
// an incomplete (but so far plausible) multi-byte UTF-8 sequence. It is
// 0 when p ends on a clean code-point boundary or the tail is beyond
// repair.
func IncompleteSuffix(p []byte) int {
	return incompleteSeqLen(p)
}
