package utf8chunk

import (
	"strings"
	"testing"
)

func BenchmarkPushASCII(b *testing.B) {
	data := []byte(strings.Repeat("the quick brown fox ", 64))
	c := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Push(data)
	}
}

func BenchmarkPushMultibyte(b *testing.B) {
	data := []byte(strings.Repeat("한글과 日本語と 🦀 ", 32))
	c := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Push(data)
	}
}

func BenchmarkPushSplitSequence(b *testing.B) {
	head := []byte{0xF0, 0x9F}
	tail := []byte{0xA6, 0x80}
	c := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Push(head)
		_, _ = c.Push(tail)
	}
}

func BenchmarkPushSmallChunks(b *testing.B) {
	data := []byte(strings.Repeat("日本語", 128))
	c := New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for off := 0; off < len(data); off += 5 {
			end := min(off+5, len(data))
			_, _ = c.Push(data[off:end])
		}
		_, _ = c.Flush()
	}
}
