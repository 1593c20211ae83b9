package textstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestWriterSplitCharacter(t *testing.T) {
	var dst bytes.Buffer
	w := NewWriter(&dst)

	n, err := w.Write([]byte{'h', 'i', 0xED, 0x95})
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.Equal(t, "hi", dst.String())

	n, err = w.Write([]byte{0x9C, '!'})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	assert.Equal(t, "hi한!", dst.String())

	require.NoError(t, w.Close())
	assert.Equal(t, "hi한!", dst.String())
}

func TestWriterCloseFlushesLossily(t *testing.T) {
	var dst bytes.Buffer
	w := NewWriter(&dst)
	_, err := w.Write([]byte{0xF0, 0x9F})
	require.NoError(t, err)
	assert.Empty(t, dst.String())

	require.NoError(t, w.Close())
	assert.Equal(t, "�", dst.String())
}

func TestWriterClosesCloser(t *testing.T) {
	dst := &closeRecorder{}
	w := NewWriter(dst)
	_, err := w.Write([]byte("done"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.True(t, dst.closed)
	assert.Equal(t, "done", dst.String())
}

func TestWriterManyTinyWrites(t *testing.T) {
	var dst bytes.Buffer
	w := NewWriter(&dst)
	data := []byte(sample)
	for _, b := range data {
		_, err := w.Write([]byte{b})
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	assert.Equal(t, sample, dst.String())
}
