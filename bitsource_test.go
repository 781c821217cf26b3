package fsmbin

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBits(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		bits, err := ReadBits(strings.NewReader("10 1\n1\r\n"), EncodingText)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 1, 1}, bits)
	})

	t.Run("text invalid symbol", func(t *testing.T) {
		_, err := ReadBits(strings.NewReader("01 1\nx"), EncodingText)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidBit))
		assert.Contains(t, err.Error(), "byte offset 5")
	})

	t.Run("binary", func(t *testing.T) {
		bits, err := ReadBits(bytes.NewReader([]byte{0xA5, 0x01}), EncodingBinary)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 1}, bits)
	})

	t.Run("empty", func(t *testing.T) {
		bits, err := ReadBits(strings.NewReader(""), EncodingText)
		require.NoError(t, err)
		assert.Empty(t, bits)
	})
}

func TestParseBitEncoding(t *testing.T) {
	for _, enc := range []BitEncoding{EncodingText, EncodingBinary} {
		got, err := ParseBitEncoding(enc.String())
		require.NoError(t, err)
		assert.Equal(t, enc, got)
	}
	_, err := ParseBitEncoding("hex")
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bits.txt")
	require.NoError(t, os.WriteFile(path, []byte("1011\n"), 0o644))

	trace, err := RunFile(twoStateFSM(t), path, EncodingText)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 0, 1}, trace.Visited)
	assert.Equal(t, 4, trace.Steps)

	_, err = RunFile(twoStateFSM(t), filepath.Join(dir, "missing"), EncodingText)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("102"), 0o644))
	_, err = RunFile(twoStateFSM(t), bad, EncodingText)
	assert.True(t, errors.Is(err, ErrInvalidBit))
}
