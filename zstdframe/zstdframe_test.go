package zstdframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompress_RoundTrip(t *testing.T) {
	payload := make([]byte, 2000)
	for i := range payload {
		payload[i] = byte(i % 17)
	}

	frame, err := Compress(nil, payload, 123)
	require.NoError(t, err)
	assert.Equal(t, SignatureCompressed, frame[0])

	out, numTicks, newOffset, err := Decompress(frame, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(123), numTicks)
	assert.Equal(t, len(frame), newOffset)
	assert.Equal(t, payload, out)
}

func TestDecompress_RejectsBadSignature(t *testing.T) {
	_, _, _, err := Decompress([]byte{0xFF, 0x00}, 0)
	assert.Error(t, err)
}

func TestDecompress_TruncatedInput(t *testing.T) {
	_, _, _, err := Decompress(nil, 0)
	assert.Error(t, err)
}

func TestDictionaryFingerprint_NonZero(t *testing.T) {
	assert.NotZero(t, DictionaryFingerprint())
}
