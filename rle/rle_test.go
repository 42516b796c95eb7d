package rle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeZeroRuns_RoundTrip(t *testing.T) {
	values := []uint64{0, 0, 0, 5, 0, 7, 7, 0, 0}
	tokens := EncodeZeroRuns(nil, values)

	out := DecodeZeroRuns(nil, tokens)
	assert.Equal(t, values, out)
}

func TestEncodeZeroRuns_AllZero(t *testing.T) {
	values := []uint64{0, 0, 0, 0}
	tokens := EncodeZeroRuns(nil, values)
	assert.Equal(t, []uint64{(4 << 1) | 1}, tokens)
}

func TestEncodeZeroRuns_NoZeros(t *testing.T) {
	values := []uint64{1, 2, 3}
	tokens := EncodeZeroRuns(nil, values)
	assert.Equal(t, []uint64{2, 4, 6}, tokens)
}

func TestEncodeDecodeZeroRuns_Empty(t *testing.T) {
	tokens := EncodeZeroRuns(nil, nil)
	assert.Empty(t, tokens)
	out := DecodeZeroRuns(nil, tokens)
	assert.Empty(t, out)
}

func TestEncodeDecodeRuns_RoundTrip(t *testing.T) {
	values := []uint64{9, 9, 9, 1, 2, 2, 9}
	tokens := EncodeRuns(nil, values)

	out := DecodeRuns(nil, tokens)
	assert.Equal(t, values, out)
}

func TestEncodeRuns_EveryValueDistinct(t *testing.T) {
	values := []uint64{1, 2, 3, 4}
	tokens := EncodeRuns(nil, values)
	assert.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Equal(t, uint64(1), tok.Count)
	}
}
