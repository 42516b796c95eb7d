package delta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeInt32_RoundTrip(t *testing.T) {
	values := []int64{100, 105, 90, 90, 1000}
	deltas := make([]int32, len(values))
	ok := EncodeInt32(deltas, values, 100)
	require.True(t, ok)

	out := make([]int64, len(values))
	DecodeInt32(out, deltas, 100)
	assert.Equal(t, values, out)
}

func TestEncodeInt32_OverflowSignalsRetry(t *testing.T) {
	values := []int64{0, math.MaxInt64}
	deltas := make([]int32, len(values))
	ok := EncodeInt32(deltas, values, 0)
	assert.False(t, ok)
}

func TestEncodeDecodeInt64_RoundTrip(t *testing.T) {
	values := []int64{0, math.MaxInt64, math.MinInt64 + 1, 5}
	deltas := make([]int64, len(values))
	EncodeInt64(deltas, values, 0)

	out := make([]int64, len(values))
	DecodeInt64(out, deltas, 0)
	assert.Equal(t, values, out)
}

func TestEncodeSortedUint32_RoundTrip(t *testing.T) {
	values := []uint64{10, 10, 15, 1000}
	deltas := make([]uint32, len(values))
	ok := EncodeSortedUint32(deltas, values, 10)
	require.True(t, ok)

	out := make([]uint64, len(values))
	DecodeSortedUint32(out, deltas, 10)
	assert.Equal(t, values, out)
}

func TestEncodeSortedUint32_RejectsDecreasing(t *testing.T) {
	values := []uint64{10, 5}
	deltas := make([]uint32, len(values))
	ok := EncodeSortedUint32(deltas, values, 10)
	assert.False(t, ok)
}

func TestEncodeSortedUint64_RoundTrip(t *testing.T) {
	values := []uint64{1000, 1000, 2000, math.MaxUint32 + 100}
	deltas := make([]uint64, len(values))
	ok := EncodeSortedUint64(deltas, values, 1000)
	require.True(t, ok)

	out := make([]uint64, len(values))
	DecodeSortedUint64(out, deltas, 1000)
	assert.Equal(t, values, out)
}

func TestEncodeDecodeZigZagInt32_RoundTrip(t *testing.T) {
	values := []int64{100, 90, 200, 50}
	zz := make([]uint32, len(values))
	ok := EncodeZigZagInt32(zz, values, 100)
	require.True(t, ok)

	out := make([]int64, len(values))
	DecodeZigZagInt32(out, zz, 100)
	assert.Equal(t, values, out)
}

func TestEncodeDecodeZigZagInt64_RoundTrip(t *testing.T) {
	values := []int64{0, math.MaxInt64, -100, 0}
	zz := make([]uint64, len(values))
	EncodeZigZagInt64(zz, values, 0)

	out := make([]int64, len(values))
	DecodeZigZagInt64(out, zz, 0)
	assert.Equal(t, values, out)
}
