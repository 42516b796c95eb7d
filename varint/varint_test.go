package varint

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUint32_RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		buf := AppendUint32(nil, v)
		got, n, ok := ReadUint32(buf, 0)
		require.True(t, ok)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestAppendUint64_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		buf := AppendUint64(nil, v)
		got, n, ok := ReadUint64(buf, 0)
		require.True(t, ok)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestAppendUint32_MatchesStdlibUvarint(t *testing.T) {
	want := binary.AppendUvarint(nil, 300)
	got := AppendUint32(nil, 300)
	assert.Equal(t, want, got)
}

func TestAppendSlice_RoundTrip(t *testing.T) {
	in := []uint32{5, 0, 1000000, 1}
	buf := AppendUint32Slice(nil, in)

	out := make([]uint32, len(in))
	off, ok := ReadUint32Slice(buf, 0, out)
	require.True(t, ok)
	assert.Equal(t, len(buf), off)
	assert.Equal(t, in, out)
}

func TestReadUint32_TruncatedInput(t *testing.T) {
	buf := []byte{0x80, 0x80} // continuation bits set, no terminator
	_, _, ok := ReadUint32(buf, 0)
	assert.False(t, ok)
}

func TestReadUint32_EmptyInput(t *testing.T) {
	_, _, ok := ReadUint32(nil, 0)
	assert.False(t, ok)
}

func TestReadUint32_OverflowsUint32(t *testing.T) {
	buf := AppendUint64(nil, 1<<33)
	_, _, ok := ReadUint32(buf, 0)
	assert.False(t, ok)
}

func TestReadUint64Slice_StopsOnTruncation(t *testing.T) {
	buf := AppendUint64(nil, 42)
	out := make([]uint64, 2)
	_, ok := ReadUint64Slice(buf, 0, out)
	assert.False(t, ok)
}
