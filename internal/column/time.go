package column

import (
	"github.com/NewYaroslav/datafeedhub-go/delta"
)

// EncodeTimeColumn delta-encodes a non-decreasing sequence of millisecond
// timestamps against initial (the stream's base time) and frequency/
// RLE-packs the resulting deltas. No zig-zag stage is needed: a
// non-decreasing sequence only ever produces non-negative deltas.
//
// Grounded on original_source's TickEncoderV1::encode_time (via
// encode_time_delta). ok is false if any timestamp is strictly less than
// its predecessor — the non-monotonic-timestamp condition from
// SPEC_FULL.md §7.
func EncodeTimeColumn(ctx *Context, dst []byte, timesMS []uint64, initial uint64) ([]byte, bool) {
	deltas := ctx.u64.Get(len(timesMS))
	if !delta.EncodeSortedUint64(deltas, timesMS, initial) {
		return dst, false
	}

	return encodeFreqRLE(dst, deltas), true
}

// DecodeTimeColumn inverts EncodeTimeColumn, decoding n timestamps
// starting at src[offset], and returns the new offset.
func DecodeTimeColumn(src []byte, offset int, n int, initial uint64) (timesMS []uint64, newOffset int, ok bool) {
	deltas, offset, ok := decodeFreqRLE(src, offset, n)
	if !ok {
		return nil, offset, false
	}

	timesMS = make([]uint64, n)
	delta.DecodeSortedUint64(timesMS, deltas, initial)

	return timesMS, offset, true
}
