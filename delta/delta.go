// Package delta implements the L2 delta transform from SPEC_FULL.md §4.4:
// plain signed delta (with a safe int32-range check and int64 retry path),
// monotone/sorted unsigned delta, and the delta+zig-zag composite used by
// the price column.
//
// Grounded on original_source's zig_zag_delta.hpp: encode_delta_int32
// throws std::overflow_error when a delta doesn't fit a signed 32-bit
// word and the caller (TickEncoderV1::encode_price_last) retries at
// int64; encode_delta_sorted assumes a non-decreasing sequence and skips
// zig-zag entirely since every delta is already non-negative; timestamps
// specifically go through encode_time_delta, which additionally rejects a
// decreasing successor instead of silently wrapping.
//
// Go has no typed overflow exception, and a raw `int32(delta)` truncation
// would silently produce the wrong value instead of signaling overflow the
// way the C++ originals do. Every narrowing Encode* function here
// (EncodeInt32, EncodeSortedUint32, EncodeZigZagInt32) instead computes
// the delta in a 64-bit word and range-checks it before narrowing, returning
// ok=false on overflow so the caller (internal/column) can retry on the
// wide path — this mirrors the original's control flow without relying on
// undefined or silently-wrapping signed-integer behavior.
package delta

import "math"

// EncodeInt32 computes successive deltas of values (seeded by initial) and
// narrows each to int32. ok is false, and encoding stops, at the first
// delta that does not fit in [math.MinInt32, math.MaxInt32].
func EncodeInt32(dst []int32, values []int64, initial int64) (ok bool) {
	prev := initial

	for i, v := range values {
		d := v - prev
		if d > math.MaxInt32 || d < math.MinInt32 {
			return false
		}

		dst[i] = int32(d)
		prev = v
	}

	return true
}

// DecodeInt32 inverts EncodeInt32.
func DecodeInt32(dst []int64, deltas []int32, initial int64) {
	prev := initial
	for i, d := range deltas {
		prev += int64(d)
		dst[i] = prev
	}
}

// EncodeInt64 computes successive deltas of values (seeded by initial)
// with no range restriction.
func EncodeInt64(dst []int64, values []int64, initial int64) {
	prev := initial
	for i, v := range values {
		dst[i] = v - prev
		prev = v
	}
}

// DecodeInt64 inverts EncodeInt64.
func DecodeInt64(dst []int64, deltas []int64, initial int64) {
	prev := initial
	for i, d := range deltas {
		prev += d
		dst[i] = prev
	}
}

// EncodeSortedUint32 computes successive deltas of a non-decreasing
// sequence (seeded by initial) as unsigned values, narrowed to uint32. ok
// is false if the sequence decreases or a delta exceeds uint32 range.
func EncodeSortedUint32(dst []uint32, values []uint64, initial uint64) (ok bool) {
	prev := initial

	for i, v := range values {
		if v < prev {
			return false
		}

		d := v - prev
		if d > math.MaxUint32 {
			return false
		}

		dst[i] = uint32(d)
		prev = v
	}

	return true
}

// DecodeSortedUint32 inverts EncodeSortedUint32.
func DecodeSortedUint32(dst []uint64, deltas []uint32, initial uint64) {
	prev := initial
	for i, d := range deltas {
		prev += uint64(d)
		dst[i] = prev
	}
}

// EncodeSortedUint64 is the unrestricted-width form of EncodeSortedUint32,
// used for the time column's delta stage before frequency remapping.
func EncodeSortedUint64(dst []uint64, values []uint64, initial uint64) (ok bool) {
	prev := initial

	for i, v := range values {
		if v < prev {
			return false
		}

		dst[i] = v - prev
		prev = v
	}

	return true
}

// DecodeSortedUint64 inverts EncodeSortedUint64.
func DecodeSortedUint64(dst []uint64, deltas []uint64, initial uint64) {
	prev := initial
	for i, d := range deltas {
		prev += d
		dst[i] = prev
	}
}
