// Package varint implements the VByte codec from SPEC_FULL.md §0/4.1: a
// 1-10 byte little-endian, continuation-bit encoding for unsigned 32- and
// 64-bit integers.
//
// The wire format is deliberately the classic LEB128-style layout — low 7
// bits of the value per byte, high bit set on every byte but the last — the
// same layout original_source's vbyte.hpp wraps via libdivide's vbyte.h.
// Go's encoding/binary.Uvarint/PutUvarint already implement exactly this
// bit layout, so this package is a thin, domain-named wrapper around the
// standard library rather than a reimplementation: no third-party library
// in the retrieved corpus provides this exact format (mhr3/streamvbyte, the
// closest candidate, groups four values with a separate control-byte
// stream and is wire-incompatible — see DESIGN.md).
package varint

import "encoding/binary"

// MaxLen32 is the maximum number of bytes AppendUint32 can emit.
const MaxLen32 = binary.MaxVarintLen32

// MaxLen64 is the maximum number of bytes AppendUint64 can emit.
const MaxLen64 = binary.MaxVarintLen64

// AppendUint32 appends the VByte encoding of v to dst and returns the
// extended slice.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.AppendUvarint(dst, uint64(v))
}

// AppendUint64 appends the VByte encoding of v to dst and returns the
// extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// AppendUint32Slice appends the VByte encoding of every element of values,
// in order, to dst.
func AppendUint32Slice(dst []byte, values []uint32) []byte {
	for _, v := range values {
		dst = AppendUint32(dst, v)
	}

	return dst
}

// AppendUint64Slice appends the VByte encoding of every element of values,
// in order, to dst.
func AppendUint64Slice(dst []byte, values []uint64) []byte {
	for _, v := range values {
		dst = AppendUint64(dst, v)
	}

	return dst
}

// ReadUint32 decodes one VByte-encoded uint32 starting at src[offset] and
// returns the value and the new offset. It reports a truncated-input
// condition via ok=false so callers can surface dfherrs.ErrTruncatedInput.
func ReadUint32(src []byte, offset int) (value uint32, newOffset int, ok bool) {
	v, n := binary.Uvarint(src[offset:])
	if n <= 0 || v > 0xFFFFFFFF {
		return 0, offset, false
	}

	return uint32(v), offset + n, true
}

// ReadUint64 decodes one VByte-encoded uint64 starting at src[offset] and
// returns the value and the new offset.
func ReadUint64(src []byte, offset int) (value uint64, newOffset int, ok bool) {
	v, n := binary.Uvarint(src[offset:])
	if n <= 0 {
		return 0, offset, false
	}

	return v, offset + n, true
}

// ReadUint32Slice decodes count VByte-encoded uint32 values into dst
// (which must have length count) starting at src[offset], returning the new
// offset.
func ReadUint32Slice(src []byte, offset int, dst []uint32) (newOffset int, ok bool) {
	for i := range dst {
		v, next, ok := ReadUint32(src, offset)
		if !ok {
			return offset, false
		}
		dst[i] = v
		offset = next
	}

	return offset, true
}

// ReadUint64Slice decodes count VByte-encoded uint64 values into dst
// starting at src[offset], returning the new offset.
func ReadUint64Slice(src []byte, offset int, dst []uint64) (newOffset int, ok bool) {
	for i := range dst {
		v, next, ok := ReadUint64(src, offset)
		if !ok {
			return offset, false
		}
		dst[i] = v
		offset = next
	}

	return offset, true
}
