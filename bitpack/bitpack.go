// Package bitpack implements the L1 bit-packed codec from SPEC_FULL.md
// §4.2: fixed-width and auto-width packing of unsigned 32-bit integers into
// a minimal number of bits per block of 128 values.
//
// The block size and the "one bit-width byte per 128-value block" framing
// for the auto-width form are taken from original_source's simdcomp.hpp
// (SIMDBlockSize = 128, a header byte written by append_simdcomp's
// no-explicit-bit overload). The retrieved Akron-fastpfor-go repo shows the
// idiomatic Go way to gate a SIMD fast path behind golang.org/x/sys/cpu
// (initSIMDSelection in simdpack.go): hasSSE2 selects a function pointer at
// init time, falling back to a scalar implementation that remains the
// source of truth. This package keeps only the detection half of that
// shape: cpu.X86.HasAVX2 / cpu.ARM64.HasASIMD set the hasFastPath flag,
// but there is no vectorized packer to select, so Pack/Unpack always run
// the scalar implementation (see DESIGN.md).
package bitpack

import "golang.org/x/sys/cpu"

// BlockSize is the number of values packed per auto-width block, matching
// original_source's SIMDBlockSize.
const BlockSize = 128

// hasFastPath records whether the host could in principle run a vectorized
// packer. The scalar implementation below is always used; this flag exists
// so the package shape matches the corpus's feature-gated dispatch pattern
// and so a future vectorized implementation has a ready hook.
var hasFastPath = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// HasFastPath reports whether the process detected a vector instruction
// set at startup. It does not change the bits produced by Pack/Unpack.
func HasFastPath() bool { return hasFastPath }

// MaxBits returns the number of bits required to represent the largest
// value in values, 0 if values is empty or all zero.
func MaxBits(values []uint32) int {
	var max uint32
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	return bitsNeeded(max)
}

func bitsNeeded(v uint32) int {
	n := 0
	for v != 0 {
		n++
		v >>= 1
	}

	return n
}

// PackedLen returns the number of bytes required to pack n values at the
// given bit width.
func PackedLen(n, bits int) int {
	return (n*bits + 7) / 8
}

// Pack bit-packs values at a fixed width of bits into dst, LSB-first, and
// returns the extended slice. values may be any length — PackAuto is what
// chunks a longer stream into BlockSize-value blocks with a per-block
// width header; Pack itself packs the whole slice at one fixed width.
// bits must be in [0,32] and every value must fit in bits bits; callers
// choose bits via MaxBits.
func Pack(dst []byte, values []uint32, bits int) []byte {
	if bits == 0 {
		return dst
	}

	var acc uint64
	accBits := 0

	for _, v := range values {
		acc |= uint64(v) << accBits
		accBits += bits

		for accBits >= 8 {
			dst = append(dst, byte(acc))
			acc >>= 8
			accBits -= 8
		}
	}

	if accBits > 0 {
		dst = append(dst, byte(acc))
	}

	return dst
}

// Unpack reads len(dst) values packed at a fixed width of bits from src
// starting at offset, into dst, and returns the new offset.
func Unpack(src []byte, offset int, dst []uint32, bits int) int {
	if bits == 0 {
		for i := range dst {
			dst[i] = 0
		}

		return offset
	}

	mask := uint64(1)<<uint(bits) - 1

	var acc uint64
	accBits := 0
	pos := offset

	for i := range dst {
		for accBits < bits {
			acc |= uint64(src[pos]) << accBits
			pos++
			accBits += 8
		}

		dst[i] = uint32(acc & mask)
		acc >>= uint(bits)
		accBits -= bits
	}

	return pos
}

// PackAuto packs values in chunks of BlockSize, writing one bit-width
// header byte before each chunk's packed payload (the last chunk may be
// shorter than BlockSize). It mirrors original_source's no-explicit-bit
// append_simdcomp overload.
func PackAuto(dst []byte, values []uint32) []byte {
	for i := 0; i < len(values); i += BlockSize {
		end := i + BlockSize
		if end > len(values) {
			end = len(values)
		}

		chunk := values[i:end]
		bits := MaxBits(chunk)
		dst = append(dst, byte(bits))
		dst = Pack(dst, chunk, bits)
	}

	return dst
}

// UnpackAuto inverts PackAuto, reading len(dst) values from src starting
// at offset into dst, and returns the new offset.
func UnpackAuto(src []byte, offset int, dst []uint32) int {
	pos := offset

	for i := 0; i < len(dst); i += BlockSize {
		end := i + BlockSize
		if end > len(dst) {
			end = len(dst)
		}

		bits := int(src[pos])
		pos++
		pos = Unpack(src, pos, dst[i:end], bits)
	}

	return pos
}

// AutoLen returns the number of bytes PackAuto would emit for n values
// with the given per-block bit widths, used by callers that need to
// preallocate. blockBits must have one entry per BlockSize-sized chunk of
// the n values (ceil(n/BlockSize) entries).
func AutoLen(n int, blockBits []int) int {
	total := 0
	remaining := n

	for _, bits := range blockBits {
		chunkLen := BlockSize
		if remaining < chunkLen {
			chunkLen = remaining
		}

		total += 1 + PackedLen(chunkLen, bits)
		remaining -= chunkLen
	}

	return total
}
