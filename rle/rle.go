// Package rle implements the L2 run-length codecs from SPEC_FULL.md §4.5:
// the zero-run RLE used on the price, volume, time and trade-ID code
// streams, plus a general RLE for runs of arbitrary (not just zero)
// values. No column pipeline calls the general form.
//
// Grounded on original_source's repeat_encoding.hpp: encode_zero_with_repeats
// emits one token per literal (token = value<<1) and one token per run of
// zeros (token = (run_length<<1)|1); encode_with_repeats generalizes this to
// runs of any repeated value using a bits-wide value field and run length
// packed into the high bits of a second word.
package rle

// EncodeZeroRuns scans values and appends one token per literal
// (literal<<1) or one token per run of consecutive zeros
// ((runLength<<1)|1) to dst, returning the extended slice.
func EncodeZeroRuns(dst []uint64, values []uint64) []uint64 {
	i := 0
	for i < len(values) {
		if values[i] != 0 {
			dst = append(dst, values[i]<<1)
			i++

			continue
		}

		run := 0
		for i+run < len(values) && values[i+run] == 0 {
			run++
		}

		dst = append(dst, (uint64(run)<<1)|1)
		i += run
	}

	return dst
}

// DecodeZeroRuns inverts EncodeZeroRuns, appending the expanded values to
// dst and returning the extended slice.
func DecodeZeroRuns(dst []uint64, tokens []uint64) []uint64 {
	for _, tok := range tokens {
		if tok&1 == 0 {
			dst = append(dst, tok>>1)

			continue
		}

		run := tok >> 1
		for j := uint64(0); j < run; j++ {
			dst = append(dst, 0)
		}
	}

	return dst
}

// RunToken is one decoded (value, count) pair from a general RLE stream,
// where count == 1 denotes a literal.
type RunToken struct {
	Value uint64
	Count uint64
}

// EncodeRuns scans values and appends one RunToken per maximal run of
// identical values (count==1 for isolated values) to dst. Unlike
// EncodeZeroRuns this applies to every value, not just zero. No column
// pipeline uses it; the trade-ID codec, like the core columns, uses
// EncodeZeroRuns.
func EncodeRuns(dst []RunToken, values []uint64) []RunToken {
	i := 0
	for i < len(values) {
		run := 1
		for i+run < len(values) && values[i+run] == values[i] {
			run++
		}

		dst = append(dst, RunToken{Value: values[i], Count: uint64(run)})
		i += run
	}

	return dst
}

// DecodeRuns inverts EncodeRuns.
func DecodeRuns(dst []uint64, tokens []RunToken) []uint64 {
	for _, tok := range tokens {
		for j := uint64(0); j < tok.Count; j++ {
			dst = append(dst, tok.Value)
		}
	}

	return dst
}
