package column

import (
	"math"

	"github.com/NewYaroslav/datafeedhub-go/bitpack"
	"github.com/NewYaroslav/datafeedhub-go/freqcode"
	"github.com/NewYaroslav/datafeedhub-go/rle"
	"github.com/NewYaroslav/datafeedhub-go/varint"
)

// encodeFreqRLE is the shared tail stage used by every column pipeline
// once the column's values have been reduced to a uint64 sequence:
// frequency-remap to ascending codes (freqcode), zero-run RLE the codes
// (rle), then emit the frequency table and the RLE token stream.
//
// The frequency table is bit-packed with the auto-width L1 codec
// (bitpack.PackAuto) when every table value fits in 32 bits — the common
// case, since tables hold distinct deltas or scaled values, not raw
// 64-bit magnitudes — and falls back to VByte when it doesn't. The RLE
// token stream is always VByte-encoded: a literal token is value<<1,
// which can already exceed 32 bits, so it has no fixed width for
// bitpack's block framing to exploit the way the frequency table's bounded
// codes do.
func encodeFreqRLE(dst []byte, values []uint64) []byte {
	table, codes := freqcode.EncodeFrequency(values)

	dst = varint.AppendUint32(dst, uint32(len(table.Values)))

	wideTable := false
	for _, v := range table.Values {
		if v > math.MaxUint32 {
			wideTable = true

			break
		}
	}

	if wideTable {
		dst = append(dst, 1)
		dst = varint.AppendUint64Slice(dst, table.Values)
	} else {
		dst = append(dst, 0)
		narrow := make([]uint32, len(table.Values))
		for i, v := range table.Values {
			narrow[i] = uint32(v)
		}
		dst = bitpack.PackAuto(dst, narrow)
	}

	codes64 := make([]uint64, len(codes))
	for i, c := range codes {
		codes64[i] = uint64(c)
	}

	tokens := rle.EncodeZeroRuns(nil, codes64)
	dst = varint.AppendUint32(dst, uint32(len(tokens)))
	dst = varint.AppendUint64Slice(dst, tokens)

	return dst
}

// decodeFreqRLE inverts encodeFreqRLE, decoding n values starting at
// src[offset], and returns the new offset.
func decodeFreqRLE(src []byte, offset int, n int) (values []uint64, newOffset int, ok bool) {
	tableLen, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, offset, false
	}

	if offset >= len(src) {
		return nil, offset, false
	}
	wideTable := src[offset] != 0
	offset++

	var table freqcode.Table
	if wideTable {
		table.Values = make([]uint64, tableLen)
		offset, ok = varint.ReadUint64Slice(src, offset, table.Values)
		if !ok {
			return nil, offset, false
		}
	} else {
		narrow := make([]uint32, tableLen)
		offset = bitpack.UnpackAuto(src, offset, narrow)
		table.Values = make([]uint64, tableLen)
		for i, v := range narrow {
			table.Values[i] = uint64(v)
		}
	}

	tokenCount, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, offset, false
	}

	tokens := make([]uint64, tokenCount)
	offset, ok = varint.ReadUint64Slice(src, offset, tokens)
	if !ok {
		return nil, offset, false
	}

	codes64 := rle.DecodeZeroRuns(make([]uint64, 0, n), tokens)
	if len(codes64) != n {
		return nil, offset, false
	}

	codes := make([]uint32, n)
	for i, c := range codes64 {
		codes[i] = uint32(c)
	}

	values = make([]uint64, n)
	if !freqcode.DecodeFrequency(values, codes, table) {
		return nil, offset, false
	}

	return values, offset, true
}
