package column

import (
	"github.com/NewYaroslav/datafeedhub-go/bitpack"
	"github.com/NewYaroslav/datafeedhub-go/rle"
	"github.com/NewYaroslav/datafeedhub-go/varint"
	"github.com/NewYaroslav/datafeedhub-go/zigzag"
)

// EncodeTradeIDColumn is a supplemented feature (SPEC_FULL.md §6, not
// present in spec.md and not wired into the block frame): exchange trade
// IDs are usually a tightly-increasing sequence with occasional gaps, so
// original_source's encode_trade_id subtracts 1 from each delta before
// zig-zagging it (a trade ID sequence with no gaps produces an all-zero
// residual after the -1 adjustment, which zero-run RLE then collapses to
// almost nothing) and simdcomp-packs the RLE token stream directly rather
// than going through the frequency table used by the core columns.
//
// Grounded on original_source's TickEncoderV1::encode_trade_id.
func EncodeTradeIDColumn(dst []byte, ids []uint64, initial uint64) []byte {
	prev := initial
	zz := make([]uint64, len(ids))

	for i, id := range ids {
		d := int64(id-prev) - 1
		zz[i] = zigzag.Encode64(d)
		prev = id
	}

	tokens := rle.EncodeZeroRuns(nil, zz)

	dst = varint.AppendUint32(dst, uint32(len(tokens)))

	wide := false
	for _, t := range tokens {
		if t > 0xFFFFFFFF {
			wide = true

			break
		}
	}

	if wide {
		dst = append(dst, 1)
		dst = varint.AppendUint64Slice(dst, tokens)
	} else {
		dst = append(dst, 0)
		narrow := make([]uint32, len(tokens))
		for i, t := range tokens {
			narrow[i] = uint32(t)
		}
		dst = bitpack.PackAuto(dst, narrow)
	}

	return dst
}

// DecodeTradeIDColumn inverts EncodeTradeIDColumn, decoding n trade IDs
// starting at src[offset], and returns the new offset.
func DecodeTradeIDColumn(src []byte, offset int, n int, initial uint64) (ids []uint64, newOffset int, ok bool) {
	tokenCount, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, offset, false
	}

	if offset >= len(src) {
		return nil, offset, false
	}
	wide := src[offset] != 0
	offset++

	tokens := make([]uint64, tokenCount)
	if wide {
		offset, ok = varint.ReadUint64Slice(src, offset, tokens)
		if !ok {
			return nil, offset, false
		}
	} else {
		narrow := make([]uint32, tokenCount)
		offset = bitpack.UnpackAuto(src, offset, narrow)
		for i, v := range narrow {
			tokens[i] = uint64(v)
		}
	}

	zz := rle.DecodeZeroRuns(make([]uint64, 0, n), tokens)
	if len(zz) != n {
		return nil, offset, false
	}

	ids = make([]uint64, n)
	prev := initial
	for i, z := range zz {
		d := zigzag.Decode64(z) + 1
		prev = uint64(int64(prev) + d)
		ids[i] = prev
	}

	return ids, offset, true
}
