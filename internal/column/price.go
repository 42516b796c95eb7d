package column

import (
	"github.com/NewYaroslav/datafeedhub-go/delta"
	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/fixedpoint"
)

// EncodePriceColumn scales prices to fixed-point at the given decimal
// precision, delta+zig-zag encodes them against initialScaled (the
// stream's already-scaled initial price, per the frame header), and
// frequency/RLE-packs the residual stream. It tries the narrow (int32
// delta) path first and falls back to the wide (int64 delta) path on
// overflow, writing a leading byte recording which path was used so
// DecodePriceColumn is self-describing.
//
// Grounded on original_source's TickEncoderV1::encode_price_last.
func EncodePriceColumn(ctx *Context, dst []byte, prices []float64, digits uint8, initialScaled int64) ([]byte, error) {
	scaled := ctx.i64.Get(len(prices))
	for i, p := range prices {
		s, ok, err := fixedpoint.ScaleInt64(p, int(digits))
		if err != nil {
			return nil, dfherrs.ErrPrecisionOutOfRange
		}
		if !ok {
			return nil, errOverflow64
		}
		scaled[i] = s
	}

	zz32 := ctx.u32.Get(len(scaled))
	if delta.EncodeZigZagInt32(zz32, scaled, initialScaled) {
		dst = append(dst, 0)
		values := make([]uint64, len(zz32))
		for i, v := range zz32 {
			values[i] = uint64(v)
		}

		return encodeFreqRLE(dst, values), nil
	}

	zz64 := ctx.u64.Get(len(scaled))
	delta.EncodeZigZagInt64(zz64, scaled, initialScaled)
	dst = append(dst, 1)

	return encodeFreqRLE(dst, zz64), nil
}

// DecodePriceColumn inverts EncodePriceColumn, decoding n prices starting
// at src[offset], and returns the new offset.
func DecodePriceColumn(src []byte, offset int, n int, digits uint8, initialScaled int64) (prices []float64, newOffset int, ok bool) {
	if offset >= len(src) {
		return nil, offset, false
	}
	wide := src[offset] != 0
	offset++

	values, offset, ok := decodeFreqRLE(src, offset, n)
	if !ok {
		return nil, offset, false
	}

	scaled := make([]int64, n)
	if wide {
		delta.DecodeZigZagInt64(scaled, values, initialScaled)
	} else {
		zz32 := make([]uint32, n)
		for i, v := range values {
			zz32[i] = uint32(v)
		}
		delta.DecodeZigZagInt32(scaled, zz32, initialScaled)
	}

	prices = make([]float64, n)
	for i, s := range scaled {
		p, err := fixedpoint.UnscaleInt64(s, int(digits))
		if err != nil {
			return nil, offset, false
		}
		prices[i] = p
	}

	return prices, offset, true
}
