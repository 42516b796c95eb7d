package delta

import (
	"math"

	"github.com/NewYaroslav/datafeedhub-go/zigzag"
)

// EncodeZigZagInt32 composes EncodeInt32 with a zig-zag remap in one pass,
// matching original_source's encode_last_delta_zig_zag_int32 used by the
// price column. ok is false on the same int32-range overflow EncodeInt32
// reports.
func EncodeZigZagInt32(dst []uint32, values []int64, initial int64) (ok bool) {
	prev := initial

	for i, v := range values {
		d := v - prev
		if d > math.MaxInt32 || d < math.MinInt32 {
			return false
		}

		dst[i] = zigzag.Encode32(int32(d))
		prev = v
	}

	return true
}

// DecodeZigZagInt32 inverts EncodeZigZagInt32.
func DecodeZigZagInt32(dst []int64, zigzagged []uint32, initial int64) {
	prev := initial
	for i, z := range zigzagged {
		prev += int64(zigzag.Decode32(z))
		dst[i] = prev
	}
}

// EncodeZigZagInt64 is the unrestricted-width form of EncodeZigZagInt32.
func EncodeZigZagInt64(dst []uint64, values []int64, initial int64) {
	prev := initial
	for i, v := range values {
		dst[i] = zigzag.Encode64(v - prev)
		prev = v
	}
}

// DecodeZigZagInt64 inverts EncodeZigZagInt64.
func DecodeZigZagInt64(dst []int64, zigzagged []uint64, initial int64) {
	prev := initial
	for i, z := range zigzagged {
		prev += zigzag.Decode64(z)
		dst[i] = prev
	}
}
