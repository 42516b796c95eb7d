package column

import (
	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/fixedpoint"
)

// EncodeVolumeColumn scales volumes to fixed-point at the given decimal
// precision and frequency/RLE-packs them directly, with no delta stage:
// trade volumes repeat heavily (same lot size traded over and over) but
// rarely form a useful monotone or small-delta sequence the way price and
// time do, so original_source's encode_volume skips straight from scaling
// to the frequency remap.
//
// Grounded on original_source's TickEncoderV1::encode_volume.
func EncodeVolumeColumn(ctx *Context, dst []byte, volumes []float64, digits uint8) ([]byte, error) {
	narrow := make([]uint32, len(volumes))
	wide := false

	for i, v := range volumes {
		s, ok, err := fixedpoint.ScaleVolumeInt32(v, int(digits))
		if err != nil {
			return nil, dfherrs.ErrPrecisionOutOfRange
		}
		if !ok {
			wide = true

			break
		}
		narrow[i] = s
	}

	if !wide {
		dst = append(dst, 0)
		values := make([]uint64, len(narrow))
		for i, v := range narrow {
			values[i] = uint64(v)
		}

		return encodeFreqRLE(dst, values), nil
	}

	values := make([]uint64, len(volumes))
	for i, v := range volumes {
		s, ok, err := fixedpoint.ScaleVolumeInt64(v, int(digits))
		if err != nil {
			return nil, dfherrs.ErrPrecisionOutOfRange
		}
		if !ok {
			return nil, errOverflow64
		}
		values[i] = s
	}

	dst = append(dst, 1)

	return encodeFreqRLE(dst, values), nil
}

// DecodeVolumeColumn inverts EncodeVolumeColumn, decoding n volumes
// starting at src[offset], and returns the new offset.
func DecodeVolumeColumn(src []byte, offset int, n int, digits uint8) (volumes []float64, newOffset int, ok bool) {
	if offset >= len(src) {
		return nil, offset, false
	}
	offset++ // wide flag, irrelevant to decode: values are already uint64

	values, offset, ok := decodeFreqRLE(src, offset, n)
	if !ok {
		return nil, offset, false
	}

	volumes = make([]float64, n)
	for i, v := range values {
		vol, err := fixedpoint.UnscaleVolume(v, int(digits))
		if err != nil {
			return nil, offset, false
		}
		volumes[i] = vol
	}

	return volumes, offset, true
}
