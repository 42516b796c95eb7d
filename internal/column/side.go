package column

import "github.com/NewYaroslav/datafeedhub-go/bitpack"

// EncodeSideColumn packs one aggressor-side bit per tick, bit 4 of the
// original update flags word (1 = buy-initiated, 0 = sell-initiated),
// LSB-first.
//
// original_source's encode_side_flags reads bit 4 (bif_offset = 4) of the
// flags word, not bit 5; original_source's encode_side_flags also packs
// MSB-first while decode_side_flags reads LSB-first — a genuine asymmetry
// in the original (SPEC_FULL.md §5, Open Question 4). This implementation
// uses LSB-first for both directions so encode/decode round-trip
// correctly, while preserving bit 4 as the source bit.
func EncodeSideColumn(dst []byte, buy []bool) []byte {
	values := make([]uint32, len(buy))
	for i, b := range buy {
		if b {
			values[i] = 1
		}
	}

	return bitpack.Pack(dst, values, 1)
}

// DecodeSideColumn inverts EncodeSideColumn, decoding n side bits starting
// at src[offset], and returns the new offset. A true entry means bit 4 of
// the original flags word was set (buy-initiated).
func DecodeSideColumn(src []byte, offset int, n int) (buy []bool, newOffset int) {
	bits := make([]uint32, n)
	newOffset = bitpack.Unpack(src, offset, bits, 1)

	buy = make([]bool, n)
	for i, b := range bits {
		buy[i] = b != 0
	}

	return buy, newOffset
}
