// Package blockcodec implements the L4 block codec and L5 dispatcher from
// SPEC_FULL.md §4.10: the compressed-frame header (precision + column
// selection bits, base hour, expiration timestamps, initial price, tick
// size), the raw-binary fallback frame, and the Codec type that ties the
// whole pipeline together behind the External Interfaces contract in
// SPEC_FULL.md §8.
//
// Grounded on original_source's TickCompressorV1.hpp (compress/decompress
// method bodies: header byte layout, field write order), expressed as a
// typed header struct with explicit bit-flag accessor methods rather than
// raw byte manipulation scattered through the encoder.
package blockcodec

import "github.com/NewYaroslav/datafeedhub-go/tick"

const (
	flagEnableTickFlags byte = 1 << 5
	flagTradeBased      byte = 1 << 6
	flagEnableVolume    byte = 1 << 7

	flagFirstTickLastUpdated byte = 1 << 5

	priceDigitsMask  byte = 0x1F
	volumeDigitsMask byte = 0x1F
)

// header is the in-memory form of the two leading configuration bytes of
// a compressed frame.
type header struct {
	priceDigits  uint8
	volumeDigits uint8
	flags        tick.StorageFlags

	// firstTickLastUpdated records byte 1 bit 5: whether the first tick
	// in the block had LAST_UPDATED set before encoding. It is derived
	// from the tick data at encode time, not from tick.Config, and is
	// restored to exactly one tick (ticks[0]) on decode.
	firstTickLastUpdated bool
}

func headerFromConfig(cfg tick.Config) header {
	return header{
		priceDigits:  cfg.PriceDigits,
		volumeDigits: cfg.VolumeDigits,
		flags:        cfg.Flags,
	}
}

func (h header) toConfig() tick.Config {
	return tick.Config{
		PriceDigits:  h.priceDigits,
		VolumeDigits: h.volumeDigits,
		Flags:        h.flags,
	}
}

func (h header) appendTo(dst []byte) []byte {
	b0 := h.priceDigits & priceDigitsMask
	if h.flags.Has(tick.StorageEnableTickFlags) {
		b0 |= flagEnableTickFlags
	}
	if h.flags.Has(tick.StorageTradeBased) {
		b0 |= flagTradeBased
	}
	if h.flags.Has(tick.StorageEnableVolume) {
		b0 |= flagEnableVolume
	}

	b1 := h.volumeDigits & volumeDigitsMask
	if h.firstTickLastUpdated {
		b1 |= flagFirstTickLastUpdated
	}

	return append(dst, b0, b1)
}

func readHeader(src []byte, offset int) (h header, newOffset int, ok bool) {
	if len(src)-offset < 2 {
		return header{}, offset, false
	}

	b0 := src[offset]
	b1 := src[offset+1]

	h.priceDigits = b0 & priceDigitsMask
	h.volumeDigits = b1 & volumeDigitsMask
	h.firstTickLastUpdated = b1&flagFirstTickLastUpdated != 0

	if b0&flagEnableTickFlags != 0 {
		h.flags |= tick.StorageEnableTickFlags
	}
	if b0&flagTradeBased != 0 {
		h.flags |= tick.StorageTradeBased
	}
	if b0&flagEnableVolume != 0 {
		h.flags |= tick.StorageEnableVolume
	}

	return h, offset + 2, true
}
