// Package tick defines the market-tick data model shared by every layer of
// the codec: the MarketTick struct, its status/update/storage flag bit
// sets, and the 56-byte raw-binary wire layout used by the uncompressed
// fallback frame (blockcodec). The compressed path does not use that
// layout: blockcodec splits MarketTick fields into per-column slices.
//
// Grounded on original_source/include/DataFeedHub/data/ticks/MarketTick.hpp
// and flags.hpp: field order, flag bit positions, and the 56-byte size are
// carried over unchanged — this is exactly the kind of wire-format detail
// SPEC_FULL.md's Open Question 1 says to resolve from original_source
// rather than invent.
package tick

import "github.com/NewYaroslav/datafeedhub-go/endian"

// UpdateFlags records which fields of a tick actually changed, matching
// original_source's TickUpdateFlags bit layout.
type UpdateFlags uint64

const (
	UpdateNone        UpdateFlags = 0
	UpdateBid         UpdateFlags = 1 << 0
	UpdateAsk         UpdateFlags = 1 << 1
	UpdateLast        UpdateFlags = 1 << 2
	UpdateVolume      UpdateFlags = 1 << 3
	UpdateTickFromBuy UpdateFlags = 1 << 4
	UpdateTickFromSell UpdateFlags = 1 << 5
	UpdateBestMatch   UpdateFlags = 1 << 6
)

// Has reports whether every bit in want is set in f.
func (f UpdateFlags) Has(want UpdateFlags) bool { return f&want == want }

// StatusFlags records tick provenance, matching original_source's
// TickStatusFlags.
type StatusFlags uint64

const (
	StatusNone        StatusFlags = 0
	StatusRealtime    StatusFlags = 1 << 0
	StatusInitialized StatusFlags = 1 << 1
)

// StorageFlags selects which columns a stream carries and how, matching
// original_source's TickStorageFlags and the frame header bit layout
// described in SPEC_FULL.md §4.10.
type StorageFlags uint8

const (
	StorageNone            StorageFlags = 0
	StorageTradeBased      StorageFlags = 1 << 0
	StorageEnableTickFlags StorageFlags = 1 << 1
	StorageEnableRecvTime  StorageFlags = 1 << 2
	StorageEnableVolume    StorageFlags = 1 << 3
	StorageRawBinary       StorageFlags = 1 << 5
)

// Has reports whether every bit in want is set in f.
func (f StorageFlags) Has(want StorageFlags) bool { return f&want == want }

// MarketTick is a single trade/quote update. Field order matches
// original_source's MarketTick struct exactly, since that order defines
// the 56-byte raw-binary layout.
type MarketTick struct {
	TimeMS     uint64
	ReceivedMS uint64
	Ask        float64
	Bid        float64
	Last       float64
	Volume     float64
	Flags      UpdateFlags
}

// SetFlag sets the given update flag bits.
func (t *MarketTick) SetFlag(f UpdateFlags) { t.Flags |= f }

// HasFlag reports whether every bit in f is set.
func (t *MarketTick) HasFlag(f UpdateFlags) bool { return t.Flags.Has(f) }

// RawSize is the fixed size in bytes of one MarketTick in the raw-binary
// layout: two uint64 timestamps, four float64 fields, one uint64 flags
// word.
const RawSize = 8 + 8 + 8 + 8 + 8 + 8 + 8

// AppendRaw appends the raw-binary encoding of t to dst using the given
// endian engine, returning the extended slice.
func AppendRaw(dst []byte, t MarketTick, eng endian.EndianEngine) []byte {
	dst = eng.AppendUint64(dst, t.TimeMS)
	dst = eng.AppendUint64(dst, t.ReceivedMS)
	dst = appendFloat64(dst, t.Ask, eng)
	dst = appendFloat64(dst, t.Bid, eng)
	dst = appendFloat64(dst, t.Last, eng)
	dst = appendFloat64(dst, t.Volume, eng)
	dst = eng.AppendUint64(dst, uint64(t.Flags))

	return dst
}

// ReadRaw decodes one MarketTick from src[offset:] using the given endian
// engine, returning the tick and the new offset. ok is false if fewer than
// RawSize bytes remain.
func ReadRaw(src []byte, offset int, eng endian.EndianEngine) (t MarketTick, newOffset int, ok bool) {
	if len(src)-offset < RawSize {
		return MarketTick{}, offset, false
	}

	t.TimeMS = eng.Uint64(src[offset:])
	offset += 8
	t.ReceivedMS = eng.Uint64(src[offset:])
	offset += 8
	t.Ask = readFloat64(src[offset:], eng)
	offset += 8
	t.Bid = readFloat64(src[offset:], eng)
	offset += 8
	t.Last = readFloat64(src[offset:], eng)
	offset += 8
	t.Volume = readFloat64(src[offset:], eng)
	offset += 8
	t.Flags = UpdateFlags(eng.Uint64(src[offset:]))
	offset += 8

	return t, offset, true
}
