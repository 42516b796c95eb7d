// Package datafeedhub provides a columnar, dictionary-assisted codec for
// blocks of market ticks, and convenient top-level wrappers around the
// lower-level blockcodec package for the common case of one Codec per
// instrument stream.
//
// # Core Features
//
//   - Lossless fixed-point price/volume compression at a declared decimal
//     precision
//   - Dictionary-assisted Zstandard framing tuned for short tick blocks
//   - A raw-binary fallback frame for blocks too small to benefit from
//     compression
//   - A self-describing dispatcher: Decode works without knowing in
//     advance which frame a block was written with
//
// # Basic Usage
//
//	cfg := tick.Config{
//	    PriceDigits:  2,
//	    VolumeDigits: 0,
//	    Flags:        tick.StorageTradeBased | tick.StorageEnableVolume,
//	}
//	codec := datafeedhub.NewCodec(cfg)
//	frame, err := codec.Encode(ticks, nil)
//	...
//	out, err := codec.Decode(frame, nil)
//
// # Package Structure
//
// This package wraps blockcodec.Codec for the single-stream case. For
// direct column-level access (e.g. to compress a trade-ID column
// standalone, per SPEC_FULL.md §6), use the internal/column and blockcodec
// packages directly from within this module.
package datafeedhub

import (
	"github.com/NewYaroslav/datafeedhub-go/blockcodec"
	"github.com/NewYaroslav/datafeedhub-go/tick"
)

// Codec re-exports blockcodec.Codec as the package's primary type.
type Codec = blockcodec.Codec

// NewCodec creates a Codec configured with cfg, ready for Encode/Decode.
func NewCodec(cfg tick.Config) *Codec {
	c := blockcodec.NewCodec()
	c.Configure(cfg)

	return c
}

// Encode is a convenience wrapper that creates a Codec, configures it
// with cfg, and encodes ticks in one call. Prefer NewCodec directly when
// encoding more than one block with the same configuration, since it
// reuses the Codec's scratch buffers across calls.
func Encode(ticks []tick.MarketTick, cfg tick.Config, out []byte) ([]byte, error) {
	return NewCodec(cfg).Encode(ticks, out)
}

// Decode is a convenience wrapper that creates a Codec and decodes one
// frame. It appends decoded ticks to out and returns the extended slice,
// along with the tick.Config recovered from the frame.
func Decode(data []byte, out []tick.MarketTick) ([]tick.MarketTick, tick.Config, error) {
	return blockcodec.NewCodec().DecodeWith(data, out)
}
