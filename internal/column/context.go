// Package column implements the L3 column encoders/decoders from
// SPEC_FULL.md §4.8: one pipeline per tick field (price, volume, time,
// side flags), each built out of the L1/L2 primitives in varint, zigzag,
// delta, rle, freqcode, fixedpoint and bitpack. A Context holds the
// reusable scratch buffers the pipelines share across calls, the same
// role a per-encoder scratch buffer plays in avoiding reallocation on
// every call (see internal/pool).
//
// Grounded on original_source's TickEncoderV1.hpp/TickDecoderV1.hpp, whose
// per-column methods this package's EncodePriceColumn/EncodeVolumeColumn/
// EncodeTimeColumn/EncodeSideColumn mirror in both name and pipeline order.
package column

import "github.com/NewYaroslav/datafeedhub-go/internal/pool"

// Context owns the scratch buffers reused across Encode* calls on the
// same *blockcodec.Codec instance; the Decode* functions do not take one. It is not safe for concurrent use;
// see the concurrency model in SPEC_FULL.md §7.
type Context struct {
	i64 pool.Int64Scratch
	u32 pool.Uint32Scratch
	u64 pool.Uint64Scratch
}

// NewContext returns a ready-to-use Context.
func NewContext() *Context { return &Context{} }
