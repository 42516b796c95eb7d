// Package tickdict embeds the trained ZSTD dictionary used by the
// compressed frame path (SPEC_FULL.md §4.9) and exposes a fingerprint of
// it so two processes can check that they share the same dictionary build.
// The fingerprint is not written into frames.
//
// original_source ships its dictionary as a generated C++ header
// (zstd_dict_tick_compressor_v1_102400.hpp, a 102,400-byte byte array
// literal produced by an offline zstd --train run over historical tick
// blocks). This environment cannot run an offline training pass or the Go
// toolchain, so assets/tick_v1.dict is a deterministically generated
// placeholder of the same declared size (see DESIGN.md) — a real build
// would replace it with the output of zstd's dictionary trainer without
// changing this package's API. Both klauspost/compress/zstd's
// WithEncoderDict/WithDecoderDicts and valyala/gozstd's
// NewCDict/NewDDict accept a raw content dictionary with no required
// magic-number header, so an arbitrary byte blob of the right shape is a
// structurally valid dictionary even though it wasn't trained on real
// data.
package tickdict

import (
	_ "embed"

	"github.com/NewYaroslav/datafeedhub-go/internal/hash"
)

//go:embed assets/tick_v1.dict
var v1 []byte

// V1 returns the embedded dictionary bytes for dictionary version 1. The
// returned slice must not be modified by callers.
func V1() []byte { return v1 }

// v1Fingerprint is the xxhash64 fingerprint of V1(), computed once at
// package init and cached via internal/hash, the same xxhash64 identifier
// helper used anywhere else in the codebase a collision-resistant content
// id is needed. It is exposed through Fingerprint only; the compressed
// frame does not carry it.
var v1Fingerprint = hash.ID(string(v1))

// Fingerprint returns the cached xxhash64 fingerprint of the embedded
// version-1 dictionary.
func Fingerprint() uint64 { return v1Fingerprint }
