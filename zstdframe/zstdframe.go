// Package zstdframe implements the L3 ZSTD dictionary wrapper from
// SPEC_FULL.md §4.9: it compresses/decompresses a raw column-stream block
// against the embedded tick dictionary (internal/tickdict) and adds the
// vbyte-framed {signature, num_ticks} envelope the L4 block codec expects.
//
// Uses a pooled-encoder/decoder shape (klauspost/compress/zstd for the
// primary build, a cgo-backed valyala/gozstd alternative kept behind a
// `//go:build nobuild` gate so it only compiles when explicitly selected).
// Every call compresses against internal/tickdict.V1 — the dictionary is
// what makes short tick blocks compress well, per SPEC_FULL.md §2.
package zstdframe

import (
	"fmt"

	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/internal/tickdict"
	"github.com/NewYaroslav/datafeedhub-go/varint"
)

// SignatureCompressed and SignatureRaw are the leading frame bytes the L5
// dispatcher (blockcodec) switches on, per SPEC_FULL.md §4.10.
const (
	SignatureRaw        byte = 0x00
	SignatureCompressed byte = 0x01
)

// Compress wraps the dictionary-compressed form of payload in the
// {signature=0x01, num_ticks, zstd_frame} envelope and appends it to dst.
func Compress(dst []byte, payload []byte, numTicks uint32) ([]byte, error) {
	compressed, err := compressWithDict(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dfherrs.ErrCompressionBackend, err)
	}

	dst = append(dst, SignatureCompressed)
	dst = varint.AppendUint32(dst, numTicks)
	dst = append(dst, compressed...)

	return dst, nil
}

// Decompress reads the {signature, num_ticks, zstd_frame} envelope from
// src[offset:], verifies the signature is SignatureCompressed, and returns
// the decompressed payload, the tick count, and the offset just past the
// frame.
func Decompress(src []byte, offset int) (payload []byte, numTicks uint32, newOffset int, err error) {
	if offset >= len(src) {
		return nil, 0, offset, dfherrs.ErrTruncatedInput
	}

	if src[offset] != SignatureCompressed {
		return nil, 0, offset, dfherrs.ErrBadSignature
	}
	offset++

	numTicks, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, 0, offset, dfherrs.ErrTruncatedInput
	}

	payload, err = decompressWithDict(src[offset:])
	if err != nil {
		return nil, 0, offset, fmt.Errorf("%w: %w", dfherrs.ErrCompressionBackend, err)
	}

	return payload, numTicks, len(src), nil
}

// DictionaryFingerprint returns the xxhash64 fingerprint of the embedded
// dictionary this package compresses against.
func DictionaryFingerprint() uint64 {
	return tickdict.Fingerprint()
}
