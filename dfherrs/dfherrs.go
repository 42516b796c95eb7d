// Package dfherrs defines the sentinel errors every fatal condition in
// SPEC_FULL.md §7 surfaces through, centralized in one place so callers
// can use errors.Is against a stable set instead of matching on error
// strings scattered through the codec.
package dfherrs

import "errors"

var (
	// ErrPrecisionOutOfRange is returned when a Config requests more than
	// 18 decimal digits of price or volume precision.
	ErrPrecisionOutOfRange = errors.New("dfherrs: precision out of range [0,18]")

	// ErrUnsupportedConfig is returned when a Config selects no frame
	// path: neither StorageRawBinary nor StorageTradeBased is set.
	ErrUnsupportedConfig = errors.New("dfherrs: unsupported codec configuration")

	// ErrBadSignature is returned by the L5 dispatcher when the leading
	// frame byte is neither the raw-binary nor the compressed signature.
	ErrBadSignature = errors.New("dfherrs: unrecognized frame signature")

	// ErrTruncatedInput is returned when a frame ends before a field it
	// declares can be fully read.
	ErrTruncatedInput = errors.New("dfherrs: truncated input")

	// ErrNonMonotonicTimestamp is returned when a tick's time is strictly
	// less than the previous tick's time within the same block.
	ErrNonMonotonicTimestamp = errors.New("dfherrs: non-monotonic timestamp")

	// ErrCompressionBackend wraps a failure returned by the underlying
	// zstd implementation.
	ErrCompressionBackend = errors.New("dfherrs: compression backend error")

	// ErrEmptyBlock is returned when Encode is called with zero ticks;
	// the wire format has no representation for an empty compressed block.
	ErrEmptyBlock = errors.New("dfherrs: block contains no ticks")

	// ErrValueOutOfRange is returned when a price or volume does not fit
	// even the wide 64-bit fixed-point representation at the configured
	// precision. Unlike the internal delta-overflow/scale-overflow signals
	// (which retry on the 64-bit path and never reach the caller), this
	// fires only once that retry has already failed.
	ErrValueOutOfRange = errors.New("dfherrs: value out of fixed-point range")
)
