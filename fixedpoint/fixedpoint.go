// Package fixedpoint implements the L2 fixed-point scaling transform from
// SPEC_FULL.md §4.7: converting a float64 price or volume to a scaled
// integer at a declared decimal precision (0-18 digits), round-half-away-
// from-zero, with overflow detection so callers can retry at a wider
// integer width.
//
// Grounded on original_source's fixed_point.hpp (normalize_double /
// precision_tolerance, both driven by a power-of-10 table up to 10^18) and
// volume_scaling.hpp (scale_volume_int32 rounds and checks against the
// uint32 range, throwing std::overflow_error for the caller to retry at
// int64; scale_volume restores via multiplication by the reciprocal scale).
package fixedpoint

import (
	"errors"
	"math"
)

// ErrPrecisionOutOfRange is returned when a caller requests a decimal
// digit count outside [0,18], the range original_source's pow10 table
// supports.
var ErrPrecisionOutOfRange = errors.New("fixedpoint: precision out of range [0,18]")

var pow10Table = [19]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// Pow10 returns 10^digits as a float64. digits must be in [0,18].
func Pow10(digits int) (float64, error) {
	if digits < 0 || digits >= len(pow10Table) {
		return 0, ErrPrecisionOutOfRange
	}

	return pow10Table[digits], nil
}

// roundHalfAwayFromZero rounds v to the nearest integer, breaking ties by
// moving away from zero (matching C++'s std::llround/std::round, unlike
// Go's math.RoundToEven).
func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return math.Floor(v + 0.5)
	}

	return math.Ceil(v - 0.5)
}

// ScaleInt64 scales v by 10^digits and rounds to the nearest int64,
// half-away-from-zero. It reports ok=false if the scaled value overflows
// int64.
func ScaleInt64(v float64, digits int) (scaled int64, ok bool, err error) {
	scale, err := Pow10(digits)
	if err != nil {
		return 0, false, err
	}

	r := roundHalfAwayFromZero(v * scale)
	if r > math.MaxInt64 || r < math.MinInt64 {
		return 0, false, nil
	}

	return int64(r), true, nil
}

// UnscaleInt64 restores a float64 from a value previously produced by
// ScaleInt64 at the same digits.
func UnscaleInt64(scaled int64, digits int) (float64, error) {
	scale, err := Pow10(digits)
	if err != nil {
		return 0, err
	}

	return float64(scaled) / scale, nil
}

// ScaleVolumeInt32 scales v by 10^digits and rounds to the nearest
// unsigned value, reporting ok=false if it does not fit in uint32 — the
// signal internal/column uses to retry volume encoding on the 64-bit path,
// matching original_source's scale_volume_int32 overflow check.
func ScaleVolumeInt32(v float64, digits int) (scaled uint32, ok bool, err error) {
	scale, err := Pow10(digits)
	if err != nil {
		return 0, false, err
	}

	r := roundHalfAwayFromZero(v * scale)
	if r < 0 || r > math.MaxUint32 {
		return 0, false, nil
	}

	return uint32(r), true, nil
}

// ScaleVolumeInt64 is the wide form of ScaleVolumeInt32, used once the
// 32-bit path overflows.
func ScaleVolumeInt64(v float64, digits int) (scaled uint64, ok bool, err error) {
	scale, err := Pow10(digits)
	if err != nil {
		return 0, false, err
	}

	r := roundHalfAwayFromZero(v * scale)
	if r < 0 || r > math.MaxUint64 {
		return 0, false, nil
	}

	return uint64(r), true, nil
}

// UnscaleVolume restores a float64 volume from a scaled unsigned integer.
func UnscaleVolume(scaled uint64, digits int) (float64, error) {
	scale, err := Pow10(digits)
	if err != nil {
		return 0, err
	}

	return float64(scaled) / scale, nil
}
