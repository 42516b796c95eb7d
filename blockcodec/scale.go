package blockcodec

import (
	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/fixedpoint"
)

// scalePrice wraps fixedpoint.ScaleInt64, mapping its one error condition
// (digits outside [0,18]) onto the package-wide dfherrs.ErrPrecisionOutOfRange
// sentinel so callers can errors.Is against a stable error set instead of
// fixedpoint's own internal one.
func scalePrice(v float64, digits uint8) (int64, bool, error) {
	scaled, ok, err := fixedpoint.ScaleInt64(v, int(digits))
	if err != nil {
		return 0, false, dfherrs.ErrPrecisionOutOfRange
	}

	return scaled, ok, nil
}
