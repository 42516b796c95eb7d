package column

import "github.com/NewYaroslav/datafeedhub-go/dfherrs"

// errOverflow64 signals that a value did not fit even the wide 64-bit
// scaled representation; this can only happen for a price/volume so far
// outside any realistic market that it is treated as a fatal,
// caller-visible error rather than a retry signal.
var errOverflow64 = dfherrs.ErrValueOutOfRange
