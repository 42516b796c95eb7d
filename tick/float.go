package tick

import (
	"math"

	"github.com/NewYaroslav/datafeedhub-go/endian"
)

func appendFloat64(dst []byte, v float64, eng endian.EndianEngine) []byte {
	return eng.AppendUint64(dst, math.Float64bits(v))
}

func readFloat64(src []byte, eng endian.EndianEngine) float64 {
	return math.Float64frombits(eng.Uint64(src))
}
