//go:build nobuild

// This file provides a cgo-backed alternative compression path using
// valyala/gozstd, gated behind a `//go:build nobuild` tag so it never
// compiles by default (gozstd requires cgo and a vendored C zstd, which
// this module does not assume is available). It is kept as a documented,
// ready-to-enable alternative rather than deleted.
package zstdframe

import (
	"github.com/valyala/gozstd"

	"github.com/NewYaroslav/datafeedhub-go/internal/tickdict"
)

var cDict, _ = gozstd.NewCDictLevel(tickdict.V1(), 3)
var dDict, _ = gozstd.NewDDict(tickdict.V1())

func compressWithDict(data []byte) ([]byte, error) {
	return gozstd.CompressDict(nil, data, cDict), nil
}

func decompressWithDict(data []byte) ([]byte, error) {
	return gozstd.DecompressDict(nil, data, dDict)
}
