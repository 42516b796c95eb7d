//go:build !nobuild

package zstdframe

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/NewYaroslav/datafeedhub-go/internal/tickdict"
)

// encoderPool and decoderPool hold dictionary-primed zstd encoders/
// decoders. klauspost/compress/zstd encoders and decoders are built to be
// reused after a warmup, so a sync.Pool amortizes that warmup across
// blocks instead of paying it on every Compress/Decompress call.
var encoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
			zstd.WithEncoderDict(tickdict.V1()),
		)
		if err != nil {
			panic(fmt.Sprintf("zstdframe: failed to create pooled encoder: %v", err))
		}

		return enc
	},
}

var decoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderDicts(tickdict.V1()),
		)
		if err != nil {
			panic(fmt.Sprintf("zstdframe: failed to create pooled decoder: %v", err))
		}

		return dec
	},
}

func compressWithDict(data []byte) ([]byte, error) {
	enc := encoderPool.Get().(*zstd.Encoder)
	defer encoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func decompressWithDict(data []byte) ([]byte, error) {
	dec := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(dec)

	return dec.DecodeAll(data, nil)
}
