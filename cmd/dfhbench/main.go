// Command dfhbench compares dictionary-assisted Zstandard framing
// (zstdframe) against general-purpose compression backends (LZ4, S2, plain
// Zstd with no dictionary), all applied to the same CSV-style text
// rendering of a synthetic block of ticks, to make the benefit of the
// embedded dictionary visible. The column pipelines are not run.
//
// The spec's wire format mandates dictionary-assisted Zstandard only
// (SPEC_FULL.md §4.9), so pierrec/lz4 and klauspost/compress/s2 have no
// home in the core codec; this comparison tool is what lets their
// dependency entries in go.mod earn their keep instead of being dropped
// (see the cmd/dfhbench section of DESIGN.md).
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/NewYaroslav/datafeedhub-go/tick"
	"github.com/NewYaroslav/datafeedhub-go/zstdframe"
)

func syntheticTicks(n int) []tick.MarketTick {
	ticks := make([]tick.MarketTick, n)
	last := 100.00
	base := uint64(1_700_000_000_000)

	for i := range ticks {
		last += math.Sin(float64(i)/7.0) * 0.05
		ticks[i] = tick.MarketTick{
			TimeMS: base + uint64(i)*250,
			Last:   math.Round(last*100) / 100,
			Volume: float64(1 + i%5),
			Flags:  tick.UpdateLast | tick.UpdateVolume,
		}
	}

	return ticks
}

func rawPayload(ticks []tick.MarketTick) []byte {
	var dst []byte
	for _, t := range ticks {
		dst = fmt.Appendf(dst, "%d,%.2f,%.0f\n", t.TimeMS, t.Last, t.Volume)
	}

	return dst
}

func report(name string, original, compressed int) {
	savings := 100 * (1 - float64(compressed)/float64(original))
	fmt.Printf("%-24s %8d -> %8d bytes  (%.1f%% saved)\n", name, original, compressed, savings)
}

func compressLZ4(data []byte) ([]byte, error) {
	var c lz4.Compressor
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

func compressZstdNoDict(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func main() {
	n := flag.Int("ticks", 2000, "number of synthetic ticks to generate")
	flag.Parse()

	ticks := syntheticTicks(*n)
	payload := rawPayload(ticks)

	fmt.Printf("synthetic block: %d ticks, %d bytes uncompressed CSV-ish payload\n\n", len(ticks), len(payload))

	lz4Out, err := compressLZ4(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report("LZ4 (no dict)", len(payload), len(lz4Out))

	s2Out := s2.Encode(nil, payload)
	report("S2 (no dict)", len(payload), len(s2Out))

	zstdOut, err := compressZstdNoDict(payload)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report("Zstd (no dict)", len(payload), len(zstdOut))

	dictFrame, err := zstdframe.Compress(nil, payload, uint32(len(ticks)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	report("Zstd+tick dictionary", len(payload), len(dictFrame))
}
