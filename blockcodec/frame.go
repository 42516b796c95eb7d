package blockcodec

import (
	"math"

	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/endian"
	"github.com/NewYaroslav/datafeedhub-go/internal/column"
	"github.com/NewYaroslav/datafeedhub-go/tick"
	"github.com/NewYaroslav/datafeedhub-go/varint"
	"github.com/NewYaroslav/datafeedhub-go/zigzag"
	"github.com/NewYaroslav/datafeedhub-go/zstdframe"
)

var eng = endian.GetLittleEndianEngine()

const msPerHour = 3600_000

// buildPayload writes the uncompressed {header, base fields, column
// streams} body for one block of ticks. It is this payload, not the raw
// ticks, that zstdframe.Compress wraps with the dictionary and the outer
// {signature, num_ticks} envelope.
func buildPayload(ctx *column.Context, ticks []tick.MarketTick, cfg tick.Config) ([]byte, error) {
	h := headerFromConfig(cfg)
	h.firstTickLastUpdated = ticks[0].HasFlag(tick.UpdateLast)
	dst := h.appendTo(make([]byte, 0, 256))

	baseMS := ticks[0].TimeMS
	baseHour := uint32(baseMS / msPerHour)
	baseHourMS := uint64(baseHour) * msPerHour

	dst = varint.AppendUint32(dst, baseHour)

	dst = varint.AppendUint64(dst, zigzag.Encode64(int64(cfg.ExpirationTimeMs)-int64(baseHourMS)))
	dst = varint.AppendUint64(dst, zigzag.Encode64(int64(cfg.NextExpirationTimeMs)-int64(baseHourMS)))

	initialScaled, ok, err := scalePrice(ticks[0].Last, cfg.PriceDigits)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, dfherrs.ErrValueOutOfRange
	}
	dst = varint.AppendUint64(dst, zigzag.Encode64(initialScaled))

	dst = eng.AppendUint64(dst, math.Float64bits(cfg.TickSize))

	prices := make([]float64, len(ticks))
	timesMS := make([]uint64, len(ticks))
	for i, t := range ticks {
		prices[i] = t.Last
		timesMS[i] = t.TimeMS
	}

	dst, err = column.EncodePriceColumn(ctx, dst, prices, cfg.PriceDigits, initialScaled)
	if err != nil {
		return nil, err
	}

	if cfg.WithVolume() {
		volumes := make([]float64, len(ticks))
		for i, t := range ticks {
			volumes[i] = t.Volume
		}

		dst, err = column.EncodeVolumeColumn(ctx, dst, volumes, cfg.VolumeDigits)
		if err != nil {
			return nil, err
		}
	}

	var timeOK bool
	dst, timeOK = column.EncodeTimeColumn(ctx, dst, timesMS, baseHourMS)
	if !timeOK {
		return nil, dfherrs.ErrNonMonotonicTimestamp
	}

	if cfg.WithTickFlags() {
		buy := make([]bool, len(ticks))
		for i, t := range ticks {
			buy[i] = t.HasFlag(tick.UpdateTickFromBuy)
		}
		dst = column.EncodeSideColumn(dst, buy)
	}

	return dst, nil
}

// parsePayload inverts buildPayload given the known tick count n.
func parsePayload(payload []byte, n int) ([]tick.MarketTick, tick.Config, error) {
	h, offset, ok := readHeader(payload, 0)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	cfg := h.toConfig()

	baseHour, offset, ok := varint.ReadUint32(payload, offset)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	baseHourMS := uint64(baseHour) * msPerHour

	expDelta, offset, ok := varint.ReadUint64(payload, offset)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	cfg.ExpirationTimeMs = uint64(int64(baseHourMS) + zigzag.Decode64(expDelta))

	nextExpDelta, offset, ok := varint.ReadUint64(payload, offset)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	cfg.NextExpirationTimeMs = uint64(int64(baseHourMS) + zigzag.Decode64(nextExpDelta))

	initialDelta, offset, ok := varint.ReadUint64(payload, offset)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	initialScaled := zigzag.Decode64(initialDelta)

	if len(payload)-offset < 8 {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}
	cfg.TickSize = math.Float64frombits(eng.Uint64(payload[offset:]))
	offset += 8

	prices, offset, ok := column.DecodePriceColumn(payload, offset, n, cfg.PriceDigits, initialScaled)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}

	var volumes []float64
	if cfg.WithVolume() {
		volumes, offset, ok = column.DecodeVolumeColumn(payload, offset, n, cfg.VolumeDigits)
		if !ok {
			return nil, tick.Config{}, dfherrs.ErrTruncatedInput
		}
	}

	timesMS, offset, ok := column.DecodeTimeColumn(payload, offset, n, baseHourMS)
	if !ok {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}

	var buy []bool
	if cfg.WithTickFlags() {
		buy, offset = column.DecodeSideColumn(payload, offset, n)
	}

	ticks := make([]tick.MarketTick, n)
	for i := range ticks {
		ticks[i].TimeMS = timesMS[i]
		ticks[i].Last = prices[i]
		if volumes != nil {
			ticks[i].Volume = volumes[i]
			ticks[i].SetFlag(tick.UpdateVolume)
		}
		if buy != nil {
			if buy[i] {
				ticks[i].SetFlag(tick.UpdateTickFromBuy)
			} else {
				ticks[i].SetFlag(tick.UpdateTickFromSell)
			}
		}
	}
	if h.firstTickLastUpdated && n > 0 {
		ticks[0].SetFlag(tick.UpdateLast)
	}

	_ = offset

	return ticks, cfg, nil
}

// EncodeCompressed builds and dictionary-compresses one block of ticks.
func EncodeCompressed(ctx *column.Context, dst []byte, ticks []tick.MarketTick, cfg tick.Config) ([]byte, error) {
	if len(ticks) == 0 {
		return nil, dfherrs.ErrEmptyBlock
	}

	payload, err := buildPayload(ctx, ticks, cfg)
	if err != nil {
		return nil, err
	}

	return zstdframe.Compress(dst, payload, uint32(len(ticks)))
}

// DecodeCompressed inverts EncodeCompressed, starting at src[offset].
func DecodeCompressed(src []byte, offset int) (ticks []tick.MarketTick, cfg tick.Config, newOffset int, err error) {
	payload, numTicks, newOffset, err := zstdframe.Decompress(src, offset)
	if err != nil {
		return nil, tick.Config{}, offset, err
	}

	ticks, cfg, err = parsePayload(payload, int(numTicks))
	if err != nil {
		return nil, tick.Config{}, offset, err
	}

	return ticks, cfg, newOffset, nil
}
