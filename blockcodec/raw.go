package blockcodec

import (
	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/tick"
	"github.com/NewYaroslav/datafeedhub-go/varint"
	"github.com/NewYaroslav/datafeedhub-go/zigzag"
	"github.com/NewYaroslav/datafeedhub-go/zstdframe"
)

// EncodeRaw builds the uncompressed fallback frame: {signature=0x00,
// num_ticks, price_digits, volume_digits, base_hour, expiration deltas,
// raw ticks}. It exists for blocks too small or too irregular for the
// dictionary codec to help, and as a format both sides can always fall
// back to, per SPEC_FULL.md §4.10.
func EncodeRaw(dst []byte, ticks []tick.MarketTick, cfg tick.Config) ([]byte, error) {
	if len(ticks) == 0 {
		return nil, dfherrs.ErrEmptyBlock
	}

	dst = append(dst, zstdframe.SignatureRaw)
	dst = varint.AppendUint32(dst, uint32(len(ticks)))
	dst = append(dst, cfg.PriceDigits, cfg.VolumeDigits)

	baseHour := uint32(ticks[0].TimeMS / msPerHour)
	baseHourMS := uint64(baseHour) * msPerHour
	dst = varint.AppendUint32(dst, baseHour)
	dst = varint.AppendUint64(dst, zigzag.Encode64(int64(cfg.ExpirationTimeMs)-int64(baseHourMS)))
	dst = varint.AppendUint64(dst, zigzag.Encode64(int64(cfg.NextExpirationTimeMs)-int64(baseHourMS)))

	for _, t := range ticks {
		dst = tick.AppendRaw(dst, t, eng)
	}

	return dst, nil
}

// DecodeRaw inverts EncodeRaw, starting at src[offset].
func DecodeRaw(src []byte, offset int) (ticks []tick.MarketTick, cfg tick.Config, newOffset int, err error) {
	if offset >= len(src) || src[offset] != zstdframe.SignatureRaw {
		return nil, tick.Config{}, offset, dfherrs.ErrBadSignature
	}
	offset++

	n, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
	}

	if len(src)-offset < 2 {
		return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
	}
	cfg.PriceDigits = src[offset]
	cfg.VolumeDigits = src[offset+1]
	offset += 2

	baseHour, offset, ok := varint.ReadUint32(src, offset)
	if !ok {
		return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
	}
	baseHourMS := uint64(baseHour) * msPerHour

	expDelta, offset, ok := varint.ReadUint64(src, offset)
	if !ok {
		return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
	}
	cfg.ExpirationTimeMs = uint64(int64(baseHourMS) + zigzag.Decode64(expDelta))

	nextExpDelta, offset, ok := varint.ReadUint64(src, offset)
	if !ok {
		return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
	}
	cfg.NextExpirationTimeMs = uint64(int64(baseHourMS) + zigzag.Decode64(nextExpDelta))

	ticks = make([]tick.MarketTick, n)
	for i := range ticks {
		var t tick.MarketTick
		var ok bool
		t, offset, ok = tick.ReadRaw(src, offset, eng)
		if !ok {
			return nil, tick.Config{}, offset, dfherrs.ErrTruncatedInput
		}
		ticks[i] = t
	}

	return ticks, cfg, offset, nil
}
