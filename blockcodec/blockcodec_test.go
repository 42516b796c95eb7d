package blockcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/tick"
)

func sampleTicks() []tick.MarketTick {
	base := uint64(1_700_000_000_000)
	ticks := make([]tick.MarketTick, 5)
	last := 100.0
	for i := range ticks {
		last += float64(i) * 0.05
		ticks[i] = tick.MarketTick{
			TimeMS: base + uint64(i)*250,
			Last:   last,
			Volume: 1.5 + float64(i%2),
			Flags:  tick.UpdateLast | tick.UpdateVolume,
		}
		if i%2 == 0 {
			ticks[i].SetFlag(tick.UpdateTickFromBuy)
		} else {
			ticks[i].SetFlag(tick.UpdateTickFromSell)
		}
	}

	return ticks
}

func sampleConfig() tick.Config {
	return tick.Config{
		PriceDigits:  2,
		VolumeDigits: 1,
		TickSize:     0.01,
		Flags:        tick.StorageTradeBased | tick.StorageEnableVolume | tick.StorageEnableTickFlags,
	}
}

func TestCodec_CompressedRoundTrip(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())

	ticks := sampleTicks()
	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)
	require.True(t, c.Probe(frame))

	out, err := c.Decode(frame, nil)
	require.NoError(t, err)
	require.Len(t, out, len(ticks))

	for i := range ticks {
		assert.InDelta(t, ticks[i].Last, out[i].Last, 1e-9)
		assert.InDelta(t, ticks[i].Volume, out[i].Volume, 1e-9)
		assert.Equal(t, ticks[i].TimeMS, out[i].TimeMS)
	}
}

func TestCodec_DecodeAppendsToOut(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())

	ticks := sampleTicks()
	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)

	existing := []tick.MarketTick{{TimeMS: 1}}
	out, err := c.Decode(frame, existing)
	require.NoError(t, err)
	assert.Len(t, out, 1+len(ticks))
	assert.Equal(t, uint64(1), out[0].TimeMS)
}

func TestCodec_RawRoundTrip(t *testing.T) {
	c := NewCodec()
	cfg := sampleConfig()
	cfg.Flags |= tick.StorageRawBinary
	c.Configure(cfg)

	ticks := sampleTicks()
	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), frame[0])

	out, err := c.Decode(frame, nil)
	require.NoError(t, err)
	assert.Equal(t, ticks, out)
}

func TestCodec_Probe_RejectsGarbage(t *testing.T) {
	c := NewCodec()
	assert.False(t, c.Probe([]byte{0xAB}))
	assert.False(t, c.Probe(nil))
}

func TestCodec_Decode_BadSignature(t *testing.T) {
	c := NewCodec()
	_, err := c.Decode([]byte{0xAB, 0x01}, nil)
	assert.Error(t, err)
}

func TestCodec_EncodeWith_DoesNotMutateStoredConfig(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())
	other := sampleConfig()
	other.PriceDigits = 4

	_, err := c.EncodeWith(sampleTicks(), other, nil)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), c.Config().PriceDigits)
}

func TestCodec_DictionaryFingerprint_NonZero(t *testing.T) {
	c := NewCodec()
	assert.NotZero(t, c.DictionaryFingerprint())
}

func TestCodec_Encode_RejectsEmptyBlock(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())
	_, err := c.Encode(nil, nil)
	assert.Error(t, err)
}

func TestCodec_EncodeWith_UnsupportedConfigWhenNeitherFlagSet(t *testing.T) {
	c := NewCodec()
	cfg := sampleConfig()
	cfg.Flags = 0

	_, err := c.EncodeWith(sampleTicks(), cfg, nil)
	assert.ErrorIs(t, err, dfherrs.ErrUnsupportedConfig)
}

// TestCodec_CompressedRoundTrip_LastUpdatedOnlyOnFirstTick covers testable
// property 1: LAST_UPDATED is restored only on the first decoded tick, and
// only when the original first tick carried it.
func TestCodec_CompressedRoundTrip_LastUpdatedOnlyOnFirstTick(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())

	ticks := sampleTicks()
	// Only the first tick carries LAST_UPDATED; the rest do not.
	for i := 1; i < len(ticks); i++ {
		ticks[i].Flags &^= tick.UpdateLast
	}

	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)

	out, err := c.Decode(frame, nil)
	require.NoError(t, err)
	require.Len(t, out, len(ticks))

	assert.True(t, out[0].HasFlag(tick.UpdateLast))
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].HasFlag(tick.UpdateLast), "tick %d should not have LAST_UPDATED", i)
	}
}

func TestCodec_CompressedRoundTrip_NoFirstTickLastUpdated(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())

	ticks := sampleTicks()
	for i := range ticks {
		ticks[i].Flags &^= tick.UpdateLast
	}

	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)

	out, err := c.Decode(frame, nil)
	require.NoError(t, err)
	for i := range out {
		assert.False(t, out[i].HasFlag(tick.UpdateLast), "tick %d should not have LAST_UPDATED", i)
	}
}

// TestCodec_CompressedRoundTrip_SideBitSourcedFromBuyFlag covers testable
// property 1's buy/sell restoration: the wire bit is bit 4 (TICK_FROM_BUY),
// not bit 5 (TICK_FROM_SELL), and decode clears both before restoring.
func TestCodec_CompressedRoundTrip_SideBitSourcedFromBuyFlag(t *testing.T) {
	c := NewCodec()
	c.Configure(sampleConfig())

	ticks := sampleTicks()
	ticks[0].Flags = tick.UpdateLast | tick.UpdateTickFromBuy
	ticks[1].Flags = tick.UpdateLast | tick.UpdateTickFromSell
	ticks[2].Flags = tick.UpdateLast | tick.UpdateTickFromBuy | tick.UpdateTickFromSell
	ticks[3].Flags = tick.UpdateLast
	ticks[4].Flags = tick.UpdateLast | tick.UpdateTickFromBuy

	frame, err := c.Encode(ticks, nil)
	require.NoError(t, err)

	out, err := c.Decode(frame, nil)
	require.NoError(t, err)
	require.Len(t, out, len(ticks))

	// bit 4 set -> restored as buy.
	assert.True(t, out[0].HasFlag(tick.UpdateTickFromBuy))
	assert.False(t, out[0].HasFlag(tick.UpdateTickFromSell))

	// bit 4 clear -> restored as sell, regardless of bit 5.
	assert.True(t, out[1].HasFlag(tick.UpdateTickFromSell))
	assert.False(t, out[1].HasFlag(tick.UpdateTickFromBuy))

	// both bits originally set -> bit 4 still wins.
	assert.True(t, out[2].HasFlag(tick.UpdateTickFromBuy))
	assert.False(t, out[2].HasFlag(tick.UpdateTickFromSell))

	// neither bit originally set -> bit 4 clear -> restored as sell.
	assert.True(t, out[3].HasFlag(tick.UpdateTickFromSell))
	assert.False(t, out[3].HasFlag(tick.UpdateTickFromBuy))

	assert.True(t, out[4].HasFlag(tick.UpdateTickFromBuy))
	assert.False(t, out[4].HasFlag(tick.UpdateTickFromSell))
}
