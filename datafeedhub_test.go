package datafeedhub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NewYaroslav/datafeedhub-go/tick"
)

func TestEncodeDecode_TopLevelWrappers(t *testing.T) {
	cfg := tick.Config{
		PriceDigits:  2,
		VolumeDigits: 0,
		Flags:        tick.StorageTradeBased | tick.StorageEnableVolume,
	}

	ticks := []tick.MarketTick{
		{TimeMS: 1000, Last: 10.00, Volume: 5, Flags: tick.UpdateLast | tick.UpdateVolume},
		{TimeMS: 1500, Last: 10.05, Volume: 3, Flags: tick.UpdateLast | tick.UpdateVolume},
	}

	frame, err := Encode(ticks, cfg, nil)
	require.NoError(t, err)

	out, gotCfg, err := Decode(frame, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, cfg.PriceDigits, gotCfg.PriceDigits)
	assert.InDelta(t, 10.00, out[0].Last, 1e-9)
	assert.InDelta(t, 10.05, out[1].Last, 1e-9)
}

func TestNewCodec_ReusableAcrossBlocks(t *testing.T) {
	cfg := tick.Config{PriceDigits: 1, Flags: tick.StorageTradeBased}
	c := NewCodec(cfg)

	block1 := []tick.MarketTick{{TimeMS: 0, Last: 5.0, Flags: tick.UpdateLast}}
	block2 := []tick.MarketTick{{TimeMS: 0, Last: 6.0, Flags: tick.UpdateLast}}

	f1, err := c.Encode(block1, nil)
	require.NoError(t, err)
	f2, err := c.Encode(block2, nil)
	require.NoError(t, err)

	out1, err := c.Decode(f1, nil)
	require.NoError(t, err)
	out2, err := c.Decode(f2, nil)
	require.NoError(t, err)

	assert.InDelta(t, 5.0, out1[0].Last, 1e-9)
	assert.InDelta(t, 6.0, out2[0].Last, 1e-9)
}
