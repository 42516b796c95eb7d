package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodePriceColumn_RoundTrip(t *testing.T) {
	ctx := NewContext()
	prices := []float64{100.25, 100.26, 100.26, 99.90, 101.50}
	initialScaled := int64(10000) // 100.00 at 2 digits

	buf, err := EncodePriceColumn(ctx, nil, prices, 2, initialScaled)
	require.NoError(t, err)

	out, _, ok := DecodePriceColumn(buf, 0, len(prices), 2, initialScaled)
	require.True(t, ok)
	for i := range prices {
		assert.InDelta(t, prices[i], out[i], 1e-9)
	}
}

func TestEncodeDecodeVolumeColumn_RoundTrip(t *testing.T) {
	ctx := NewContext()
	volumes := []float64{1.5, 1.5, 1.5, 2.0, 0.5}

	buf, err := EncodeVolumeColumn(ctx, nil, volumes, 1)
	require.NoError(t, err)

	out, _, ok := DecodeVolumeColumn(buf, 0, len(volumes), 1)
	require.True(t, ok)
	for i := range volumes {
		assert.InDelta(t, volumes[i], out[i], 1e-9)
	}
}

func TestEncodeDecodeTimeColumn_RoundTrip(t *testing.T) {
	ctx := NewContext()
	times := []uint64{1000, 1000, 1050, 2000, 2000, 2001}

	buf, ok := EncodeTimeColumn(ctx, nil, times, 1000)
	require.True(t, ok)

	out, _, ok := DecodeTimeColumn(buf, 0, len(times), 1000)
	require.True(t, ok)
	assert.Equal(t, times, out)
}

func TestEncodeTimeColumn_RejectsNonMonotonic(t *testing.T) {
	ctx := NewContext()
	times := []uint64{1000, 900}
	_, ok := EncodeTimeColumn(ctx, nil, times, 1000)
	assert.False(t, ok)
}

func TestEncodeDecodeSideColumn_RoundTrip(t *testing.T) {
	buy := []bool{true, false, false, true, true, false, true}
	buf := EncodeSideColumn(nil, buy)

	out, _ := DecodeSideColumn(buf, 0, len(buy))
	assert.Equal(t, buy, out)
}

func TestEncodeDecodeTradeIDColumn_RoundTrip(t *testing.T) {
	ids := []uint64{1000, 1001, 1002, 1010, 1011}
	buf := EncodeTradeIDColumn(nil, ids, 999)

	out, _, ok := DecodeTradeIDColumn(buf, 0, len(ids), 999)
	require.True(t, ok)
	assert.Equal(t, ids, out)
}

func TestEncodeDecodePriceColumn_WidePath(t *testing.T) {
	ctx := NewContext()
	// force an int32-overflowing delta
	prices := []float64{0, 3000000000.0}
	initialScaled := int64(0)

	buf, err := EncodePriceColumn(ctx, nil, prices, 0, initialScaled)
	require.NoError(t, err)
	assert.Equal(t, byte(1), buf[0], "wide-path flag byte should be set")

	out, _, ok := DecodePriceColumn(buf, 0, len(prices), 0, initialScaled)
	require.True(t, ok)
	for i := range prices {
		assert.InDelta(t, prices[i], out[i], 1e-6)
	}
}
