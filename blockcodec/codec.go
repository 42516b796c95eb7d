package blockcodec

import (
	"github.com/NewYaroslav/datafeedhub-go/dfherrs"
	"github.com/NewYaroslav/datafeedhub-go/internal/column"
	"github.com/NewYaroslav/datafeedhub-go/tick"
	"github.com/NewYaroslav/datafeedhub-go/zstdframe"
)

// Codec is the top-level entry point described in SPEC_FULL.md §8: it owns
// the reusable column-encoding Context and the currently configured
// tick.Config, and dispatches Encode/Decode to the compressed or
// raw-binary frame implementations.
//
// A Codec is not safe for concurrent use; see the concurrency model in
// SPEC_FULL.md §7 (one Context per active encode/decode chain, reused
// serially rather than shared across goroutines).
type Codec struct {
	ctx *column.Context
	cfg tick.Config
}

// NewCodec returns a ready-to-configure Codec.
func NewCodec() *Codec {
	return &Codec{ctx: column.NewContext()}
}

// Configure sets the tick.Config subsequent Encode/Decode calls use.
func (c *Codec) Configure(cfg tick.Config) { c.cfg = cfg }

// Config returns the currently configured tick.Config.
func (c *Codec) Config() tick.Config { return c.cfg }

// Probe reports whether data begins with a recognized frame signature.
func (c *Codec) Probe(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	return data[0] == zstdframe.SignatureRaw || data[0] == zstdframe.SignatureCompressed
}

// Encode compresses ticks using the Codec's current configuration and
// appends the frame to out, returning the extended slice.
func (c *Codec) Encode(ticks []tick.MarketTick, out []byte) ([]byte, error) {
	return c.EncodeWith(ticks, c.cfg, out)
}

// EncodeWith compresses ticks using cfg without changing the Codec's
// stored configuration.
func (c *Codec) EncodeWith(ticks []tick.MarketTick, cfg tick.Config, out []byte) ([]byte, error) {
	switch {
	case cfg.Flags.Has(tick.StorageRawBinary):
		return EncodeRaw(out, ticks, cfg)
	case cfg.Flags.Has(tick.StorageTradeBased):
		return EncodeCompressed(c.ctx, out, ticks, cfg)
	default:
		return nil, dfherrs.ErrUnsupportedConfig
	}
}

// Decode appends the ticks decoded from data to out and returns the
// extended slice, per SPEC_FULL.md §5 Open Question 2 (decode never
// clears the caller's slice).
func (c *Codec) Decode(data []byte, out []tick.MarketTick) ([]tick.MarketTick, error) {
	ticks, cfg, err := c.decode(data)
	if err != nil {
		return out, err
	}

	c.cfg = cfg

	return append(out, ticks...), nil
}

// DecodeWith is Decode's variant that also returns the tick.Config
// recovered from the frame, without mutating the Codec's stored
// configuration.
func (c *Codec) DecodeWith(data []byte, out []tick.MarketTick) ([]tick.MarketTick, tick.Config, error) {
	ticks, cfg, err := c.decode(data)
	if err != nil {
		return out, tick.Config{}, err
	}

	return append(out, ticks...), cfg, nil
}

func (c *Codec) decode(data []byte) ([]tick.MarketTick, tick.Config, error) {
	if len(data) == 0 {
		return nil, tick.Config{}, dfherrs.ErrTruncatedInput
	}

	switch data[0] {
	case zstdframe.SignatureRaw:
		ticks, cfg, _, err := DecodeRaw(data, 0)

		return ticks, cfg, err
	case zstdframe.SignatureCompressed:
		ticks, cfg, _, err := DecodeCompressed(data, 0)

		return ticks, cfg, err
	default:
		return nil, tick.Config{}, dfherrs.ErrBadSignature
	}
}

// DictionaryFingerprint returns the xxhash64 fingerprint of the embedded
// dictionary the compressed path compresses against.
func (c *Codec) DictionaryFingerprint() uint64 {
	return zstdframe.DictionaryFingerprint()
}
