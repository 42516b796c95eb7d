package tick

// Config describes the per-stream parameters needed to compress and
// decompress a block of ticks: fixed-point precision for price and
// volume, the contract's tick size, its expiration timestamps, and which
// optional columns the stream carries. It mirrors original_source's
// TickCodecConfig.hpp and is supplied by the caller in memory, the same
// way a functional-options encoder configures itself at construction time
// rather than from a file or environment.
type Config struct {
	PriceDigits          uint8
	VolumeDigits         uint8
	TickSize             float64
	ExpirationTimeMs     uint64
	NextExpirationTimeMs uint64
	Flags                StorageFlags
}

// WithVolume reports whether the stream carries a volume column.
func (c Config) WithVolume() bool { return c.Flags.Has(StorageEnableVolume) }

// WithTickFlags reports whether the stream carries per-tick aggressor/side
// flags.
func (c Config) WithTickFlags() bool { return c.Flags.Has(StorageEnableTickFlags) }

// TradeBased reports whether the stream holds trade ticks (last+volume)
// rather than quote ticks.
func (c Config) TradeBased() bool { return c.Flags.Has(StorageTradeBased) }
