package pixel

import "strconv"

// Config controls the conversion formula.
type Config struct {
	// BaseSize is the pixel value of one unit. Non-positive values fall
	// back to the default.
	BaseSize float64

	// MaxSize caps the input pixel value before conversion. Zero means
	// uncapped.
	MaxSize float64

	// Unit is the suffix of the produced string, e.g. "rem".
	Unit string
}

// DefaultConfig returns the standard configuration.
// BaseSize: 16, MaxSize: uncapped, Unit: "rem"
func DefaultConfig() Config {
	return Config{BaseSize: 16, Unit: "rem"}
}

// EffectiveSize returns px clamped to MaxSize when a cap is set.
func (c Config) EffectiveSize(px float64) float64 {
	if c.MaxSize > 0 && px > c.MaxSize {
		return c.MaxSize
	}
	return px
}

// Converter returns a function mapping a pixel value to a sized unit
// string under cfg. Zero-value fields fall back to the defaults, so
// Converter(Config{}) behaves like Converter(DefaultConfig()).
func Converter(cfg Config) func(px float64) string {
	def := DefaultConfig()
	if cfg.BaseSize <= 0 {
		cfg.BaseSize = def.BaseSize
	}
	if cfg.Unit == "" {
		cfg.Unit = def.Unit
	}

	return func(px float64) string {
		v := cfg.EffectiveSize(px) / cfg.BaseSize
		return strconv.FormatFloat(v, 'f', -1, 64) + cfg.Unit
	}
}
