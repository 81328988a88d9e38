package compress

import (
	"fmt"
	"log/slog"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/dbpf/compress/refpack"
	"github.com/arloliu/dbpf/internal/options"
)

// DefaultZLibLevel is the deflate level used when none is configured.
const DefaultZLibLevel = zlib.BestCompression

// Config holds codec settings shared by CreateCodec and NewSet.
type Config struct {
	ZLibLevel         int
	RefPackVariants   []refpack.Variant
	RefPackEncoder    refpack.Variant
	RefPackChainDepth int
	DetectAmbiguity   bool
	Logger            *slog.Logger
}

// Option configures a Config.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{
		ZLibLevel:         DefaultZLibLevel,
		RefPackVariants:   refpack.DefaultVariants,
		RefPackEncoder:    refpack.Maxis,
		RefPackChainDepth: refpack.DefaultChainDepth,
		Logger:            slog.New(slog.DiscardHandler),
	}
}

func newConfig(opts ...Option) (*Config, error) {
	return options.Build(defaultConfig, opts...)
}

// WithZLibLevel sets the deflate level (zlib.HuffmanOnly through zlib.BestCompression).
func WithZLibLevel(level int) Option {
	return options.New(func(c *Config) error {
		if level < zlib.HuffmanOnly || level > zlib.BestCompression {
			return fmt.Errorf("invalid zlib level %d", level)
		}
		c.ZLibLevel = level

		return nil
	})
}

// WithRefPackVariants sets the RefPack decoding trial order.
func WithRefPackVariants(variants ...refpack.Variant) Option {
	return options.New(func(c *Config) error {
		if len(variants) == 0 {
			return fmt.Errorf("refpack variant list is empty")
		}
		c.RefPackVariants = variants

		return nil
	})
}

// WithRefPackChainDepth bounds the RefPack encoder's match search.
func WithRefPackChainDepth(depth int) Option {
	return options.NoError(func(c *Config) {
		c.RefPackChainDepth = depth
	})
}

// WithAmbiguityDetection makes RefPack decoding try every variant and warn
// when more than one accepts a blob.
func WithAmbiguityDetection(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.DetectAmbiguity = enabled
	})
}

// WithLogger sets the logger used for codec warnings.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	})
}
