package dbpf

import (
	"log/slog"

	"github.com/arloliu/dbpf/compress"
	"github.com/arloliu/dbpf/compress/refpack"
	"github.com/arloliu/dbpf/internal/options"
	"github.com/arloliu/dbpf/resource"
)

type config struct {
	logger    *slog.Logger
	decoder   resource.Decoder
	codecOpts []compress.Option
}

// Option configures how a File is read, transformed and written.
type Option = options.Option[*config]

func defaultConfig() *config {
	return &config{logger: slog.New(slog.DiscardHandler)}
}

func newConfig(opts ...Option) (*config, error) {
	return options.Build(defaultConfig, opts...)
}

func (c *config) env() (*resource.Env, error) {
	codecs, err := compress.NewSet(append(c.codecOpts, compress.WithLogger(c.logger))...)
	if err != nil {
		return nil, err
	}

	return &resource.Env{Codecs: codecs, Decoder: c.decoder, Logger: c.logger}, nil
}

// WithLogger sets the logger for load and write milestones and codec warnings.
// The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithDecoder sets the per-type decoder used by resource.Data.Decoded.
func WithDecoder(d resource.Decoder) Option {
	return options.NoError(func(c *config) {
		c.decoder = d
	})
}

// WithRefPackVariants sets the RefPack decoding trial order.
// The default is refpack.DefaultVariants.
func WithRefPackVariants(variants ...refpack.Variant) Option {
	return options.NoError(func(c *config) {
		c.codecOpts = append(c.codecOpts, compress.WithRefPackVariants(variants...))
	})
}

// WithAmbiguityDetection makes RefPack decoding try every variant and log a
// warning when more than one accepts a blob.
func WithAmbiguityDetection(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.codecOpts = append(c.codecOpts, compress.WithAmbiguityDetection(enabled))
	})
}

// WithZLibLevel sets the deflate level used when entries are written as ZLib.
func WithZLibLevel(level int) Option {
	return options.NoError(func(c *config) {
		c.codecOpts = append(c.codecOpts, compress.WithZLibLevel(level))
	})
}

// WithRefPackChainDepth bounds the RefPack encoder's match search.
func WithRefPackChainDepth(depth int) Option {
	return options.NoError(func(c *config) {
		c.codecOpts = append(c.codecOpts, compress.WithRefPackChainDepth(depth))
	})
}
