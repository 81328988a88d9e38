package compress

import (
	"log/slog"

	"github.com/arloliu/dbpf/compress/refpack"
)

// RefPackCompressor implements the RefPack (0xFFFF) kind.
//
// Decompression tries the configured variants in order; compression always
// writes the configured canonical variant.
type RefPackCompressor struct {
	decoder refpack.Decoder
	encoder refpack.Encoder
	logger  *slog.Logger
}

var _ Codec = (*RefPackCompressor)(nil)

// NewRefPackCompressor creates a RefPack codec from cfg.
func NewRefPackCompressor(cfg *Config) *RefPackCompressor {
	return &RefPackCompressor{
		decoder: refpack.Decoder{Variants: cfg.RefPackVariants, DetectAmbiguity: cfg.DetectAmbiguity},
		encoder: refpack.Encoder{Variant: cfg.RefPackEncoder, ChainDepth: cfg.RefPackChainDepth},
		logger:  cfg.Logger,
	}
}

// Compress encodes data as a RefPack blob.
func (c *RefPackCompressor) Compress(data []byte) ([]byte, error) {
	return c.encoder.Encode(data)
}

// Decompress decodes a RefPack blob. When size is known the blob's own
// declared size must agree with it; variants that disagree are skipped
// before any output is allocated.
func (c *RefPackCompressor) Decompress(data []byte, size int) ([]byte, error) {
	res, err := c.decoder.DecodeSized(data, size)
	if err != nil {
		return nil, err
	}

	if res.Ambiguous {
		names := make([]string, len(res.Matches))
		for i, v := range res.Matches {
			names[i] = v.Name()
		}
		c.logger.Warn("ambiguous refpack blob",
			slog.String("chosen", res.Variant.Name()),
			slog.Any("matches", names),
			slog.Int("size", len(res.Data)))
	}

	return res.Data, nil
}
