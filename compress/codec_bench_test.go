package compress

import (
	"fmt"
	"testing"

	"github.com/arloliu/dbpf/format"
)

// generateBenchmarkData creates test data for benchmarks
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// data already initialized to zeros
	case "compressible":
		pattern := []byte("GZPS property set: name=hair_brown age=adult gender=female ")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

func BenchmarkCodecs(b *testing.B) {
	kinds := []format.CompressionType{format.CompressionZLib, format.CompressionRefPack}
	for _, kind := range kinds {
		codec, _ := GetCodec(kind)
		for _, shape := range []string{"highly_compressible", "compressible", "incompressible"} {
			data := generateBenchmarkData(64*1024, shape)
			compressed, _ := codec.Compress(data)

			b.Run(fmt.Sprintf("%s/%s/Compress", kind, shape), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					_, _ = codec.Compress(data)
				}
			})
			b.Run(fmt.Sprintf("%s/%s/Decompress", kind, shape), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				for b.Loop() {
					_, _ = codec.Decompress(compressed, len(data))
				}
			})
		}
	}
}
