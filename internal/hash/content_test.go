package hash

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"long payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
		{"another payload", []byte("another test string"), 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Content(tt.data))
		})
	}
}

func TestContent_SameBytesSameFingerprint(t *testing.T) {
	a := bytes.Repeat([]byte{0x42}, 1024)
	b := bytes.Repeat([]byte{0x42}, 1024)
	assert.Equal(t, Content(a), Content(b))

	b[512] = 0x43
	assert.NotEqual(t, Content(a), Content(b))
}

func randPayload(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	seededRand.Read(b)

	return b
}

func BenchmarkContent(b *testing.B) {
	payload := randPayload(64 << 10)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for b.Loop() {
		Content(payload)
	}
}
