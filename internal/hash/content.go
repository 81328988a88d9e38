// Package hash fingerprints resource payloads.
package hash

import "github.com/cespare/xxhash/v2"

// Content computes the xxHash64 fingerprint of a resource payload.
func Content(data []byte) uint64 {
	return xxhash.Sum64(data)
}
