package pool

import "sync"

// int32SlicePool backs the hash-chain tables of the RefPack encoder.
var int32SlicePool = sync.Pool{
	New: func() any { return &[]int32{} },
}

// GetInt32Slice retrieves an int32 slice of exactly size elements from the pool.
//
// The contents are not cleared; callers that need a zeroed or filled table must
// initialize it themselves. The caller must call the returned cleanup function
// to return the slice to the pool.
//
// Example:
//
//	head, cleanup := pool.GetInt32Slice(1 << 16)
//	defer cleanup()
func GetInt32Slice(size int) ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int32, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { int32SlicePool.Put(ptr) }
}
