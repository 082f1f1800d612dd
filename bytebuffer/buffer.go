// Package bytebuffer implements the fixed size region that backs a cursor
// buffer, along with the allocation primitive used to create it.
//
// The position is kept inside [0, Len()] by every method that changes the
// position or the region.
package bytebuffer

// Allocator is the primitive that hands out contiguous byte storage
type Allocator interface {
	// Alloc returns size bytes, all set to fill
	Alloc(size int, fill byte) []byte

	// AllocUninitialized returns size bytes with unspecified content
	AllocUninitialized(size int) []byte
}

// HeapAllocator allocates regions on the go heap
type HeapAllocator struct{}

// Alloc implements Allocator
func (HeapAllocator) Alloc(size int, fill byte) []byte {
	b := make([]byte, size)
	if fill != 0 {
		for i := range b {
			b[i] = fill
		}
	}
	return b
}

// AllocUninitialized implements Allocator.
//
// The go runtime zeroes every allocation, so this is only a promise callers
// can not rely on the content.
func (HeapAllocator) AllocUninitialized(size int) []byte {
	return make([]byte, size)
}

// DefaultAllocator is used when no other Allocator is specified
var DefaultAllocator Allocator = HeapAllocator{}
