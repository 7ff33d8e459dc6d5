package utils

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 6  // 64 B
	maxClassShift = 20 // 1 MiB
)

// BufferSizeClass lists the pooled capacities, 64 B through 1 MiB, doubling.
var BufferSizeClass = func() [maxClassShift - minClassShift + 1]int {
	var classes [maxClassShift - minClassShift + 1]int
	for i := range classes {
		classes[i] = 1 << (minClassShift + i)
	}
	return classes
}()

const (
	MinPooledSize = 1 << minClassShift
	MaxPooledSize = 1 << maxClassShift
)

// SizeIndex returns the index of the smallest class holding n bytes, or -1
// when n is not poolable.
func SizeIndex(n int) int {
	if n <= 0 || n > MaxPooledSize {
		return -1
	}
	if n <= MinPooledSize {
		return 0
	}
	idx := bits.Len(uint(n - 1))
	return idx - minClassShift
}

type BufferPool struct {
	pools [len(BufferSizeClass)]sync.Pool
}

func NewBufferPool() *BufferPool {
	var bp BufferPool
	for i, sz := range BufferSizeClass {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

// Acquire returns a buffer of length n whose capacity is its size class.
func (bp *BufferPool) Acquire(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

func (bp *BufferPool) AcquireZeroed(n int) []byte {
	buf := bp.Acquire(n)
	clear(buf)
	return buf
}

// Release returns the buffer to its pool if its capacity matches a class.
func (bp *BufferPool) Release(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < MinPooledSize || c > MaxPooledSize {
		return // not a valid class
	}
	idx := bits.Len(uint(c)) - 1 - minClassShift
	buf = buf[:c]
	bp.pools[idx].Put(&buf)
}

// Shared is the process-wide pool used by pooled writers.
var Shared = NewBufferPool()
