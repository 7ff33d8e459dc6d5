package access

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/quickwritereader/bytebuffer/types"
	"github.com/quickwritereader/bytebuffer/utils"
)

// Writer serializes values into an owned, growable byte buffer.
// It is not safe for concurrent use.
type Writer struct {
	buf    []byte // backing store, len(buf) is the capacity
	pos    int    // bytes already populated
	pooled bool   // backing store comes from utils.Shared
}

// NewWriter returns a Writer whose buffer starts with the given capacity.
func NewWriter(capacity int) *Writer {
	if capacity < 0 {
		capacity = 0
	}
	return &Writer{buf: make([]byte, capacity)}
}

// NewWriterFromPool is like NewWriter but takes its buffers from the shared
// pool. Call Release once the writer and every Bytes view are no longer used.
func NewWriterFromPool(capacity int) *Writer {
	if capacity < 0 {
		capacity = 0
	}
	b := utils.Shared.Acquire(capacity)
	return &Writer{buf: b[:cap(b)], pooled: true}
}

// Release hands a pooled buffer back to the pool. The writer stays usable
// and regrows on the next write.
func (w *Writer) Release() {
	if w.pooled && w.buf != nil {
		utils.Shared.Release(w.buf)
	}
	w.buf = nil
	w.pos = 0
}

// Reset rewinds the write offset to zero. Capacity and contents are kept.
func (w *Writer) Reset() {
	w.pos = 0
}

// Len returns the number of bytes written since the last Reset.
func (w *Writer) Len() int {
	return w.pos
}

// Cap returns the current buffer capacity.
func (w *Writer) Cap() int {
	return len(w.buf)
}

// Bytes returns a view of the written region. It is only valid until the
// next write, Reset or Release.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.pos:w.pos]
}

// ToArray returns a copy of the written region.
func (w *Writer) ToArray() []byte {
	out := make([]byte, w.pos)
	copy(out, w.buf[:w.pos])
	return out
}

// Grow makes room for at least n more bytes.
func (w *Writer) Grow(n int) {
	w.grow(n)
}

func (w *Writer) grow(n int) {
	need := w.pos + n
	if need <= len(w.buf) {
		return
	}
	size := max(2*len(w.buf), need)

	var nb []byte
	if w.pooled {
		nb = utils.Shared.Acquire(size)
		nb = nb[:cap(nb)]
	} else {
		nb = make([]byte, size)
	}
	copy(nb, w.buf[:w.pos])
	if w.pooled && w.buf != nil {
		utils.Shared.Release(w.buf)
	}
	w.buf = nb
}

func (w *Writer) writeLength(n int) {
	if uint64(n) > math.MaxUint32 {
		panic(fmt.Sprintf("bytebuffer: length %d does not fit the uint32 prefix", n))
	}
	w.grow(types.LengthPrefixSize)
	w.pos = PutUint32(w.buf, w.pos, uint32(n))
}

// WritePackable lets v pack itself into the writer.
func (w *Writer) WritePackable(v Packable) {
	w.grow(v.EncodedSize())
	v.PackInto(w)
}

// scalars

func (w *Writer) WriteBool(v bool) {
	w.grow(1)
	w.pos = PutBool(w.buf, w.pos, v)
}

func (w *Writer) WriteInt8(v int8) {
	w.grow(1)
	w.pos = PutInt8(w.buf, w.pos, v)
}

func (w *Writer) WriteUint8(v uint8) {
	w.grow(1)
	w.pos = PutUint8(w.buf, w.pos, v)
}

func (w *Writer) WriteInt16(v int16) {
	w.grow(2)
	w.pos = PutInt16(w.buf, w.pos, v)
}

func (w *Writer) WriteUint16(v uint16) {
	w.grow(2)
	w.pos = PutUint16(w.buf, w.pos, v)
}

func (w *Writer) WriteInt32(v int32) {
	w.grow(4)
	w.pos = PutInt32(w.buf, w.pos, v)
}

func (w *Writer) WriteUint32(v uint32) {
	w.grow(4)
	w.pos = PutUint32(w.buf, w.pos, v)
}

func (w *Writer) WriteInt64(v int64) {
	w.grow(8)
	w.pos = PutInt64(w.buf, w.pos, v)
}

func (w *Writer) WriteUint64(v uint64) {
	w.grow(8)
	w.pos = PutUint64(w.buf, w.pos, v)
}

func (w *Writer) WriteFloat32(v float32) {
	w.grow(4)
	w.pos = PutFloat32(w.buf, w.pos, v)
}

func (w *Writer) WriteFloat64(v float64) {
	w.grow(8)
	w.pos = PutFloat64(w.buf, w.pos, v)
}

// WriteString writes the uint32 byte length followed by the UTF-8 bytes.
// Invalid UTF-8 sequences are replaced with U+FFFD so the output always decodes.
func (w *Writer) WriteString(s string) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	w.writeLength(len(s))
	w.grow(len(s))
	w.pos = PutString(w.buf, w.pos, s)
}

// generic arrays

// WriteArray writes len(values) as a uint32 and then each element through elem.
func WriteArray[T any](w *Writer, values []T, elem func(*Writer, T)) {
	w.writeLength(len(values))
	for _, v := range values {
		elem(w, v)
	}
}

// WriteArrayArray writes the outer count and then every inner array with WriteArray.
func WriteArrayArray[T any](w *Writer, outer [][]T, elem func(*Writer, T)) {
	w.writeLength(len(outer))
	for _, inner := range outer {
		WriteArray(w, inner, elem)
	}
}

// writeFixedArray reserves the whole array in one growth step.
func writeFixedArray[T any](w *Writer, values []T, width int, put func([]byte, int, T) int) {
	if uint64(len(values)) > math.MaxUint32 {
		panic(fmt.Sprintf("bytebuffer: length %d does not fit the uint32 prefix", len(values)))
	}
	w.grow(types.LengthPrefixSize + len(values)*width)
	pos := PutUint32(w.buf, w.pos, uint32(len(values)))
	for _, v := range values {
		pos = put(w.buf, pos, v)
	}
	w.pos = pos
}

func writeFixedArrayArray[T any](w *Writer, outer [][]T, width int, put func([]byte, int, T) int) {
	w.writeLength(len(outer))
	for _, inner := range outer {
		writeFixedArray(w, inner, width, put)
	}
}

// flat arrays

func (w *Writer) WriteBoolArray(v []bool)       { writeFixedArray(w, v, 1, PutBool) }
func (w *Writer) WriteInt8Array(v []int8)       { writeFixedArray(w, v, 1, PutInt8) }
func (w *Writer) WriteUint8Array(v []uint8)     { writeFixedArray(w, v, 1, PutUint8) }
func (w *Writer) WriteInt16Array(v []int16)     { writeFixedArray(w, v, 2, PutInt16) }
func (w *Writer) WriteUint16Array(v []uint16)   { writeFixedArray(w, v, 2, PutUint16) }
func (w *Writer) WriteInt32Array(v []int32)     { writeFixedArray(w, v, 4, PutInt32) }
func (w *Writer) WriteUint32Array(v []uint32)   { writeFixedArray(w, v, 4, PutUint32) }
func (w *Writer) WriteInt64Array(v []int64)     { writeFixedArray(w, v, 8, PutInt64) }
func (w *Writer) WriteUint64Array(v []uint64)   { writeFixedArray(w, v, 8, PutUint64) }
func (w *Writer) WriteFloat32Array(v []float32) { writeFixedArray(w, v, 4, PutFloat32) }
func (w *Writer) WriteFloat64Array(v []float64) { writeFixedArray(w, v, 8, PutFloat64) }

func (w *Writer) WriteStringArray(v []string) {
	size := types.LengthPrefixSize
	for _, s := range v {
		size += types.LengthPrefixSize + len(s)
	}
	w.grow(size)
	WriteArray(w, v, (*Writer).WriteString)
}

// jagged arrays

func (w *Writer) WriteBoolArrayArray(v [][]bool)     { writeFixedArrayArray(w, v, 1, PutBool) }
func (w *Writer) WriteInt8ArrayArray(v [][]int8)     { writeFixedArrayArray(w, v, 1, PutInt8) }
func (w *Writer) WriteUint8ArrayArray(v [][]uint8)   { writeFixedArrayArray(w, v, 1, PutUint8) }
func (w *Writer) WriteInt16ArrayArray(v [][]int16)   { writeFixedArrayArray(w, v, 2, PutInt16) }
func (w *Writer) WriteUint16ArrayArray(v [][]uint16) { writeFixedArrayArray(w, v, 2, PutUint16) }
func (w *Writer) WriteInt32ArrayArray(v [][]int32)   { writeFixedArrayArray(w, v, 4, PutInt32) }
func (w *Writer) WriteUint32ArrayArray(v [][]uint32) { writeFixedArrayArray(w, v, 4, PutUint32) }
func (w *Writer) WriteInt64ArrayArray(v [][]int64)   { writeFixedArrayArray(w, v, 8, PutInt64) }
func (w *Writer) WriteUint64ArrayArray(v [][]uint64) { writeFixedArrayArray(w, v, 8, PutUint64) }
func (w *Writer) WriteFloat32ArrayArray(v [][]float32) {
	writeFixedArrayArray(w, v, 4, PutFloat32)
}
func (w *Writer) WriteFloat64ArrayArray(v [][]float64) {
	writeFixedArrayArray(w, v, 8, PutFloat64)
}

func (w *Writer) WriteStringArrayArray(v [][]string) {
	w.writeLength(len(v))
	for _, inner := range v {
		w.WriteStringArray(inner)
	}
}
