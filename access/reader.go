package access

import (
	"fmt"
	"unicode/utf8"

	"github.com/quickwritereader/bytebuffer/types"
)

// Reader decodes values from a borrowed byte slice in the order they were
// written. It never modifies data, and data must stay alive and unchanged
// while the reader is in use. Decoded slices and strings are copies.
//
// The stream carries no type tags: reads must mirror the writes exactly.
// A mismatched sequence yields garbage or ErrOutOfRange, never a type error.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Reset rewinds the read offset to zero.
func (r *Reader) Reset() {
	r.pos = 0
}

func (r *Reader) Offset() int {
	return r.pos
}

func (r *Reader) Len() int {
	return len(r.data)
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadPackable decodes into v.
func (r *Reader) ReadPackable(v Unpackable) error {
	return v.UnpackFrom(r)
}

func (r *Reader) need(op string, n int) error {
	if n > len(r.data)-r.pos {
		return outOfRange(op, r.pos, n, len(r.data)-r.pos)
	}
	return nil
}

// readLength consumes a uint32 count and fails fast when count*minWidth
// bytes cannot possibly remain. On failure the offset is left untouched.
func (r *Reader) readLength(op string, minWidth int) (int, error) {
	if err := r.need(op, types.LengthPrefixSize); err != nil {
		return 0, err
	}
	n, pos := GetUint32(r.data, r.pos)
	remaining := len(r.data) - pos
	if need := uint64(n) * uint64(minWidth); need > uint64(remaining) {
		return 0, &DecodeError{
			Kind:      ErrOutOfRange,
			Op:        op,
			Offset:    r.pos,
			Need:      int(min(need, uint64(1<<31-1))),
			Remaining: remaining,
		}
	}
	r.pos = pos
	return int(n), nil
}

// ReadCount reads a uint32 array count for elements of at least minWidth
// bytes each, failing fast when the count cannot fit the remaining input.
func (r *Reader) ReadCount(minWidth int) (int, error) {
	return r.readLength("ReadCount", max(minWidth, 1))
}

// Skip advances past n bytes without decoding them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("Skip: negative length %d", n)
	}
	if err := r.need("Skip", n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

func readFixed[T any](r *Reader, op string, width int, get func([]byte, int) (T, int)) (T, error) {
	if err := r.need(op, width); err != nil {
		var zero T
		return zero, err
	}
	v, pos := get(r.data, r.pos)
	r.pos = pos
	return v, nil
}

// scalars

func (r *Reader) ReadBool() (bool, error)       { return readFixed(r, "ReadBool", 1, GetBool) }
func (r *Reader) ReadInt8() (int8, error)       { return readFixed(r, "ReadInt8", 1, GetInt8) }
func (r *Reader) ReadUint8() (uint8, error)     { return readFixed(r, "ReadUint8", 1, GetUint8) }
func (r *Reader) ReadInt16() (int16, error)     { return readFixed(r, "ReadInt16", 2, GetInt16) }
func (r *Reader) ReadUint16() (uint16, error)   { return readFixed(r, "ReadUint16", 2, GetUint16) }
func (r *Reader) ReadInt32() (int32, error)     { return readFixed(r, "ReadInt32", 4, GetInt32) }
func (r *Reader) ReadUint32() (uint32, error)   { return readFixed(r, "ReadUint32", 4, GetUint32) }
func (r *Reader) ReadInt64() (int64, error)     { return readFixed(r, "ReadInt64", 8, GetInt64) }
func (r *Reader) ReadUint64() (uint64, error)   { return readFixed(r, "ReadUint64", 8, GetUint64) }
func (r *Reader) ReadFloat32() (float32, error) { return readFixed(r, "ReadFloat32", 4, GetFloat32) }
func (r *Reader) ReadFloat64() (float64, error) { return readFixed(r, "ReadFloat64", 8, GetFloat64) }

// ReadString reads a uint32 byte length and that many UTF-8 bytes.
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	n, err := r.readLength("ReadString", 1)
	if err != nil {
		return "", err
	}
	raw := r.data[r.pos : r.pos+n]
	if !utf8.Valid(raw) {
		r.pos = start
		return "", malformedText("ReadString", start, raw)
	}
	r.pos += n
	return string(raw), nil
}

// generic arrays

// ReadArray reads a uint32 count and then calls elem that many times.
// Every element is assumed to occupy at least one byte, which bounds the
// count against the remaining input before anything is allocated.
func ReadArray[T any](r *Reader, elem func(*Reader) (T, error)) ([]T, error) {
	return readArray(r, "ReadArray", 1, elem)
}

// ReadArrayArray reads the outer count and then that many ReadArray results.
func ReadArrayArray[T any](r *Reader, elem func(*Reader) (T, error)) ([][]T, error) {
	return readArray(r, "ReadArrayArray", types.LengthPrefixSize, func(r *Reader) ([]T, error) {
		return readArray(r, "ReadArray", 1, elem)
	})
}

func readArray[T any](r *Reader, op string, minWidth int, elem func(*Reader) (T, error)) ([]T, error) {
	start := r.pos
	n, err := r.readLength(op, minWidth)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		v, err := elem(r)
		if err != nil {
			r.pos = start
			return nil, fmt.Errorf("%s: element %d: %w", op, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func readFixedArray[T any](r *Reader, op string, width int, get func([]byte, int) (T, int)) ([]T, error) {
	n, err := r.readLength(op, width)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	pos := r.pos
	for i := range out {
		out[i], pos = get(r.data, pos)
	}
	r.pos = pos
	return out, nil
}

func readFixedArrayArray[T any](r *Reader, op, innerOp string, width int, get func([]byte, int) (T, int)) ([][]T, error) {
	start := r.pos
	m, err := r.readLength(op, types.LengthPrefixSize)
	if err != nil {
		return nil, err
	}
	out := make([][]T, m)
	for i := range out {
		inner, err := readFixedArray(r, innerOp, width, get)
		if err != nil {
			r.pos = start
			return nil, fmt.Errorf("%s: inner %d: %w", op, i, err)
		}
		out[i] = inner
	}
	return out, nil
}

// flat arrays

func (r *Reader) ReadBoolArray() ([]bool, error) {
	return readFixedArray(r, "ReadBoolArray", 1, GetBool)
}

func (r *Reader) ReadInt8Array() ([]int8, error) {
	return readFixedArray(r, "ReadInt8Array", 1, GetInt8)
}

func (r *Reader) ReadUint8Array() ([]uint8, error) {
	return readFixedArray(r, "ReadUint8Array", 1, GetUint8)
}

func (r *Reader) ReadInt16Array() ([]int16, error) {
	return readFixedArray(r, "ReadInt16Array", 2, GetInt16)
}

func (r *Reader) ReadUint16Array() ([]uint16, error) {
	return readFixedArray(r, "ReadUint16Array", 2, GetUint16)
}

func (r *Reader) ReadInt32Array() ([]int32, error) {
	return readFixedArray(r, "ReadInt32Array", 4, GetInt32)
}

func (r *Reader) ReadUint32Array() ([]uint32, error) {
	return readFixedArray(r, "ReadUint32Array", 4, GetUint32)
}

func (r *Reader) ReadInt64Array() ([]int64, error) {
	return readFixedArray(r, "ReadInt64Array", 8, GetInt64)
}

func (r *Reader) ReadUint64Array() ([]uint64, error) {
	return readFixedArray(r, "ReadUint64Array", 8, GetUint64)
}

func (r *Reader) ReadFloat32Array() ([]float32, error) {
	return readFixedArray(r, "ReadFloat32Array", 4, GetFloat32)
}

func (r *Reader) ReadFloat64Array() ([]float64, error) {
	return readFixedArray(r, "ReadFloat64Array", 8, GetFloat64)
}

func (r *Reader) ReadStringArray() ([]string, error) {
	return readArray(r, "ReadStringArray", types.LengthPrefixSize, (*Reader).ReadString)
}

// jagged arrays

func (r *Reader) ReadBoolArrayArray() ([][]bool, error) {
	return readFixedArrayArray(r, "ReadBoolArrayArray", "ReadBoolArray", 1, GetBool)
}

func (r *Reader) ReadInt8ArrayArray() ([][]int8, error) {
	return readFixedArrayArray(r, "ReadInt8ArrayArray", "ReadInt8Array", 1, GetInt8)
}

func (r *Reader) ReadUint8ArrayArray() ([][]uint8, error) {
	return readFixedArrayArray(r, "ReadUint8ArrayArray", "ReadUint8Array", 1, GetUint8)
}

func (r *Reader) ReadInt16ArrayArray() ([][]int16, error) {
	return readFixedArrayArray(r, "ReadInt16ArrayArray", "ReadInt16Array", 2, GetInt16)
}

func (r *Reader) ReadUint16ArrayArray() ([][]uint16, error) {
	return readFixedArrayArray(r, "ReadUint16ArrayArray", "ReadUint16Array", 2, GetUint16)
}

func (r *Reader) ReadInt32ArrayArray() ([][]int32, error) {
	return readFixedArrayArray(r, "ReadInt32ArrayArray", "ReadInt32Array", 4, GetInt32)
}

func (r *Reader) ReadUint32ArrayArray() ([][]uint32, error) {
	return readFixedArrayArray(r, "ReadUint32ArrayArray", "ReadUint32Array", 4, GetUint32)
}

func (r *Reader) ReadInt64ArrayArray() ([][]int64, error) {
	return readFixedArrayArray(r, "ReadInt64ArrayArray", "ReadInt64Array", 8, GetInt64)
}

func (r *Reader) ReadUint64ArrayArray() ([][]uint64, error) {
	return readFixedArrayArray(r, "ReadUint64ArrayArray", "ReadUint64Array", 8, GetUint64)
}

func (r *Reader) ReadFloat32ArrayArray() ([][]float32, error) {
	return readFixedArrayArray(r, "ReadFloat32ArrayArray", "ReadFloat32Array", 4, GetFloat32)
}

func (r *Reader) ReadFloat64ArrayArray() ([][]float64, error) {
	return readFixedArrayArray(r, "ReadFloat64ArrayArray", "ReadFloat64Array", 8, GetFloat64)
}

func (r *Reader) ReadStringArrayArray() ([][]string, error) {
	return readArray(r, "ReadStringArrayArray", types.LengthPrefixSize, (*Reader).ReadStringArray)
}
