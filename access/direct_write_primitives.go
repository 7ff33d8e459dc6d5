package access

import (
	"encoding/binary"
	"math"
)

// The Put* helpers write one fixed-width value at pos and return the next
// position. The caller guarantees buffer[pos:] is large enough.

// PutBool writes a boolean value as a single byte (0 or 1).
func PutBool(buffer []byte, pos int, v bool) int {
	var b byte
	if v {
		b = 1
	}
	buffer[pos] = b
	return pos + 1
}

// PutInt8 writes an int8 value to the buffer.
func PutInt8(buffer []byte, pos int, v int8) int {
	buffer[pos] = byte(v)
	return pos + 1
}

// PutUint8 writes a uint8 value to the buffer.
func PutUint8(buffer []byte, pos int, v uint8) int {
	buffer[pos] = v
	return pos + 1
}

// PutInt16 writes an int16 value to the buffer.
func PutInt16(buffer []byte, pos int, v int16) int {
	binary.LittleEndian.PutUint16(buffer[pos:], uint16(v))
	return pos + 2
}

// PutUint16 writes a uint16 value to the buffer.
func PutUint16(buffer []byte, pos int, v uint16) int {
	binary.LittleEndian.PutUint16(buffer[pos:], v)
	return pos + 2
}

// PutInt32 writes an int32 value to the buffer.
func PutInt32(buffer []byte, pos int, v int32) int {
	binary.LittleEndian.PutUint32(buffer[pos:], uint32(v))
	return pos + 4
}

// PutUint32 writes a uint32 value to the buffer.
func PutUint32(buffer []byte, pos int, v uint32) int {
	binary.LittleEndian.PutUint32(buffer[pos:], v)
	return pos + 4
}

// PutInt64 writes an int64 value to the buffer.
func PutInt64(buffer []byte, pos int, v int64) int {
	binary.LittleEndian.PutUint64(buffer[pos:], uint64(v))
	return pos + 8
}

// PutUint64 writes a uint64 value to the buffer.
func PutUint64(buffer []byte, pos int, v uint64) int {
	binary.LittleEndian.PutUint64(buffer[pos:], v)
	return pos + 8
}

// PutFloat32 writes the IEEE-754 bits of a float32.
func PutFloat32(buffer []byte, pos int, v float32) int {
	binary.LittleEndian.PutUint32(buffer[pos:], math.Float32bits(v))
	return pos + 4
}

// PutFloat64 writes the IEEE-754 bits of a float64.
func PutFloat64(buffer []byte, pos int, v float64) int {
	binary.LittleEndian.PutUint64(buffer[pos:], math.Float64bits(v))
	return pos + 8
}

// PutString writes raw string bytes without a prefix.
func PutString(buffer []byte, pos int, s string) int {
	copy(buffer[pos:], s)
	return pos + len(s)
}
