package access

import (
	"encoding/binary"
	"math"
)

// The Get* helpers mirror the Put* helpers. They do no bounds checking;
// the Reader checks the remaining length before calling them.

func GetBool(buffer []byte, pos int) (bool, int) {
	return buffer[pos] != 0, pos + 1
}

func GetInt8(buffer []byte, pos int) (int8, int) {
	return int8(buffer[pos]), pos + 1
}

func GetUint8(buffer []byte, pos int) (uint8, int) {
	return buffer[pos], pos + 1
}

func GetInt16(buffer []byte, pos int) (int16, int) {
	return int16(binary.LittleEndian.Uint16(buffer[pos:])), pos + 2
}

func GetUint16(buffer []byte, pos int) (uint16, int) {
	return binary.LittleEndian.Uint16(buffer[pos:]), pos + 2
}

func GetInt32(buffer []byte, pos int) (int32, int) {
	return int32(binary.LittleEndian.Uint32(buffer[pos:])), pos + 4
}

func GetUint32(buffer []byte, pos int) (uint32, int) {
	return binary.LittleEndian.Uint32(buffer[pos:]), pos + 4
}

func GetInt64(buffer []byte, pos int) (int64, int) {
	return int64(binary.LittleEndian.Uint64(buffer[pos:])), pos + 8
}

func GetUint64(buffer []byte, pos int) (uint64, int) {
	return binary.LittleEndian.Uint64(buffer[pos:]), pos + 8
}

func GetFloat32(buffer []byte, pos int) (float32, int) {
	return math.Float32frombits(binary.LittleEndian.Uint32(buffer[pos:])), pos + 4
}

func GetFloat64(buffer []byte, pos int) (float64, int) {
	return math.Float64frombits(binary.LittleEndian.Uint64(buffer[pos:])), pos + 8
}
