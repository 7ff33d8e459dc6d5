// Package sample holds the benchmark payload: one jagged array of each of
// the twelve element kinds, packed in a fixed order.
package sample

import (
	"fmt"
	"math"
	"strings"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/packable"
	"github.com/quickwritereader/bytebuffer/scheme"
	"github.com/quickwritereader/bytebuffer/types"
)

// Payload is packed field by field in declaration order.
type Payload struct {
	Strings  packable.StringArrayArray  `json:"strings" msgpack:"strings" cbor:"1,keyasint"`
	Float64s packable.Float64ArrayArray `json:"float64s" msgpack:"float64s" cbor:"2,keyasint"`
	Float32s packable.Float32ArrayArray `json:"float32s" msgpack:"float32s" cbor:"3,keyasint"`
	Uint64s  packable.Uint64ArrayArray  `json:"uint64s" msgpack:"uint64s" cbor:"4,keyasint"`
	Int64s   packable.Int64ArrayArray   `json:"int64s" msgpack:"int64s" cbor:"5,keyasint"`
	Uint32s  packable.Uint32ArrayArray  `json:"uint32s" msgpack:"uint32s" cbor:"6,keyasint"`
	Int32s   packable.Int32ArrayArray   `json:"int32s" msgpack:"int32s" cbor:"7,keyasint"`
	Uint16s  packable.Uint16ArrayArray  `json:"uint16s" msgpack:"uint16s" cbor:"8,keyasint"`
	Int16s   packable.Int16ArrayArray   `json:"int16s" msgpack:"int16s" cbor:"9,keyasint"`
	Uint8s   packable.Uint8ArrayArray   `json:"uint8s" msgpack:"uint8s" cbor:"10,keyasint"`
	Int8s    packable.Int8ArrayArray    `json:"int8s" msgpack:"int8s" cbor:"11,keyasint"`
	Bools    packable.BoolArrayArray    `json:"bools" msgpack:"bools" cbor:"12,keyasint"`
}

// Example returns the benchmark payload.
func Example() Payload {
	return Payload{
		Strings:  packable.StringArrayArray{{"1", "2"}, {"3", "你好，世界！"}, {"你好！世界2！！！"}},
		Float64s: packable.Float64ArrayArray{{1.7, 1.6, 2.560}, {-0.358, 3.14159265}},
		Float32s: packable.Float32ArrayArray{{1.7, 2.560}, {-0.358, 3.14159265}},
		Uint64s:  packable.Uint64ArrayArray{{1, 2}, {3, 4}},
		Int64s:   packable.Int64ArrayArray{{1, 2}, {3, -4}},
		Uint32s:  packable.Uint32ArrayArray{{1, 2}, {3, 4}},
		Int32s:   packable.Int32ArrayArray{{1, 2}, {3, -4}},
		Uint16s:  packable.Uint16ArrayArray{{1, 2}, {3, 4}},
		Int16s:   packable.Int16ArrayArray{{1, 2}, {3, -4}},
		Uint8s:   packable.Uint8ArrayArray{{1, 2}, {3, 4}},
		Int8s:    packable.Int8ArrayArray{{1, 2}, {3, -4}},
		Bools:    packable.BoolArrayArray{{true, false}, {true, false}},
	}
}

// Layout describes a packed Payload: twelve jagged arrays named after the
// JSON field names, in packing order.
func Layout() scheme.SchemeNamedChain {
	names := []string{
		"strings", "float64s", "float32s", "uint64s", "int64s", "uint32s",
		"int32s", "uint16s", "int16s", "uint8s", "int8s", "bools",
	}
	chain := scheme.SchemeNamedChain{FieldNames: names}
	for _, k := range types.Kinds {
		chain.Schemes = append(chain.Schemes, scheme.SJagged(k))
	}
	return chain
}

func (p *Payload) packables() []access.Packable {
	return []access.Packable{
		p.Strings, p.Float64s, p.Float32s, p.Uint64s, p.Int64s, p.Uint32s,
		p.Int32s, p.Uint16s, p.Int16s, p.Uint8s, p.Int8s, p.Bools,
	}
}

func (p *Payload) unpackables() []access.Unpackable {
	return []access.Unpackable{
		&p.Strings, &p.Float64s, &p.Float32s, &p.Uint64s, &p.Int64s, &p.Uint32s,
		&p.Int32s, &p.Uint16s, &p.Int16s, &p.Uint8s, &p.Int8s, &p.Bools,
	}
}

func (p *Payload) EncodedSize() int {
	size := 0
	for _, v := range p.packables() {
		size += v.EncodedSize()
	}
	return size
}

// PackInto writes the twelve arrays with the Writer's typed methods, so the
// hot path avoids interface boxing.
func (p *Payload) PackInto(w *access.Writer) {
	w.WriteStringArrayArray(p.Strings)
	w.WriteFloat64ArrayArray(p.Float64s)
	w.WriteFloat32ArrayArray(p.Float32s)
	w.WriteUint64ArrayArray(p.Uint64s)
	w.WriteInt64ArrayArray(p.Int64s)
	w.WriteUint32ArrayArray(p.Uint32s)
	w.WriteInt32ArrayArray(p.Int32s)
	w.WriteUint16ArrayArray(p.Uint16s)
	w.WriteInt16ArrayArray(p.Int16s)
	w.WriteUint8ArrayArray(p.Uint8s)
	w.WriteInt8ArrayArray(p.Int8s)
	w.WriteBoolArrayArray(p.Bools)
}

// UnpackFrom reads the twelve arrays in packing order. On error p may hold
// the fields decoded before the failing one.
func (p *Payload) UnpackFrom(r *access.Reader) error {
	for i, u := range p.unpackables() {
		if err := u.UnpackFrom(r); err != nil {
			return fmt.Errorf("Payload.UnpackFrom: field %d: %w", i, err)
		}
	}
	return nil
}

// Equal compares element-wise; floats compare by IEEE-754 bit pattern.
func (p *Payload) Equal(o *Payload) bool {
	return equalJagged(p.Strings, o.Strings, eq[string]) &&
		equalJagged(p.Float64s, o.Float64s, func(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }) &&
		equalJagged(p.Float32s, o.Float32s, func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }) &&
		equalJagged(p.Uint64s, o.Uint64s, eq[uint64]) &&
		equalJagged(p.Int64s, o.Int64s, eq[int64]) &&
		equalJagged(p.Uint32s, o.Uint32s, eq[uint32]) &&
		equalJagged(p.Int32s, o.Int32s, eq[int32]) &&
		equalJagged(p.Uint16s, o.Uint16s, eq[uint16]) &&
		equalJagged(p.Int16s, o.Int16s, eq[int16]) &&
		equalJagged(p.Uint8s, o.Uint8s, eq[uint8]) &&
		equalJagged(p.Int8s, o.Int8s, eq[int8]) &&
		equalJagged(p.Bools, o.Bools, eq[bool])
}

func eq[T comparable](a, b T) bool { return a == b }

func equalJagged[T any](a, b [][]T, same func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if !same(a[i][j], b[i][j]) {
				return false
			}
		}
	}
	return true
}

// Format renders every array as "[a,b,],[c,]," one kind per line, in packing order.
func (p *Payload) Format() string {
	var sb strings.Builder
	writeJagged(&sb, p.Strings)
	writeJagged(&sb, p.Float64s)
	writeJagged(&sb, p.Float32s)
	writeJagged(&sb, p.Uint64s)
	writeJagged(&sb, p.Int64s)
	writeJagged(&sb, p.Uint32s)
	writeJagged(&sb, p.Int32s)
	writeJagged(&sb, p.Uint16s)
	writeJagged(&sb, p.Int16s)
	writeJagged(&sb, p.Uint8s)
	writeJagged(&sb, p.Int8s)
	writeJagged(&sb, p.Bools)
	return sb.String()
}

func writeJagged[T any](sb *strings.Builder, outer [][]T) {
	for _, inner := range outer {
		sb.WriteByte('[')
		for _, v := range inner {
			fmt.Fprint(sb, v)
			sb.WriteByte(',')
		}
		sb.WriteString("],")
	}
	sb.WriteByte('\n')
}
