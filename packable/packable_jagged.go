package packable

import (
	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/types"
)

// Each jagged type packs as a uint32 outer count followed by one
// "uint32 count + elements" block per inner array.

func fixedSize[T any](outer [][]T, width int) int {
	size := types.LengthPrefixSize
	for _, inner := range outer {
		size += types.LengthPrefixSize + len(inner)*width
	}
	return size
}

// BoolArrayArray implements Packable for [][]bool.
type BoolArrayArray [][]bool

func (p BoolArrayArray) EncodedSize() int { return fixedSize(p, types.KindBool.Width()) }
func (p BoolArrayArray) PackInto(w *access.Writer) {
	w.WriteBoolArrayArray(p)
}
func (p *BoolArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadBoolArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Int8ArrayArray implements Packable for [][]int8.
type Int8ArrayArray [][]int8

func (p Int8ArrayArray) EncodedSize() int { return fixedSize(p, types.KindInt8.Width()) }
func (p Int8ArrayArray) PackInto(w *access.Writer) {
	w.WriteInt8ArrayArray(p)
}
func (p *Int8ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadInt8ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Uint8ArrayArray implements Packable for [][]uint8.
type Uint8ArrayArray [][]uint8

func (p Uint8ArrayArray) EncodedSize() int { return fixedSize(p, types.KindUint8.Width()) }
func (p Uint8ArrayArray) PackInto(w *access.Writer) {
	w.WriteUint8ArrayArray(p)
}
func (p *Uint8ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadUint8ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Int16ArrayArray implements Packable for [][]int16.
type Int16ArrayArray [][]int16

func (p Int16ArrayArray) EncodedSize() int { return fixedSize(p, types.KindInt16.Width()) }
func (p Int16ArrayArray) PackInto(w *access.Writer) {
	w.WriteInt16ArrayArray(p)
}
func (p *Int16ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadInt16ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Uint16ArrayArray implements Packable for [][]uint16.
type Uint16ArrayArray [][]uint16

func (p Uint16ArrayArray) EncodedSize() int { return fixedSize(p, types.KindUint16.Width()) }
func (p Uint16ArrayArray) PackInto(w *access.Writer) {
	w.WriteUint16ArrayArray(p)
}
func (p *Uint16ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadUint16ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Int32ArrayArray implements Packable for [][]int32.
type Int32ArrayArray [][]int32

func (p Int32ArrayArray) EncodedSize() int { return fixedSize(p, types.KindInt32.Width()) }
func (p Int32ArrayArray) PackInto(w *access.Writer) {
	w.WriteInt32ArrayArray(p)
}
func (p *Int32ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadInt32ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Uint32ArrayArray implements Packable for [][]uint32.
type Uint32ArrayArray [][]uint32

func (p Uint32ArrayArray) EncodedSize() int { return fixedSize(p, types.KindUint32.Width()) }
func (p Uint32ArrayArray) PackInto(w *access.Writer) {
	w.WriteUint32ArrayArray(p)
}
func (p *Uint32ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadUint32ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Int64ArrayArray implements Packable for [][]int64.
type Int64ArrayArray [][]int64

func (p Int64ArrayArray) EncodedSize() int { return fixedSize(p, types.KindInt64.Width()) }
func (p Int64ArrayArray) PackInto(w *access.Writer) {
	w.WriteInt64ArrayArray(p)
}
func (p *Int64ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadInt64ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Uint64ArrayArray implements Packable for [][]uint64.
type Uint64ArrayArray [][]uint64

func (p Uint64ArrayArray) EncodedSize() int { return fixedSize(p, types.KindUint64.Width()) }
func (p Uint64ArrayArray) PackInto(w *access.Writer) {
	w.WriteUint64ArrayArray(p)
}
func (p *Uint64ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadUint64ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Float32ArrayArray implements Packable for [][]float32.
type Float32ArrayArray [][]float32

func (p Float32ArrayArray) EncodedSize() int { return fixedSize(p, types.KindFloat32.Width()) }
func (p Float32ArrayArray) PackInto(w *access.Writer) {
	w.WriteFloat32ArrayArray(p)
}
func (p *Float32ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadFloat32ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Float64ArrayArray implements Packable for [][]float64.
type Float64ArrayArray [][]float64

func (p Float64ArrayArray) EncodedSize() int { return fixedSize(p, types.KindFloat64.Width()) }
func (p Float64ArrayArray) PackInto(w *access.Writer) {
	w.WriteFloat64ArrayArray(p)
}
func (p *Float64ArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadFloat64ArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// StringArrayArray implements Packable for [][]string.
// EncodedSize assumes valid UTF-8; invalid bytes are replaced when packed.
type StringArrayArray [][]string

func (p StringArrayArray) EncodedSize() int {
	size := types.LengthPrefixSize
	for _, inner := range p {
		size += types.LengthPrefixSize
		for _, s := range inner {
			size += types.LengthPrefixSize + len(s)
		}
	}
	return size
}
func (p StringArrayArray) PackInto(w *access.Writer) {
	w.WriteStringArrayArray(p)
}
func (p *StringArrayArray) UnpackFrom(r *access.Reader) error {
	v, err := r.ReadStringArrayArray()
	if err != nil {
		return err
	}
	*p = v
	return nil
}
