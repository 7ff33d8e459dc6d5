package packable

import (
	"errors"
	"fmt"

	"github.com/quickwritereader/bytebuffer/access"
)

// ErrTrailingBytes is returned by Unpack when input remains after the last target.
var ErrTrailingBytes = errors.New("packable: trailing bytes after last value")

// PackSequence packs its values back to back, with no framing of its own.
type PackSequence []access.Packable

func NewPackSequence(args ...access.Packable) PackSequence {
	return PackSequence(args)
}

// EncodedSize returns the total size of the packed values
func (p PackSequence) EncodedSize() int {
	size := 0
	for _, arg := range p {
		size += arg.EncodedSize()
	}
	return size
}

func (p PackSequence) PackInto(w *access.Writer) {
	for _, arg := range p {
		arg.PackInto(w)
	}
}

// Pack encodes args into a freshly allocated buffer of the exact size.
func Pack(args ...access.Packable) []byte {
	seq := NewPackSequence(args...)
	w := access.NewWriter(seq.EncodedSize())
	seq.PackInto(w)
	return w.Bytes()
}

// PackTo appends args to w, growing it once up front.
func PackTo(w *access.Writer, args ...access.Packable) {
	w.WritePackable(NewPackSequence(args...))
}

// Unpack decodes data into targets in order and requires every byte to be consumed.
func Unpack(data []byte, targets ...access.Unpackable) error {
	r := access.NewReader(data)
	for i, t := range targets {
		if err := t.UnpackFrom(r); err != nil {
			return fmt.Errorf("Unpack: target %d (%T): %w", i, t, err)
		}
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("Unpack: %w: %d bytes", ErrTrailingBytes, r.Remaining())
	}
	return nil
}
