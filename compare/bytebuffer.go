package compare

import (
	"fmt"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/packable"
	"github.com/quickwritereader/bytebuffer/sample"
)

// ByteBuffer encodes a sample.Payload in the little-endian jagged-array
// format. It reuses one Writer across calls and is not safe for
// concurrent use.
type ByteBuffer struct {
	w *access.Writer
}

var _ Codec[sample.Payload] = (*ByteBuffer)(nil)

func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{w: access.NewWriter(capacity)}
}

// Encode returns a copy of the packed payload.
func (c *ByteBuffer) Encode(p sample.Payload) ([]byte, error) {
	c.w.Reset()
	p.PackInto(c.w)
	return c.w.ToArray(), nil
}

// Decode rejects input with bytes left after the twelfth array.
func (c *ByteBuffer) Decode(b []byte) (sample.Payload, error) {
	var p sample.Payload
	r := access.NewReader(b)
	if err := p.UnpackFrom(r); err != nil {
		return sample.Payload{}, err
	}
	if r.Remaining() != 0 {
		return sample.Payload{}, fmt.Errorf("ByteBuffer.Decode: %d bytes: %w", r.Remaining(), packable.ErrTrailingBytes)
	}
	return p, nil
}
