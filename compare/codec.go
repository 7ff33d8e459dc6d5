// Package compare puts the ByteBuffer format next to general-purpose
// serializers behind one generic interface, so the harness can time them
// against the same payload.
package compare

import (
	"fmt"

	"github.com/quickwritereader/bytebuffer/sample"
	"github.com/quickwritereader/bytebuffer/utils"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

const (
	NameByteBuffer = "bytebuffer"
	NameJSON       = "json"
	NameGoJSON     = "gojson"
	NameJSONIter   = "jsoniter"
	NameMsgpack    = "msgpack"
	NameCBOR       = "cbor"
)

var registry = map[string]func() (Codec[sample.Payload], error){
	NameByteBuffer: func() (Codec[sample.Payload], error) { return NewByteBuffer(0), nil },
	NameJSON:       func() (Codec[sample.Payload], error) { return JSON[sample.Payload]{}, nil },
	NameGoJSON:     func() (Codec[sample.Payload], error) { return GoJSON[sample.Payload]{}, nil },
	NameJSONIter:   func() (Codec[sample.Payload], error) { return JSONIter[sample.Payload]{}, nil },
	NameMsgpack:    func() (Codec[sample.Payload], error) { return Msgpack[sample.Payload]{}, nil },
	NameCBOR: func() (Codec[sample.Payload], error) {
		c, err := NewCBOR[sample.Payload](true)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
}

// Names returns the registered codec names, sorted.
func Names() []string {
	return utils.SortKeys(registry)
}

// New builds a fresh payload codec by name. Codecs that hold state
// (ByteBuffer) are never shared between callers.
func New(name string) (Codec[sample.Payload], error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("compare: unknown codec %q", name)
	}
	return ctor()
}
