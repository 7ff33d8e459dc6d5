package scheme

import (
	"fmt"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/types"
)

type decodeFunc func(r *access.Reader) (any, error)

func wrap[T any](f func(*access.Reader) (T, error)) decodeFunc {
	return func(r *access.Reader) (any, error) { return f(r) }
}

// decoders is indexed by kind, then by shape.
var decoders = map[types.Kind][3]decodeFunc{
	types.KindBool:    {wrap((*access.Reader).ReadBool), wrap((*access.Reader).ReadBoolArray), wrap((*access.Reader).ReadBoolArrayArray)},
	types.KindInt8:    {wrap((*access.Reader).ReadInt8), wrap((*access.Reader).ReadInt8Array), wrap((*access.Reader).ReadInt8ArrayArray)},
	types.KindUint8:   {wrap((*access.Reader).ReadUint8), wrap((*access.Reader).ReadUint8Array), wrap((*access.Reader).ReadUint8ArrayArray)},
	types.KindInt16:   {wrap((*access.Reader).ReadInt16), wrap((*access.Reader).ReadInt16Array), wrap((*access.Reader).ReadInt16ArrayArray)},
	types.KindUint16:  {wrap((*access.Reader).ReadUint16), wrap((*access.Reader).ReadUint16Array), wrap((*access.Reader).ReadUint16ArrayArray)},
	types.KindInt32:   {wrap((*access.Reader).ReadInt32), wrap((*access.Reader).ReadInt32Array), wrap((*access.Reader).ReadInt32ArrayArray)},
	types.KindUint32:  {wrap((*access.Reader).ReadUint32), wrap((*access.Reader).ReadUint32Array), wrap((*access.Reader).ReadUint32ArrayArray)},
	types.KindInt64:   {wrap((*access.Reader).ReadInt64), wrap((*access.Reader).ReadInt64Array), wrap((*access.Reader).ReadInt64ArrayArray)},
	types.KindUint64:  {wrap((*access.Reader).ReadUint64), wrap((*access.Reader).ReadUint64Array), wrap((*access.Reader).ReadUint64ArrayArray)},
	types.KindFloat32: {wrap((*access.Reader).ReadFloat32), wrap((*access.Reader).ReadFloat32Array), wrap((*access.Reader).ReadFloat32ArrayArray)},
	types.KindFloat64: {wrap((*access.Reader).ReadFloat64), wrap((*access.Reader).ReadFloat64Array), wrap((*access.Reader).ReadFloat64ArrayArray)},
	types.KindString:  {wrap((*access.Reader).ReadString), wrap((*access.Reader).ReadStringArray), wrap((*access.Reader).ReadStringArrayArray)},
}

func decodeValue(r *access.Reader, k types.Kind, shape Shape) (any, error) {
	fns, ok := decoders[k]
	if !ok {
		return nil, fmt.Errorf("unsupported kind %v", k)
	}
	if int(shape) >= len(fns) {
		return nil, fmt.Errorf("unsupported shape %v", shape)
	}
	return fns[shape](r)
}
