package types

import "fmt"

// Kind identifies one of the twelve element types the codec can pack.
// Kinds never appear on the wire; the stream carries no type tags.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat32
	KindFloat64
	KindString
)

// LengthPrefixSize is the width of every count and string byte-length prefix (uint32 LE).
const LengthPrefixSize = 4

// Kinds lists the twelve element kinds in the order the harness writes them.
var Kinds = [...]Kind{
	KindString, KindFloat64, KindFloat32, KindUint64, KindInt64, KindUint32,
	KindInt32, KindUint16, KindInt16, KindUint8, KindInt8, KindBool,
}

var kindWidth = [...]int{
	KindInvalid: 0,
	KindBool:    1,
	KindInt8:    1,
	KindUint8:   1,
	KindInt16:   2,
	KindUint16:  2,
	KindInt32:   4,
	KindUint32:  4,
	KindInt64:   8,
	KindUint64:  8,
	KindFloat32: 4,
	KindFloat64: 8,
	KindString:  0,
}

// Width returns the fixed encoded width of k, or 0 for variable-length and invalid kinds.
func (k Kind) Width() int {
	if int(k) >= len(kindWidth) {
		return 0
	}
	return kindWidth[k]
}

// IsFixed reports whether k has a constant encoded width.
func (k Kind) IsFixed() bool {
	return k.Width() > 0
}

// MinWidth is the smallest number of bytes a single element of k can occupy.
// Strings need at least their length prefix.
func (k Kind) MinWidth() int {
	if k == KindString {
		return LengthPrefixSize
	}
	return k.Width()
}

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for k := KindBool; k <= KindString; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", name)
}
