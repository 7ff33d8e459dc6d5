// Package scheme describes the expected layout of an untagged stream so a
// buffer can be checked, or decoded generically, without the Go types that
// produced it.
package scheme

import (
	"fmt"
	"reflect"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/types"
)

type Scheme interface {
	Validate(r *access.Reader) error
	Decode(r *access.Reader) (any, error)
}

type SchemeGeneric struct {
	ValidateFunc func(r *access.Reader) error
	DecodeFunc   func(r *access.Reader) (any, error)
}

func (f SchemeGeneric) Validate(r *access.Reader) error {
	return f.ValidateFunc(r)
}
func (f SchemeGeneric) Decode(r *access.Reader) (any, error) {
	return f.DecodeFunc(r)
}

// Shape is how many levels of uint32 counts wrap the element.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeArray
	ShapeJagged
)

var shapeNames = [...]string{"scalar", "array", "jagged"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ParseShape maps "scalar", "array" or "jagged" to a Shape. Empty means scalar.
func ParseShape(name string) (Shape, error) {
	if name == "" {
		return ShapeScalar, nil
	}
	for i, n := range shapeNames {
		if n == name {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// SchemeValue matches one value of Kind in the given Shape. Count, when
// non-negative, pins the outermost count of an array or jagged value.
type SchemeValue struct {
	Kind  types.Kind
	Shape Shape
	Count int
}

func (s SchemeValue) Validate(r *access.Reader) error {
	start := r.Offset()
	var err error
	switch s.Shape {
	case ShapeScalar:
		err = skipValue(r, s.Kind)
	case ShapeArray:
		err = s.skipArray(r)
	case ShapeJagged:
		err = s.skipJagged(r)
	default:
		err = fmt.Errorf("unsupported shape %v", s.Shape)
	}
	if err != nil {
		return fmt.Errorf("ValidateBuffer: %v %v at pos %d: %w", s.Shape, s.Kind, start, err)
	}
	return nil
}

func (s SchemeValue) Decode(r *access.Reader) (any, error) {
	start := r.Offset()
	v, err := decodeValue(r, s.Kind, s.Shape)
	if err != nil {
		return nil, fmt.Errorf("DecodeBuffer: %v %v at pos %d: %w", s.Shape, s.Kind, start, err)
	}
	if s.Shape != ShapeScalar && s.Count >= 0 {
		if n := reflect.ValueOf(v).Len(); n != s.Count {
			return nil, fmt.Errorf("DecodeBuffer: %v %v at pos %d: count %d, want %d", s.Shape, s.Kind, start, n, s.Count)
		}
	}
	return v, nil
}

func (s SchemeValue) count(r *access.Reader, minWidth int) (int, error) {
	n, err := r.ReadCount(minWidth)
	if err != nil {
		return 0, err
	}
	if s.Count >= 0 && n != s.Count {
		return 0, fmt.Errorf("count %d, want %d", n, s.Count)
	}
	return n, nil
}

func (s SchemeValue) skipArray(r *access.Reader) error {
	n, err := s.count(r, s.Kind.MinWidth())
	if err != nil {
		return err
	}
	return skipElements(r, s.Kind, n)
}

func (s SchemeValue) skipJagged(r *access.Reader) error {
	m, err := s.count(r, types.LengthPrefixSize)
	if err != nil {
		return err
	}
	for i := 0; i < m; i++ {
		n, err := r.ReadCount(s.Kind.MinWidth())
		if err != nil {
			return fmt.Errorf("inner %d: %w", i, err)
		}
		if err := skipElements(r, s.Kind, n); err != nil {
			return fmt.Errorf("inner %d: %w", i, err)
		}
	}
	return nil
}

func skipElements(r *access.Reader, k types.Kind, n int) error {
	if k.IsFixed() {
		return r.Skip(n * k.Width())
	}
	for i := 0; i < n; i++ {
		if err := skipValue(r, k); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// skipValue validates strings as UTF-8, so it decodes them.
func skipValue(r *access.Reader, k types.Kind) error {
	switch {
	case k == types.KindString:
		_, err := r.ReadString()
		return err
	case k.IsFixed():
		return r.Skip(k.Width())
	default:
		return fmt.Errorf("unsupported kind %v", k)
	}
}

func SValue(k types.Kind) SchemeValue { return SchemeValue{Kind: k, Count: -1} }
func SArray(k types.Kind) SchemeValue { return SchemeValue{Kind: k, Shape: ShapeArray, Count: -1} }
func SJagged(k types.Kind) SchemeValue {
	return SchemeValue{Kind: k, Shape: ShapeJagged, Count: -1}
}

// WithCount pins the outermost count.
func (s SchemeValue) WithCount(n int) Scheme {
	s.Count = n
	return s
}

type SchemeChain struct {
	Schemes []Scheme
}

func SChain(schemes ...Scheme) SchemeChain {
	return SchemeChain{Schemes: schemes}
}

// ValidateBuffer checks that buf holds exactly the values chain describes.
func ValidateBuffer(buf []byte, chain SchemeChain) error {
	r := access.NewReader(buf)
	for _, scheme := range chain.Schemes {
		if err := scheme.Validate(r); err != nil {
			return err
		}
	}
	if r.Remaining() != 0 {
		return fmt.Errorf("ValidateBuffer: %d trailing bytes at pos %d", r.Remaining(), r.Offset())
	}
	return nil
}

func DecodeBuffer(buf []byte, chain SchemeChain) (any, error) {
	r := access.NewReader(buf)
	out := make([]any, 0, len(chain.Schemes))
	for _, scheme := range chain.Schemes {
		val, err := scheme.Decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}

	// flatten if only one scheme
	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}

type SchemeNamedChain struct {
	SchemeChain
	FieldNames []string
}

func DecodeBufferNamed(buf []byte, chain SchemeNamedChain) (map[string]any, error) {
	if len(chain.FieldNames) != len(chain.Schemes) {
		return nil, fmt.Errorf("Scheme FieldNames count and Schemes count mismatch %d!=%d", len(chain.Schemes), len(chain.FieldNames))
	}
	r := access.NewReader(buf)
	out := make(map[string]any, len(chain.Schemes))
	for i, scheme := range chain.Schemes {
		val, err := scheme.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", chain.FieldNames[i], err)
		}
		out[chain.FieldNames[i]] = val
	}
	return out, nil
}
