package access

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_ExplicitByteMatch(t *testing.T) {
	w := NewWriter(0)

	w.WriteInt32ArrayArray([][]int32{{1, 2}, {3, -4}})
	w.WriteStringArrayArray([][]string{{"go"}, {}})
	w.WriteBool(true)

	actual := w.Bytes()

	expected := []byte{
		// int32 array-of-arrays
		0x02, 0x00, 0x00, 0x00, // outer count = 2
		0x02, 0x00, 0x00, 0x00, // inner[0] count = 2
		0x01, 0x00, 0x00, 0x00, // 1
		0x02, 0x00, 0x00, 0x00, // 2
		0x02, 0x00, 0x00, 0x00, // inner[1] count = 2
		0x03, 0x00, 0x00, 0x00, // 3
		0xFC, 0xFF, 0xFF, 0xFF, // -4 (two's complement)

		// string array-of-arrays
		0x02, 0x00, 0x00, 0x00, // outer count = 2
		0x01, 0x00, 0x00, 0x00, // inner[0] count = 1
		0x02, 0x00, 0x00, 0x00, // byte length = 2
		0x67, 0x6F, // "go"
		0x00, 0x00, 0x00, 0x00, // inner[1] count = 0

		0x01, // bool(true)
	}

	require.Equal(t, len(expected), len(actual), "Length mismatch")
	for i := range expected {
		assert.Equalf(t, expected[i], actual[i], "Byte %d mismatch: expected %02X, got %02X", i, expected[i], actual[i])
	}
}

func TestWriter_FixedWidths(t *testing.T) {
	cases := []struct {
		name     string
		write    func(w *Writer)
		expected []byte
	}{
		{"bool false", func(w *Writer) { w.WriteBool(false) }, []byte{0x00}},
		{"int8", func(w *Writer) { w.WriteInt8(-1) }, []byte{0xFF}},
		{"uint8", func(w *Writer) { w.WriteUint8(0xAB) }, []byte{0xAB}},
		{"int16", func(w *Writer) { w.WriteInt16(-2) }, []byte{0xFE, 0xFF}},
		{"uint16", func(w *Writer) { w.WriteUint16(0x1234) }, []byte{0x34, 0x12}},
		{"uint32", func(w *Writer) { w.WriteUint32(0xDEADBEEF) }, []byte{0xEF, 0xBE, 0xAD, 0xDE}},
		{"int64", func(w *Writer) { w.WriteInt64(-4) }, []byte{0xFC, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"uint64", func(w *Writer) { w.WriteUint64(1) }, []byte{0x01, 0, 0, 0, 0, 0, 0, 0}},
		{"float32", func(w *Writer) { w.WriteFloat32(1.0) }, []byte{0x00, 0x00, 0x80, 0x3F}},
		{"float64", func(w *Writer) { w.WriteFloat64(-2.0) }, []byte{0, 0, 0, 0, 0, 0, 0x00, 0xC0}},
		{"empty string", func(w *Writer) { w.WriteString("") }, []byte{0, 0, 0, 0}},
		{"nil array", func(w *Writer) { w.WriteFloat64Array(nil) }, []byte{0, 0, 0, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter(4)
			tc.write(w)
			assert.Equal(t, tc.expected, w.ToArray())
		})
	}
}

func TestWriter_StringIsUTF8WithByteLength(t *testing.T) {
	w := NewWriter(0)
	w.WriteString("你好")

	expected := append([]byte{0x06, 0x00, 0x00, 0x00}, []byte("你好")...)
	assert.Equal(t, expected, w.ToArray())
}

func TestWriter_InvalidUTF8IsReplaced(t *testing.T) {
	w := NewWriter(0)
	w.WriteString("a\xffb")

	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", s)
}

func TestWriter_GrowthPreservesBytes(t *testing.T) {
	w := NewWriter(8)
	initial := w.Cap()

	for i := 0; i < 100; i++ {
		w.WriteInt32(int32(i))
	}

	assert.Equal(t, 400, w.Len())
	assert.GreaterOrEqual(t, w.Cap(), 400)
	assert.Greater(t, w.Cap(), 4*initial, "expected at least two growth steps")

	r := NewReader(w.Bytes())
	for i := 0; i < 100; i++ {
		v, err := r.ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(i), v)
	}
	assert.Equal(t, 0, r.Remaining())
}

func TestWriter_GrowthDoublesOrFits(t *testing.T) {
	w := NewWriter(4)
	w.WriteUint32(1)
	w.WriteUint8(2)
	assert.Equal(t, 8, w.Cap(), "should double")

	w.WriteUint8Array(make([]uint8, 100))
	assert.Equal(t, 109, w.Cap(), "should grow to the exact need when doubling is not enough")

	zero := NewWriter(0)
	zero.WriteBool(true)
	assert.Equal(t, 1, zero.Cap())
}

func TestWriter_ResetKeepsCapacity(t *testing.T) {
	w := NewWriter(16)
	w.WriteFloat64Array([]float64{1, 2, 3, 4, 5})
	capBefore := w.Cap()

	w.Reset()
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, capBefore, w.Cap())
	assert.Empty(t, w.Bytes())
}

func TestWriter_ResetIdempotence(t *testing.T) {
	write := func(w *Writer) {
		w.WriteStringArrayArray([][]string{{"1", "2"}, {"3", "你好，世界！"}, {"你好！世界2！！！"}})
		w.WriteFloat64ArrayArray([][]float64{{1.7, 1.6, 2.56}, {-0.358, 3.14159265}})
		w.WriteInt8ArrayArray([][]int8{{1, 2}, {3, -4}})
	}

	fresh := NewWriter(0)
	write(fresh)

	reused := NewWriter(0)
	reused.WriteUint64ArrayArray([][]uint64{{9, 9, 9, 9, 9, 9, 9, 9}}) // stale bytes
	reused.Reset()
	write(reused)

	assert.True(t, bytes.Equal(fresh.Bytes(), reused.Bytes()))

	for i := 0; i < 3; i++ {
		reused.Reset()
		write(reused)
		assert.Equal(t, fresh.ToArray(), reused.ToArray(), "cycle %d", i)
	}
}

func TestWriter_ToArrayIsCopy(t *testing.T) {
	w := NewWriter(0)
	w.WriteUint8(7)
	snapshot := w.ToArray()

	w.Reset()
	w.WriteUint8(9)
	assert.Equal(t, []byte{7}, snapshot)
	assert.Equal(t, []byte{9}, w.Bytes())
}

func TestWriter_BytesViewIsCapped(t *testing.T) {
	w := NewWriter(64)
	w.WriteUint8(1)
	view := w.Bytes()
	assert.Equal(t, 1, cap(view))
}

func TestWriter_Pooled(t *testing.T) {
	w := NewWriterFromPool(100)
	assert.Equal(t, 128, w.Cap())

	for i := 0; i < 1000; i++ {
		w.WriteFloat64(float64(i))
	}
	assert.GreaterOrEqual(t, w.Cap(), 8000)

	out := w.ToArray()
	w.Release()
	assert.Equal(t, 0, w.Len())

	r := NewReader(out)
	for i := 0; i < 1000; i++ {
		v, err := r.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, float64(i), v)
	}

	// still usable after Release
	w.WriteInt16(5)
	assert.Equal(t, []byte{0x05, 0x00}, w.ToArray())
	w.Release()
}

func TestWriter_GenericArrayArray(t *testing.T) {
	type point struct{ X, Y int16 }
	elem := func(w *Writer, p point) {
		w.WriteInt16(p.X)
		w.WriteInt16(p.Y)
	}

	w := NewWriter(0)
	WriteArrayArray(w, [][]point{{{1, 2}}, {}}, elem)

	expected := []byte{
		0x02, 0x00, 0x00, 0x00, // outer count
		0x01, 0x00, 0x00, 0x00, // inner[0] count
		0x01, 0x00, 0x02, 0x00, // {1, 2}
		0x00, 0x00, 0x00, 0x00, // inner[1] count
	}
	assert.Equal(t, expected, w.ToArray())

	r := NewReader(w.Bytes())
	got, err := ReadArrayArray(r, func(r *Reader) (point, error) {
		x, err := r.ReadInt16()
		if err != nil {
			return point{}, err
		}
		y, err := r.ReadInt16()
		return point{x, y}, err
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []point{{1, 2}}, got[0])
	assert.Len(t, got[1], 0)
}

func TestWriter_NaNBitsSurvive(t *testing.T) {
	nan := math.Float64frombits(0x7FF8_0000_0000_0001)
	w := NewWriter(0)
	w.WriteFloat64Array([]float64{nan, math.Inf(-1), math.Copysign(0, -1)})

	r := NewReader(w.Bytes())
	got, err := r.ReadFloat64Array()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FF8_0000_0000_0001), math.Float64bits(got[0]))
	assert.True(t, math.IsInf(got[1], -1))
	assert.True(t, math.Signbit(got[2]))
}
