package scheme

import (
	"testing"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packed() []byte {
	w := access.NewWriter(0)
	w.WriteInt16(12345)
	w.WriteFloat32(3.14)
	w.WriteStringArray([]string{"go", "pher"})
	w.WriteInt32ArrayArray([][]int32{{1, 2}, {}, {3}})
	w.WriteStringArrayArray([][]string{{"a"}, {"b", "c"}})
	w.WriteBool(true)
	return w.ToArray()
}

func TestValidatePackedStructure(t *testing.T) {
	chain := SChain(
		SValue(types.KindInt16),
		SValue(types.KindFloat32),
		SArray(types.KindString).WithCount(2),
		SJagged(types.KindInt32).WithCount(3),
		SJagged(types.KindString),
		SValue(types.KindBool),
	)

	err := ValidateBuffer(packed(), chain)
	assert.NoError(t, err, "Validation should succeed for packed structure")
}

func TestValidatePackedStructure_Failure(t *testing.T) {
	cases := []struct {
		name  string
		chain SchemeChain
	}{
		{"wrong count", SChain(
			SValue(types.KindInt16), SValue(types.KindFloat32),
			SArray(types.KindString).WithCount(3),
		)},
		{"wrong width", SChain(
			SValue(types.KindInt64), SValue(types.KindFloat64),
			SArray(types.KindString), SJagged(types.KindInt32),
			SJagged(types.KindString), SValue(types.KindBool),
		)},
		{"missing tail", SChain(
			SValue(types.KindInt16), SValue(types.KindFloat32),
			SArray(types.KindString), SJagged(types.KindInt32),
		)},
		{"past the end", SChain(
			SValue(types.KindInt16), SValue(types.KindFloat32),
			SArray(types.KindString), SJagged(types.KindInt32),
			SJagged(types.KindString), SValue(types.KindBool),
			SValue(types.KindBool),
		)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBuffer(packed(), tc.chain)
			assert.Error(t, err)
			t.Log("error was: ", err)
		})
	}
}

func TestValidate_MalformedString(t *testing.T) {
	data := []byte{
		0x01, 0x00, 0x00, 0x00, // count = 1
		0x02, 0x00, 0x00, 0x00, // byte length = 2
		0xC3, 0x28, // invalid UTF-8
	}
	err := ValidateBuffer(data, SChain(SArray(types.KindString)))
	require.ErrorIs(t, err, access.ErrMalformedText)
}

func TestValidate_FixedArraySkipsWithoutDecoding(t *testing.T) {
	w := access.NewWriter(0)
	w.WriteFloat64ArrayArray([][]float64{{1, 2, 3}, {4}})
	data := w.ToArray()

	require.NoError(t, ValidateBuffer(data, SChain(SJagged(types.KindFloat64))))

	err := ValidateBuffer(data[:len(data)-1], SChain(SJagged(types.KindFloat64)))
	require.ErrorIs(t, err, access.ErrOutOfRange)
	assert.Contains(t, err.Error(), "inner 1")
}

func TestDecodeBuffer(t *testing.T) {
	chain := SChain(
		SValue(types.KindInt16),
		SValue(types.KindFloat32),
		SArray(types.KindString),
		SJagged(types.KindInt32),
		SJagged(types.KindString).WithCount(2),
		SValue(types.KindBool),
	)

	v, err := DecodeBuffer(packed(), chain)
	require.NoError(t, err)

	expected := []any{
		int16(12345),
		float32(3.14),
		[]string{"go", "pher"},
		[][]int32{{1, 2}, {}, {3}},
		[][]string{{"a"}, {"b", "c"}},
		true,
	}
	assert.Equal(t, expected, v)
}

func TestDecodeBuffer_SingleFlattens(t *testing.T) {
	w := access.NewWriter(0)
	w.WriteUint16Array([]uint16{1, 2})

	v, err := DecodeBuffer(w.Bytes(), SChain(SArray(types.KindUint16)))
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2}, v)

	_, err = DecodeBuffer(w.Bytes(), SChain(SArray(types.KindUint16).WithCount(3)))
	assert.ErrorContains(t, err, "count 2, want 3")
}

func TestDecodeBufferNamed(t *testing.T) {
	w := access.NewWriter(0)
	w.WriteString("alice")
	w.WriteUint64(42)

	chain := SchemeNamedChain{
		SchemeChain: SChain(SValue(types.KindString), SValue(types.KindUint64)),
		FieldNames:  []string{"name", "id"},
	}
	v, err := DecodeBufferNamed(w.Bytes(), chain)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "alice", "id": uint64(42)}, v)

	chain.FieldNames = chain.FieldNames[:1]
	_, err = DecodeBufferNamed(w.Bytes(), chain)
	assert.Error(t, err)
}

func TestSchemeGeneric(t *testing.T) {
	positive := SchemeGeneric{
		ValidateFunc: func(r *access.Reader) error {
			v, err := r.ReadInt32()
			if err == nil && v <= 0 {
				err = assert.AnError
			}
			return err
		},
		DecodeFunc: func(r *access.Reader) (any, error) { return r.ReadInt32() },
	}

	w := access.NewWriter(0)
	w.WriteInt32(-1)
	assert.ErrorIs(t, ValidateBuffer(w.Bytes(), SChain(positive)), assert.AnError)

	w.Reset()
	w.WriteInt32(5)
	assert.NoError(t, ValidateBuffer(w.Bytes(), SChain(positive)))
}
