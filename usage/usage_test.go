package usage

import (
	"fmt"
	"os"
	"testing"

	"github.com/quickwritereader/bytebuffer/access"
	"github.com/quickwritereader/bytebuffer/compare"
	"github.com/quickwritereader/bytebuffer/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cycles = 10000

// TestUsage_ResetAndReuse writes the sample payload many times into one
// writer, materializes it once, then reads it back many times.
func TestUsage_ResetAndReuse(t *testing.T) {
	payload := sample.Example()

	w := access.NewWriter(1024 * 1024)
	for i := 0; i < cycles; i++ {
		w.Reset()
		w.WriteStringArrayArray(payload.Strings)
		w.WriteFloat64ArrayArray(payload.Float64s)
		w.WriteFloat32ArrayArray(payload.Float32s)
		w.WriteUint64ArrayArray(payload.Uint64s)
		w.WriteInt64ArrayArray(payload.Int64s)
		w.WriteUint32ArrayArray(payload.Uint32s)
		w.WriteInt32ArrayArray(payload.Int32s)
		w.WriteUint16ArrayArray(payload.Uint16s)
		w.WriteInt16ArrayArray(payload.Int16s)
		w.WriteUint8ArrayArray(payload.Uint8s)
		w.WriteInt8ArrayArray(payload.Int8s)
		w.WriteBoolArrayArray(payload.Bools)
	}
	assert.Equal(t, 1024*1024, w.Cap(), "reset must reuse the initial buffer")

	data := w.ToArray()
	assert.Equal(t, payload.EncodedSize(), len(data))

	r := access.NewReader(data)
	var decoded sample.Payload
	for i := 0; i < cycles; i++ {
		r.Reset()
		decoded = sample.Payload{}
		var err error
		decoded.Strings, err = r.ReadStringArrayArray()
		require.NoError(t, err)
		decoded.Float64s, err = r.ReadFloat64ArrayArray()
		require.NoError(t, err)
		decoded.Float32s, err = r.ReadFloat32ArrayArray()
		require.NoError(t, err)
		decoded.Uint64s, err = r.ReadUint64ArrayArray()
		require.NoError(t, err)
		decoded.Int64s, err = r.ReadInt64ArrayArray()
		require.NoError(t, err)
		decoded.Uint32s, err = r.ReadUint32ArrayArray()
		require.NoError(t, err)
		decoded.Int32s, err = r.ReadInt32ArrayArray()
		require.NoError(t, err)
		decoded.Uint16s, err = r.ReadUint16ArrayArray()
		require.NoError(t, err)
		decoded.Int16s, err = r.ReadInt16ArrayArray()
		require.NoError(t, err)
		decoded.Uint8s, err = r.ReadUint8ArrayArray()
		require.NoError(t, err)
		decoded.Int8s, err = r.ReadInt8ArrayArray()
		require.NoError(t, err)
		decoded.Bools, err = r.ReadBoolArrayArray()
		require.NoError(t, err)
		require.Equal(t, 0, r.Remaining())
	}

	require.True(t, payload.Equal(&decoded))
	fmt.Fprint(os.Stdout, decoded.Format())
}

func TestUsage_SizeAgainstOtherCodecs(t *testing.T) {
	payload := sample.Example()

	for _, name := range compare.Names() {
		c, err := compare.New(name)
		require.NoError(t, err)
		data, err := c.Encode(payload)
		require.NoError(t, err)

		back, err := c.Decode(data)
		require.NoError(t, err)
		assert.Truef(t, payload.Equal(&back), "%s round trip", name)

		fmt.Fprintf(os.Stdout, "%-10s %4d bytes\n", name, len(data))
	}
}
