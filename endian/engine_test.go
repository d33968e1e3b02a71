package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.NotNil(t, engine)
	assert.Equal(t, binary.LittleEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.NotNil(t, engine)
	assert.Equal(t, binary.BigEndian, engine)

	buf := make([]byte, 4)
	engine.PutUint32(buf, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
}

func TestEndianEngine_AppendRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0xDEADBEEFCAFEF00D)
		require.Len(t, buf, 8)
		assert.Equal(t, uint64(0xDEADBEEFCAFEF00D), engine.Uint64(buf))
	}
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()

	require.NotNil(t, order)
	// Exactly one of the two native checks must hold.
	assert.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	assert.True(t, CompareNativeEndian(order.(EndianEngine)))
}
