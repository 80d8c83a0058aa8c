package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require := require.New(t)

	require.Equal(binary.BigEndian, GetBigEndianEngine())
	require.Equal(binary.LittleEndian, GetLittleEndianEngine())
	require.True(IsBigEndian(GetBigEndianEngine()))
	require.False(IsBigEndian(GetLittleEndianEngine()))
}

func TestEngineAppend(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
	}{
		{"big", GetBigEndianEngine(), []byte{0x00, 0x00, 0x01, 0x02}},
		{"little", GetLittleEndianEngine(), []byte{0x02, 0x01, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint32(nil, 0x0102)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint32(0x0102), tt.engine.Uint32(buf))
		})
	}
}
