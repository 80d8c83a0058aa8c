package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
)

func samplePayload() []byte {
	var buf bytes.Buffer
	for i := range 512 {
		buf.WriteString("minecraft:stone")
		buf.WriteByte(byte(i))
	}

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionGzip,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, typ := range types {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			data := samplePayload()
			packed, err := codec.Compress(data)
			require.NoError(t, err)

			unpacked, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, data, unpacked)
		})
	}
}

func TestCreateCodec(t *testing.T) {
	codec, err := CreateCodec(format.CompressionLZ4, "backup")
	require.NoError(t, err)
	require.IsType(t, LZ4Compressor{}, codec)

	_, err = CreateCodec(format.CompressionType(0x7f), "backup")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	_, err = GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestGzipCompressor_Magic(t *testing.T) {
	packed, err := NewGzipCompressor().Compress([]byte("hello"))
	require.NoError(t, err)
	require.True(t, IsGzip(packed))
	require.False(t, IsGzip([]byte("hello")))
	require.False(t, IsGzip([]byte{0x1f}))
}

func TestGzipCompressorLevel(t *testing.T) {
	c, err := NewGzipCompressorLevel(9)
	require.NoError(t, err)

	data := samplePayload()
	packed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(packed)
	require.NoError(t, err)
	require.Equal(t, data, out)

	_, err = NewGzipCompressorLevel(42)
	require.Error(t, err)
}

func TestGzipCompressor_DecompressPartial(t *testing.T) {
	c := NewGzipCompressor()
	data := samplePayload()
	packed, err := c.Compress(data)
	require.NoError(t, err)

	t.Run("missing trailer", func(t *testing.T) {
		cut := packed[:len(packed)-8]

		_, err := c.Decompress(cut)
		require.Error(t, err)

		out, err := c.DecompressPartial(cut)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("bad checksum", func(t *testing.T) {
		bad := bytes.Clone(packed)
		bad[len(bad)-8] ^= 0xff

		_, err := c.Decompress(bad)
		require.Error(t, err)

		out, err := c.DecompressPartial(bad)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("trailing garbage", func(t *testing.T) {
		out, err := c.DecompressPartial(append(bytes.Clone(packed), 0xde, 0xad))
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("multiple members", func(t *testing.T) {
		half := len(data) / 2
		first, err := c.Compress(data[:half])
		require.NoError(t, err)
		second, err := c.Compress(data[half:])
		require.NoError(t, err)
		joined := append(bytes.Clone(first), second...)

		strict, err := c.Decompress(joined)
		require.NoError(t, err)
		require.Equal(t, data, strict)

		out, err := c.DecompressPartial(joined)
		require.NoError(t, err)
		require.Equal(t, data, out)

		bad := bytes.Clone(joined)
		bad[len(bad)-8] ^= 0xff
		out, err = c.DecompressPartial(bad)
		require.NoError(t, err)
		require.Equal(t, data, out)

		out, err = c.DecompressPartial(joined[:len(joined)-8])
		require.NoError(t, err)
		require.Equal(t, data, out)

		out, err = c.DecompressPartial(append(bytes.Clone(joined), 'x', 'y', 'z'))
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("not gzip", func(t *testing.T) {
		_, err := c.DecompressPartial([]byte("plain bytes"))
		require.Error(t, err)
	})
}

func TestGzipCompressor_Stream(t *testing.T) {
	c := NewGzipCompressor()
	data := samplePayload()

	var buf bytes.Buffer
	w, err := c.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := c.Decompress(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, data, out)

	r, err := c.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer r.Close()

	var got bytes.Buffer
	_, err = got.ReadFrom(r)
	require.NoError(t, err)
	require.Equal(t, data, got.Bytes())
}

func TestEmptyInput(t *testing.T) {
	for _, c := range []Codec{NewS2Compressor(), NewLZ4Compressor()} {
		packed, err := c.Compress(nil)
		require.NoError(t, err)
		require.Nil(t, packed)

		out, err := c.Decompress(nil)
		require.NoError(t, err)
		require.Nil(t, out)
	}
}
