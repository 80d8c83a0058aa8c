package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
)

// Compressor compresses a complete in-memory payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller (NoOp excepted)
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations validate the input and return an error when the data is
// corrupted or was produced by an incompatible algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// StreamDecompressor is implemented by codecs that can wrap an io.Reader.
//
// The returned reader must be closed by the caller. Reading it to io.EOF
// validates any trailing checksum the format carries.
type StreamDecompressor interface {
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// StreamCompressor is implemented by codecs that can wrap an io.Writer.
//
// Data is not guaranteed to be flushed to the underlying writer until the
// returned writer is closed.
type StreamCompressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Gzip, Zstd, S2 or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionGzip: NewGzipCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
