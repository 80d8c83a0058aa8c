package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// GzipMagic is the two-byte signature that starts every gzip member.
var GzipMagic = [2]byte{0x1f, 0x8b}

// IsGzip reports whether data starts with the gzip signature.
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == GzipMagic[0] && data[1] == GzipMagic[1]
}

// gzipWriterPools holds one writer pool per compression level.
var gzipWriterPools sync.Map

func gzipWriterPool(level int) *sync.Pool {
	if p, ok := gzipWriterPools.Load(level); ok {
		return p.(*sync.Pool) //nolint:forcetypeassert
	}

	p, _ := gzipWriterPools.LoadOrStore(level, &sync.Pool{
		New: func() any {
			// level was validated by NewGzipCompressorLevel
			w, _ := gzip.NewWriterLevel(nil, level)
			return w
		},
	})

	return p.(*sync.Pool) //nolint:forcetypeassert
}

// GzipCompressor wraps payloads in a single gzip member.
//
// Schematic files written by the game and by Litematica are gzip-wrapped, so
// this is the codec used for the document container. Header fields such as
// mtime are left zero; only the inflated payload is meaningful.
type GzipCompressor struct {
	level int
}

var (
	_ Codec              = (*GzipCompressor)(nil)
	_ StreamDecompressor = (*GzipCompressor)(nil)
	_ StreamCompressor   = (*GzipCompressor)(nil)
)

// NewGzipCompressor creates a gzip compressor using the default compression level.
func NewGzipCompressor() GzipCompressor {
	return GzipCompressor{level: gzip.DefaultCompression}
}

// NewGzipCompressorLevel creates a gzip compressor with an explicit level
// between gzip.HuffmanOnly and gzip.BestCompression.
//
// Returns:
//   - GzipCompressor: New gzip compressor
//   - error: if level is out of range
func NewGzipCompressorLevel(level int) (GzipCompressor, error) {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		return GzipCompressor{}, fmt.Errorf("invalid gzip level %d", level)
	}

	return GzipCompressor{level: level}, nil
}

// Compress compresses the input data as one gzip member.
func (c GzipCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	pool := gzipWriterPool(c.level)
	zw, _ := pool.Get().(*gzip.Writer)
	defer pool.Put(zw)

	zw.Reset(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates gzip data, validating every member's CRC and size trailer.
func (c GzipCompressor) Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}

	return out, nil
}

// DecompressPartial inflates as much of data as possible.
//
// Unlike Decompress it accepts members whose trailer is missing or whose
// checksum does not match, and stops quietly at anything after the last
// complete member that is not another gzip header. Every member is read, so
// it accepts all input Decompress accepts. It fails only when the first
// header is invalid or nothing at all could be inflated.
func (c GzipCompressor) DecompressPartial(data []byte) ([]byte, error) {
	br := bytes.NewReader(data)
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer zr.Close()

	var out bytes.Buffer
	var damaged error
	for {
		// Reset turns multistream back on
		zr.Multistream(false)
		if _, err := io.Copy(&out, zr); err != nil {
			if !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, gzip.ErrChecksum) {
				return nil, fmt.Errorf("gzip decompression failed: %w", err)
			}
			damaged = err
		}
		if br.Len() == 0 {
			break
		}
		// a bad header past the first member is trailing garbage
		if err := zr.Reset(br); err != nil {
			break
		}
	}

	if damaged != nil && out.Len() == 0 {
		return nil, fmt.Errorf("gzip decompression failed: %w", damaged)
	}

	return out.Bytes(), nil
}

// NewReader returns a streaming gzip reader over r.
func (c GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}

	return zr, nil
}

// NewWriter returns a streaming gzip writer over w at the compressor's level.
func (c GzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, c.level)
}
