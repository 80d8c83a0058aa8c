package nbt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/litematic/compress"
	"github.com/arloliu/litematic/endian"
	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/internal/options"
)

// DefaultMaxDepth is the nesting limit the game itself enforces.
const DefaultMaxDepth = 512

// Document is a decoded tag stream: a named root compound plus the container
// framing it was read from.
type Document struct {
	// Name is the root tag name, usually empty for schematics.
	Name string
	// Root is the root compound.
	Root *Compound
	// Mode records whether the stream was gzip-wrapped. Encode reproduces it.
	Mode format.ContainerMode
}

// NewDocument creates a document around root.
func NewDocument(name string, root *Compound, mode format.ContainerMode) *Document {
	return &Document{Name: name, Root: root, Mode: mode}
}

// Config holds codec settings. It is populated through Options.
type Config struct {
	engine    endian.EndianEngine
	maxDepth  int
	gzipLevel int
	logger    *slog.Logger
}

// Option configures Decode, DecodeReader, Encode and EncodeTo.
type Option = options.Option[*Config]

// WithByteOrder selects the byte order of multi-byte fields. The default is
// big-endian (Java Edition).
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *Config) error {
		if engine == nil {
			return errors.New("nil byte order")
		}
		c.engine = engine

		return nil
	})
}

// WithMaxDepth sets the maximum compound/list nesting depth.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithGzipLevel sets the compression level used when encoding gzip documents.
func WithGzipLevel(level int) Option {
	return options.New(func(c *Config) error {
		if _, err := compress.NewGzipCompressorLevel(level); err != nil {
			return err
		}
		c.gzipLevel = level

		return nil
	})
}

// WithLogger sets the logger used to report decode fallbacks.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		engine:    endian.GetBigEndianEngine(),
		maxDepth:  DefaultMaxDepth,
		gzipLevel: -1,
		logger:    slog.New(slog.DiscardHandler),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DetectMode reports the container framing of data by its leading bytes.
func DetectMode(data []byte) format.ContainerMode {
	if compress.IsGzip(data) {
		return format.ModeGzip
	}

	return format.ModePlain
}

// Decode parses a complete tag stream held in memory.
//
// The stream loader (DecodeReader) is tried first. If it rejects the input,
// the bytes are parsed again by the manual parser, which accepts a damaged
// gzip trailer and ignores bytes after the root compound. The manual parser's
// error is returned when both fail.
//
// Parameters:
//   - data: plain or gzip-wrapped tag stream
//   - opts: codec options
//
// Returns:
//   - *Document: the decoded document with Mode set from the framing
//   - error: ErrTruncated, ErrUnknownTagType, ErrInvalidListElementCount,
//     ErrInvalidRootType, ErrDuplicateKey and related codec errors
func Decode(data []byte, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	doc, err := decodeStream(bytes.NewReader(data), cfg)
	if err == nil {
		return doc, nil
	}

	cfg.logger.Debug("stream decode failed, retrying manual parse",
		slog.Int("size", len(data)), slog.Any("error", err))

	return decodeManual(data, cfg)
}

// DecodeReader parses a tag stream from r.
//
// It is strict: gzip checksums are verified and any byte after the root
// compound is reported as ErrTrailingData.
func DecodeReader(r io.Reader, opts ...Option) (*Document, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return decodeStream(r, cfg)
}

func decodeStream(r io.Reader, cfg *Config) (*Document, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	mode := format.ModePlain

	head, _ := br.Peek(2)
	if compress.IsGzip(head) {
		zr, err := compress.NewGzipCompressor().NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()

		br = bufio.NewReaderSize(zr, 64*1024)
		mode = format.ModeGzip
	}

	src := newReaderSource(br)
	doc, err := newDecoder(src, cfg).readDocument()
	if err != nil {
		return nil, err
	}
	if err := src.expectEOF(); err != nil {
		return nil, err
	}
	doc.Mode = mode

	return doc, nil
}

func decodeManual(data []byte, cfg *Config) (*Document, error) {
	mode := DetectMode(data)
	payload := data
	if mode == format.ModeGzip {
		var err error
		payload, err = compress.NewGzipCompressor().DecompressPartial(data)
		if err != nil {
			return nil, err
		}
	}

	src := &sliceSource{data: payload}
	doc, err := newDecoder(src, cfg).readDocument()
	if err != nil {
		return nil, err
	}
	if n := src.rest(); n > 0 {
		cfg.logger.Debug("ignoring bytes after root compound", slog.Int("bytes", n))
	}
	doc.Mode = mode

	return doc, nil
}

// Encode serializes doc, gzip-wrapping the result iff doc.Mode is ModeGzip.
//
// Returns:
//   - []byte: the encoded stream, owned by the caller
//   - error: ErrStringTooLong, ErrTypeMismatch, ErrNilTag or
//     ErrInvalidContainer for an unknown mode
func Encode(doc *Document, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	payload, err := encodePayload(doc, cfg)
	if err != nil {
		return nil, err
	}

	switch doc.Mode {
	case format.ModePlain:
		return payload, nil
	case format.ModeGzip:
		gz, _ := compress.NewGzipCompressorLevel(cfg.gzipLevel)
		return gz.Compress(payload)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidContainer, doc.Mode)
	}
}

// EncodePayload serializes doc without any container framing, regardless of
// doc.Mode.
func EncodePayload(doc *Document, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return encodePayload(doc, cfg)
}

// EncodeTo writes doc to w, streaming the gzip wrapper if doc.Mode is ModeGzip.
func EncodeTo(w io.Writer, doc *Document, opts ...Option) error {
	if doc == nil {
		return fmt.Errorf("%w: document", errs.ErrNilTag)
	}

	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	enc := newEncoder(cfg)
	defer enc.release()
	if err := enc.writeDocument(doc); err != nil {
		return err
	}

	switch doc.Mode {
	case format.ModePlain:
		_, err := enc.buf.WriteTo(w)
		return err
	case format.ModeGzip:
		gz, _ := compress.NewGzipCompressorLevel(cfg.gzipLevel)
		zw, err := gz.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := enc.buf.WriteTo(zw); err != nil {
			_ = zw.Close()
			return err
		}

		return zw.Close()
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidContainer, doc.Mode)
	}
}

// WriteTo implements io.WriterTo with default options.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := EncodeTo(cw, doc)

	return cw.n, err
}

func encodePayload(doc *Document, cfg *Config) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document", errs.ErrNilTag)
	}

	enc := newEncoder(cfg)
	defer enc.release()
	if err := enc.writeDocument(doc); err != nil {
		return nil, err
	}

	return bytes.Clone(enc.buf.Bytes()), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
