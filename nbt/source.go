package nbt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/litematic/errs"
)

// source feeds the decoder. take returns exactly n bytes; the slice is only
// valid until the next call.
type source interface {
	take(n int) ([]byte, error)
	// rest reports how many bytes remain after the current position, for
	// sources that know it, and -1 otherwise.
	rest() int
	offset() int64
}

// sliceSource reads from an in-memory payload without copying.
type sliceSource struct {
	data []byte
	off  int
}

func (s *sliceSource) take(n int) ([]byte, error) {
	if n < 0 || len(s.data)-s.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncated, n, s.off, len(s.data)-s.off)
	}
	b := s.data[s.off : s.off+n]
	s.off += n

	return b, nil
}

func (s *sliceSource) rest() int {
	return len(s.data) - s.off
}

func (s *sliceSource) offset() int64 {
	return int64(s.off)
}

// streamChunk caps a single read so a corrupt length prefix cannot make the
// stream decoder allocate more than the input actually contains.
const streamChunk = 1 << 20

// readerSource reads from a stream through a reusable scratch buffer.
type readerSource struct {
	r       *bufio.Reader
	scratch []byte
	off     int64
}

func newReaderSource(r io.Reader) *readerSource {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 64*1024)
	}

	return &readerSource{r: br, scratch: make([]byte, 0, 256)}
}

func (s *readerSource) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative read at offset %d", errs.ErrTruncated, s.off)
	}

	if n <= streamChunk {
		if cap(s.scratch) < n {
			s.scratch = make([]byte, n)
		}
		b := s.scratch[:n]
		if err := s.fill(b); err != nil {
			return nil, err
		}

		return b, nil
	}

	out := make([]byte, 0, streamChunk)
	for len(out) < n {
		step := min(n-len(out), streamChunk)
		start := len(out)
		out = append(out, make([]byte, step)...)
		if err := s.fill(out[start:]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (s *readerSource) fill(b []byte) error {
	got, err := io.ReadFull(s.r, b)
	s.off += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
				errs.ErrTruncated, len(b), s.off-int64(got), got)
		}

		return fmt.Errorf("read at offset %d: %w", s.off, err)
	}

	return nil
}

func (s *readerSource) rest() int {
	return -1
}

func (s *readerSource) offset() int64 {
	return s.off
}

// expectEOF succeeds only if the stream ends here. Reading a gzip stream to
// its end also verifies the member checksum.
func (s *readerSource) expectEOF() error {
	_, err := s.r.ReadByte()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("after root compound: %w", err)
	default:
		return fmt.Errorf("%w: at offset %d", errs.ErrTrailingData, s.off)
	}
}
