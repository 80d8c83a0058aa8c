package nbt

import (
	"fmt"
	"math"

	"github.com/arloliu/litematic/endian"
	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/internal/pool"
)

// encoder appends the binary form of a tree to a pooled buffer.
type encoder struct {
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
	maxDepth int
}

func newEncoder(cfg *Config) *encoder {
	return &encoder{
		buf:      pool.GetEncodeBuffer(),
		engine:   cfg.engine,
		maxDepth: cfg.maxDepth,
	}
}

// release returns the buffer to the pool. The encoder must not be used afterwards.
func (e *encoder) release() {
	pool.PutEncodeBuffer(e.buf)
	e.buf = nil
}

func (e *encoder) writeDocument(doc *Document) error {
	if doc.Root == nil {
		return fmt.Errorf("%w: document has no root compound", errs.ErrNilTag)
	}

	e.buf.B = append(e.buf.B, byte(format.TagCompound))
	if err := e.writeString(doc.Name); err != nil {
		return fmt.Errorf("root name: %w", err)
	}

	return e.writeCompound(doc.Root, 1)
}

func (e *encoder) writePayload(tag Tag, depth int) error {
	switch v := tag.(type) {
	case Byte:
		e.buf.B = append(e.buf.B, byte(v))
	case Short:
		e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(v)) //nolint:gosec
	case Int:
		e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(v)) //nolint:gosec
	case Long:
		e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v)) //nolint:gosec
	case Float:
		e.buf.B = e.engine.AppendUint32(e.buf.B, math.Float32bits(float32(v)))
	case Double:
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(float64(v)))
	case ByteArray:
		if err := e.writeLength(len(v), "byte array"); err != nil {
			return err
		}
		e.buf.B = append(e.buf.B, v...)
	case String:
		return e.writeString(string(v))
	case IntArray:
		if err := e.writeLength(len(v), "int array"); err != nil {
			return err
		}
		e.buf.Grow(len(v) * 4)
		for _, x := range v {
			e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(x)) //nolint:gosec
		}
	case LongArray:
		if err := e.writeLength(len(v), "long array"); err != nil {
			return err
		}
		e.buf.Grow(len(v) * 8)
		for _, x := range v {
			e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(x)) //nolint:gosec
		}
	case *List:
		return e.writeList(v, depth+1)
	case *Compound:
		return e.writeCompound(v, depth+1)
	case nil:
		return errs.ErrNilTag
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnknownTagType, tag)
	}

	return nil
}

func (e *encoder) writeCompound(c *Compound, depth int) error {
	if c == nil {
		return errs.ErrNilTag
	}
	if depth > e.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, e.maxDepth)
	}

	for i, key := range c.keys {
		val := c.vals[i]
		if val == nil {
			return fmt.Errorf("%s: %w", key, errs.ErrNilTag)
		}

		e.buf.B = append(e.buf.B, byte(val.Type()))
		if err := e.writeString(key); err != nil {
			return fmt.Errorf("key name: %w", err)
		}
		if err := e.writePayload(val, depth); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	e.buf.B = append(e.buf.B, byte(format.TagEnd))

	return nil
}

func (e *encoder) writeList(l *List, depth int) error {
	if l == nil {
		return errs.ErrNilTag
	}
	if depth > e.maxDepth {
		return fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, e.maxDepth)
	}

	e.buf.B = append(e.buf.B, byte(l.elem))
	if err := e.writeLength(len(l.items), "list"); err != nil {
		return err
	}

	for i, item := range l.items {
		if err := l.check(item); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
		if err := e.writePayload(item, depth); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}

	return nil
}

func (e *encoder) writeString(s string) error {
	n := mutf8Len(s)
	if n > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, n)
	}

	e.buf.Grow(2 + n)
	e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(n)) //nolint:gosec
	e.buf.B = appendMUTF8(e.buf.B, s)

	return nil
}

func (e *encoder) writeLength(n int, what string) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %s of %d", errs.ErrInvalidLength, what, n)
	}
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(n)) //nolint:gosec

	return nil
}
