package nbt

import (
	"fmt"
	"math"

	"github.com/arloliu/litematic/endian"
	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
)

// maxPrealloc bounds the capacity reserved up front for list elements; the
// slice still grows to the declared count if the input really holds it.
const maxPrealloc = 1 << 12

// decoder implements the tag grammar over a source.
type decoder struct {
	src      source
	engine   endian.EndianEngine
	maxDepth int
}

func newDecoder(src source, cfg *Config) *decoder {
	return &decoder{src: src, engine: cfg.engine, maxDepth: cfg.maxDepth}
}

// readDocument reads the root type byte, the root name and the root compound.
func (d *decoder) readDocument() (*Document, error) {
	typ, err := d.readType()
	if err != nil {
		return nil, fmt.Errorf("root type: %w", err)
	}
	if typ != format.TagCompound {
		return nil, fmt.Errorf("%w: got %s", errs.ErrInvalidRootType, typ)
	}

	name, err := d.readString()
	if err != nil {
		return nil, fmt.Errorf("root name: %w", err)
	}

	root, err := d.readCompound(1)
	if err != nil {
		return nil, err
	}

	return &Document{Name: name, Root: root}, nil
}

func (d *decoder) readType() (format.TagType, error) {
	b, err := d.src.take(1)
	if err != nil {
		return 0, err
	}

	typ := format.TagType(b[0])
	if !typ.Valid() {
		return 0, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrUnknownTagType, b[0], d.src.offset()-1)
	}

	return typ, nil
}

func (d *decoder) readPayload(typ format.TagType, depth int) (Tag, error) {
	switch typ {
	case format.TagByte:
		b, err := d.src.take(1)
		if err != nil {
			return nil, err
		}

		return Byte(int8(b[0])), nil //nolint:gosec
	case format.TagShort:
		b, err := d.src.take(2)
		if err != nil {
			return nil, err
		}

		return Short(int16(d.engine.Uint16(b))), nil //nolint:gosec
	case format.TagInt:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}

		return Int(v), nil
	case format.TagLong:
		b, err := d.src.take(8)
		if err != nil {
			return nil, err
		}

		return Long(int64(d.engine.Uint64(b))), nil //nolint:gosec
	case format.TagFloat:
		b, err := d.src.take(4)
		if err != nil {
			return nil, err
		}

		return Float(math.Float32frombits(d.engine.Uint32(b))), nil
	case format.TagDouble:
		b, err := d.src.take(8)
		if err != nil {
			return nil, err
		}

		return Double(math.Float64frombits(d.engine.Uint64(b))), nil
	case format.TagByteArray:
		n, err := d.readLength("byte array")
		if err != nil {
			return nil, err
		}
		b, err := d.src.take(n)
		if err != nil {
			return nil, err
		}
		out := make(ByteArray, n)
		copy(out, b)

		return out, nil
	case format.TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}

		return String(s), nil
	case format.TagList:
		return d.readList(depth + 1)
	case format.TagCompound:
		return d.readCompound(depth + 1)
	case format.TagIntArray:
		n, err := d.readLength("int array")
		if err != nil {
			return nil, err
		}
		b, err := d.src.take(n * 4)
		if err != nil {
			return nil, err
		}
		out := make(IntArray, n)
		for i := range out {
			out[i] = int32(d.engine.Uint32(b[i*4:])) //nolint:gosec
		}

		return out, nil
	case format.TagLongArray:
		n, err := d.readLength("long array")
		if err != nil {
			return nil, err
		}
		b, err := d.src.take(n * 8)
		if err != nil {
			return nil, err
		}
		out := make(LongArray, n)
		for i := range out {
			out[i] = int64(d.engine.Uint64(b[i*8:])) //nolint:gosec
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: no payload for %s", errs.ErrUnknownTagType, typ)
	}
}

func (d *decoder) readCompound(depth int) (*Compound, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	c := &Compound{}
	for {
		typ, err := d.readType()
		if err != nil {
			return nil, err
		}
		if typ == format.TagEnd {
			return c, nil
		}

		key, err := d.readString()
		if err != nil {
			return nil, fmt.Errorf("key name: %w", err)
		}

		val, err := d.readPayload(typ, depth)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}

		if err := c.insert(key, val); err != nil {
			return nil, err
		}
	}
}

func (d *decoder) readList(depth int) (*List, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	elem, err := d.readType()
	if err != nil {
		return nil, err
	}
	count, err := d.readInt32()
	if err != nil {
		return nil, err
	}

	switch {
	case count < 0 && elem != format.TagEnd:
		return nil, fmt.Errorf("%w: %d elements of %s", errs.ErrInvalidListElementCount, count, elem)
	case count > 0 && elem == format.TagEnd:
		return nil, fmt.Errorf("%w: %d elements of End", errs.ErrInvalidListElementCount, count)
	case count <= 0:
		return &List{elem: elem}, nil
	}

	capHint := min(int(count), maxPrealloc)
	if rest := d.src.rest(); rest >= 0 {
		capHint = min(capHint, rest)
	}

	l := &List{elem: elem, items: make([]Tag, 0, capHint)}
	for i := range int(count) {
		item, err := d.readPayload(elem, depth)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		l.items = append(l.items, item)
	}

	return l, nil
}

func (d *decoder) readString() (string, error) {
	b, err := d.src.take(2)
	if err != nil {
		return "", err
	}

	raw, err := d.src.take(int(d.engine.Uint16(b)))
	if err != nil {
		return "", err
	}

	return decodeMUTF8(raw)
}

func (d *decoder) readInt32() (int32, error) {
	b, err := d.src.take(4)
	if err != nil {
		return 0, err
	}

	return int32(d.engine.Uint32(b)), nil //nolint:gosec
}

func (d *decoder) readLength(what string) (int, error) {
	n, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s of %d", errs.ErrInvalidLength, what, n)
	}

	return int(n), nil
}
