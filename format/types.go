package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/litematic/errs"
)

type (
	TagType         uint8
	ContainerMode   uint8
	CompressionType uint8
)

const (
	TagEnd       TagType = 0x0 // TagEnd terminates compounds and types empty lists.
	TagByte      TagType = 0x1 // TagByte is a signed 8-bit integer.
	TagShort     TagType = 0x2 // TagShort is a signed 16-bit integer.
	TagInt       TagType = 0x3 // TagInt is a signed 32-bit integer.
	TagLong      TagType = 0x4 // TagLong is a signed 64-bit integer.
	TagFloat     TagType = 0x5 // TagFloat is an IEEE-754 32-bit float.
	TagDouble    TagType = 0x6 // TagDouble is an IEEE-754 64-bit float.
	TagByteArray TagType = 0x7 // TagByteArray is a length-prefixed byte sequence.
	TagString    TagType = 0x8 // TagString is a length-prefixed modified UTF-8 string.
	TagList      TagType = 0x9 // TagList is a homogeneous sequence of tags.
	TagCompound  TagType = 0xA // TagCompound is an ordered set of named tags.
	TagIntArray  TagType = 0xB // TagIntArray is a length-prefixed int32 sequence.
	TagLongArray TagType = 0xC // TagLongArray is a length-prefixed int64 sequence.

	ModePlain ContainerMode = 0x1 // ModePlain is an uncompressed tag stream.
	ModeGzip  ContainerMode = 0x2 // ModeGzip is a gzip-wrapped tag stream.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip compression.
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 compression.
)

var tagNames = [...]string{
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// Valid reports whether t is one of the thirteen defined tag types.
func (t TagType) Valid() bool {
	return t <= TagLongArray
}

func (t TagType) String() string {
	if t.Valid() {
		return tagNames[t]
	}

	return fmt.Sprintf("Unknown(%d)", uint8(t))
}

func (m ContainerMode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeGzip:
		return "gzip"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension used for data compressed with c,
// or an empty string for CompressionNone.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionGzip:
		return ".gz"
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompressionType parses a case-insensitive compression name such as
// "zstd" or "none".
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedCompression, name)
	}
}
