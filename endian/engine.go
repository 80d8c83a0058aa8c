// Package endian provides the byte order engines used by the tag codec.
//
// Java Edition stores every multi-byte field of a tag stream big-endian, which
// is the default everywhere in this module. Bedrock Edition uses the same
// grammar little-endian; pass GetLittleEndianEngine to the codec options to
// read or write such payloads.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, uint32(count))
//	n := int32(engine.Uint32(data[off:]))
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by Java Edition files.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine used by Bedrock Edition payloads.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}
