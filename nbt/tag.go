package nbt

import "github.com/arloliu/litematic/format"

// Tag is a node of the tag tree.
//
// The set of implementations is closed: Byte, Short, Int, Long, Float,
// Double, ByteArray, String, *List, *Compound, IntArray and LongArray.
// Use a type switch or the variant-checked helpers (AsCompound, AsList, Get)
// to access the concrete value.
type Tag interface {
	// Type returns the wire type of the tag.
	Type() format.TagType

	isTag()
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []byte
	IntArray  []int32
	LongArray []int64
)

func (Byte) Type() format.TagType      { return format.TagByte }
func (Short) Type() format.TagType     { return format.TagShort }
func (Int) Type() format.TagType       { return format.TagInt }
func (Long) Type() format.TagType      { return format.TagLong }
func (Float) Type() format.TagType     { return format.TagFloat }
func (Double) Type() format.TagType    { return format.TagDouble }
func (String) Type() format.TagType    { return format.TagString }
func (ByteArray) Type() format.TagType { return format.TagByteArray }
func (IntArray) Type() format.TagType  { return format.TagIntArray }
func (LongArray) Type() format.TagType { return format.TagLongArray }
func (*List) Type() format.TagType     { return format.TagList }
func (*Compound) Type() format.TagType { return format.TagCompound }

func (Byte) isTag()      {}
func (Short) isTag()     {}
func (Int) isTag()       {}
func (Long) isTag()      {}
func (Float) isTag()     {}
func (Double) isTag()    {}
func (String) isTag()    {}
func (ByteArray) isTag() {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}
func (*List) isTag()     {}
func (*Compound) isTag() {}

// isNil reports whether tag is nil or a nil container pointer.
func isNil(tag Tag) bool {
	switch v := tag.(type) {
	case nil:
		return true
	case *Compound:
		return v == nil
	case *List:
		return v == nil
	default:
		return false
	}
}
