// Package nbt implements the binary tag tree (NBT) used by Minecraft and by
// Litematica schematic files.
//
// # Tag Model
//
// Tag is a closed sum type. Scalars, strings and arrays are plain named Go
// types; List and Compound are pointers with variant-checked accessors:
//
//	root := nbt.NewCompound()
//	root.MustSet("Version", nbt.Int(6))
//
//	palette := nbt.MustList(format.TagCompound)
//	_ = palette.Append(nbt.NewCompound().MustSet("Name", nbt.String("minecraft:air")))
//
//	name, ok, err := nbt.Get[nbt.String](state, "Name")
//
// Lists are homogeneous: List.Set and List.Append reject a tag of another
// type with errs.ErrTypeMismatch. Compounds keep insertion order, which is
// also the order they are encoded in.
//
// # Codec
//
// Decode parses plain or gzip-wrapped bytes and records the framing in
// Document.Mode; Encode reproduces that framing. For any decoded document,
// decoding the output of Encode yields a document for which EqualDocument
// reports true.
//
//	doc, err := nbt.Decode(data)
//	if err != nil {
//	    return err
//	}
//	out, err := nbt.Encode(doc)
//
// Decode first runs the strict stream loader (DecodeReader) and, if that
// fails, parses the same bytes again with the lenient manual parser. Only
// gzip parameters are lost on re-encoding. For canonical input (no trailing
// bytes, no duplicate keys) the inflated payload is reproduced byte for byte.
//
// # Thread Safety
//
// Codec functions are safe for concurrent use. Documents and tags are not:
// callers must serialize access to a tree they mutate.
package nbt
