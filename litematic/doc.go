// Package litematic reads, inspects and rewrites Litematica schematic files.
//
// A schematic is an NBT document whose root holds Version,
// MinecraftDataVersion, Metadata and Regions. Each region carries a
// BlockStatePalette: a list of compounds with a Name such as
// "minecraft:stone" and optional Properties. Blocks in the region refer to
// palette slots by index, so renaming a palette entry changes every block
// that uses it without touching the packed block data.
//
// # Typical Use
//
//	doc, mode, err := litematic.Load("house.litematic")
//	if err != nil {
//	    return err
//	}
//
//	names, err := litematic.ListBlockNames(doc)
//	...
//	n, err := litematic.ReplaceBlocks(doc, "minecraft:dirt", "minecraft:granite")
//	...
//	if err := litematic.Save(doc, "house.litematic", mode); err != nil {
//	    return err
//	}
//
// Backup and Restore keep a compressed copy of the file next to it, and
// VerifySaved re-reads a written file and compares its fingerprint with the
// in-memory document.
//
// Absent structure (no Regions, a region without palette) is treated as
// empty. Structure that is present but has the wrong tag type is reported
// with errs.ErrWrongVariant, and nothing is modified.
package litematic
