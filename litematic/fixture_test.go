package litematic

import (
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/nbt"
)

func state(name string) *nbt.Compound {
	return nbt.NewCompound().MustSet(KeyName, nbt.String(name))
}

func stateWithProps(name string, props *nbt.Compound) *nbt.Compound {
	return state(name).MustSet(KeyProperties, props)
}

func region(palette ...nbt.Tag) *nbt.Compound {
	return nbt.NewCompound().
		MustSet("Position", nbt.NewCompound().
			MustSet("x", nbt.Int(0)).
			MustSet("y", nbt.Int(64)).
			MustSet("z", nbt.Int(0))).
		MustSet(KeyBlockStatePalette, nbt.MustList(format.TagCompound, palette...)).
		MustSet("BlockStates", nbt.LongArray{0x0123456789abcdef, -1})
}

// sampleDoc builds a two-region schematic:
//
//	main: air, dirt{snowy:false}, stone
//	roof: air, dirt
func sampleDoc() *nbt.Document {
	regions := nbt.NewCompound().
		MustSet("main", region(
			state("minecraft:air"),
			stateWithProps("minecraft:dirt", nbt.NewCompound().MustSet("snowy", nbt.String("false"))),
			state("minecraft:stone"),
		)).
		MustSet("roof", region(
			state("minecraft:air"),
			state("minecraft:dirt"),
		))

	root := nbt.NewCompound().
		MustSet(KeyVersion, nbt.Int(6)).
		MustSet(KeyMinecraftDataVersion, nbt.Int(3465)).
		MustSet(KeyMetadata, nbt.NewCompound().
			MustSet("Name", nbt.String("house")).
			MustSet("Author", nbt.String("builder"))).
		MustSet(KeyRegions, regions)

	return nbt.NewDocument("", root, format.ModeGzip)
}

func cloneDoc(doc *nbt.Document) *nbt.Document {
	root, _ := nbt.Clone(doc.Root).(*nbt.Compound)
	return nbt.NewDocument(doc.Name, root, doc.Mode)
}

func paletteOf(doc *nbt.Document, name string) *nbt.List {
	regions, _, _ := nbt.Get[*nbt.Compound](doc.Root, KeyRegions)
	r, _, _ := nbt.Get[*nbt.Compound](regions, name)
	p, _, _ := nbt.Get[*nbt.List](r, KeyBlockStatePalette)

	return p
}

func entry(doc *nbt.Document, regionName string, i int) *nbt.Compound {
	tag, _ := paletteOf(doc, regionName).Get(i)
	c, _ := tag.(*nbt.Compound)

	return c
}
