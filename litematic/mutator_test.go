package litematic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/nbt"
)

func TestReplace(t *testing.T) {
	doc := sampleDoc()
	mainAir := entry(doc, "main", 0)
	mainStone := entry(doc, "main", 2)
	oldDirt := entry(doc, "main", 1)
	props, _ := oldDirt.Get(KeyProperties)

	reps, err := Replace(doc, "minecraft:dirt", "minecraft:granite")
	require.NoError(t, err)
	require.Equal(t, []Replacement{{Region: "main", Index: 1}, {Region: "roof", Index: 1}}, reps)

	// untouched entries keep their identity
	require.Same(t, mainAir, entry(doc, "main", 0))
	require.Same(t, mainStone, entry(doc, "main", 2))

	granite := entry(doc, "main", 1)
	require.NotSame(t, oldDirt, granite)
	require.Equal(t, []string{KeyName, KeyProperties}, granite.Keys())
	name, _, err := nbt.Get[nbt.String](granite, KeyName)
	require.NoError(t, err)
	require.Equal(t, nbt.String("minecraft:granite"), name)
	movedProps, ok := granite.Get(KeyProperties)
	require.True(t, ok)
	require.Same(t, props.(*nbt.Compound), movedProps.(*nbt.Compound))

	roofGranite := entry(doc, "roof", 1)
	require.Equal(t, []string{KeyName}, roofGranite.Keys())

	names, err := ListBlockNames(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"minecraft:air", "minecraft:granite", "minecraft:stone"}, names)
}

func TestReplace_DropsExtraKeys(t *testing.T) {
	doc := sampleDoc()
	require.NoError(t, entry(doc, "main", 2).Set("Extra", nbt.Byte(1)))

	n, err := ReplaceBlocks(doc, "minecraft:stone", "minecraft:cobblestone")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []string{KeyName}, entry(doc, "main", 2).Keys())
}

func TestReplace_NoMatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc *nbt.Document)
		old    string
	}{
		{name: "absent name", old: "minecraft:diamond_block"},
		{name: "case sensitive", old: "minecraft:Dirt"},
		{name: "no namespace inferred", old: "dirt"},
		{name: "no regions", old: "minecraft:dirt", mutate: func(doc *nbt.Document) { doc.Root.Delete(KeyRegions) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := sampleDoc()
			if tt.mutate != nil {
				tt.mutate(doc)
			}
			before := cloneDoc(doc)

			n, err := ReplaceBlocks(doc, tt.old, "minecraft:granite")
			require.NoError(t, err)
			require.Zero(t, n)
			require.True(t, nbt.EqualDocument(before, doc))
		})
	}
}

func TestReplace_SameName(t *testing.T) {
	doc := sampleDoc()
	n, err := ReplaceBlocks(doc, "minecraft:dirt", "minecraft:dirt")
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.True(t, nbt.EqualDocument(sampleDoc(), doc))
}

func TestReplace_MalformedLeavesDocumentUntouched(t *testing.T) {
	doc := sampleDoc()
	// roof is visited after main
	require.NoError(t, entry(doc, "roof", 0).Set(KeyName, nbt.Int(7)))
	before := cloneDoc(doc)

	_, err := Replace(doc, "minecraft:dirt", "minecraft:granite")
	require.ErrorIs(t, err, errs.ErrWrongVariant)
	require.True(t, nbt.EqualDocument(before, doc))
}

func TestApplyRules(t *testing.T) {
	doc := sampleDoc()

	results, err := ApplyRules(doc, []Rule{
		{From: "minecraft:dirt", To: "minecraft:granite"},
		{From: "minecraft:granite", To: "minecraft:andesite"},
		{From: "minecraft:obsidian", To: "minecraft:air"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Len(t, results[0].Replacements, 2)
	require.Len(t, results[1].Replacements, 2)
	require.Empty(t, results[2].Replacements)

	names, err := ListBlockNames(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"minecraft:air", "minecraft:andesite", "minecraft:stone"}, names)
}

func TestApplyRules_Invalid(t *testing.T) {
	doc := sampleDoc()
	before := cloneDoc(doc)

	_, err := ApplyRules(doc, []Rule{
		{From: "minecraft:dirt", To: "minecraft:granite"},
		{From: "minecraft:stone"},
	})
	require.ErrorIs(t, err, errs.ErrInvalidRule)
	require.True(t, nbt.EqualDocument(before, doc))
}
