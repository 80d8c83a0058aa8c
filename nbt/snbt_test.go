package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/litematic/format"
)

func TestFormat(t *testing.T) {
	c := NewCompound().
		MustSet("Name", String("minecraft:oak_stairs")).
		MustSet("Properties", NewCompound().MustSet("facing", String("north"))).
		MustSet("b", Byte(1)).
		MustSet("s", Short(2)).
		MustSet("l", Long(3)).
		MustSet("f", Float(0.5)).
		MustSet("d", Double(1.25)).
		MustSet("arr", ByteArray{1, 0xff}).
		MustSet("ia", IntArray{1, 2}).
		MustSet("la", LongArray{7}).
		MustSet("list", MustList(format.TagInt, Int(1), Int(2))).
		MustSet("odd key", String(`say "hi"`))

	want := `{Name:"minecraft:oak_stairs",Properties:{facing:"north"},b:1b,s:2s,l:3L,` +
		`f:0.5f,d:1.25d,arr:[B;1b,-1b],ia:[I;1,2],la:[L;7L],list:[1,2],"odd key":"say \"hi\""}`
	require.Equal(t, want, Format(c))
}

func TestFormatIndent(t *testing.T) {
	c := NewCompound().
		MustSet("Name", String("minecraft:stone")).
		MustSet("Empty", NewCompound()).
		MustSet("List", MustList(format.TagString, String("a")))

	want := "{\n  Name: \"minecraft:stone\",\n  Empty: {},\n  List: [\n    \"a\"\n  ]\n}"
	require.Equal(t, want, FormatIndent(c, "  "))
}
