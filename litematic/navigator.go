package litematic

import (
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/format"
	"github.com/arloliu/litematic/nbt"
)

// Well-known keys of a litematic document.
const (
	KeyVersion              = "Version"
	KeyMinecraftDataVersion = "MinecraftDataVersion"
	KeyMetadata             = "Metadata"
	KeyRegions              = "Regions"
	KeyBlockStatePalette    = "BlockStatePalette"
	KeyName                 = "Name"
	KeyProperties           = "Properties"
)

// UnknownBlock is reported for palette entries without a Name.
const UnknownBlock = "unknown"

var requiredKeys = []string{KeyVersion, KeyMinecraftDataVersion, KeyMetadata, KeyRegions}

// Regions returns an iterator over the document's regions in file order.
//
// A document without a Regions compound yields nothing. Entries of Regions
// that are not compounds are skipped.
//
// Returns:
//   - iter.Seq2[string, *nbt.Compound]: region name and region compound
//   - error: ErrWrongVariant if Regions is present but not a compound
func Regions(doc *nbt.Document) (iter.Seq2[string, *nbt.Compound], error) {
	if doc == nil || doc.Root == nil {
		return nil, fmt.Errorf("%w: document", errs.ErrNilTag)
	}

	regions, ok, err := nbt.Get[*nbt.Compound](doc.Root, KeyRegions)
	if err != nil {
		return nil, err
	}

	return func(yield func(string, *nbt.Compound) bool) {
		if !ok {
			return
		}
		for name, tag := range regions.All() {
			region, isCompound := tag.(*nbt.Compound)
			if !isCompound {
				continue
			}
			if !yield(name, region) {
				return
			}
		}
	}, nil
}

// Palette returns the BlockStatePalette of region, or nil if it has none.
//
// Returns:
//   - *nbt.List: the palette
//   - error: ErrWrongVariant if the palette is not a list, or holds
//     something other than compounds
func Palette(region *nbt.Compound) (*nbt.List, error) {
	palette, ok, err := nbt.Get[*nbt.List](region, KeyBlockStatePalette)
	if err != nil || !ok {
		return nil, err
	}

	if palette.Len() > 0 && palette.ElemType() != format.TagCompound {
		return nil, fmt.Errorf("%w: %s holds %s", errs.ErrWrongVariant, KeyBlockStatePalette, palette.ElemType())
	}

	return palette, nil
}

// regionPalette pairs a region name with its palette.
type regionPalette struct {
	region  string
	palette *nbt.List
}

// palettes collects every region palette, validating structure up front so
// callers can fail before touching the tree.
func palettes(doc *nbt.Document) ([]regionPalette, error) {
	regions, err := Regions(doc)
	if err != nil {
		return nil, err
	}

	var out []regionPalette
	for name, region := range regions {
		palette, err := Palette(region)
		if err != nil {
			return nil, fmt.Errorf("region %q: %w", name, err)
		}
		if palette == nil {
			continue
		}
		out = append(out, regionPalette{region: name, palette: palette})
	}

	return out, nil
}

// blockName reads the Name of a palette entry, UnknownBlock if absent.
func blockName(state *nbt.Compound) (string, error) {
	name, ok, err := nbt.Get[nbt.String](state, KeyName)
	if err != nil {
		return "", err
	}
	if !ok {
		return UnknownBlock, nil
	}

	return string(name), nil
}

// ListBlockNames returns the distinct block identifiers used by all region
// palettes, sorted lexicographically.
//
// Missing structure (no Regions, a region without palette, an entry without
// Name) is not an error. Structure that is present with the wrong variant is.
//
// Returns:
//   - []string: sorted, deduplicated names; empty, never nil
//   - error: ErrWrongVariant for malformed structure
func ListBlockNames(doc *nbt.Document) ([]string, error) {
	all, err := palettes(doc)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, rp := range all {
		for i, tag := range rp.palette.All() {
			state, _ := tag.(*nbt.Compound)
			name, err := blockName(state)
			if err != nil {
				return nil, fmt.Errorf("region %q palette[%d]: %w", rp.region, i, err)
			}
			seen[name] = struct{}{}
		}
	}

	names := slices.Sorted(maps.Keys(seen))
	if names == nil {
		names = []string{}
	}

	return names, nil
}

// MissingKeys returns the required top-level keys absent from doc, in the
// order Version, MinecraftDataVersion, Metadata, Regions.
func MissingKeys(doc *nbt.Document) []string {
	var missing []string
	for _, key := range requiredKeys {
		if doc == nil || doc.Root == nil || !doc.Root.Has(key) {
			missing = append(missing, key)
		}
	}

	return missing
}

// VerifyStructure reports whether doc carries every required top-level key.
//
// Each missing key is logged as a warning through the configured logger.
// The check is advisory: it never modifies doc and callers may keep working
// with a document that fails it.
func VerifyStructure(doc *nbt.Document, opts ...Option) bool {
	cfg := newConfig(opts)

	missing := MissingKeys(doc)
	for _, key := range missing {
		cfg.logger.Warn("schematic structure incomplete", slog.String("missing", key))
	}
	if len(missing) == 0 {
		cfg.logger.Debug("schematic structure ok")
	}

	return len(missing) == 0
}
