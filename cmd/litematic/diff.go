package main

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arloliu/litematic/litematic"
	"github.com/arloliu/litematic/nbt"
)

// paletteText renders every region palette, one entry per line.
func paletteText(doc *nbt.Document) (string, error) {
	regions, err := litematic.Regions(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for name, region := range regions {
		palette, err := litematic.Palette(region)
		if err != nil {
			return "", fmt.Errorf("region %q: %w", name, err)
		}
		if palette == nil {
			continue
		}
		for i, entry := range palette.All() {
			fmt.Fprintf(&sb, "%s[%d] %s\n", name, i, nbt.Format(entry))
		}
	}

	return sb.String(), nil
}

// paletteDiff returns a line diff of the palettes of before and after,
// prefixing removed lines with "-" and added ones with "+". Unchanged lines
// are omitted. The result is empty when nothing changed.
func paletteDiff(before, after *nbt.Document) (string, error) {
	from, err := paletteText(before)
	if err != nil {
		return "", err
	}
	to, err := paletteText(after)
	if err != nil {
		return "", err
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var mark string
		var paint func(string, ...any) string
		switch d.Type {
		case diffpatch.DiffDelete:
			mark, paint = "-", removedColor.Sprintf
		case diffpatch.DiffInsert:
			mark, paint = "+", addedColor.Sprintf
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(paint("%s %s", mark, line))
		}
	}

	return sb.String(), nil
}
