package litematic

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/litematic/errs"
)

// DefaultNamespace is prefixed to bare block names.
const DefaultNamespace = "minecraft"

// NormalizeBlockName trims name and prefixes namespace when it has none,
// so "stone" becomes "minecraft:stone". An empty namespace means
// DefaultNamespace.
func NormalizeBlockName(name, namespace string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ":") {
		return name
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return namespace + ":" + name
}

// SelectBlock resolves operator input against a numbered block listing.
//
// input is either a 1-based index into blocks or a block name, normalized
// with NormalizeBlockName before lookup.
//
// Returns:
//   - string: the selected block name
//   - error: ErrNoSelection if the index is out of range or the name is not listed
func SelectBlock(blocks []string, input, namespace string) (string, error) {
	input = strings.TrimSpace(input)

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(blocks) {
			return "", fmt.Errorf("%w: number must be between 1 and %d", errs.ErrNoSelection, len(blocks))
		}

		return blocks[n-1], nil
	}

	name := NormalizeBlockName(input, namespace)
	if !slices.Contains(blocks, name) {
		return "", fmt.Errorf("%w: %q not in palette", errs.ErrNoSelection, name)
	}

	return name, nil
}
