package litematic

import (
	"fmt"

	"github.com/arloliu/litematic/errs"
	"github.com/arloliu/litematic/nbt"
)

// Replacement identifies one rewritten palette entry.
type Replacement struct {
	Region string // region name
	Index  int    // index in the region's BlockStatePalette
}

// Rule is one old-name to new-name replacement.
type Rule struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to" json:"to"`
}

// RuleResult reports what a single rule changed.
type RuleResult struct {
	Rule         Rule
	Replacements []Replacement
}

// Replace rewrites every palette entry named oldName to newName.
//
// Matching is exact and case-sensitive; no namespace is inferred. Each match
// is replaced by a fresh compound holding only Name and, if the old entry had
// one, its Properties value (moved, not copied). Entries that do not match
// keep their identity. The whole tree is validated before the first write,
// so a malformed palette leaves doc untouched.
//
// Returns:
//   - []Replacement: one entry per rewritten palette slot, in file order
//   - error: ErrWrongVariant for malformed structure
func Replace(doc *nbt.Document, oldName, newName string) ([]Replacement, error) {
	all, err := palettes(doc)
	if err != nil {
		return nil, err
	}

	type hit struct {
		rp    regionPalette
		index int
		props nbt.Tag
	}

	var hits []hit
	for _, rp := range all {
		for i, tag := range rp.palette.All() {
			state, _ := tag.(*nbt.Compound)
			name, ok, err := nbt.Get[nbt.String](state, KeyName)
			if err != nil {
				return nil, fmt.Errorf("region %q palette[%d]: %w", rp.region, i, err)
			}
			if !ok || string(name) != oldName {
				continue
			}
			props, _ := state.Get(KeyProperties)
			hits = append(hits, hit{rp: rp, index: i, props: props})
		}
	}

	out := make([]Replacement, 0, len(hits))
	for _, h := range hits {
		fresh := nbt.NewCompound().MustSet(KeyName, nbt.String(newName))
		if h.props != nil {
			fresh.MustSet(KeyProperties, h.props)
		}
		// a compound replacing a compound cannot mismatch
		if err := h.rp.palette.Set(h.index, fresh); err != nil {
			return out, fmt.Errorf("region %q palette[%d]: %w", h.rp.region, h.index, err)
		}
		out = append(out, Replacement{Region: h.rp.region, Index: h.index})
	}

	return out, nil
}

// ReplaceBlocks is Replace returning only the number of rewritten entries.
func ReplaceBlocks(doc *nbt.Document, oldName, newName string) (int, error) {
	reps, err := Replace(doc, oldName, newName)

	return len(reps), err
}

// ApplyRules applies rules in order. Each rule sees the result of the
// previous ones, so {a→b, b→c} turns a into c.
//
// Returns:
//   - []RuleResult: per-rule replacements, same order as rules
//   - error: ErrInvalidRule (checked before anything is modified), or a
//     structure error from Replace
func ApplyRules(doc *nbt.Document, rules []Rule) ([]RuleResult, error) {
	for i, r := range rules {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("%w: rule %d needs both from and to", errs.ErrInvalidRule, i)
		}
	}

	results := make([]RuleResult, 0, len(rules))
	for _, r := range rules {
		reps, err := Replace(doc, r.From, r.To)
		if err != nil {
			return results, fmt.Errorf("rule %s -> %s: %w", r.From, r.To, err)
		}
		results = append(results, RuleResult{Rule: r, Replacements: reps})
	}

	return results, nil
}
